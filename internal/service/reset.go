package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pribylovaa/go-health-bot/internal/norms"
	"github.com/pribylovaa/go-health-bot/internal/storage"
	"github.com/pribylovaa/go-health-bot/pkg/log"
)

// StartDailyReset запускает суточный сброс: раз в 24 часа (в настроенный
// локальный час, по умолчанию полночь) для каждого сохранённого пользователя
// пересчитываются дневные нормы по свежей температуре и обнуляются счётчики.
// Останавливается по ctx.
func (s *Service) StartDailyReset(ctx context.Context) error {
	const op = "service/reset/StartDailyReset"

	lg := log.From(ctx)
	lg.Info("reset_start",
		slog.String("op", op),
		slog.Int("hour", s.cfg.Reset.Hour),
	)

	for {
		timer := time.NewTimer(time.Until(nextTrigger(time.Now(), s.cfg.Reset.Hour)))

		select {
		case <-ctx.Done():
			timer.Stop()
			lg.Info("reset_stop", slog.String("op", op))
			return nil
		case <-timer.C:
			if err := s.resetOnce(ctx); err != nil {
				lg.Warn("reset_cycle_error",
					slog.String("op", op),
					slog.String("err", err.Error()),
				)
			}
		}
	}
}

// nextTrigger возвращает ближайший момент срабатывания: сегодняшний hour:00
// по локальному времени, либо завтрашний, если он уже прошёл.
func nextTrigger(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}

	return next
}

// resetOnce — один проход сброса по всем сохранённым пользователям.
// Ошибка одного пользователя не прерывает обработку остальных.
func (s *Service) resetOnce(ctx context.Context) error {
	const op = "service/reset/resetOnce"

	lg := log.From(ctx)

	ids, err := s.usersStorage.UserIDs(ctx)
	if err != nil {
		return fmt.Errorf("%s: user_ids: %w", op, err)
	}

	var usersOK, usersErr int
	for _, id := range ids {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := s.resetUser(ctx, id); err != nil {
			usersErr++
			lg.Warn("reset_user_error",
				slog.String("op", op),
				slog.Int64("user_id", id),
				slog.String("err", err.Error()),
			)
			continue
		}

		usersOK++
	}

	lg.Info("reset_done",
		slog.String("op", op),
		slog.Int("users_ok", usersOK),
		slog.Int("users_err", usersErr),
	)

	return nil
}

// resetUser пересчитывает нормы и обнуляет счётчики одного пользователя.
//
// Обнуление счётчиков безусловно — сутки закончились независимо от погоды.
// Пересчёт норм пропускается (нормы остаются прежними до следующего цикла),
// если профиль не завершён или температуру получить не удалось.
func (s *Service) resetUser(ctx context.Context, userID int64) error {
	const op = "service/reset/resetUser"

	lg := log.From(ctx).With("op", op, "user_id", userID)

	user, err := s.usersStorage.UserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: user_by_id: %w", op, err)
	}

	var zeroWater, zeroCalories, zeroBurned float64
	update := storage.UserUpdate{
		WaterLoggedML:      &zeroWater,
		CaloriesLoggedKcal: &zeroCalories,
		CaloriesBurnedKcal: &zeroBurned,
	}

	if user.HasProfile() && user.City != "" {
		lookupCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeouts.Lookup)
		temp, err := s.weather.CurrentTemp(lookupCtx, user.City)
		cancel()

		if err != nil {
			lg.Warn("temperature lookup failed, norms kept", "err", err)
		} else {
			waterNorm := norms.WaterNorm(user.WeightKG, user.ActivityMin, temp)

			caloriesNorm, err := norms.CalorieNorm(user.WeightKG, user.HeightCM, user.Age, user.Gender, user.ActivityMin)
			if err != nil {
				lg.Warn("calorie norm skipped", "err", err)
			} else {
				update.WaterNormML = &waterNorm
				update.CaloriesNormKcal = &caloriesNorm
			}
		}
	}

	if _, err := s.usersStorage.Upsert(ctx, userID, update); err != nil {
		return fmt.Errorf("%s: upsert: %w", op, err)
	}

	return nil
}
