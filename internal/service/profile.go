package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-health-bot/internal/clients/weather"
	"github.com/pribylovaa/go-health-bot/internal/models"
	"github.com/pribylovaa/go-health-bot/internal/norms"
	"github.com/pribylovaa/go-health-bot/internal/storage"
	"github.com/pribylovaa/go-health-bot/pkg/log"
)

// SaveProfileInput — входные данные сохранения профиля.
type SaveProfileInput struct {
	UserID      int64
	WeightKG    float64
	HeightCM    float64
	Age         int
	Gender      models.Gender
	ActivityMin int
	City        string
}

// SaveProfile валидирует атрибуты профиля, получает текущую температуру
// в городе пользователя, выводит дневные нормы воды и калорий и одним
// upsert-ом сохраняет профиль вместе с нормами.
//
// Валидация:
//   - вес, рост, возраст > 0; активность в [0, 480];
//   - пол строго male/female; город не пустой.
//
// Поведение:
//   - ошибки погодного сервиса (в т.ч. «город не найден») -> ErrExternalLookup,
//     состояние не меняется — шаг настройки можно повторить;
//   - ошибки стораджа -> ErrInternal.
func (s *Service) SaveProfile(ctx context.Context, input SaveProfileInput) (*models.User, error) {
	const op = "service/profile/SaveProfile"

	lg := log.From(ctx).With("op", op, "user_id", input.UserID)

	if input.WeightKG <= 0 || input.HeightCM <= 0 || input.Age <= 0 {
		lg.Warn("invalid argument: non-positive body metric")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if input.ActivityMin < 0 || input.ActivityMin > 480 {
		lg.Warn("invalid argument: activity out of range", "activity", input.ActivityMin)

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if input.Gender != models.GenderMale && input.Gender != models.GenderFemale {
		lg.Warn("invalid argument: unknown gender")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	city := strings.TrimSpace(input.City)
	if city == "" {
		lg.Warn("invalid argument: empty city")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeouts.Lookup)
	temp, err := s.weather.CurrentTemp(lookupCtx, city)
	cancel()
	if err != nil {
		if errors.Is(err, weather.ErrCityNotFound) {
			lg.Warn("city not found", "city", city)
		} else {
			lg.Error("weather lookup failed", "err", err)
		}

		return nil, fmt.Errorf("%s: %w", op, ErrExternalLookup)
	}

	waterNorm := norms.WaterNorm(input.WeightKG, input.ActivityMin, temp)

	caloriesNorm, err := norms.CalorieNorm(input.WeightKG, input.HeightCM, input.Age, input.Gender, input.ActivityMin)
	if err != nil {
		lg.Warn("calorie norm rejected input", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.usersStorage.Upsert(ctx, input.UserID, storage.UserUpdate{
		WeightKG:         &input.WeightKG,
		HeightCM:         &input.HeightCM,
		Age:              &input.Age,
		Gender:           &input.Gender,
		ActivityMin:      &input.ActivityMin,
		City:             &city,
		WaterNormML:      &waterNorm,
		CaloriesNormKcal: &caloriesNorm,
	})
	if err != nil {
		lg.Error("storage error on Upsert", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("profile saved",
		"water_norm", waterNorm,
		"calories_norm", caloriesNorm,
		"temp_c", temp,
	)

	return user, nil
}
