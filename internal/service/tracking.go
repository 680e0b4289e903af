package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-health-bot/internal/models"
	"github.com/pribylovaa/go-health-bot/internal/norms"
	"github.com/pribylovaa/go-health-bot/internal/storage"
	"github.com/pribylovaa/go-health-bot/pkg/log"
)

// WorkoutResult — итог записанной тренировки.
type WorkoutResult struct {
	// За эту тренировку.
	BurnedKcal        float64
	AdditionalWaterML float64
	// Накопленное состояние после записи.
	TotalBurnedKcal float64
	WaterNormML     float64
}

// LogWater добавляет выпитую воду (мл) к дневному счётчику.
// Запись пользователя создаётся лениво при первом логировании.
//
// amountML <= 0 -> ErrInvalidArgument, счётчик не меняется.
func (s *Service) LogWater(ctx context.Context, userID int64, amountML float64) (*models.User, error) {
	const op = "service/tracking/LogWater"

	lg := log.From(ctx).With("op", op, "user_id", userID)

	if amountML <= 0 {
		lg.Warn("invalid argument: non-positive amount", "amount_ml", amountML)

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.usersStorage.IncrementCounter(ctx, userID, storage.CounterWaterLogged, amountML)
	if err != nil {
		if errors.Is(err, storage.ErrNonPositiveDelta) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		lg.Error("storage error on IncrementCounter", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("water logged", "amount_ml", amountML, "total_ml", user.WaterLoggedML)

	return user, nil
}

// LogFood добавляет съеденные калории к дневному счётчику: порция в граммах
// пересчитывается пропорцией от калорийности на 100 г.
//
// kcalPer100 <= 0 или grams <= 0 -> ErrInvalidArgument.
// Возвращает калорийность порции и запись после обновления.
func (s *Service) LogFood(ctx context.Context, userID int64, kcalPer100, grams float64) (float64, *models.User, error) {
	const op = "service/tracking/LogFood"

	lg := log.From(ctx).With("op", op, "user_id", userID)

	if kcalPer100 <= 0 || grams <= 0 {
		lg.Warn("invalid argument", "kcal_per_100", kcalPer100, "grams", grams)

		return 0, nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	portion := norms.FoodCalories(kcalPer100, grams)

	user, err := s.usersStorage.IncrementCounter(ctx, userID, storage.CounterCaloriesLogged, portion)
	if err != nil {
		if errors.Is(err, storage.ErrNonPositiveDelta) {
			return 0, nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		lg.Error("storage error on IncrementCounter", "err", err)

		return 0, nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("food logged", "portion_kcal", portion, "total_kcal", user.CaloriesLoggedKcal)

	return portion, user, nil
}

// LogWorkout записывает тренировку: сожжённые калории идут в дневной счётчик,
// дополнительная вода повышает дневную норму воды. Обе правки уходят
// в хранилище одной мутацией — при любой ошибке запись остаётся прежней.
//
// Ошибки:
//   - длительность <= 0 -> ErrInvalidArgument (до поиска в каталоге);
//   - неизвестный тип -> ErrUnknownWorkout, состояние не меняется.
func (s *Service) LogWorkout(ctx context.Context, userID int64, workoutType string, durationMin int) (*WorkoutResult, error) {
	const op = "service/tracking/LogWorkout"

	lg := log.From(ctx).With("op", op, "user_id", userID)

	kcal, waterML, err := norms.WorkoutEnergy(workoutType, durationMin)
	if err != nil {
		switch {
		case errors.Is(err, norms.ErrInvalidInput):
			lg.Warn("invalid argument: duration", "duration_min", durationMin)

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		case errors.Is(err, norms.ErrUnknownWorkout):
			lg.Warn("unknown workout type", "workout", workoutType)

			return nil, fmt.Errorf("%s: %w", op, ErrUnknownWorkout)
		default:
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	user, err := s.usersStorage.ApplyWorkout(ctx, userID, kcal, waterML)
	if err != nil {
		lg.Error("storage error on ApplyWorkout", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("workout logged",
		"workout", strings.ToLower(strings.TrimSpace(workoutType)),
		"duration_min", durationMin,
		"burned_kcal", kcal,
		"additional_water_ml", waterML,
	)

	return &WorkoutResult{
		BurnedKcal:        kcal,
		AdditionalWaterML: waterML,
		TotalBurnedKcal:   user.CaloriesBurnedKcal,
		WaterNormML:       user.WaterNormML,
	}, nil
}

// Progress возвращает отчёт о дневном прогрессе пользователя.
//
// Отсутствие записи -> ErrNotFound: вызывающая сторона должна предложить
// настроить профиль.
func (s *Service) Progress(ctx context.Context, userID int64) (*norms.Report, *models.User, error) {
	const op = "service/tracking/Progress"

	lg := log.From(ctx).With("op", op, "user_id", userID)

	user, err := s.usersStorage.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFoundUser) {
			lg.Warn("profile not found")

			return nil, nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("storage error on UserByID", "err", err)

		return nil, nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	report := norms.BuildReport(user)

	return &report, user, nil
}
