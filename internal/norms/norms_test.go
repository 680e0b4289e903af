package norms

// Тесты расчётного слоя (norms.go, workouts.go, report.go).
//
// Проверяем:
//  - формулу нормы воды по буквальным значениям (базис, шаг активности, жара);
//  - норму калорий: крайние значения коэффициента активности, монотонность,
//    формулу BMR для обоих полов, ошибку на неизвестном поле;
//  - энергию тренировок: валидацию длительности, неизвестный тип, расчёт;
//  - отчёт прогресса: балансы и идемпотентность.
//
// Запуск:
//   go test ./internal/norms -v -race -count=1

import (
	"testing"

	"github.com/pribylovaa/go-health-bot/internal/models"
	"github.com/stretchr/testify/require"
)

// Буквальная проверка формулы: 30w + 250*(a/15) + жара.
func TestWaterNorm_Formula(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		activity int
		temp     float64
		want     float64
	}{
		{"base_only", 70, 0, 20, 2100},
		{"activity_step_15", 70, 15, 20, 2350},
		{"activity_step_rounds_down", 70, 40, 20, 2100 + 2*250},
		{"moderate_heat", 70, 0, 26, 2600},
		{"extreme_heat_cumulative", 70, 40, 32, 2100 + 500 + 500 + 500},
		{"boundary_25_no_bonus", 70, 0, 25, 2100},
		{"boundary_30_single_bonus", 70, 0, 30, 2600},
		{"full_day_activity", 50, 480, 10, 1500 + 32*250},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, WaterNorm(tc.weight, tc.activity, tc.temp))
		})
	}
}

// Бонус за активность идёт шагом в 15 минут: 14 минут не дают ничего,
// 15-я минута добавляет ровно 250 мл.
func TestWaterNorm_ActivityGranularity(t *testing.T) {
	require.Equal(t, WaterNorm(70, 0, 20), WaterNorm(70, 14, 20))
	require.Equal(t, WaterNorm(70, 0, 20)+250, WaterNorm(70, 15, 20))
	require.Equal(t, WaterNorm(70, 15, 20), WaterNorm(70, 29, 20))
}

// Крайние значения коэффициента: 0 мин -> 1.2, 480 мин -> 1.9.
func TestActivityFactor_Endpoints(t *testing.T) {
	require.InDelta(t, 1.2, ActivityFactor(0), 1e-12)
	require.InDelta(t, 1.9, ActivityFactor(480), 1e-12)
}

// Контрольный сценарий: {70 кг, 175 см, 30 лет, male, 60 мин}.
// factor = 1.2875, BMR = 1648.75, произведение 2122.765625 -> 2122.77.
func TestCalorieNorm_ReferenceScenario(t *testing.T) {
	got, err := CalorieNorm(70, 175, 30, models.GenderMale, 60)
	require.NoError(t, err)
	require.Equal(t, 2122.77, got)
}

// Женский BMR отличается на −166 ккал до умножения на коэффициент.
func TestCalorieNorm_FemaleBMR(t *testing.T) {
	got, err := CalorieNorm(60, 165, 25, models.GenderFemale, 0)
	require.NoError(t, err)

	// BMR = 10*60 + 6.25*165 - 5*25 - 161 = 1345.25; * 1.2 = 1614.3.
	require.Equal(t, 1614.3, got)
}

// Норма калорий строго растёт по минутам активности.
func TestCalorieNorm_MonotonicInActivity(t *testing.T) {
	prev := -1.0
	for a := 0; a <= 480; a += 30 {
		got, err := CalorieNorm(80, 180, 40, models.GenderMale, a)
		require.NoError(t, err)
		require.Greater(t, got, prev, "activity=%d", a)
		prev = got
	}
}

func TestCalorieNorm_UnknownGender(t *testing.T) {
	_, err := CalorieNorm(70, 175, 30, models.GenderUnspecified, 60)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestWorkoutEnergy_InvalidDuration(t *testing.T) {
	_, _, err := WorkoutEnergy("бег", 0)
	require.ErrorIs(t, err, ErrInvalidInput)

	// Валидация длительности срабатывает до поиска в каталоге.
	_, _, err = WorkoutEnergy("несуществующая", -5)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestWorkoutEnergy_UnknownType(t *testing.T) {
	_, _, err := WorkoutEnergy("кёрлинг", 30)
	require.ErrorIs(t, err, ErrUnknownWorkout)
}

func TestWorkoutEnergy_CaseInsensitive(t *testing.T) {
	kcal, water, err := WorkoutEnergy("БЕГ", 30)
	require.NoError(t, err)
	require.Equal(t, 300.0, kcal)
	require.Equal(t, 250.0, water)

	kcal2, water2, err := WorkoutEnergy("  Running ", 30)
	require.NoError(t, err)
	require.Equal(t, kcal, kcal2)
	require.Equal(t, water, water2)
}

// Вода за тренировку пропорциональна длительности: 45 минут бега — 1.5 * 250.
func TestWorkoutEnergy_WaterProportional(t *testing.T) {
	kcal, water, err := WorkoutEnergy("бег", 45)
	require.NoError(t, err)
	require.Equal(t, 450.0, kcal)
	require.Equal(t, 375.0, water)
}

func TestWorkoutTypes_SortedNonEmpty(t *testing.T) {
	types := WorkoutTypes()
	require.NotEmpty(t, types)

	for i := 1; i < len(types); i++ {
		require.LessOrEqual(t, types[i-1], types[i])
	}
}

func TestBuildReport_Balances(t *testing.T) {
	u := &models.User{
		WaterNormML:        2400,
		CaloriesNormKcal:   2000,
		WaterLoggedML:      600,
		CaloriesLoggedKcal: 1500,
		CaloriesBurnedKcal: 300,
	}

	r := BuildReport(u)
	require.Equal(t, 600.0, r.WaterDrunkML)
	require.Equal(t, 2400.0, r.WaterTargetML)
	require.Equal(t, 1800.0, r.WaterBalanceML)
	require.Equal(t, 1500.0, r.CaloriesConsumedKcal)
	require.Equal(t, 2300.0, r.CaloriesTargetKcal)
	require.Equal(t, 300.0, r.CaloriesBurnedKcal)
	require.Equal(t, 800.0, r.CaloriesBalanceKcal)
}

// Повторный вызов без изменения записи даёт идентичный отчёт.
func TestBuildReport_Idempotent(t *testing.T) {
	u := &models.User{WaterNormML: 2000, CaloriesNormKcal: 1800, WaterLoggedML: 250}

	first := BuildReport(u)
	second := BuildReport(u)
	require.Equal(t, first, second)
}

func TestFoodCalories_Proportion(t *testing.T) {
	require.Equal(t, 0.0, FoodCalories(250, 0))
	require.Equal(t, 250.0, FoodCalories(250, 100))
	require.Equal(t, 125.0, FoodCalories(250, 50))
	require.Equal(t, 562.5, FoodCalories(250, 225))
}
