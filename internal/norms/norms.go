// norms — чистый расчётный слой: дневные нормы воды и калорий,
// энергия тренировок и калорийность еды. Без состояния и I/O.
package norms

import (
	"errors"
	"math"

	"github.com/pribylovaa/go-health-bot/internal/models"
)

var (
	// ErrInvalidInput — входные значения вне допустимого диапазона.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownWorkout — тип тренировки отсутствует в каталоге.
	ErrUnknownWorkout = errors.New("unknown workout type")
)

// Коэффициент активности интерполируется линейно на диапазоне минут [0, 480]:
// 1.2 — сидячий образ жизни, 1.9 — очень высокая активность.
const (
	minActivityFactor = 1.2
	maxActivityFactor = 1.9
	maxActivityMin    = 480
)

// WaterNorm возвращает дневную норму воды в мл.
//
// Формула:
//   - базис: 30 мл на кг веса;
//   - бонус за активность: +250 мл за каждые начатые 15 минут
//     (именно 15-минутный шаг, а не «за 30 минут» — исторически
//     комментарий в исходной формуле расходился с кодом, шаг в 15 минут
//     зафиксирован как контракт);
//   - жара: t > 25 °C -> +500 мл, t > 30 °C -> ещё +500 мл.
//
// Верхняя граница не накладывается.
func WaterNorm(weightKG float64, activityMin int, tempC float64) float64 {
	norm := weightKG * 30

	norm += float64(activityMin/15) * 250

	if tempC > 25 {
		norm += 500
		if tempC > 30 {
			norm += 500
		}
	}

	return norm
}

// CalorieNorm возвращает дневную норму калорий в ккал:
// BMR по Миффлину—Сан Жеору, умноженный на непрерывный коэффициент
// активности, с округлением до 2 знаков.
//
// Ошибки:
//   - ErrInvalidInput — пол не male/female.
func CalorieNorm(weightKG, heightCM float64, age int, gender models.Gender, activityMin int) (float64, error) {
	factor := ActivityFactor(activityMin)

	var bmr float64
	switch gender {
	case models.GenderMale:
		bmr = 10*weightKG + 6.25*heightCM - 5*float64(age) + 5
	case models.GenderFemale:
		bmr = 10*weightKG + 6.25*heightCM - 5*float64(age) - 161
	default:
		return 0, ErrInvalidInput
	}

	return round2(bmr * factor), nil
}

// ActivityFactor возвращает коэффициент активности для заданных минут.
// На границах диапазона: 0 мин -> 1.2, 480 мин -> 1.9.
func ActivityFactor(activityMin int) float64 {
	return minActivityFactor + float64(activityMin)/maxActivityMin*(maxActivityFactor-minActivityFactor)
}

// FoodCalories возвращает калорийность порции: ккал на 100 г,
// пропорционально пересчитанные на вес порции в граммах.
func FoodCalories(kcalPer100 float64, grams float64) float64 {
	return kcalPer100 / 100 * grams
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
