package norms

import "github.com/pribylovaa/go-health-bot/internal/models"

// Report — агрегированный снимок дневного прогресса пользователя.
//
// Балансы:
//   - WaterBalanceML = норма воды − выпито;
//   - CaloriesTargetKcal = норма калорий + сожжённые (тренировки повышают
//     эффективную дневную «квоту»);
//   - CaloriesBalanceKcal = эффективная квота − потреблено.
type Report struct {
	WaterDrunkML         float64
	WaterTargetML        float64
	WaterBalanceML       float64
	CaloriesConsumedKcal float64
	CaloriesTargetKcal   float64
	CaloriesBurnedKcal   float64
	CaloriesBalanceKcal  float64
}

// BuildReport строит отчёт по записи пользователя. Чистая функция:
// повторный вызов без изменения записи даёт идентичный результат.
func BuildReport(u *models.User) Report {
	target := u.CaloriesNormKcal + u.CaloriesBurnedKcal

	return Report{
		WaterDrunkML:         u.WaterLoggedML,
		WaterTargetML:        u.WaterNormML,
		WaterBalanceML:       u.WaterNormML - u.WaterLoggedML,
		CaloriesConsumedKcal: u.CaloriesLoggedKcal,
		CaloriesTargetKcal:   target,
		CaloriesBurnedKcal:   u.CaloriesBurnedKcal,
		CaloriesBalanceKcal:  target - u.CaloriesLoggedKcal,
	}
}
