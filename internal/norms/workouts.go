package norms

import (
	"sort"
	"strings"
)

// Workout — запись каталога тренировок: расход калорий в минуту
// и дополнительная вода на каждые 30 минут нагрузки.
type Workout struct {
	KcalPerMin      float64
	WaterMLPer30Min float64
}

// catalog — статический справочник тренировок. Ключи в нижнем регистре;
// русские названия и английские синонимы указывают на одни и те же значения.
var catalog = map[string]Workout{
	"бег":      {KcalPerMin: 10, WaterMLPer30Min: 250},
	"running":  {KcalPerMin: 10, WaterMLPer30Min: 250},
	"ходьба":   {KcalPerMin: 4, WaterMLPer30Min: 150},
	"walking":  {KcalPerMin: 4, WaterMLPer30Min: 150},
	"велосипед": {KcalPerMin: 8, WaterMLPer30Min: 200},
	"cycling":  {KcalPerMin: 8, WaterMLPer30Min: 200},
	"плавание": {KcalPerMin: 9, WaterMLPer30Min: 200},
	"swimming": {KcalPerMin: 9, WaterMLPer30Min: 200},
	"силовая":  {KcalPerMin: 7, WaterMLPer30Min: 200},
	"strength": {KcalPerMin: 7, WaterMLPer30Min: 200},
	"йога":     {KcalPerMin: 3, WaterMLPer30Min: 100},
	"yoga":     {KcalPerMin: 3, WaterMLPer30Min: 100},
}

// WorkoutEnergy возвращает сожжённые калории и дополнительную норму воды
// для тренировки заданного типа и длительности (в минутах).
//
// Поиск по каталогу нечувствителен к регистру. Ошибки:
//   - ErrInvalidInput — длительность <= 0 (проверяется до поиска);
//   - ErrUnknownWorkout — тип отсутствует в каталоге.
func WorkoutEnergy(workoutType string, durationMin int) (kcal, waterML float64, err error) {
	if durationMin <= 0 {
		return 0, 0, ErrInvalidInput
	}

	w, ok := catalog[strings.ToLower(strings.TrimSpace(workoutType))]
	if !ok {
		return 0, 0, ErrUnknownWorkout
	}

	kcal = w.KcalPerMin * float64(durationMin)
	waterML = float64(durationMin) / 30 * w.WaterMLPer30Min

	return kcal, waterML, nil
}

// WorkoutTypes возвращает отсортированный по алфавиту список известных
// типов тренировок (для подсказки пользователю).
func WorkoutTypes() []string {
	types := make([]string, 0, len(catalog))
	for name := range catalog {
		types = append(types, name)
	}

	sort.Strings(types)
	return types
}
