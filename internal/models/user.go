// models содержит доменные сущности health-bot.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import "strings"

// Gender — внутренний enum пола пользователя.
// Формула BMR определена только для male/female, поэтому Unspecified
// допустим лишь до завершения настройки профиля.
type Gender int8

const (
	GenderUnspecified Gender = iota
	GenderMale
	GenderFemale
)

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return "unspecified"
	}
}

// ParseGender разбирает строковое представление пола.
// Принимает male/female без учёта регистра; всё остальное — Unspecified, false.
func ParseGender(s string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return GenderMale, true
	case "female":
		return GenderFemale, true
	default:
		return GenderUnspecified, false
	}
}

// MarshalText/UnmarshalText — сериализация пола в хранилище как male/female.
func (g Gender) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *Gender) UnmarshalText(data []byte) error {
	parsed, ok := ParseGender(string(data))
	if !ok {
		*g = GenderUnspecified
		return nil
	}

	*g = parsed
	return nil
}

// User — запись пользователя: атрибуты профиля, производные нормы
// и накопительные счётчики текущего дня.
//
// Инвариант: WaterNormML и CaloriesNormKcal всегда производные от остальных
// атрибутов профиля и внешней температуры на момент последнего сохранения
// профиля или суточного сброса; напрямую пользователем они не редактируются.
// Счётчики в течение дня только растут и обнуляются раз в сутки.
type User struct {
	UserID int64 `json:"-"`

	// Атрибуты профиля.
	WeightKG    float64 `json:"weight"`
	HeightCM    float64 `json:"height"`
	Age         int     `json:"age"`
	Gender      Gender  `json:"gender"`
	ActivityMin int     `json:"activity"`
	City        string  `json:"city"`

	// Производные дневные нормы.
	WaterNormML      float64 `json:"water_norm"`
	CaloriesNormKcal float64 `json:"calories_norm"`

	// Счётчики текущего дня.
	WaterLoggedML      float64 `json:"water_logged"`
	CaloriesLoggedKcal float64 `json:"calories_logged"`
	CaloriesBurnedKcal float64 `json:"burned_calories"`
}

// HasProfile сообщает, завершена ли настройка профиля:
// нормы считаются только по полному набору атрибутов.
func (u *User) HasProfile() bool {
	return u != nil && u.WeightKG > 0 && u.HeightCM > 0 && u.Age > 0 &&
		(u.Gender == GenderMale || u.Gender == GenderFemale)
}
