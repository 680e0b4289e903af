// storage содержит контракты слоя хранилища health-bot.
//
// users.go (этот файл) — работа с записями пользователей: чтение, частичное
// обновление (upsert) и атомарный инкремент дневных счётчиков. Конкретный
// бэкенд (storage/file) подключается через интерфейс UsersStorage — расчётное
// ядро и сервисный слой от него не зависят.
package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/go-health-bot/internal/models"
)

var (
	// ErrNotFoundUser — запись пользователя не найдена.
	ErrNotFoundUser = errors.New("not found")
	// ErrNonPositiveDelta — инкремент счётчика с delta <= 0 отклонён.
	ErrNonPositiveDelta = errors.New("non-positive delta")
)

// Counter — имя дневного счётчика.
type Counter string

const (
	CounterWaterLogged    Counter = "water_logged"
	CounterCaloriesLogged Counter = "calories_logged"
	CounterCaloriesBurned Counter = "burned_calories"
)

// UserUpdate — частичный апдейт записи пользователя.
// Поля задаются указателями: только непустые указатели попадают в запись,
// остальные поля остаются нетронутыми.
type UserUpdate struct {
	WeightKG    *float64
	HeightCM    *float64
	Age         *int
	Gender      *models.Gender
	ActivityMin *int
	City        *string

	WaterNormML      *float64
	CaloriesNormKcal *float64

	// Счётчики выставляются напрямую только суточным сбросом;
	// пользовательские изменения идут через IncrementCounter.
	WaterLoggedML      *float64
	CaloriesLoggedKcal *float64
	CaloriesBurnedKcal *float64
}

// Users — контракт репозитория пользователей.
type Users interface {
	// UserByID возвращает запись по идентификатору.
	// Отсутствие записи — ErrNotFoundUser (профиль ещё не настроен).
	UserByID(ctx context.Context, userID int64) (*models.User, error)
	// Upsert вливает непустые поля update в существующую запись
	// (создавая её при отсутствии) и возвращает результат.
	// Слияние атомарно: частично обновлённая запись не видна читателям.
	Upsert(ctx context.Context, userID int64, update UserUpdate) (*models.User, error)
	// IncrementCounter атомарно добавляет delta (> 0) к счётчику,
	// создавая запись/счётчик с нуля при отсутствии.
	// delta <= 0 — ErrNonPositiveDelta, запись не меняется.
	IncrementCounter(ctx context.Context, userID int64, counter Counter, delta float64) (*models.User, error)
	// ApplyWorkout одной мутацией добавляет burnedKcal к счётчику
	// сожжённого и повышает норму воды на additionalWaterML; запись
	// создаётся при отсутствии. Оба поля становятся видимыми вместе —
	// частично применённая тренировка невозможна.
	// burnedKcal <= 0 или additionalWaterML < 0 — ErrNonPositiveDelta.
	ApplyWorkout(ctx context.Context, userID int64, burnedKcal, additionalWaterML float64) (*models.User, error)
	// UserIDs возвращает идентификаторы всех сохранённых пользователей.
	UserIDs(ctx context.Context) ([]int64, error)
}

// UsersStorage — верхнеуровневый интерфейс хранилища пользователей.
type UsersStorage interface {
	Users
	Close()
}
