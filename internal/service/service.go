// service содержит бизнес-логику health-bot:
// - сохранение профиля с выводом дневных норм (вода/калории);
// - логирование воды, еды и тренировок в дневные счётчики;
// - отчёт о прогрессе;
// - суточный сброс счётчиков с пересчётом норм (reset.go).
package service

import (
	"context"
	"errors"

	"github.com/pribylovaa/go-health-bot/internal/config"
	"github.com/pribylovaa/go-health-bot/internal/storage"
)

var (
	// ErrInvalidArgument — некорректные входные данные (вес <= 0, активность
	// вне [0, 480], длительность <= 0, неизвестный пол и т.п.).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound — профиль не настроен; прогресс/логирование невозможны.
	ErrNotFound = errors.New("not found")
	// ErrUnknownWorkout — тип тренировки отсутствует в каталоге.
	ErrUnknownWorkout = errors.New("unknown workout type")
	// ErrExternalLookup — внешний сервис недоступен или ничего не нашёл.
	ErrExternalLookup = errors.New("external lookup failed")
	// ErrInternal — внутренняя ошибка сервиса.
	ErrInternal = errors.New("internal")
)

// TemperatureClient — контракт погодного коллаборатора: текущая температура
// по названию города. Используется при сохранении профиля и суточном сбросе.
type TemperatureClient interface {
	CurrentTemp(ctx context.Context, city string) (float64, error)
}

// Service — описывает бизнес-логику health-bot.
type Service struct {
	cfg          *config.Config
	usersStorage storage.UsersStorage
	weather      TemperatureClient
}

// New создает новый экземпляр Service.
func New(usersStorage storage.UsersStorage, weather TemperatureClient, cfg *config.Config) *Service {
	return &Service{
		cfg:          cfg,
		usersStorage: usersStorage,
		weather:      weather,
	}
}
