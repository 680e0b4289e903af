// file — файловый бэкенд хранилища: единый JSON-объект, ключ — десятичный
// идентификатор пользователя, значение — запись models.User.
//
// Каждая мутация выполняет read-modify-write под общим мьютексом и
// переписывает файл целиком через временный файл + os.Rename: на диске
// никогда не видна частично обновлённая запись, после рестарта состояние
// совпадает с последней успешной операцией.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/pribylovaa/go-health-bot/internal/models"
	"github.com/pribylovaa/go-health-bot/internal/storage"
)

// UsersStorage реализует storage.UsersStorage поверх одного JSON-файла.
type UsersStorage struct {
	mu   sync.Mutex
	path string
	data map[string]*models.User
}

// New открывает (или создаёт пустым) файл по указанному пути
// и загружает все записи в память.
func New(path string) (*UsersStorage, error) {
	const op = "storage/file/New"

	s := &UsersStorage{
		path: path,
		data: make(map[string]*models.User),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("%s: read: %w", op, err)
	}

	if len(raw) == 0 {
		return s, nil
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("%s: unmarshal: %w", op, err)
	}

	for key, u := range s.data {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: bad user key %q: %w", op, key, err)
		}
		u.UserID = id
	}

	return s, nil
}

// UserByID возвращает копию записи пользователя.
func (s *UsersStorage) UserByID(_ context.Context, userID int64) (*models.User, error) {
	const op = "storage/file/UserByID"

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.data[key(userID)]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundUser)
	}

	cp := *u
	return &cp, nil
}

// Upsert вливает непустые поля update в запись (создавая её при отсутствии)
// и сохраняет весь стор на диск до возврата управления.
func (s *UsersStorage) Upsert(_ context.Context, userID int64, update storage.UserUpdate) (*models.User, error) {
	const op = "storage/file/Upsert"

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.data[key(userID)]
	if !ok {
		u = &models.User{UserID: userID}
	}

	// Слияние в копию: исходная запись не видна изменённой,
	// пока save не прошёл успешно.
	merged := *u
	applyUpdate(&merged, update)

	if err := s.saveWith(userID, &merged); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cp := merged
	return &cp, nil
}

// IncrementCounter атомарно добавляет delta к счётчику.
func (s *UsersStorage) IncrementCounter(_ context.Context, userID int64, counter storage.Counter, delta float64) (*models.User, error) {
	const op = "storage/file/IncrementCounter"

	if delta <= 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNonPositiveDelta)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.data[key(userID)]
	if !ok {
		u = &models.User{UserID: userID}
	}

	merged := *u
	switch counter {
	case storage.CounterWaterLogged:
		merged.WaterLoggedML += delta
	case storage.CounterCaloriesLogged:
		merged.CaloriesLoggedKcal += delta
	case storage.CounterCaloriesBurned:
		merged.CaloriesBurnedKcal += delta
	default:
		return nil, fmt.Errorf("%s: unknown counter %q", op, counter)
	}

	if err := s.saveWith(userID, &merged); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cp := merged
	return &cp, nil
}

// ApplyWorkout добавляет сожжённые калории и повышает норму воды
// одним сохранением: обе правки попадают на диск вместе или не
// попадают вовсе.
func (s *UsersStorage) ApplyWorkout(_ context.Context, userID int64, burnedKcal, additionalWaterML float64) (*models.User, error) {
	const op = "storage/file/ApplyWorkout"

	if burnedKcal <= 0 || additionalWaterML < 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNonPositiveDelta)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.data[key(userID)]
	if !ok {
		u = &models.User{UserID: userID}
	}

	merged := *u
	merged.CaloriesBurnedKcal += burnedKcal
	merged.WaterNormML += additionalWaterML

	if err := s.saveWith(userID, &merged); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cp := merged
	return &cp, nil
}

// UserIDs возвращает идентификаторы всех сохранённых пользователей.
func (s *UsersStorage) UserIDs(_ context.Context) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(s.data))
	for _, u := range s.data {
		ids = append(ids, u.UserID)
	}

	return ids, nil
}

// Close — файловому стору нечего освобождать; метод нужен для контракта.
func (s *UsersStorage) Close() {}

// saveWith подставляет новую версию записи и переписывает файл целиком.
// При ошибке записи состояние в памяти откатывается. Вызывается под s.mu.
func (s *UsersStorage) saveWith(userID int64, u *models.User) error {
	k := key(userID)
	prev, existed := s.data[k]
	s.data[k] = u

	if err := s.flush(); err != nil {
		if existed {
			s.data[k] = prev
		} else {
			delete(s.data, k)
		}
		return err
	}

	return nil
}

// flush сериализует весь стор во временный файл и атомарно
// подменяет им основной. Вызывается под s.mu.
func (s *UsersStorage) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".storage-*.json")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename: %w", err)
	}

	return nil
}

// applyUpdate вливает непустые указатели update в запись.
func applyUpdate(u *models.User, update storage.UserUpdate) {
	if update.WeightKG != nil {
		u.WeightKG = *update.WeightKG
	}
	if update.HeightCM != nil {
		u.HeightCM = *update.HeightCM
	}
	if update.Age != nil {
		u.Age = *update.Age
	}
	if update.Gender != nil {
		u.Gender = *update.Gender
	}
	if update.ActivityMin != nil {
		u.ActivityMin = *update.ActivityMin
	}
	if update.City != nil {
		u.City = *update.City
	}
	if update.WaterNormML != nil {
		u.WaterNormML = *update.WaterNormML
	}
	if update.CaloriesNormKcal != nil {
		u.CaloriesNormKcal = *update.CaloriesNormKcal
	}
	if update.WaterLoggedML != nil {
		u.WaterLoggedML = *update.WaterLoggedML
	}
	if update.CaloriesLoggedKcal != nil {
		u.CaloriesLoggedKcal = *update.CaloriesLoggedKcal
	}
	if update.CaloriesBurnedKcal != nil {
		u.CaloriesBurnedKcal = *update.CaloriesBurnedKcal
	}
}

func key(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
