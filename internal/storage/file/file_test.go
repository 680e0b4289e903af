package file

// Тесты файлового бэкенда (internal/storage/file).
//
// Проверяем:
//  - round-trip: Upsert -> UserByID возвращает ровно влитые поля,
//    незатронутые поля сохраняют прежние значения;
//  - ленивое создание записи при Upsert и IncrementCounter;
//  - отклонение инкремента с delta <= 0 без изменения записи;
//  - ApplyWorkout: счётчик и норма воды меняются одной мутацией;
//  - долговечность: повторное открытие файла видит последнее состояние;
//  - безопасность конкурентных инкрементов по одному ключу;
//  - UserIDs по всем сохранённым записям.
//
// Запуск:
//   go test ./internal/storage/file -v -race -count=1

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-health-bot/internal/models"
	"github.com/pribylovaa/go-health-bot/internal/storage"
)

func newStore(t *testing.T) (*UsersStorage, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data", "storage.json")
	s, err := New(path)
	require.NoError(t, err)

	return s, path
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func sptr(v string) *string   { return &v }
func gptr(g models.Gender) *models.Gender {
	return &g
}

func TestUserByID_NotFound(t *testing.T) {
	s, _ := newStore(t)

	_, err := s.UserByID(context.Background(), 42)
	require.ErrorIs(t, err, storage.ErrNotFoundUser)
}

// Round-trip: upsert, затем get — в точности влитые поля.
func TestUpsert_RoundTrip(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	_, err := s.Upsert(ctx, 1, storage.UserUpdate{
		WeightKG:    fptr(70),
		HeightCM:    fptr(175),
		Age:         iptr(30),
		Gender:      gptr(models.GenderMale),
		ActivityMin: iptr(60),
		City:        sptr("Riga"),
	})
	require.NoError(t, err)

	got, err := s.UserByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), got.UserID)
	require.Equal(t, 70.0, got.WeightKG)
	require.Equal(t, 175.0, got.HeightCM)
	require.Equal(t, 30, got.Age)
	require.Equal(t, models.GenderMale, got.Gender)
	require.Equal(t, 60, got.ActivityMin)
	require.Equal(t, "Riga", got.City)
}

// Частичный апдейт не трогает прочие поля.
func TestUpsert_PartialKeepsOtherFields(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	_, err := s.Upsert(ctx, 1, storage.UserUpdate{
		WeightKG: fptr(70),
		City:     sptr("Riga"),
	})
	require.NoError(t, err)

	got, err := s.Upsert(ctx, 1, storage.UserUpdate{WeightKG: fptr(72)})
	require.NoError(t, err)
	require.Equal(t, 72.0, got.WeightKG)
	require.Equal(t, "Riga", got.City)
}

func TestIncrementCounter_LazyCreate(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	got, err := s.IncrementCounter(ctx, 7, storage.CounterWaterLogged, 250)
	require.NoError(t, err)
	require.Equal(t, 250.0, got.WaterLoggedML)
	require.Equal(t, int64(7), got.UserID)
}

func TestIncrementCounter_AllCounters(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	_, err := s.IncrementCounter(ctx, 1, storage.CounterWaterLogged, 300)
	require.NoError(t, err)
	_, err = s.IncrementCounter(ctx, 1, storage.CounterCaloriesLogged, 450.5)
	require.NoError(t, err)
	got, err := s.IncrementCounter(ctx, 1, storage.CounterCaloriesBurned, 120)
	require.NoError(t, err)

	require.Equal(t, 300.0, got.WaterLoggedML)
	require.Equal(t, 450.5, got.CaloriesLoggedKcal)
	require.Equal(t, 120.0, got.CaloriesBurnedKcal)
}

// delta <= 0 отклоняется, счётчик не меняется.
func TestIncrementCounter_RejectsNonPositiveDelta(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	_, err := s.IncrementCounter(ctx, 1, storage.CounterWaterLogged, 500)
	require.NoError(t, err)

	_, err = s.IncrementCounter(ctx, 1, storage.CounterWaterLogged, 0)
	require.ErrorIs(t, err, storage.ErrNonPositiveDelta)

	_, err = s.IncrementCounter(ctx, 1, storage.CounterWaterLogged, -100)
	require.ErrorIs(t, err, storage.ErrNonPositiveDelta)

	got, err := s.UserByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 500.0, got.WaterLoggedML)
}

func TestIncrementCounter_UnknownCounter(t *testing.T) {
	s, _ := newStore(t)

	_, err := s.IncrementCounter(context.Background(), 1, storage.Counter("steps"), 1)
	require.Error(t, err)
}

// Каждая мутация долговечна: новый стор над тем же файлом видит всё.
// Тренировка применяется одной мутацией: счётчик сожжённого и норма воды
// меняются вместе и вместе переживают переоткрытие файла.
func TestApplyWorkout_BothFieldsTogether(t *testing.T) {
	s, path := newStore(t)
	ctx := context.Background()

	_, err := s.Upsert(ctx, 1, storage.UserUpdate{WaterNormML: fptr(2500)})
	require.NoError(t, err)

	got, err := s.ApplyWorkout(ctx, 1, 300, 250)
	require.NoError(t, err)
	require.Equal(t, 300.0, got.CaloriesBurnedKcal)
	require.Equal(t, 2750.0, got.WaterNormML)

	// Повторная тренировка накапливает оба поля.
	got, err = s.ApplyWorkout(ctx, 1, 120, 100)
	require.NoError(t, err)
	require.Equal(t, 420.0, got.CaloriesBurnedKcal)
	require.Equal(t, 2850.0, got.WaterNormML)

	reopened, err := New(path)
	require.NoError(t, err)

	persisted, err := reopened.UserByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 420.0, persisted.CaloriesBurnedKcal)
	require.Equal(t, 2850.0, persisted.WaterNormML)
}

func TestApplyWorkout_LazyCreate(t *testing.T) {
	s, _ := newStore(t)

	got, err := s.ApplyWorkout(context.Background(), 9, 200, 150)
	require.NoError(t, err)
	require.Equal(t, int64(9), got.UserID)
	require.Equal(t, 200.0, got.CaloriesBurnedKcal)
	require.Equal(t, 150.0, got.WaterNormML)
}

func TestApplyWorkout_RejectsBadDeltas(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	_, err := s.Upsert(ctx, 1, storage.UserUpdate{WaterNormML: fptr(2500)})
	require.NoError(t, err)

	_, err = s.ApplyWorkout(ctx, 1, 0, 250)
	require.ErrorIs(t, err, storage.ErrNonPositiveDelta)

	_, err = s.ApplyWorkout(ctx, 1, 300, -1)
	require.ErrorIs(t, err, storage.ErrNonPositiveDelta)

	// Запись не изменилась.
	got, err := s.UserByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 0.0, got.CaloriesBurnedKcal)
	require.Equal(t, 2500.0, got.WaterNormML)
}

func TestDurability_Reopen(t *testing.T) {
	s, path := newStore(t)
	ctx := context.Background()

	_, err := s.Upsert(ctx, 10, storage.UserUpdate{
		WeightKG:    fptr(80),
		Gender:      gptr(models.GenderFemale),
		WaterNormML: fptr(2400),
	})
	require.NoError(t, err)
	_, err = s.IncrementCounter(ctx, 10, storage.CounterWaterLogged, 350)
	require.NoError(t, err)

	reopened, err := New(path)
	require.NoError(t, err)

	got, err := reopened.UserByID(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, int64(10), got.UserID)
	require.Equal(t, 80.0, got.WeightKG)
	require.Equal(t, models.GenderFemale, got.Gender)
	require.Equal(t, 2400.0, got.WaterNormML)
	require.Equal(t, 350.0, got.WaterLoggedML)
}

// UserByID возвращает копию: мутации снаружи не влияют на стор.
func TestUserByID_ReturnsCopy(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	_, err := s.Upsert(ctx, 1, storage.UserUpdate{WeightKG: fptr(70)})
	require.NoError(t, err)

	first, err := s.UserByID(ctx, 1)
	require.NoError(t, err)
	first.WeightKG = 999

	second, err := s.UserByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 70.0, second.WeightKG)
}

// Конкурентные инкременты по одному ключу не теряют обновлений.
func TestIncrementCounter_Concurrent(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	const workers = 8
	const perWorker = 10

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				if _, err := s.IncrementCounter(ctx, 1, storage.CounterWaterLogged, 10); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	got, err := s.UserByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, float64(workers*perWorker*10), got.WaterLoggedML)
}

func TestUserIDs(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	ids, err := s.UserIDs(ctx)
	require.NoError(t, err)
	require.Empty(t, ids)

	_, err = s.Upsert(ctx, 1, storage.UserUpdate{WeightKG: fptr(70)})
	require.NoError(t, err)
	_, err = s.Upsert(ctx, 2, storage.UserUpdate{WeightKG: fptr(80)})
	require.NoError(t, err)

	ids, err = s.UserIDs(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []int64{1, 2}, ids)
}
