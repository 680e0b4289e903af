package bot

import (
	"sync"

	"github.com/pribylovaa/go-health-bot/internal/clients/food"
	"github.com/pribylovaa/go-health-bot/internal/service"
)

// stateID — шаг диалога, на котором находится пользователь.
// stateIdle означает, что бот ждёт команду.
type stateID int

const (
	stateIdle stateID = iota

	// Настройка профиля: вес -> рост -> возраст -> пол -> активность -> город.
	stateProfileWeight
	stateProfileHeight
	stateProfileAge
	stateProfileGender
	stateProfileActivity
	stateProfileCity

	// Логирование воды: одно число в мл.
	stateWaterAmount

	// Логирование еды: продукт -> выбор из списка -> граммы.
	stateFoodProduct
	stateFoodChoice
	stateFoodQuantity

	// Логирование тренировки: "<тип> <минуты>" одним сообщением.
	stateWorkout
)

// session — диалоговое состояние одного пользователя: текущий шаг
// и накопленные на промежуточных шагах данные.
type session struct {
	state stateID

	// Черновик профиля, заполняется по шагам stateProfile*.
	profile service.SaveProfileInput

	// Выдача поиска еды и выбранный продукт.
	foodOptions []food.Product
	foodChoice  food.Product
}

// sessions — диалоговые состояния всех пользователей.
type sessions struct {
	mu     sync.Mutex
	byUser map[int64]*session
}

func newSessions() *sessions {
	return &sessions{byUser: make(map[int64]*session)}
}

// get возвращает сессию пользователя, лениво создавая её в stateIdle.
func (s *sessions) get(userID int64) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byUser[userID]
	if !ok {
		sess = &session{}
		s.byUser[userID] = sess
	}

	return sess
}

// reset сбрасывает диалог пользователя в stateIdle и очищает накопленное.
func (s *sessions) reset(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byUser, userID)
}
