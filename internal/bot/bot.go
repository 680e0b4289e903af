// bot реализует диалоговый Telegram-слой health-bot поверх long-polling:
// команды, пошаговые сценарии (FSM) и перевод ошибок бизнес-слоя
// в понятные пользователю сообщения.
package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/pribylovaa/go-health-bot/internal/clients/food"
	"github.com/pribylovaa/go-health-bot/internal/models"
	"github.com/pribylovaa/go-health-bot/internal/norms"
	"github.com/pribylovaa/go-health-bot/internal/service"
	"github.com/pribylovaa/go-health-bot/pkg/locales"
	"github.com/pribylovaa/go-health-bot/pkg/log"
)

// HealthService — операции бизнес-слоя, используемые ботом.
type HealthService interface {
	SaveProfile(ctx context.Context, input service.SaveProfileInput) (*models.User, error)
	LogWater(ctx context.Context, userID int64, amountML float64) (*models.User, error)
	LogFood(ctx context.Context, userID int64, kcalPer100, grams float64) (float64, *models.User, error)
	LogWorkout(ctx context.Context, userID int64, workoutType string, durationMin int) (*service.WorkoutResult, error)
	Progress(ctx context.Context, userID int64) (*norms.Report, *models.User, error)
}

// FoodSearcher — поиск продуктов по названию.
type FoodSearcher interface {
	Search(ctx context.Context, query string) ([]food.Product, error)
}

// telegramAPI — часть *tgbotapi.BotAPI, используемая ботом.
type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

// Bot — Telegram-бот health-bot.
type Bot struct {
	api         telegramAPI
	svc         HealthService
	food        FoodSearcher
	sessions    *sessions
	pollTimeout int
}

// New создаёт бота и авторизуется в Telegram Bot API.
func New(token string, svc HealthService, foodClient FoodSearcher, pollTimeoutSec int) (*Bot, error) {
	const op = "bot/bot/New"

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return newBot(api, svc, foodClient, pollTimeoutSec), nil
}

func newBot(api telegramAPI, svc HealthService, foodClient FoodSearcher, pollTimeoutSec int) *Bot {
	return &Bot{
		api:         api,
		svc:         svc,
		food:        foodClient,
		sessions:    newSessions(),
		pollTimeout: pollTimeoutSec,
	}
}

// Start запускает long-polling и обрабатывает обновления до отмены ctx.
// Обновления обрабатываются последовательно: диалоги пошаговые, а сторадж
// пишет весь файл целиком, параллелизм здесь ничего не даёт.
func (b *Bot) Start(ctx context.Context) error {
	const op = "bot/bot/Start"

	lg := log.From(ctx)
	lg.Info("bot_start", "op", op)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			lg.Info("bot_stop", "op", op)
			return nil
		case update := <-updates:
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		b.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message != nil {
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		// Любая команда обрывает текущий диалог.
		b.sessions.reset(userID)

		switch msg.Command() {
		case "start":
			b.send(ctx, chatID, locales.MsgStart)
		case "help":
			b.send(ctx, chatID, locales.MsgHelp)
		case "set_profile":
			b.startProfile(ctx, chatID, userID)
		case "log_water":
			b.sessions.get(userID).state = stateWaterAmount
			b.send(ctx, chatID, locales.MsgAskWaterAmount)
		case "log_food":
			b.sessions.get(userID).state = stateFoodProduct
			b.send(ctx, chatID, locales.MsgAskProduct)
		case "log_workout":
			b.sessions.get(userID).state = stateWorkout
			b.send(ctx, chatID, locales.MsgAskWorkout)
		case "progress":
			b.handleProgress(ctx, chatID, userID)
		default:
			b.send(ctx, chatID, locales.MsgUnknownCommand)
		}

		return
	}

	sess := b.sessions.get(userID)
	switch sess.state {
	case stateProfileWeight, stateProfileHeight, stateProfileAge,
		stateProfileGender, stateProfileActivity, stateProfileCity:
		b.handleProfileStep(ctx, chatID, userID, sess, msg.Text)
	case stateWaterAmount:
		b.handleWaterAmount(ctx, chatID, userID, msg.Text)
	case stateFoodProduct:
		b.handleFoodProduct(ctx, chatID, userID, sess, msg.Text)
	case stateFoodChoice:
		// Выбор ожидается кнопкой.
		b.send(ctx, chatID, locales.MsgFoodBadChoice)
	case stateFoodQuantity:
		b.handleFoodQuantity(ctx, chatID, userID, sess, msg.Text)
	case stateWorkout:
		b.handleWorkout(ctx, chatID, userID, msg.Text)
	default:
		b.send(ctx, chatID, locales.MsgUnknownCommand)
	}
}

func (b *Bot) handleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	// Убираем «часики» на кнопке.
	if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		log.From(ctx).Warn("callback answer failed", "err", err)
	}

	if callback.Message == nil {
		return
	}

	userID := callback.From.ID
	chatID := callback.Message.Chat.ID

	sess := b.sessions.get(userID)
	if sess.state != stateFoodChoice {
		return
	}

	b.handleFoodChoice(ctx, chatID, userID, sess, callback.Data)
}

// send отправляет текстовое сообщение; ошибку отправки только логируем —
// диалог важнее одного потерянного сообщения.
func (b *Bot) send(ctx context.Context, chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.From(ctx).Error("send failed", "chat_id", chatID, "err", err)
	}
}

func (b *Bot) sendWithMarkup(ctx context.Context, chatID int64, text string, markup interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = markup

	if _, err := b.api.Send(msg); err != nil {
		log.From(ctx).Error("send failed", "chat_id", chatID, "err", err)
	}
}
