package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/pribylovaa/go-health-bot/internal/clients/food"
	"github.com/pribylovaa/go-health-bot/internal/norms"
	"github.com/pribylovaa/go-health-bot/internal/service"
	"github.com/pribylovaa/go-health-bot/pkg/locales"
)

// handleWaterAmount обрабатывает введённое количество воды в мл.
func (b *Bot) handleWaterAmount(ctx context.Context, chatID, userID int64, text string) {
	amount, ok := parsePositiveInt(text)
	if !ok {
		b.send(ctx, chatID, locales.MsgBadWaterAmount)
		return
	}

	user, err := b.svc.LogWater(ctx, userID, float64(amount))
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			b.send(ctx, chatID, locales.MsgBadWaterAmount)
			return
		}

		b.send(ctx, chatID, locales.MsgInternalError)
		b.sessions.reset(userID)

		return
	}

	b.sessions.reset(userID)
	b.send(ctx, chatID, fmt.Sprintf(locales.MsgWaterLogged, amount, user.WaterLoggedML))
}

// handleFoodProduct ищет продукт по названию и предлагает выбор из выдачи.
func (b *Bot) handleFoodProduct(ctx context.Context, chatID, userID int64, sess *session, text string) {
	query := strings.TrimSpace(text)
	if query == "" {
		b.send(ctx, chatID, locales.MsgAskProduct)
		return
	}

	products, err := b.food.Search(ctx, query)
	if err != nil {
		if errors.Is(err, food.ErrNoMatches) {
			b.send(ctx, chatID, locales.MsgFoodNotFound)
		} else {
			b.send(ctx, chatID, locales.MsgFoodLookupFailed)
		}
		b.sessions.reset(userID)

		return
	}

	sess.foodOptions = products
	sess.state = stateFoodChoice

	var (
		lines []string
		rows  [][]tgbotapi.InlineKeyboardButton
	)
	for i, p := range products {
		lines = append(lines, fmt.Sprintf("%d. %s — %.0f ккал/100 г", i+1, p.Name, p.KcalPer100Gram))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%d. %s", i+1, p.Name), strconv.Itoa(i+1)),
		))
	}

	b.sendWithMarkup(ctx, chatID,
		fmt.Sprintf(locales.MsgFoodChoose, strings.Join(lines, "\n")),
		tgbotapi.NewInlineKeyboardMarkup(rows...),
	)
}

// handleFoodChoice обрабатывает выбор продукта по номеру из inline-кнопки.
func (b *Bot) handleFoodChoice(ctx context.Context, chatID, userID int64, sess *session, data string) {
	idx, err := strconv.Atoi(data)
	if err != nil || idx < 1 || idx > len(sess.foodOptions) {
		b.send(ctx, chatID, locales.MsgFoodBadChoice)
		return
	}

	sess.foodChoice = sess.foodOptions[idx-1]
	sess.state = stateFoodQuantity

	b.send(ctx, chatID, fmt.Sprintf(locales.MsgAskQuantity, sess.foodChoice.Name))
}

// handleFoodQuantity обрабатывает граммы выбранного продукта.
func (b *Bot) handleFoodQuantity(ctx context.Context, chatID, userID int64, sess *session, text string) {
	grams, ok := parsePositiveFloat(text)
	if !ok {
		b.send(ctx, chatID, locales.MsgBadQuantity)
		return
	}

	portion, user, err := b.svc.LogFood(ctx, userID, sess.foodChoice.KcalPer100Gram, grams)
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			b.send(ctx, chatID, locales.MsgBadQuantity)
			return
		}

		b.send(ctx, chatID, locales.MsgInternalError)
		b.sessions.reset(userID)

		return
	}

	name := sess.foodChoice.Name
	b.sessions.reset(userID)
	b.send(ctx, chatID, fmt.Sprintf(locales.MsgFoodLogged,
		name, grams, portion, user.CaloriesLoggedKcal, user.CaloriesNormKcal))
}

// handleWorkout обрабатывает тренировку, введённую одним сообщением
// в формате "<тип> <минуты>".
func (b *Bot) handleWorkout(ctx context.Context, chatID, userID int64, text string) {
	workoutType, minutes, ok := parseWorkoutInput(text)
	if !ok {
		b.send(ctx, chatID, locales.MsgBadWorkoutFormat)
		return
	}

	result, err := b.svc.LogWorkout(ctx, userID, workoutType, minutes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidArgument):
			b.send(ctx, chatID, locales.MsgBadWorkoutMinutes)
		case errors.Is(err, service.ErrUnknownWorkout):
			b.send(ctx, chatID, fmt.Sprintf(locales.MsgUnknownWorkout,
				strings.Join(norms.WorkoutTypes(), ", ")))
		default:
			b.send(ctx, chatID, locales.MsgInternalError)
			b.sessions.reset(userID)
		}

		return
	}

	b.sessions.reset(userID)
	b.send(ctx, chatID, fmt.Sprintf(locales.MsgWorkoutLogged,
		capitalize(workoutType),
		minutes,
		result.BurnedKcal,
		result.AdditionalWaterML,
		result.TotalBurnedKcal,
		result.WaterNormML,
	))
}

// handleProgress показывает дневной прогресс по воде и калориям.
func (b *Bot) handleProgress(ctx context.Context, chatID, userID int64) {
	report, _, err := b.svc.Progress(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			b.send(ctx, chatID, locales.MsgNoProfile)
			return
		}

		b.send(ctx, chatID, locales.MsgInternalError)

		return
	}

	b.send(ctx, chatID, fmt.Sprintf(locales.MsgProgress,
		report.WaterDrunkML,
		report.WaterTargetML,
		report.WaterBalanceML,
		report.CaloriesConsumedKcal,
		report.CaloriesTargetKcal,
		report.CaloriesBurnedKcal,
		report.CaloriesBalanceKcal,
	))
}

func parsePositiveFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return 0, false
	}

	return v, true
}

func parsePositiveInt(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return 0, false
	}

	return v, true
}

func parseNonNegativeInt(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0, false
	}

	return v, true
}

// parseWorkoutInput разбирает "<тип> <минуты>". Тип может состоять
// из нескольких слов, минуты — последнее поле.
func parseWorkoutInput(s string) (string, int, bool) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return "", 0, false
	}

	minutes, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return "", 0, false
	}

	return strings.Join(fields[:len(fields)-1], " "), minutes, true
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}

	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}
