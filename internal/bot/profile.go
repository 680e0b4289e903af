package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/pribylovaa/go-health-bot/internal/models"
	"github.com/pribylovaa/go-health-bot/internal/service"
	"github.com/pribylovaa/go-health-bot/pkg/locales"
)

// startProfile начинает пошаговую настройку профиля с чистого черновика.
func (b *Bot) startProfile(ctx context.Context, chatID, userID int64) {
	sess := b.sessions.get(userID)
	sess.profile = service.SaveProfileInput{UserID: userID}
	sess.state = stateProfileWeight

	b.send(ctx, chatID, locales.MsgAskWeight)
}

// handleProfileStep обрабатывает очередной шаг настройки профиля.
// Некорректный ввод не двигает диалог: переспрашиваем тот же шаг.
func (b *Bot) handleProfileStep(ctx context.Context, chatID, userID int64, sess *session, text string) {
	switch sess.state {
	case stateProfileWeight:
		weight, ok := parsePositiveFloat(text)
		if !ok {
			b.send(ctx, chatID, locales.MsgBadWeight)
			return
		}

		sess.profile.WeightKG = weight
		sess.state = stateProfileHeight
		b.send(ctx, chatID, locales.MsgAskHeight)

	case stateProfileHeight:
		height, ok := parsePositiveFloat(text)
		if !ok {
			b.send(ctx, chatID, locales.MsgBadHeight)
			return
		}

		sess.profile.HeightCM = height
		sess.state = stateProfileAge
		b.send(ctx, chatID, locales.MsgAskAge)

	case stateProfileAge:
		age, ok := parsePositiveInt(text)
		if !ok {
			b.send(ctx, chatID, locales.MsgBadAge)
			return
		}

		sess.profile.Age = age
		sess.state = stateProfileGender
		b.sendWithMarkup(ctx, chatID, locales.MsgAskGender, genderKeyboard())

	case stateProfileGender:
		var gender models.Gender
		switch strings.ToLower(strings.TrimSpace(text)) {
		case strings.ToLower(locales.BtnGenderMale):
			gender = models.GenderMale
		case strings.ToLower(locales.BtnGenderFemale):
			gender = models.GenderFemale
		default:
			b.sendWithMarkup(ctx, chatID, locales.MsgAskGenderAgain, genderKeyboard())
			return
		}

		sess.profile.Gender = gender
		sess.state = stateProfileActivity
		b.sendWithMarkup(ctx, chatID, locales.MsgAskActivity, tgbotapi.NewRemoveKeyboard(true))

	case stateProfileActivity:
		activity, ok := parseNonNegativeInt(text)
		if !ok || activity > 480 {
			b.send(ctx, chatID, locales.MsgBadActivity)
			return
		}

		sess.profile.ActivityMin = activity
		sess.state = stateProfileCity
		b.send(ctx, chatID, locales.MsgAskCity)

	case stateProfileCity:
		city := strings.TrimSpace(text)
		if city == "" {
			b.send(ctx, chatID, locales.MsgAskCity)
			return
		}

		sess.profile.City = city
		b.finishProfile(ctx, chatID, userID, sess)
	}
}

// finishProfile сохраняет собранный профиль. При ошибке внешнего поиска
// города диалог остаётся на шаге города, чтобы пользователь поправил ввод.
func (b *Bot) finishProfile(ctx context.Context, chatID, userID int64, sess *session) {
	user, err := b.svc.SaveProfile(ctx, sess.profile)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExternalLookup):
			b.send(ctx, chatID, fmt.Sprintf(locales.MsgCityNotFound, sess.profile.City))
			sess.state = stateProfileCity
		default:
			b.send(ctx, chatID, locales.MsgInternalError)
			b.sessions.reset(userID)
		}

		return
	}

	b.sessions.reset(userID)
	b.send(ctx, chatID, fmt.Sprintf(locales.MsgProfileSaved,
		user.WeightKG,
		user.HeightCM,
		user.Age,
		user.ActivityMin,
		user.City,
		user.WaterNormML,
		user.CaloriesNormKcal,
	))
}

func genderKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(locales.BtnGenderMale),
			tgbotapi.NewKeyboardButton(locales.BtnGenderFemale),
		),
	)
	kb.OneTimeKeyboard = true
	kb.ResizeKeyboard = true

	return kb
}
