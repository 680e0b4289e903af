// locales содержит все пользовательские тексты бота.
//
// Шаблоны с плейсхолдерами форматируются через fmt.Sprintf на стороне
// вызывающего кода (internal/bot).
package locales

const (
	// Команды /start и /help.
	MsgStart = "Привет! Я помогу вам рассчитать дневные нормы воды и калорий. Введите /help для списка команд."
	MsgHelp  = "Доступные команды:\n" +
		"/set_profile - Настройка профиля\n" +
		"/log_water - Логировать воду\n" +
		"/log_food - Логировать еду\n" +
		"/log_workout - Логировать тренировку\n" +
		"/progress - Проверить прогресс"
	MsgUnknownCommand = "Неизвестная команда. Введите /help для списка команд."

	// Настройка профиля (/set_profile).
	MsgAskWeight      = "Введите ваш вес (в кг):"
	MsgAskHeight      = "Введите ваш рост (в см):"
	MsgAskAge         = "Введите ваш возраст:"
	MsgAskGender      = "Укажите ваш пол:"
	MsgAskGenderAgain = "Пожалуйста, выберите ваш пол:"
	MsgAskActivity    = "Сколько минут активности у вас в день?"
	MsgAskCity        = "В каком городе вы находитесь?"

	MsgBadWeight   = "Пожалуйста, введите корректное значение веса (число больше 0)."
	MsgBadHeight   = "Пожалуйста, введите корректное значение роста (число больше 0)."
	MsgBadAge      = "Пожалуйста, введите корректное значение возраста (целое число больше 0)."
	MsgBadActivity = "Пожалуйста, введите корректное значение активности (целое число 0 или больше)."

	BtnGenderMale   = "Мужской"
	BtnGenderFemale = "Женский"

	// %s — город.
	MsgCityNotFound = "Не удалось найти информацию о городе '%s'. Пожалуйста, проверьте название и попробуйте снова."

	// Вес, рост, возраст, активность, город, норма воды, норма калорий.
	MsgProfileSaved = "Ваш профиль настроен:\n" +
		"Вес: %g кг\n" +
		"Рост: %g см\n" +
		"Возраст: %d лет\n" +
		"Активность: %d минут в день\n" +
		"Город: %s\n" +
		"Дневная норма воды: %.0f мл\n" +
		"Дневная норма калорий: %.0f Ккал"

	// Логирование воды (/log_water).
	MsgAskWaterAmount = "Введите количество выпитой воды в миллилитрах:"
	MsgBadWaterAmount = "Введите положительное число миллилитров."
	// %d — добавлено, %.0f — всего за день.
	MsgWaterLogged = "Вы добавили %d мл воды. Всего сегодня: %.0f мл."

	// Логирование еды (/log_food).
	MsgAskProduct       = "Введите название продукта:"
	MsgFoodNotFound     = "Не удалось найти продукт. Попробуйте другое название."
	MsgFoodLookupFailed = "Ошибка при поиске продукта. Попробуйте позже."
	MsgFoodChoose       = "Найденные продукты:\n%s\nВыберите номер продукта:"
	MsgFoodBadChoice    = "Неверный выбор. Попробуйте снова."
	// %s — название выбранного продукта.
	MsgAskQuantity = "Вы выбрали: %s. Введите количество в граммах:"
	MsgBadQuantity = "Введите корректное количество (число больше нуля)."
	// Продукт, граммы, калорийность порции, съедено за день, норма.
	MsgFoodLogged = "Продукт: %s\n" +
		"Количество: %g г\n" +
		"Калорийность: %.2f ккал\n\n" +
		"Общее количество калорий за день: %.0f / %.0f ккал."

	// Логирование тренировок (/log_workout).
	MsgAskWorkout        = "Введите тип и длительность тренировки:"
	MsgBadWorkoutFormat  = "Введите команду в формате: <тип тренировки> <время (мин)>"
	MsgBadWorkoutMinutes = "Укажите корректную длительность тренировки (в минутах)."
	// %s — список известных типов.
	MsgUnknownWorkout = "Неизвестный тип тренировки. Доступные типы: %s."
	// Тип, минуты, сожжено, доп. вода, всего сожжено, обновлённая норма воды.
	MsgWorkoutLogged = "🏋️‍♂️ Тренировка: %s (%d мин)\n" +
		"Сожжено: %.0f ккал\n" +
		"Дополнительно выпейте воды: %.0f мл\n\n" +
		"Общее количество сожженых калорий: %.0f ккал\n" +
		"Обновлённая норма воды: %.0f мл"

	// Прогресс (/progress).
	MsgNoProfile = "Ваш профиль не найден. Сначала настройте его с помощью команды /set_profile."
	// Выпито/норма/осталось, съедено/цель, сожжено, баланс.
	MsgProgress = "Ваш текущий прогресс:\n\n" +
		"💧 Вода:\n" +
		"Выпито: %.0f мл из %.0f мл\n" +
		"Осталось: %.0f мл\n\n" +
		"🔥 Калории:\n" +
		"Потреблено: %.0f ккал из %.0f ккал\n" +
		"Сожжено тренировками: %.0f ккал\n" +
		"Баланс: %.0f ккал"

	// Общие ошибки.
	MsgInternalError = "Что-то пошло не так. Попробуйте ещё раз."
)
