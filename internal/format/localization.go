package format

import "golang.org/x/text/language"

// Localization manages display text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyBackersComposite = "backers_composite"
	KeyToGo             = "to_go"
	KeyUnitDay          = "unit_day"
	KeyUnitDays         = "unit_days"
	KeyUnitHour         = "unit_hour"
	KeyUnitHours        = "unit_hours"
	KeyUnitMin          = "unit_min"
	KeyUnitMins         = "unit_mins"
	KeyStateSuccessful  = "state_successful"
	KeyStateFailed      = "state_failed"
	KeyStateCanceled    = "state_canceled"
	KeyStateSuspended   = "state_suspended"
	KeySocialOne        = "social_one_backer"
	KeySocialTwo        = "social_two_backers"
	KeySocialMany       = "social_many_backers"
	KeyMetadataBacking  = "metadata_backing"
	KeyMetadataPotd     = "metadata_potd"
	KeyMetadataFeatured = "metadata_featured"
	KeyLogIn            = "log_in"
	KeyLogOut           = "log_out"
	KeyShare            = "share"
	KeyLoginPromptTitle = "login_prompt_title"
	KeyLoginPromptBody  = "login_prompt_body"
	KeySaveAlertTitle   = "save_alert_title"
	KeySaveAlertBody    = "save_alert_body"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// LanguageTag returns the x/text language tag for the current language,
// used for localized number formatting
func (l *Localization) LanguageTag() language.Tag {
	switch l.currentLanguage {
	case "ru":
		return language.Russian
	case "pt":
		return language.Portuguese
	default:
		return language.English
	}
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Discovery",
		KeyBackersComposite: "%d\nbackers",
		KeyToGo:             "%s to go",
		KeyUnitDay:          "day",
		KeyUnitDays:         "days",
		KeyUnitHour:         "hour",
		KeyUnitHours:        "hours",
		KeyUnitMin:          "min",
		KeyUnitMins:         "mins",
		KeyStateSuccessful:  "Funding successful",
		KeyStateFailed:      "Funding unsuccessful",
		KeyStateCanceled:    "Project cancelled",
		KeyStateSuspended:   "Funding suspended",
		KeySocialOne:        "%s is a backer",
		KeySocialTwo:        "%s and %s are backers",
		KeySocialMany:       "%s, %s, and %d others are backers",
		KeyMetadataBacking:  "You're a backer!",
		KeyMetadataPotd:     "Project of the Day!",
		KeyMetadataFeatured: "Featured in %s",
		KeyLogIn:            "Log in",
		KeyLogOut:           "Log out",
		KeyShare:            "Share",
		KeyLoginPromptTitle: "Log in to save",
		KeyLoginPromptBody:  "Log in to save this project and we'll remind you before it ends.",
		KeySaveAlertTitle:   "Project saved",
		KeySaveAlertBody:    "We'll remind you 48 hours before this project ends.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Обзор",
		KeyBackersComposite: "%d\nспонсоров",
		KeyToGo:             "осталось %s",
		KeyUnitDay:          "день",
		KeyUnitDays:         "дней",
		KeyUnitHour:         "час",
		KeyUnitHours:        "часов",
		KeyUnitMin:          "мин",
		KeyUnitMins:         "мин",
		KeyStateSuccessful:  "Сбор средств завершён успешно",
		KeyStateFailed:      "Сбор средств не удался",
		KeyStateCanceled:    "Проект отменён",
		KeyStateSuspended:   "Сбор средств приостановлен",
		KeySocialOne:        "%s — спонсор",
		KeySocialTwo:        "%s и %s — спонсоры",
		KeySocialMany:       "%s, %s и ещё %d — спонсоры",
		KeyMetadataBacking:  "Вы спонсор!",
		KeyMetadataPotd:     "Проект дня!",
		KeyMetadataFeatured: "Рекомендовано в %s",
		KeyLogIn:            "Войти",
		KeyLogOut:           "Выйти",
		KeyShare:            "Поделиться",
		KeyLoginPromptTitle: "Войдите, чтобы сохранить",
		KeyLoginPromptBody:  "Войдите, чтобы сохранить проект, и мы напомним вам перед его завершением.",
		KeySaveAlertTitle:   "Проект сохранён",
		KeySaveAlertBody:    "Мы напомним вам за 48 часов до завершения проекта.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Descoberta",
		KeyBackersComposite: "%d\napoiadores",
		KeyToGo:             "faltam %s",
		KeyUnitDay:          "dia",
		KeyUnitDays:         "dias",
		KeyUnitHour:         "hora",
		KeyUnitHours:        "horas",
		KeyUnitMin:          "min",
		KeyUnitMins:         "mins",
		KeyStateSuccessful:  "Financiamento bem-sucedido",
		KeyStateFailed:      "Financiamento malsucedido",
		KeyStateCanceled:    "Projeto cancelado",
		KeyStateSuspended:   "Financiamento suspenso",
		KeySocialOne:        "%s é apoiador",
		KeySocialTwo:        "%s e %s são apoiadores",
		KeySocialMany:       "%s, %s e mais %d são apoiadores",
		KeyMetadataBacking:  "Você é um apoiador!",
		KeyMetadataPotd:     "Projeto do Dia!",
		KeyMetadataFeatured: "Destaque em %s",
		KeyLogIn:            "Entrar",
		KeyLogOut:           "Sair",
		KeyShare:            "Compartilhar",
		KeyLoginPromptTitle: "Entre para salvar",
		KeyLoginPromptBody:  "Entre para salvar este projeto e avisaremos antes de ele terminar.",
		KeySaveAlertTitle:   "Projeto salvo",
		KeySaveAlertBody:    "Avisaremos 48 horas antes do fim deste projeto.",
	}
}
