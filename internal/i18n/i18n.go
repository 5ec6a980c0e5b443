// Package i18n provides internationalization support for the packing planner.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: defaultMessages,
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// Translatef translates key and formats the result with args.
func (t *Translator) Translatef(key, locale string, args ...interface{}) string {
	return fmt.Sprintf(t.Translate(key, locale), args...)
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := defaultMessages[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// defaultMessages holds the built-in translations per locale.
var defaultMessages = map[string]map[string]string{
	"en": {
		"error.invalid_request":        "Invalid request",
		"error.invalid_request_body":   "Invalid request body",
		"error.internal_error":         "An unexpected error occurred",
		"error.unauthorized":           "Unauthorized",
		"error.api_key_required":       "API key is required",
		"error.invalid_api_key":        "Invalid API key",
		"error.not_found":              "Not found",
		"error.rate_limit_exceeded":    "Too many requests, please try again later",
		"error.conflict":               "Conflict",
		"error.timeout":                "Request timed out",
		"error.session_not_found":      "Packing session not found",
		"error.box_type_not_found":     "Box type not found",
		"error.unknown_sku":            "SKU is not part of this shipment",
		"error.unknown_field":          "Unknown field",
		"error.session_saving":         "Packing is being saved, edits are locked",
		"error.session_finished":       "Packing session is no longer editable",
		"error.validation_failed":      "Please correct critical errors before saving.",
		"error.save_failed":            "Error saving packing: %s",
		"error.upstream_unavailable":   "Shipments service is temporarily unavailable",
		"error.idempotency_mismatch":   "Idempotency key was already used for a different request",
		"success.session_opened":       "Packing session opened",
		"success.packing_saved":        "Packing saved successfully",
	},
	"pt": {
		"error.invalid_request":        "Requisição inválida",
		"error.invalid_request_body":   "Corpo da requisição inválido",
		"error.internal_error":         "Ocorreu um erro inesperado",
		"error.unauthorized":           "Não autorizado",
		"error.api_key_required":       "Chave de API é obrigatória",
		"error.invalid_api_key":        "Chave de API inválida",
		"error.not_found":              "Não encontrado",
		"error.rate_limit_exceeded":    "Muitas requisições, tente novamente mais tarde",
		"error.conflict":               "Conflito",
		"error.timeout":                "Tempo da requisição esgotado",
		"error.session_not_found":      "Sessão de embalagem não encontrada",
		"error.box_type_not_found":     "Tipo de caixa não encontrado",
		"error.unknown_sku":            "SKU não faz parte desta remessa",
		"error.unknown_field":          "Campo desconhecido",
		"error.session_saving":         "A embalagem está sendo salva, edições bloqueadas",
		"error.session_finished":       "A sessão de embalagem não pode mais ser editada",
		"error.validation_failed":      "Corrija os erros críticos antes de salvar.",
		"error.save_failed":            "Erro ao salvar embalagem: %s",
		"error.upstream_unavailable":   "Serviço de remessas temporariamente indisponível",
		"error.idempotency_mismatch":   "Chave de idempotência já usada para outra requisição",
		"success.session_opened":       "Sessão de embalagem aberta",
		"success.packing_saved":        "Embalagem salva com sucesso",
	},
	"nl": {
		"error.invalid_request":        "Ongeldig verzoek",
		"error.invalid_request_body":   "Ongeldige aanvraag body",
		"error.internal_error":         "Er is een onverwachte fout opgetreden",
		"error.unauthorized":           "Niet geautoriseerd",
		"error.api_key_required":       "API-sleutel is vereist",
		"error.invalid_api_key":        "Ongeldige API-sleutel",
		"error.not_found":              "Niet gevonden",
		"error.rate_limit_exceeded":    "Te veel verzoeken, probeer het later opnieuw",
		"error.conflict":               "Conflict",
		"error.timeout":                "Verzoek is verlopen",
		"error.session_not_found":      "Verpakkingssessie niet gevonden",
		"error.box_type_not_found":     "Doostype niet gevonden",
		"error.unknown_sku":            "SKU hoort niet bij deze zending",
		"error.unknown_field":          "Onbekend veld",
		"error.session_saving":         "Verpakking wordt opgeslagen, wijzigingen zijn vergrendeld",
		"error.session_finished":       "Verpakkingssessie kan niet meer worden bewerkt",
		"error.validation_failed":      "Corrigeer de kritieke fouten voordat u opslaat.",
		"error.save_failed":            "Fout bij het opslaan van de verpakking: %s",
		"error.upstream_unavailable":   "Zendingendienst is tijdelijk niet beschikbaar",
		"error.idempotency_mismatch":   "Idempotentiesleutel is al gebruikt voor een ander verzoek",
		"success.session_opened":       "Verpakkingssessie geopend",
		"success.packing_saved":        "Verpakking succesvol opgeslagen",
	},
}
