package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pack-planner/internal/domain/dto"
	"github.com/guttosm/pack-planner/internal/i18n"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
)

// APIKeyAuth returns a middleware that validates API keys.
// It checks the X-API-Key header first, then the api_key query parameter.
// Authentication is disabled when validKeys is empty.
func APIKeyAuth(validKeys []string) gin.HandlerFunc {
	keys := make([][]byte, 0, len(validKeys))
	for _, k := range validKeys {
		if k != "" {
			keys = append(keys, []byte(k))
		}
	}

	return func(c *gin.Context) {
		if len(keys) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}

		msgKey := ""
		switch {
		case key == "":
			msgKey = i18n.ErrKeyAPIKeyRequired
		case !matchesAny(keys, []byte(key)):
			msgKey = i18n.ErrKeyInvalidAPIKey
		}

		if msgKey != "" {
			locale := i18n.GetLocale(c)
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, i18n.GetTranslator().Translate(msgKey, locale)).
				WithRequestID(GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		c.Next()
	}
}

func matchesAny(keys [][]byte, candidate []byte) bool {
	found := 0
	for _, k := range keys {
		found |= subtle.ConstantTimeCompare(k, candidate)
	}
	return found == 1
}
