package middleware

import (
	"crypto/subtle"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"cafeapi/internal/pkg/response"
)

const (
	apiKeyParam      = "api-key"
	msgNotAllowed    = "Sorry, that's not allowed. Make sure you have the correct api_key."
	msgNotConfigured = "API key is not configured."
)

// APIKey guards a route with the api-key query parameter. When hash is set
// the key is checked with bcrypt, otherwise it is compared with key.
func APIKey(key, hash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" && hash == "" {
			logAuthFailure(c, http.StatusInternalServerError, "key_not_configured")
			response.ErrorMessage(c, http.StatusInternalServerError, msgNotConfigured)
			c.Abort()
			return
		}

		given := c.Query(apiKeyParam)
		if given == "" {
			logAuthFailure(c, http.StatusForbidden, "missing_key")
			response.ErrorMessage(c, http.StatusForbidden, msgNotAllowed)
			c.Abort()
			return
		}

		if !keyMatches(given, key, hash) {
			logAuthFailure(c, http.StatusForbidden, "invalid_key")
			response.ErrorMessage(c, http.StatusForbidden, msgNotAllowed)
			c.Abort()
			return
		}

		c.Next()
	}
}

func keyMatches(given, key, hash string) bool {
	if hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(given), []byte(key)) == 1
}

func logAuthFailure(c *gin.Context, status int, reason string) {
	log.Printf("api_key_auth status=%d method=%s path=%s request_id=%s reason=%s",
		status, c.Request.Method, c.Request.URL.Path, RequestIDFrom(c), reason)
}
