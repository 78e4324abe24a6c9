package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CSRFCookieName is the cookie carrying the per-session anti-forgery token.
const CSRFCookieName = "csrf_token"

// CSRFTokenField is the form field that must echo the cookie value.
const CSRFTokenField = "csrf_token"

// invalidSubmissionMessage is deliberately generic: a mismatched token must
// not reveal anything about the stored token state.
const invalidSubmissionMessage = "Invalid form submission. Please try again."

// GenerateCSRFToken returns a fresh 256-bit token, hex encoded.
func GenerateCSRFToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// CSRFMiddleware rejects state-changing submissions whose csrf_token form
// field does not exactly match the session's token cookie. It runs before
// validation, so a forged request never reaches the database.
func CSRFMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(CSRFCookieName)
		submitted := c.PostForm(CSRFTokenField)

		if err != nil || cookie == "" || submitted == "" ||
			subtle.ConstantTimeCompare([]byte(cookie), []byte(submitted)) != 1 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": invalidSubmissionMessage})
			return
		}

		c.Next()
	}
}
