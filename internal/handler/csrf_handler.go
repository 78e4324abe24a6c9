package handler

import (
	"net/http"

	"gamereviews/backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// IssueCSRFToken godoc
// @Summary      Issue an anti-forgery token
// @Description  Generates a fresh CSRF token, sets it as a cookie and returns it for embedding in the submission form.
// @Tags         csrf
// @Produce      json
// @Success      200 {object} map[string]string "{"csrf_token": "..."}"
// @Failure      500 {object} ErrorResponse
// @Router       /csrf [get]
func IssueCSRFToken(c *gin.Context) {
	token, err := auth.GenerateCSRFToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	// Session-scoped cookie; the submission must echo it in the csrf_token field.
	c.SetCookie(auth.CSRFCookieName, token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"csrf_token": token})
}
