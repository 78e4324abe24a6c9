package handler

import (
	"log"
	"net/http"

	"gamereviews/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// GameHandler serves the game name list used by selection inputs.
type GameHandler struct {
	store *store.ReviewStore
}

// NewGameHandler creates a GameHandler backed by the given store.
func NewGameHandler(s *store.ReviewStore) *GameHandler {
	return &GameHandler{store: s}
}

// GetGameNames godoc
// @Summary      List game names
// @Description  Returns every distinct game name, alphabetically ascending, for dropdowns.
// @Tags         games
// @Produce      json
// @Success      200 {object} map[string][]string "{"games": [...]}"
// @Router       /games [get]
func (h *GameHandler) GetGameNames(c *gin.Context) {
	names, err := h.store.DistinctGameNames()
	if err != nil {
		// Degraded, non-fatal: the dropdown is just empty.
		log.Printf("Error fetching games: %v", err)
		names = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"games": names})
}
