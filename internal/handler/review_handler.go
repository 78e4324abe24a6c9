package handler

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"gamereviews/backend/internal/store"
	"gamereviews/backend/internal/validation"

	"github.com/gin-gonic/gin"
)

// ReviewHandler wires review submissions and listings through the validator
// and the review store.
type ReviewHandler struct {
	store *store.ReviewStore
}

// NewReviewHandler creates a ReviewHandler backed by the given store.
func NewReviewHandler(s *store.ReviewStore) *ReviewHandler {
	return &ReviewHandler{store: s}
}

// region --- DTOs ---

// ReviewForm mirrors the submission form. NewGame takes precedence over the
// dropdown selection; Rating stays a string so a non-numeric value produces a
// validation message instead of a bind failure.
type ReviewForm struct {
	Action   string `form:"action"`
	GameName string `form:"game_name"`
	NewGame  string `form:"new_game"`
	Review   string `form:"review"`
	Reviewer string `form:"reviewer"`
	Rating   string `form:"rating"`
}

// ReviewListResponse is the listing payload: one page of reviews, pagination
// metadata, the active filters, and the game names for the filter dropdown.
type ReviewListResponse struct {
	Data    []store.ReviewEntry `json:"data"`
	Meta    PaginationMeta      `json:"meta"`
	Filters ReviewFilters       `json:"filters"`
	Games   []string            `json:"games"`
}

// ReviewFilters echoes the filters applied to a listing.
type ReviewFilters struct {
	Game   string `json:"game"`
	Rating int    `json:"rating"`
}

// endregion

// SubmitReview godoc
// @Summary      Submit a review
// @Description  Validates and stores a new game review. The game is created on first mention.
// @Tags         reviews
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        action     formData string true  "Must be add_review"
// @Param        game_name  formData string false "Existing game name from the dropdown"
// @Param        new_game   formData string false "New game name, wins over game_name when set"
// @Param        review     formData string true  "Review text (max 1000 characters)"
// @Param        reviewer   formData string true  "Reviewer display name (letters and spaces)"
// @Param        rating     formData int    true  "Rating from 1 to 5"
// @Param        csrf_token formData string true  "Anti-forgery token issued by GET /csrf"
// @Success      201 {object} map[string]interface{} "{"message": "Review added successfully!", "review_id": 1}"
// @Failure      400 {object} ErrorResponse "Validation or token failure"
// @Failure      500 {object} ErrorResponse
// @Router       /reviews [post]
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var form ReviewForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form submission. Please try again."})
		return
	}

	if form.Action != "add_review" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form submission. Please try again."})
		return
	}

	valid, violations := validation.ValidateReview(validation.ReviewInput{
		GameName: form.GameName,
		NewGame:  form.NewGame,
		Review:   form.Review,
		Reviewer: form.Reviewer,
		Rating:   form.Rating,
	})
	if len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  strings.Join(violations, "\n"),
			"errors": violations,
		})
		return
	}

	reviewID, err := h.store.Submit(valid)
	if err != nil {
		// Full detail is for operators only; the caller gets a generic message.
		log.Printf("Review Submission Error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while submitting your review. Please try again."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Review added successfully!",
		"review_id": reviewID,
	})
}

// ListReviews godoc
// @Summary      List reviews
// @Description  Returns a filtered, paginated page of reviews plus the game names for the filter dropdown.
// @Tags         reviews
// @Produce      json
// @Param        game   query string false "Substring filter on the game name"
// @Param        rating query int    false "Exact rating filter, 0 or absent means all"
// @Param        page   query int    false "Page number" default(1)
// @Success      200 {object} ReviewListResponse
// @Router       /reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	gameFilter := c.Query("game")

	rating, err := strconv.Atoi(c.Query("rating"))
	if err != nil {
		rating = 0 // all ratings
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	// Both reads degrade to empty data rather than failing the page.
	games, err := h.store.DistinctGameNames()
	if err != nil {
		log.Printf("Error fetching games: %v", err)
		games = []string{}
	}

	pageData, err := h.store.FetchPage(gameFilter, rating, page)
	if err != nil {
		log.Printf("Error fetching reviews: %v", err)
		pageData = store.Page{Reviews: []store.ReviewEntry{}}
	}

	c.JSON(http.StatusOK, ReviewListResponse{
		Data: pageData.Reviews,
		Meta: PaginationMeta{
			TotalItems:  pageData.TotalCount,
			TotalPages:  pageData.TotalPages,
			CurrentPage: page,
			PageSize:    store.PageSize,
		},
		Filters: ReviewFilters{Game: gameFilter, Rating: rating},
		Games:   games,
	})
}
