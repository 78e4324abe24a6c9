package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"gamereviews/backend/internal/auth"
	"gamereviews/backend/internal/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testCSRFToken = "4cc355t0k3n4cc355t0k3n4cc355t0k3n4cc355t0k3n4cc355t0k3n4cc355t0k"

func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	reviewHandler := NewReviewHandler(store.NewReviewStore(gdb))
	gameHandler := NewGameHandler(store.NewReviewStore(gdb))

	router := gin.New()
	router.GET("/api/v1/reviews", reviewHandler.ListReviews)
	router.POST("/api/v1/reviews", auth.CSRFMiddleware(), reviewHandler.SubmitReview)
	router.GET("/api/v1/games", gameHandler.GetGameNames)
	router.GET("/api/v1/csrf", IssueCSRFToken)

	return router, mock
}

func postForm(router *gin.Engine, form url.Values, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: auth.CSRFCookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func submissionForm() url.Values {
	return url.Values{
		"action":     {"add_review"},
		"new_game":   {"Hades"},
		"review":     {"Great roguelike"},
		"reviewer":   {"Ada Lovelace"},
		"rating":     {"5"},
		"csrf_token": {testCSRFToken},
	}
}

func TestSubmitReviewSuccess(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "games" WHERE name = \$1`).
		WithArgs("Hades", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
	mock.ExpectQuery(`INSERT INTO "games"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`UPDATE reviews SET display_order`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := postForm(router, submissionForm(), testCSRFToken)

	assert.Equal(t, http.StatusCreated, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Review added successfully!", body["message"])
	assert.EqualValues(t, 1, body["review_id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitReviewMissingCSRFToken(t *testing.T) {
	router, mock := newTestRouter(t)

	form := submissionForm()
	form.Del("csrf_token")
	w := postForm(router, form, testCSRFToken)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid form submission. Please try again.")
	// Rejected before any database work.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitReviewMismatchedCSRFToken(t *testing.T) {
	router, mock := newTestRouter(t)

	form := submissionForm()
	form.Set("csrf_token", "someone-elses-token")
	w := postForm(router, form, testCSRFToken)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid form submission. Please try again.")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitReviewMissingCSRFCookie(t *testing.T) {
	router, mock := newTestRouter(t)

	w := postForm(router, submissionForm(), "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitReviewWrongAction(t *testing.T) {
	router, mock := newTestRouter(t)

	form := submissionForm()
	form.Set("action", "delete_review")
	w := postForm(router, form, testCSRFToken)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid form submission. Please try again.")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitReviewValidationFailure(t *testing.T) {
	router, mock := newTestRouter(t)

	form := submissionForm()
	form.Set("reviewer", "")
	form.Set("rating", "6")
	w := postForm(router, form, testCSRFToken)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error  string   `json:"error"`
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.ElementsMatch(t, []string{
		"Reviewer name is required.",
		"Rating must be between 1 and 5.",
	}, body.Errors)
	// Nothing is written when validation fails.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitReviewPersistenceFailureIsGeneric(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "games" WHERE name = \$1`).
		WithArgs("Hades", 1).
		WillReturnError(errors.New("pq: relation does not exist"))
	mock.ExpectRollback()

	w := postForm(router, submissionForm(), testCSRFToken)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "An error occurred while submitting your review. Please try again.")
	// The underlying error never leaks to the caller.
	assert.NotContains(t, w.Body.String(), "relation does not exist")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func listReviewRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "game_id", "game_name", "review", "reviewer", "rating",
		"created_at", "display_order", "genre", "release_year",
	}).AddRow(1, 1, "Hades", "Great roguelike", "Ada", 5, now, 1, nil, nil)
}

func TestListReviews(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(`SELECT DISTINCT "name" FROM "games"`).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Hades"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT reviews\.\*, games\.genre, games\.release_year FROM "reviews"`).
		WillReturnRows(listReviewRows())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reviews", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body ReviewListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Hades", body.Data[0].GameName)
	assert.Equal(t, 5, body.Data[0].Rating)
	assert.Equal(t, int64(1), body.Meta.TotalItems)
	assert.Equal(t, 1, body.Meta.TotalPages)
	assert.Equal(t, 1, body.Meta.CurrentPage)
	assert.Equal(t, store.PageSize, body.Meta.PageSize)
	assert.Equal(t, []string{"Hades"}, body.Games)
}

func TestListReviewsPassesFilters(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(`SELECT DISTINCT "name" FROM "games"`).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Chess").AddRow("Hades"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "reviews" WHERE reviews\.game_name ILIKE \$1 AND reviews\.rating = \$2`).
		WithArgs("%Chess%", 5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reviews?game=Chess&rating=5&page=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body ReviewListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Data)
	assert.Equal(t, int64(0), body.Meta.TotalItems)
	assert.Equal(t, 0, body.Meta.TotalPages)
	assert.Equal(t, "Chess", body.Filters.Game)
	assert.Equal(t, 5, body.Filters.Rating)
}

func TestListReviewsDefaultsBadParameters(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(`SELECT DISTINCT "name" FROM "games"`).
		WillReturnRows(sqlmock.NewRows([]string{"name"}))
	// Non-numeric rating falls back to "all ratings": no rating predicate.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "reviews"$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT reviews\.\*, games\.genre, games\.release_year FROM "reviews"`).
		WillReturnRows(listReviewRows())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reviews?rating=lots&page=abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body ReviewListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Meta.CurrentPage)
	assert.Equal(t, 0, body.Filters.Rating)
}

func TestListReviewsDegradesOnStoreErrors(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(`SELECT DISTINCT "name" FROM "games"`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "reviews"`).
		WillReturnError(errors.New("connection reset"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reviews", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// The page stays usable: empty data, no error page.
	assert.Equal(t, http.StatusOK, w.Code)

	var body ReviewListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Data)
	assert.Empty(t, body.Games)
	assert.Equal(t, int64(0), body.Meta.TotalItems)
}

func TestGetGameNames(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(`SELECT DISTINCT "name" FROM "games"`).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Chess").AddRow("Hades"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/games", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"Chess", "Hades"}, body["games"])
}

func TestGetGameNamesDegradesToEmptyList(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(`SELECT DISTINCT "name" FROM "games"`).
		WillReturnError(errors.New("connection reset"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/games", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"games": []}`, w.Body.String())
}

func TestIssueCSRFToken(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/csrf", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body["csrf_token"], 64) // 32 random bytes, hex encoded

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.CSRFCookieName, cookies[0].Name)
	assert.Equal(t, body["csrf_token"], cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}
