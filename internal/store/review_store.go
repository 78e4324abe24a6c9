package store

import (
	"errors"
	"time"

	"gamereviews/backend/internal/models"
	"gamereviews/backend/internal/validation"

	"gorm.io/gorm"
)

// PageSize is the fixed number of reviews per listing page.
const PageSize = 5

// ReviewStore persists reviews and serves filtered, paginated reads.
// Game resolution lives here too since it shares the submission transaction.
type ReviewStore struct {
	db *gorm.DB
}

// NewReviewStore creates a ReviewStore backed by the given connection.
func NewReviewStore(db *gorm.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

// ReviewEntry is a review row enriched with the game's optional attributes
// via a LEFT JOIN. Genre and ReleaseYear stay nil when the game row has no
// values or has been deleted out of band.
type ReviewEntry struct {
	ID           uint       `json:"id"`
	GameID       *uint      `json:"game_id"`
	GameName     string     `json:"game_name"`
	Review       string     `json:"review"`
	Reviewer     string     `json:"reviewer"`
	Rating       int        `json:"rating"`
	CreatedAt    time.Time  `json:"created_at"`
	DisplayOrder int        `json:"display_order"`
	Genre        *string    `json:"genre,omitempty"`
	ReleaseYear  *int       `json:"release_year,omitempty"`
}

// Page is one window of the filtered review listing, with totals computed
// from the same filter predicate.
type Page struct {
	Reviews    []ReviewEntry
	TotalCount int64
	TotalPages int
}

// Reviews are ordered by display_order, not created_at, so a reindex can
// repair ordering independent of timestamp precision. The sequence is dense
// (1..N) and rewritten for every row after each insert.
const reindexSQL = `
UPDATE reviews SET display_order = ranked.seq
FROM (
	SELECT id, ROW_NUMBER() OVER (ORDER BY created_at ASC, id ASC) AS seq
	FROM reviews
) ranked
WHERE reviews.id = ranked.id`

// Submit inserts a validated review inside one transaction: the game is
// resolved or created, the review row is written, and the display order of
// every review is recomputed. Any failure rolls the whole submission back.
func (s *ReviewStore) Submit(input validation.ValidReview) (uint, error) {
	var review models.Review

	err := s.db.Transaction(func(tx *gorm.DB) error {
		gameID, err := resolveOrCreateGame(tx, input.GameName)
		if err != nil {
			return err
		}

		review = models.Review{
			GameID:   &gameID,
			GameName: input.GameName,
			Review:   input.Review,
			Reviewer: input.Reviewer,
			Rating:   input.Rating,
		}
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		return tx.Exec(reindexSQL).Error
	})
	if err != nil {
		return 0, err
	}

	return review.ID, nil
}

// resolveOrCreateGame maps a game name to its id, inserting the game on first
// mention. Lookup is an exact, case-sensitive match. A duplicate-key error on
// insert means a concurrent request created the game first; the lookup is
// retried instead of failing the submission.
func resolveOrCreateGame(tx *gorm.DB, name string) (uint, error) {
	var game models.Game
	err := tx.Where("name = ?", name).First(&game).Error
	if err == nil {
		return game.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	game = models.Game{Name: name}
	err = tx.Create(&game).Error
	if err == nil {
		return game.ID, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		if err := tx.Where("name = ?", name).First(&game).Error; err != nil {
			return 0, err
		}
		return game.ID, nil
	}
	return 0, err
}

// DistinctGameNames returns every stored game name, alphabetically ascending,
// for populating selection inputs.
func (s *ReviewStore) DistinctGameNames() ([]string, error) {
	var names []string
	err := s.db.Model(&models.Game{}).
		Distinct().
		Order("name ASC").
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// filtered applies the listing predicate shared by the count and page queries.
func (s *ReviewStore) filtered(gameFilter string, rating int) *gorm.DB {
	query := s.db.Model(&models.Review{})
	if gameFilter != "" {
		query = query.Where("reviews.game_name ILIKE ?", "%"+gameFilter+"%")
	}
	if rating > 0 {
		query = query.Where("reviews.rating = ?", rating)
	}
	return query
}

// FetchPage returns one page of reviews matching the filters, plus totals
// computed from the same predicate. Out-of-range pages (including page <= 0)
// yield an empty list with the totals intact; there is no clamping.
func (s *ReviewStore) FetchPage(gameFilter string, rating int, page int) (Page, error) {
	var total int64
	if err := s.filtered(gameFilter, rating).Count(&total).Error; err != nil {
		return Page{}, err
	}

	result := Page{
		Reviews:    []ReviewEntry{},
		TotalCount: total,
		TotalPages: int((total + PageSize - 1) / PageSize),
	}

	if page < 1 {
		return result, nil
	}

	offset := (page - 1) * PageSize
	err := s.filtered(gameFilter, rating).
		Select("reviews.*, games.genre, games.release_year").
		Joins("LEFT JOIN games ON games.id = reviews.game_id").
		Order("reviews.display_order ASC").
		Limit(PageSize).
		Offset(offset).
		Scan(&result.Reviews).Error
	if err != nil {
		return Page{}, err
	}

	return result, nil
}
