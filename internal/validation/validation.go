package validation

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	gameNameDisallowed = regexp.MustCompile(`[^a-zA-Z0-9\s\-():.]`)
	reviewerPattern    = regexp.MustCompile(`^[a-zA-Z\s]+$`)
)

// ReviewInput carries the raw form fields of a review submission.
// NewGame takes precedence over GameName when both are set.
type ReviewInput struct {
	GameName string
	NewGame  string
	Review   string
	Reviewer string
	Rating   string
}

// ValidReview is a fully validated submission, safe to hand to the store.
type ValidReview struct {
	GameName string
	Review   string
	Reviewer string
	Rating   int
}

// SanitizeGameName trims the input and drops every character outside the
// allowed game-name alphabet (alphanumerics, spaces and -():.), rather than
// rejecting the whole value.
func SanitizeGameName(s string) string {
	return gameNameDisallowed.ReplaceAllString(strings.TrimSpace(s), "")
}

// ValidateReview checks every rule and returns the validated value together
// with the full list of violations. All rules are evaluated; the caller gets
// one message per failed rule, not just the first.
func ValidateReview(input ReviewInput) (ValidReview, []string) {
	var errs []string

	// The free-text field wins over the dropdown selection.
	raw := input.NewGame
	if strings.TrimSpace(raw) == "" {
		raw = input.GameName
	}
	gameName := SanitizeGameName(raw)

	if gameName == "" {
		errs = append(errs, "Game name is required.")
	} else if len(gameName) > 100 {
		errs = append(errs, "Game name must be less than 100 characters.")
	}

	reviewer := strings.TrimSpace(input.Reviewer)
	if reviewer == "" {
		errs = append(errs, "Reviewer name is required.")
	} else if len(reviewer) > 50 {
		errs = append(errs, "Reviewer name must be less than 50 characters.")
	} else if !reviewerPattern.MatchString(reviewer) {
		errs = append(errs, "Reviewer name should contain only letters and spaces.")
	}

	review := strings.TrimSpace(input.Review)
	if review == "" {
		errs = append(errs, "Review text is required.")
	} else if len(review) > 1000 {
		errs = append(errs, "Review must be less than 1000 characters.")
	}

	rating, err := strconv.Atoi(strings.TrimSpace(input.Rating))
	if err != nil || rating < 1 || rating > 5 {
		errs = append(errs, "Rating must be between 1 and 5.")
	}

	if len(errs) > 0 {
		return ValidReview{}, errs
	}

	return ValidReview{
		GameName: gameName,
		Review:   review,
		Reviewer: reviewer,
		Rating:   rating,
	}, nil
}
