// Package query filters and sorts catalog questions for display.
package query

import (
	"cmp"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/at-ishikawa/lcsolved/internal/catalog"
)

const (
	SortByID     = "id"
	SortByRating = "rating"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// Filter selects questions. Every set field must match. Rating bounds are inclusive.
type Filter struct {
	Keyword       string   `json:"keyword,omitempty"`
	ContestNumber string   `json:"contestNumber,omitempty"`
	RatingMin     *float64 `json:"ratingMin,omitempty"`
	RatingMax     *float64 `json:"ratingMax,omitempty"`
	SortBy        string   `json:"sortBy,omitempty" validate:"omitempty,oneof=id rating"`
	SortOrder     string   `json:"sortOrder,omitempty" validate:"omitempty,oneof=asc desc"`
}

var validate = validator.New()

func (f Filter) Validate() error {
	if err := validate.Struct(f); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return err
		}
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", e.Field(), e.Param(), e.Value()))
		}
		return fmt.Errorf("invalid filter: %s", strings.Join(msgs, ", "))
	}
	return nil
}

func (f Filter) matches(q catalog.Question) bool {
	if strings.TrimSpace(f.Keyword) != "" &&
		!strings.Contains(strings.ToLower(q.Title), strings.ToLower(f.Keyword)) {
		return false
	}
	if strings.TrimSpace(f.ContestNumber) != "" && !strings.Contains(q.ContestName, f.ContestNumber) {
		return false
	}
	if f.RatingMin != nil && q.Rating < *f.RatingMin {
		return false
	}
	if f.RatingMax != nil && q.Rating > *f.RatingMax {
		return false
	}
	return true
}

// Apply returns the matching questions sorted by the filter's key. Questions
// with equal keys keep their input order. The input slice is not modified.
func Apply(questions []catalog.Question, f Filter) []catalog.Question {
	result := make([]catalog.Question, 0, len(questions))
	for _, q := range questions {
		if f.matches(q) {
			result = append(result, q)
		}
	}

	compare := func(a, b catalog.Question) int {
		return cmp.Compare(a.QuestionID, b.QuestionID)
	}
	if f.SortBy == SortByRating {
		compare = func(a, b catalog.Question) int {
			return cmp.Compare(a.Rating, b.Rating)
		}
	}
	if f.SortOrder != SortOrderAsc {
		asc := compare
		compare = func(a, b catalog.Question) int {
			return asc(b, a)
		}
	}
	slices.SortStableFunc(result, compare)
	return result
}

// ParseFilter reads a filter from query parameters. Empty parameters are ignored.
func ParseFilter(values url.Values) (Filter, error) {
	f := Filter{
		Keyword:       values.Get("keyword"),
		ContestNumber: values.Get("contestNumber"),
		SortBy:        values.Get("sortBy"),
		SortOrder:     values.Get("sortOrder"),
	}

	var err error
	if f.RatingMin, err = parseRating(values, "ratingMin"); err != nil {
		return Filter{}, err
	}
	if f.RatingMax, err = parseRating(values, "ratingMax"); err != nil {
		return Filter{}, err
	}
	if err := f.Validate(); err != nil {
		return Filter{}, err
	}
	return f, nil
}

func parseRating(values url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return &v, nil
}
