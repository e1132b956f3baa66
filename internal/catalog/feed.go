package catalog

import (
	"strings"

	"github.com/at-ishikawa/lcsolved/internal/config"
)

// UnknownContest is used when a feed record names no contest at all.
const UnknownContest = "Unknown Contest"

// FeedRecord is one entry of the rating feed. Every field except Rating, ID
// and Title may be missing.
type FeedRecord struct {
	Rating       float64 `json:"Rating"`
	ID           int64   `json:"ID"`
	Title        string  `json:"Title"`
	TitleZH      string  `json:"TitleZH,omitempty"`
	TitleSlug    string  `json:"TitleSlug,omitempty"`
	ContestSlug  string  `json:"ContestSlug,omitempty"`
	ProblemIndex string  `json:"ProblemIndex,omitempty"`
	ContestIDEn  string  `json:"ContestID_en,omitempty"`
	ContestIDZh  string  `json:"ContestID_zh,omitempty"`
}

// ContestName returns the first non-empty contest label, falling back to UnknownContest.
func (r FeedRecord) ContestName() string {
	for _, name := range []string{r.ContestIDEn, r.ContestIDZh, r.ContestSlug} {
		if name != "" {
			return name
		}
	}
	return UnknownContest
}

// ToQuestion derives an unsolved Question. A missing slug leaves a URL with an
// empty path segment; it is stored as is.
func (r FeedRecord) ToQuestion(urlTemplate string) Question {
	return Question{
		QuestionID:   r.ID,
		Title:        r.Title,
		ContestName:  r.ContestName(),
		ProblemIndex: r.ProblemIndex,
		Rating:       r.Rating,
		URL:          strings.ReplaceAll(urlTemplate, config.SlugPlaceholder, r.TitleSlug),
		Solved:       false,
	}
}
