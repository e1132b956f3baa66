// Package reconcile derives each question's solved flag from the titles bolded in flashcards.
package reconcile

import (
	"strings"
	"unicode"

	"github.com/at-ishikawa/lcsolved/internal/flashcard"
)

const boldDelimiter = "**"

// TitleSet holds normalized titles found in flashcards.
type TitleSet map[string]struct{}

func (s TitleSet) Contains(title string) bool {
	_, ok := s[title]
	return ok
}

// ExtractBoldTitles returns the text between each pair of ** delimiters, in order.
// Delimiters pair left to right within a line. An opener without a closer on the
// same line yields nothing, and empty pairs are dropped.
func ExtractBoldTitles(content string) []string {
	var titles []string
	for _, line := range strings.Split(content, "\n") {
		rest := line
		for {
			open := strings.Index(rest, boldDelimiter)
			if open < 0 {
				break
			}
			rest = rest[open+len(boldDelimiter):]
			end := strings.Index(rest, boldDelimiter)
			if end < 0 {
				break
			}
			if end > 0 {
				titles = append(titles, rest[:end])
			}
			rest = rest[end+len(boldDelimiter):]
		}
	}
	return titles
}

// NormalizeQuestionTitle lowercases and trims a catalog title.
func NormalizeQuestionTitle(title string) string {
	return strings.TrimSpace(strings.ToLower(title))
}

// NormalizeCardTitle normalizes like NormalizeQuestionTitle and then drops a
// leading contest number such as "3044. ".
func NormalizeCardTitle(title string) string {
	return stripNumberPrefix(NormalizeQuestionTitle(title))
}

func stripNumberPrefix(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(s) || s[i] != '.' {
		return s
	}
	return strings.TrimLeftFunc(s[i+1:], unicode.IsSpace)
}

// BuildTitleSet collects the normalized bold titles of every card.
func BuildTitleSet(cards []flashcard.Card) TitleSet {
	set := make(TitleSet)
	for _, card := range cards {
		for _, raw := range ExtractBoldTitles(card.Content) {
			set[NormalizeCardTitle(raw)] = struct{}{}
		}
	}
	return set
}
