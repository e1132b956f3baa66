package flashcard

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

// ErrMissingAPIKey is returned when no Mochi API key is configured.
var ErrMissingAPIKey = errors.New("MOCHI_API_KEY is not set")

const maxErrorBodyLength = 200

type Config struct {
	BaseURL   string
	APIKey    string
	PageLimit int
}

// Client reads cards from the Mochi API.
type Client struct {
	httpClient *resty.Client
	pageLimit  int
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetBasicAuth(cfg.APIKey, "").
		SetHeader("Accept", "application/json")
	return &Client{
		httpClient: client,
		pageLimit:  cfg.PageLimit,
	}, nil
}

type listCardsResponse struct {
	Docs []struct {
		ID      string `json:"id"`
		Content string `json:"content"`
	} `json:"docs"`
}

// FetchCards returns the first page of cards. Later pages are not requested.
func (c *Client) FetchCards(ctx context.Context) ([]Card, error) {
	var body listCardsResponse
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(c.pageLimit)).
		SetResult(&body).
		Get("/api/cards")
	if err != nil {
		return nil, fmt.Errorf("fetch mochi cards: %w", err)
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("mochi api error: %d %s - %s",
			res.StatusCode(), http.StatusText(res.StatusCode()), truncate(string(res.Body()), maxErrorBodyLength))
	}

	cards := make([]Card, 0, len(body.Docs))
	for _, doc := range body.Docs {
		cards = append(cards, Card{CardID: doc.ID, Content: doc.Content})
	}
	return cards, nil
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
