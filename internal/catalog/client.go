package catalog

import (
	"context"
	"fmt"
	"unicode/utf8"

	"resty.dev/v3"
)

const maxErrorBodyLength = 200

// FeedClient downloads the question rating feed.
type FeedClient struct {
	httpClient *resty.Client
	feedURL    string
}

func NewFeedClient(feedURL string) *FeedClient {
	client := resty.New()
	client.SetHeader("Accept", "application/json")
	return &FeedClient{
		httpClient: client,
		feedURL:    feedURL,
	}
}

func (c *FeedClient) Close() error {
	return c.httpClient.Close()
}

// FetchQuestions returns every record of the feed. Failures are not retried here.
func (c *FeedClient) FetchQuestions(ctx context.Context) ([]FeedRecord, error) {
	var records []FeedRecord
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&records).
		Get(c.feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch question feed: %w", err)
	}
	if response.IsError() {
		return nil, fmt.Errorf("question feed error %d: %s", response.StatusCode(), truncate(response.String(), maxErrorBodyLength))
	}
	return records, nil
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
