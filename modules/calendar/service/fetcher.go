package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"vendorhub/core/constants"
	"vendorhub/core/logger"
	"vendorhub/core/secure"
	"vendorhub/modules/calendar/entity"
)

// FetchResult is the value-form outcome of one fetch-and-parse cycle. Error
// strings are user-facing and never contain the feed URL or its tokens.
type FetchResult struct {
	Events    []entity.ExternalEvent
	Success   bool
	Error     string
	Retryable bool
}

type FeedFetcher struct {
	client *http.Client
	parser *ICalParser
}

func NewFeedFetcher(parser *ICalParser) *FeedFetcher {
	return &FeedFetcher{
		client: &http.Client{Timeout: constants.FeedFetchTimeout},
		parser: parser,
	}
}

// FetchAndParse issues a single GET against the feed URL. There is no retry;
// transient failures surface as Success:false with Retryable set so the
// caller can decide whether to re-enqueue.
func (f *FeedFetcher) FetchAndParse(ctx context.Context, feedURL string) FetchResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return FetchResult{Success: false, Error: "invalid calendar URL"}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			logger.Warn("FeedFetcher:FetchAndParse:Timeout", "url", secure.SanitizeURL(feedURL))
			return FetchResult{Success: false, Error: "calendar fetch timed out", Retryable: true}
		}
		logger.Warn("FeedFetcher:FetchAndParse:NetworkError", "url", secure.SanitizeURL(feedURL), "error", err)
		return FetchResult{Success: false, Error: "unable to access this calendar", Retryable: true}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("FeedFetcher:FetchAndParse:BadStatus",
			"url", secure.SanitizeURL(feedURL), "status", resp.StatusCode)
		// Status code and text only; the response body is remote content and
		// never reaches the error surface.
		return FetchResult{
			Success: false,
			Error:   fmt.Sprintf("calendar returned %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxFeedBodyBytes))
	if err != nil {
		return FetchResult{Success: false, Error: "unable to read calendar response", Retryable: true}
	}

	events := f.parser.Parse(string(body))
	logger.Info("FeedFetcher:FetchAndParse:Success",
		"url", secure.SanitizeURL(feedURL), "event_count", len(events))
	return FetchResult{Events: events, Success: true}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
