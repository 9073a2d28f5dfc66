// Package search looks up the description and picture of an animal in an
// online encyclopedia.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

const (
	DefaultSearchURL  = "https://en.wikipedia.org/w/api.php"
	DefaultSummaryURL = "https://en.wikipedia.org/api/rest_v1/page/summary/"
	DefaultUserAgent  = "BiodiversityHub/1.0"
)

const (
	pathTitle       = "$.query.search[0].title"
	pathDescription = "$.extract"
	pathImage       = "$.thumbnail.source"
)

var (
	ErrEmptyQuery = errors.New("search query is required")
	ErrNotFound   = errors.New("no article found")
)

// Result of a lookup. Fields are nil when the article does not provide them.
type Result struct {
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

type Searcher interface {
	Lookup(context.Context, string) (Result, error)
}

// Client queries the search api for the first article matching a query and
// then fetches the summary of this article.
type Client struct {
	SearchURL  string
	SummaryURL string
	UserAgent  string
	HTTP       *http.Client
}

func NewClient() *Client {
	return &Client{
		SearchURL:  DefaultSearchURL,
		SummaryURL: DefaultSummaryURL,
		UserAgent:  DefaultUserAgent,
		HTTP:       http.DefaultClient,
	}
}

func (c *Client) Lookup(ctx context.Context, query string) (Result, error) {
	var res Result
	query = strings.TrimSpace(query)
	if query == "" {
		return res, ErrEmptyQuery
	}
	title, err := c.findTitle(ctx, query)
	if err != nil {
		return res, err
	}
	doc, err := c.getSummary(ctx, title)
	if err != nil {
		return res, err
	}
	res.Description = getString(pathDescription, doc)
	res.Image = getString(pathImage, doc)
	return res, nil
}

func (c *Client) findTitle(ctx context.Context, query string) (string, error) {
	u, err := url.Parse(c.SearchURL)
	if err != nil {
		return "", err
	}
	qs := u.Query()
	qs.Set("action", "query")
	qs.Set("list", "search")
	qs.Set("srsearch", query)
	qs.Set("format", "json")
	qs.Set("origin", "*")
	u.RawQuery = qs.Encode()

	code, doc, err := c.get(ctx, u.String())
	if err != nil {
		return "", err
	}
	if code < 200 || code >= 300 {
		return "", fmt.Errorf("search: unexpected status %d", code)
	}
	title := getString(pathTitle, doc)
	if title == nil || *title == "" {
		return "", fmt.Errorf("%w: %s", ErrNotFound, query)
	}
	return *title, nil
}

func (c *Client) getSummary(ctx context.Context, title string) (any, error) {
	page := url.PathEscape(strings.ReplaceAll(title, " ", "_"))
	code, doc, err := c.get(ctx, strings.TrimSuffix(c.SummaryURL, "/")+"/"+page)
	if err != nil {
		return nil, err
	}
	if code < 200 || code >= 300 {
		return nil, fmt.Errorf("%w: %s (status %d)", ErrNotFound, title, code)
	}
	return doc, nil
}

func (c *Client) get(ctx context.Context, target string) (int, any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("user-agent", c.UserAgent)
	}
	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		io.Copy(io.Discard, res.Body)
		return res.StatusCode, nil, nil
	}
	var doc any
	if err := json.NewDecoder(res.Body).Decode(&doc); err != nil {
		return res.StatusCode, nil, fmt.Errorf("decode %s: %w", target, err)
	}
	return res.StatusCode, doc, nil
}

func getString(path string, doc any) *string {
	if doc == nil {
		return nil
	}
	val, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil
	}
	if arr, ok := val.([]any); ok {
		if len(arr) == 0 {
			return nil
		}
		val = arr[0]
	}
	str, ok := val.(string)
	if !ok {
		return nil
	}
	return &str
}
