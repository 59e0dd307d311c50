package chucknorris

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/samber/do"
	"github.com/samber/oops"

	"jokebot/app/config"
)

// Client talks to a chucknorris.io style joke API. Calls are bounded by
// the configured timeout; a hung upstream blocks only the request that
// made the call.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)

	return &Client{
		baseURL: cfg.Jokes.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Jokes.Timeout(),
		},
	}, nil
}

type jokeItem struct {
	Value string `json:"value"`
}

type searchResult struct {
	Result []jokeItem `json:"result"`
}

func (c *Client) RandomJoke(ctx context.Context) (string, error) {
	var joke jokeItem
	if err := c.getJSON(ctx, c.baseURL+"/jokes/random", &joke); err != nil {
		return "", err
	}

	return joke.Value, nil
}

// SearchJokes returns the matched joke texts in upstream order. An empty
// result list is a valid response, not an error.
func (c *Client) SearchJokes(ctx context.Context, query string) ([]string, error) {
	var found searchResult

	endpoint := c.baseURL + "/jokes/search?query=" + url.QueryEscape(query)
	if err := c.getJSON(ctx, endpoint, &found); err != nil {
		return nil, err
	}

	jokes := make([]string, 0, len(found.Result))
	for _, item := range found.Result {
		jokes = append(jokes, item.Value)
	}

	return jokes, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return oops.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return oops.Errorf("joke api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return oops.Errorf("joke api returned status %d", resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return oops.Errorf("failed to decode joke api response: %w", err)
	}

	return nil
}
