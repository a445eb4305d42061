package unsplash

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client queries the Unsplash photo search API. Only the image backfill
// tool uses it; nothing on the serving path does.
type Client struct {
	accessKey string
	client    *http.Client
	baseURL   string
}

func NewClient(accessKey string) (*Client, error) {
	if accessKey == "" {
		return nil, errors.New("unsplash access key not set")
	}
	return &Client{
		accessKey: accessKey,
		client:    &http.Client{Timeout: 10 * time.Second},
		baseURL:   "https://api.unsplash.com",
	}, nil
}

type searchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

// FirstImageURL returns the "regular" URL of the first search hit, or
// "" when nothing matched.
func (c *Client) FirstImageURL(ctx context.Context, query string) (string, error) {
	u, _ := url.Parse(c.baseURL + "/search/photos")
	q := u.Query()
	q.Set("query", query)
	q.Set("client_id", c.accessKey)
	q.Set("per_page", "10")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unsplash search failed: %s", resp.Status)
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Results) == 0 {
		return "", nil
	}
	return out.Results[0].URLs.Regular, nil
}
