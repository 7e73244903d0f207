package geoguessr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://www.geoguessr.com/api"

// Client talks to the GeoGuessr API using a session cookie for
// authentication. The _ncfa cookie is set once at construction and never
// refreshed.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient builds a client whose cookie jar carries the _ncfa session
// cookie for every request against the API host.
func NewClient(ncfa string) (*Client, error) {
	return newClient(ncfa, defaultBaseURL)
}

func newClient(ncfa, baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	jar.SetCookies(base, []*http.Cookie{{Name: "_ncfa", Value: ncfa, Path: "/"}})

	return &Client{
		httpClient: &http.Client{Jar: jar, Timeout: 30 * time.Second},
		baseURL:    baseURL,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geoguessr API returned status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// activities fetches one page of club activities. An empty paginationToken
// requests the first (newest) page.
func (c *Client) activities(ctx context.Context, clubID string, limit int, paginationToken string) (activitiesResponse, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if paginationToken != "" {
		query.Set("paginationToken", paginationToken)
	}

	var page activitiesResponse
	if err := c.get(ctx, "/v4/clubs/"+clubID+"/activities", query, &page); err != nil {
		return activitiesResponse{}, err
	}
	return page, nil
}

// Members fetches the full club roster in one call.
func (c *Client) Members(ctx context.Context, clubID string) ([]Member, error) {
	var resp membersResponse
	if err := c.get(ctx, "/v4/clubs/"+clubID+"/members", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Items == nil {
		return nil, fmt.Errorf("malformed members response: missing items")
	}

	members := make([]Member, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.User.UserID == "" {
			return nil, fmt.Errorf("malformed members response: roster entry without userId")
		}
		members = append(members, item.User)
	}
	return members, nil
}
