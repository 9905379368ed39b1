// Package api fetches the published code-relay catalog through the
// GitHub contents API
package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/code-relay-cli/code-relay/internals/catalog"
)

var (
	// ErrorNotFound gets returned when a 404 occured
	ErrorNotFound = errors.New("resource not found")
	// ErrorRateLimited gets returned when the GitHub rate limit is exhausted
	ErrorRateLimited = errors.New("GitHub API rate limit exhausted, try again later")
	// DefaultCatalogURL points at the catalog in the code-relay data repository
	DefaultCatalogURL = "https://api.github.com/repos/KTibow/code-relay/contents/data/available_projects.json"
)

// Client talks to wherever the catalog is hosted
type Client struct {
	// HTTP is the internal http client
	HTTP *http.Client
	// CatalogURL is the location of the catalog document.
	// Defaults to DefaultCatalogURL
	CatalogURL string
}

// New returns a new Client instance
func New() *Client {
	return &Client{
		HTTP:       http.DefaultClient,
		CatalogURL: DefaultCatalogURL,
	}
}

// NewWithClient returns a new Client instance using a custom http client
// supplied as a first paramter
func NewWithClient(client *http.Client) *Client {
	return &Client{
		HTTP:       client,
		CatalogURL: DefaultCatalogURL,
	}
}

// githubError is the error document the GitHub API responds with
type githubError struct {
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url"`
}

func (e *githubError) Error() string {
	return e.Message
}

// contentsResponse is the part of a GitHub contents API response we care about.
// The file content comes base64 encoded (with newlines sprinkled in)
type contentsResponse struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// FetchCatalog downloads and validates the catalog. The URL may point
// at the GitHub contents API or directly at a raw catalog document,
// both work
func (c *Client) FetchCatalog(ctx context.Context) (*catalog.Catalog, error) {
	res, err := c.get(ctx, c.CatalogURL)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if err := checkResponse(res); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	raw := body
	contents := contentsResponse{}
	if err := json.Unmarshal(body, &contents); err == nil && contents.Content != "" {
		// base64 with newlines sprinkled in, those are noise
		cleaned := strings.ReplaceAll(contents.Content, "\n", "")
		decoded, err := base64.StdEncoding.DecodeString(cleaned)
		if err != nil {
			return nil, errors.New("catalog content is not valid base64: " + err.Error())
		}
		raw = decoded
	}

	return catalog.Load(raw)
}

// get is a helper that does a get request and also sets various things
func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	c.decorate(req)
	return c.HTTP.Do(req)
}

func checkResponse(res *http.Response) error {
	switch {
	case res.StatusCode == http.StatusNotFound:
		return ErrorNotFound
	case res.StatusCode == http.StatusForbidden && res.Header.Get("X-RateLimit-Remaining") == "0":
		return ErrorRateLimited
	case res.StatusCode >= 200 && res.StatusCode < 400:
		return nil
	default:
		ghErr := &githubError{}
		if err := parseJSON(res, ghErr); err != nil || ghErr.Message == "" {
			return errors.New("GitHub API did respond with unexpected status " + res.Status)
		}
		return ghErr
	}
}

// decorate decorates a request with the Accept header
func (c *Client) decorate(req *http.Request) {
	req.Header.Set("Accept", "application/vnd.github+json")
}

func parseJSON(res *http.Response, i interface{}) error {
	b, _ := io.ReadAll(res.Body)
	return json.Unmarshal(b, i)
}
