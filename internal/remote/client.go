// Package remote looks up the sizes of files published over HTTP and of
// GitHub release assets.
package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v58/github"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/dennisklein/size"
)

// ErrUnknownLength is returned when a server does not announce a content
// length.
var ErrUnknownLength = errors.New("content length not reported")

// Config defines the configuration for creating a Client.
//
//nolint:govet // fieldalignment: readability preferred over optimization
type Config struct {
	HTTPClient    *http.Client // defaults to a retrying client
	GitHubToken   string
	GitHubBaseURL string // defaults to the public GitHub API
}

// Client queries remote sizes.
type Client struct {
	http   *http.Client
	github *github.Client
}

// NewClient creates a Client from a configuration.
func NewClient(cfg Config) (*Client, error) {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = newRetryableClient().StandardClient()
	}

	gh := github.NewClient(httpClient)
	if cfg.GitHubToken != "" {
		gh = gh.WithAuthToken(cfg.GitHubToken)
	}

	if cfg.GitHubBaseURL != "" {
		base := cfg.GitHubBaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}

		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub base URL: %w", err)
		}

		gh.BaseURL = u
	}

	return &Client{http: httpClient, github: gh}, nil
}

func newRetryableClient() *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 5 * time.Second
	client.Logger = nil

	return client
}

// ContentLength asks the server for the size of the resource at rawURL with
// a HEAD request.
func (c *Client) ContentLength(ctx context.Context, rawURL string) (length size.Size, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return size.Size{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return size.Size{}, err
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return size.Size{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if resp.ContentLength < 0 {
		return size.Size{}, ErrUnknownLength
	}

	return size.FromBytes(resp.ContentLength), nil
}
