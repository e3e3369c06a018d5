// Package api provides the typed client for the LensLink directory service.
package api

import (
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the default LensLink API endpoint.
	DefaultBaseURL = "http://localhost:8000"
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
)

// Client is the LensLink API client.
//
// Use NewClient to create a client pointed at a service instance:
//
//	client := api.NewClient(api.WithBaseURL("https://lenslink.example.com"))
type Client struct {
	baseURL    string
	httpClient *http.Client

	// Services
	Auth          *AuthService
	Photographers *PhotographersService
	Profile       *ProfileService
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL sets a custom API base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new LensLink API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	// Initialize services
	c.Auth = &AuthService{client: c}
	c.Photographers = &PhotographersService{client: c}
	c.Profile = &ProfileService{client: c}

	return c
}

// BaseURL returns the current base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ResolvePhotoURL resolves a server-relative photo path (e.g. "/uploads/x.jpg")
// against the service base URL for display.
func (c *Client) ResolvePhotoURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}
