package seerr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/amaumene/seerrctl/internal/config"
	"github.com/amaumene/seerrctl/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	apiPrefix = "/api/v1/"

	// maxConcurrentLookups bounds the per-item fan-out of list enrichment
	maxConcurrentLookups  = 5
	recentlyAddedPageSize = 20
)

// Version is reported in the User-Agent header; set at build time
var Version = "dev"

// Client handles communication with the media-request server API
type Client struct {
	serverURL  string
	token      string
	authMode   config.AuthMode
	userAgent  string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient creates a new API client from explicit configuration
func NewClient(cfg *config.Config, logger *logrus.Logger) (*Client, error) {
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("server URL is required")
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("token is required")
	}
	switch cfg.AuthMode {
	case config.AuthModeCookie, config.AuthModeAPIKey:
	default:
		return nil, fmt.Errorf("unsupported auth mode %q", cfg.AuthMode)
	}

	return &Client{
		serverURL: strings.TrimRight(cfg.ServerURL, "/"),
		token:     cfg.Token,
		authMode:  cfg.AuthMode,
		userAgent: fmt.Sprintf("seerrctl/%s (%s %s)", Version, runtime.GOOS, runtime.GOARCH),
		// No timeout override: the transport default applies
		httpClient: &http.Client{},
		logger:     logger,
	}, nil
}

// WebURL returns the server's web page for a title
func (c *Client) WebURL(mediaType models.MediaType, id int) string {
	return fmt.Sprintf("%s/%s/%d", c.serverURL, mediaType, id)
}

// setAuth attaches the credential in the configured form
func (c *Client) setAuth(req *http.Request) {
	switch c.authMode {
	case config.AuthModeAPIKey:
		req.Header.Set("X-Api-Key", c.token)
	default:
		req.Header.Set("Cookie", "connect.sid="+c.token)
	}
}

// doRequest performs an authenticated HTTP request against the API.
// path is relative to /api/v1 and may carry a query string.
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	fullURL := c.serverURL + apiPrefix + strings.TrimLeft(path, "/")
	c.logger.WithFields(logrus.Fields{
		"method": method,
		"url":    fullURL,
	}).Debug("Making API request")

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	c.setAuth(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		observeRequest(method, path, "error", start)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	observeRequest(method, path, fmt.Sprintf("%d", resp.StatusCode), start)

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		reqErr := newRequestError(method, path, resp.StatusCode, bodyBytes)
		c.logger.WithFields(logrus.Fields{
			"method":      method,
			"path":        path,
			"status_code": resp.StatusCode,
			"message":     reqErr.Message,
		}).Debug("API returned error status")
		return reqErr
	}

	if result != nil && len(bytes.TrimSpace(bodyBytes)) > 0 {
		if err := json.Unmarshal(bodyBytes, result); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}

	return nil
}
