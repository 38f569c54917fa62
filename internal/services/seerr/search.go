package seerr

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/amaumene/seerrctl/internal/models"
	"github.com/sirupsen/logrus"
)

// Search queries the catalog. Results come back unmodified, people included.
func (c *Client) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	var response models.SearchResponse
	if err := c.doRequest(ctx, http.MethodGet, "search?query="+encodeQuery(query), nil, &response); err != nil {
		return nil, err
	}

	c.logger.WithFields(logrus.Fields{
		"query": query,
		"count": len(response.Results),
	}).Debug("Search completed")
	return response.Results, nil
}

// encodeQuery percent-encodes a query value, spaces as %20
func encodeQuery(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
