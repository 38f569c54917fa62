package seerr

import (
	"context"
	"fmt"
	"net/http"

	"github.com/amaumene/seerrctl/internal/models"
	"github.com/sirupsen/logrus"
)

// GetRecentlyAdded returns the most recently added available titles, newest first,
// each resolved to its full detail record
func (c *Client) GetRecentlyAdded(ctx context.Context) ([]models.ContentSummary, error) {
	var page models.ListResponse[models.MediaReference]
	path := fmt.Sprintf("media?filter=allavailable&sort=mediaAdded&take=%d", recentlyAddedPageSize)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	for _, ref := range page.Results {
		if !ref.Status.Valid() {
			return nil, fmt.Errorf("media %d has no valid status", ref.ID)
		}
	}

	summaries, err := parallel(ctx, maxConcurrentLookups, page.Results,
		func(ctx context.Context, ref models.MediaReference) (models.ContentSummary, error) {
			detail, err := c.GetMedia(ctx, ref.TMDBID, ref.MediaType)
			if err != nil {
				return models.ContentSummary{}, err
			}
			return models.NewContentSummary(ref, detail), nil
		})
	observeAggregation("recently_added", err)
	if err != nil {
		return nil, err
	}

	c.logger.WithField("count", len(summaries)).Debug("Recently added media resolved")
	return summaries, nil
}

// GetMedia fetches the detail record of a title. The variant of the result
// follows mediaType, never the response content.
func (c *Client) GetMedia(ctx context.Context, id int, mediaType models.MediaType) (*models.MediaDetail, error) {
	switch mediaType {
	case models.MediaTypeTV:
		tv, err := c.GetTV(ctx, id)
		if err != nil {
			return nil, err
		}
		return &models.MediaDetail{Type: models.MediaTypeTV, TV: tv}, nil
	case models.MediaTypeMovie:
		movie, err := c.GetMovie(ctx, id)
		if err != nil {
			return nil, err
		}
		return &models.MediaDetail{Type: models.MediaTypeMovie, Movie: movie}, nil
	}
	return nil, fmt.Errorf("unsupported media type %q", mediaType)
}

// GetTV fetches a TV show by TMDB id
func (c *Client) GetTV(ctx context.Context, id int) (*models.TVDetail, error) {
	var detail models.TVDetail
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("tv/%d", id), nil, &detail); err != nil {
		return nil, err
	}
	if err := models.CheckMediaInfo(models.MediaTypeTV, detail.MediaInfo); err != nil {
		return nil, fmt.Errorf("tv/%d: %w", id, err)
	}

	c.logger.WithFields(logrus.Fields{
		"tmdb_id": id,
		"name":    detail.Name,
	}).Debug("Fetched TV detail")
	return &detail, nil
}

// GetMovie fetches a movie by TMDB id
func (c *Client) GetMovie(ctx context.Context, id int) (*models.MovieDetail, error) {
	var detail models.MovieDetail
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("movie/%d", id), nil, &detail); err != nil {
		return nil, err
	}
	if err := models.CheckMediaInfo(models.MediaTypeMovie, detail.MediaInfo); err != nil {
		return nil, fmt.Errorf("movie/%d: %w", id, err)
	}

	c.logger.WithFields(logrus.Fields{
		"tmdb_id": id,
		"title":   detail.Title,
	}).Debug("Fetched movie detail")
	return &detail, nil
}
