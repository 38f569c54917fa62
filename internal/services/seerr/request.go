package seerr

import (
	"context"
	"net/http"

	"github.com/amaumene/seerrctl/internal/models"
	"github.com/sirupsen/logrus"
)

// CreateRequestBody is the payload of a media request.
// Seasons is nil for movies; for TV it always points at the selected season numbers,
// so an empty selection is still sent as [].
type CreateRequestBody struct {
	MediaID   int              `json:"mediaId"`
	MediaType models.MediaType `json:"mediaType"`
	Seasons   *[]int           `json:"seasons,omitempty"`
}

// CreateRequest submits a request for a title. seasons is ignored for movies
// and sent verbatim for TV, nil as []; the server judges whether the selection is acceptable.
func (c *Client) CreateRequest(ctx context.Context, mediaID int, mediaType models.MediaType, seasons []int) (*models.MediaRequest, error) {
	body := CreateRequestBody{
		MediaID:   mediaID,
		MediaType: mediaType,
	}
	if mediaType == models.MediaTypeTV {
		if seasons == nil {
			seasons = []int{}
		}
		body.Seasons = &seasons
	}

	c.logger.WithFields(logrus.Fields{
		"media_id":   mediaID,
		"media_type": mediaType,
		"seasons":    seasons,
	}).Info("Submitting media request")

	var created models.MediaRequest
	if err := c.doRequest(ctx, http.MethodPost, "request", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
