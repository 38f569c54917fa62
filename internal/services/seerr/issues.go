package seerr

import (
	"context"
	"fmt"
	"net/http"

	"github.com/amaumene/seerrctl/internal/models"
	"github.com/sirupsen/logrus"
)

type issueCommentBody struct {
	Message string `json:"message"`
}

// GetIssues lists issues, fetching each issue's full record (with comments)
// and the title and poster of the media it was filed against
func (c *Client) GetIssues(ctx context.Context) ([]models.Issue, error) {
	var page models.ListResponse[models.Issue]
	if err := c.doRequest(ctx, http.MethodGet, "issue", nil, &page); err != nil {
		return nil, err
	}

	issues, err := parallel(ctx, maxConcurrentLookups, page.Results,
		func(ctx context.Context, issue models.Issue) (models.Issue, error) {
			var full models.Issue
			if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("issue/%d", issue.ID), nil, &full); err != nil {
				return models.Issue{}, err
			}

			detail, err := c.GetMedia(ctx, issue.Media.TMDBID, issue.Media.MediaType)
			if err != nil {
				return models.Issue{}, err
			}
			full.Title = detail.Title()
			full.PosterPath = detail.PosterPath()
			return full, nil
		})
	observeAggregation("issues", err)
	if err != nil {
		return nil, err
	}

	c.logger.WithField("count", len(issues)).Debug("Issues resolved")
	return issues, nil
}

// AddIssueComment appends a comment to an issue. Blank messages must be
// rejected by the caller; they are sent as-is.
func (c *Client) AddIssueComment(ctx context.Context, issueID int, message string) (*models.IssueComment, error) {
	var comment models.IssueComment
	path := fmt.Sprintf("issue/%d/comment", issueID)
	if err := c.doRequest(ctx, http.MethodPost, path, issueCommentBody{Message: message}, &comment); err != nil {
		return nil, err
	}

	c.logger.WithField("issue_id", issueID).Info("Comment added to issue")
	return &comment, nil
}

// UpdateIssueStatus reopens or resolves an issue
func (c *Client) UpdateIssueStatus(ctx context.Context, issueID int, status models.IssueStatus) (*models.Issue, error) {
	var issue models.Issue
	path := fmt.Sprintf("issue/%d/%s", issueID, status.Action())
	if err := c.doRequest(ctx, http.MethodPost, path, nil, &issue); err != nil {
		return nil, err
	}

	c.logger.WithFields(logrus.Fields{
		"issue_id": issueID,
		"status":   status,
	}).Info("Issue status updated")
	return &issue, nil
}
