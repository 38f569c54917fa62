package controllers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/amaumene/seerrctl/internal/models"
	"github.com/sirupsen/logrus"
)

// Feed is the subset of the API client the watcher polls
type Feed interface {
	GetRecentlyAdded(ctx context.Context) ([]models.ContentSummary, error)
	GetIssues(ctx context.Context) ([]models.Issue, error)
}

// WatchStatus summarises the watcher's recent activity
type WatchStatus struct {
	Runs      int       `json:"runs"`
	LastRun   time.Time `json:"last_run"`
	LastError string    `json:"last_error,omitempty"`
	NewMedia  int       `json:"new_media"`
	NewIssues int       `json:"new_issues"`
}

// WatchController announces newly available media and newly filed issues
type WatchController struct {
	db     *models.Database
	feed   Feed
	logger *logrus.Logger

	mu     sync.Mutex
	status WatchStatus
}

// NewWatchController creates a new watch controller
func NewWatchController(db *models.Database, feed Feed, logger *logrus.Logger) *WatchController {
	return &WatchController{
		db:     db,
		feed:   feed,
		logger: logger,
	}
}

// Poll fetches recently added media and issues and records the ones not seen before
func (c *WatchController) Poll(ctx context.Context) error {
	newMedia, newIssues, err := c.poll(ctx)

	c.mu.Lock()
	c.status.Runs++
	c.status.LastRun = time.Now()
	c.status.LastError = ""
	if err != nil {
		c.status.LastError = err.Error()
	}
	c.status.NewMedia += newMedia
	c.status.NewIssues += newIssues
	c.mu.Unlock()

	return err
}

func (c *WatchController) poll(ctx context.Context) (int, int, error) {
	summaries, err := c.feed.GetRecentlyAdded(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to fetch recently added media: %w", err)
	}

	newMedia := 0
	for _, s := range summaries {
		created, err := c.db.MarkSeen(&models.SeenItem{
			Key:   fmt.Sprintf("media:%s:%d", s.Type, s.ID),
			Kind:  "media",
			Title: s.Title,
		})
		if err != nil {
			return newMedia, 0, err
		}
		if created {
			newMedia++
			c.logger.WithFields(logrus.Fields{
				"title":  s.Title,
				"type":   s.Type,
				"status": s.Status.Label(),
				"poster": models.PosterURL(s.PosterPath),
			}).Info("New media available")
		}
	}

	issues, err := c.feed.GetIssues(ctx)
	if err != nil {
		return newMedia, 0, fmt.Errorf("failed to fetch issues: %w", err)
	}

	newIssues := 0
	for _, issue := range issues {
		created, err := c.db.MarkSeen(&models.SeenItem{
			Key:   fmt.Sprintf("issue:%d", issue.ID),
			Kind:  "issue",
			Title: issue.Title,
		})
		if err != nil {
			return newMedia, newIssues, err
		}
		if created {
			newIssues++
			c.logger.WithFields(logrus.Fields{
				"issue_id":   issue.ID,
				"title":      issue.Title,
				"type":       issue.IssueType.Label(),
				"created_by": issue.CreatedBy.DisplayName,
			}).Info("New issue reported")
		}
	}

	c.logger.WithFields(logrus.Fields{
		"new_media":  newMedia,
		"new_issues": newIssues,
	}).Debug("Watch poll completed")
	return newMedia, newIssues, nil
}

// Status returns a snapshot of the watcher's activity
func (c *WatchController) Status() WatchStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}
