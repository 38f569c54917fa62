package controllers

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/amaumene/seerrctl/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeed struct {
	media     []models.ContentSummary
	issues    []models.Issue
	mediaErr  error
	issuesErr error
}

func (f *fakeFeed) GetRecentlyAdded(ctx context.Context) ([]models.ContentSummary, error) {
	return f.media, f.mediaErr
}

func (f *fakeFeed) GetIssues(ctx context.Context) ([]models.Issue, error) {
	return f.issues, f.issuesErr
}

func newTestWatch(t *testing.T, feed Feed) (*WatchController, *models.Database) {
	t.Helper()
	db, err := models.NewDatabase(filepath.Join(t.TempDir(), "watch.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewWatchController(db, feed, logger), db
}

func TestPollRecordsNewItemsOnce(t *testing.T) {
	feed := &fakeFeed{
		media: []models.ContentSummary{
			{ID: 1399, Type: models.MediaTypeTV, Title: "Game of Thrones", Status: models.MediaStatusAvailable},
			{ID: 438631, Type: models.MediaTypeMovie, Title: "Dune", Status: models.MediaStatusAvailable},
		},
		issues: []models.Issue{
			{ID: 7, IssueType: models.IssueTypeAudio, Title: "Dune"},
		},
	}
	watch, db := newTestWatch(t, feed)

	require.NoError(t, watch.Poll(context.Background()))
	status := watch.Status()
	assert.Equal(t, 1, status.Runs)
	assert.Equal(t, 2, status.NewMedia)
	assert.Equal(t, 1, status.NewIssues)

	// Second poll with one extra title only announces the new one
	feed.media = append(feed.media, models.ContentSummary{ID: 1, Type: models.MediaTypeMovie, Title: "Alien", Status: models.MediaStatusPartiallyAvailable})
	require.NoError(t, watch.Poll(context.Background()))
	status = watch.Status()
	assert.Equal(t, 2, status.Runs)
	assert.Equal(t, 3, status.NewMedia)
	assert.Equal(t, 1, status.NewIssues)

	item, err := db.GetSeen("media:movie:438631")
	require.NoError(t, err)
	assert.Equal(t, "Dune", item.Title)
	_, err = db.GetSeen("issue:7")
	assert.NoError(t, err)
}

func TestPollReportsFeedFailure(t *testing.T) {
	feed := &fakeFeed{mediaErr: errors.New("Not authorized")}
	watch, db := newTestWatch(t, feed)

	err := watch.Poll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Not authorized")
	assert.Contains(t, watch.Status().LastError, "Not authorized")

	counts, err := db.CountByKind()
	require.NoError(t, err)
	assert.Empty(t, counts)

	// A later successful run clears the error
	feed.mediaErr = nil
	require.NoError(t, watch.Poll(context.Background()))
	assert.Empty(t, watch.Status().LastError)
}
