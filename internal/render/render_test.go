package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/amaumene/seerrctl/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusBadge(t *testing.T) {
	assert.Equal(t, "", StatusBadge(0))
	assert.Equal(t, "", StatusBadge(models.MediaStatusUnknown))
	assert.Contains(t, StatusBadge(models.MediaStatusAvailable), "✔ Available")
	assert.Contains(t, StatusBadge(models.MediaStatusPartiallyAvailable), "Partially Available")
	assert.Contains(t, StatusBadge(models.MediaStatusProcessing), "Requested")
}

func TestSummariesKeepOrder(t *testing.T) {
	var buf bytes.Buffer
	Summaries(&buf, []models.ContentSummary{
		{ID: 2, Type: models.MediaTypeTV, Title: "Severance", Status: models.MediaStatusAvailable},
		{ID: 1, Type: models.MediaTypeMovie, Title: "Alien", Status: models.MediaStatusPartiallyAvailable},
	})

	out := buf.String()
	assert.Less(t, strings.Index(out, "Severance"), strings.Index(out, "Alien"))
	assert.Contains(t, out, "tv #2")
}

func TestSearchResultsListsEveryVariant(t *testing.T) {
	var buf bytes.Buffer
	SearchResults(&buf, []models.SearchResult{
		{MediaType: models.MediaTypeMovie, Movie: &models.MovieResult{ID: 438631, Title: "Dune", ReleaseDate: "2021-09-15"}},
		{MediaType: models.MediaTypeTV, TV: &models.TVResult{ID: 90228, Name: "Dune: Prophecy", MediaInfo: &models.MediaInfo{Status: models.MediaStatusPending}}},
		{MediaType: models.MediaTypePerson, Person: &models.PersonResult{ID: 1, Name: "Frank Herbert"}},
	})

	out := buf.String()
	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "(2021)")
	assert.Contains(t, out, "Pending")
	assert.Contains(t, out, "Frank Herbert")
}

func TestMediaDetailTV(t *testing.T) {
	var buf bytes.Buffer
	MediaDetail(&buf, &models.MediaDetail{
		Type: models.MediaTypeTV,
		TV: &models.TVDetail{
			ID:              1399,
			Name:            "Game of Thrones",
			Status:          "Ended",
			NumberOfSeasons: 1,
			Seasons:         []models.Season{{ID: 1, SeasonNumber: 1, Name: "Season 1", EpisodeCount: 10, AirDate: "2011-04-17"}},
			CreatedBy:       []models.Creator{{Name: "David Benioff"}},
			MediaInfo:       &models.MediaInfo{Status: models.MediaStatusAvailable, PlexURL: "https://app.plex.tv/x"},
		},
	}, "https://requests.example.com/tv/1399")

	out := buf.String()
	assert.Contains(t, out, "Created by: David Benioff")
	assert.Contains(t, out, "aired 17 Apr 2011")
	assert.Contains(t, out, "https://requests.example.com/tv/1399")
	assert.Contains(t, out, "https://app.plex.tv/x")
}

func TestIssues(t *testing.T) {
	season, episode := 2, 0
	var buf bytes.Buffer
	Issues(&buf, []models.Issue{{
		ID:             7,
		IssueType:      models.IssueTypeVideo,
		Status:         models.IssueStatusOpen,
		Title:          "Game of Thrones",
		ProblemSeason:  &season,
		ProblemEpisode: &episode,
		CreatedAt:      time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		CreatedBy:      models.User{DisplayName: "alice"},
		Comments:       []models.IssueComment{{Message: "green artifacts", User: models.User{DisplayName: "alice"}}},
	}})

	out := buf.String()
	assert.Contains(t, out, "[Video]")
	assert.Contains(t, out, "1 Mar 2024")
	assert.Contains(t, out, "episode All")
	assert.Contains(t, out, "green artifacts")

	buf.Reset()
	Issues(&buf, nil)
	assert.Equal(t, "No open issues\n", buf.String())
}
