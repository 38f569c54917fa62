package models

import (
	"strconv"
	"time"
)

// User is the public profile of a server account
type User struct {
	ID          int    `json:"id"`
	Email       string `json:"email,omitempty"`
	Username    string `json:"username,omitempty"`
	DisplayName string `json:"displayName"`
	Avatar      string `json:"avatar,omitempty"`
}

// IssueComment is one message in an issue thread
type IssueComment struct {
	ID        int       `json:"id"`
	Message   string    `json:"message"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

// IssueMedia is the media record an issue was filed against
type IssueMedia struct {
	ID         int         `json:"id"`
	MediaType  MediaType   `json:"mediaType"`
	TMDBID     int         `json:"tmdbId"`
	TVDBID     int         `json:"tvdbId,omitempty"`
	Status     MediaStatus `json:"status"`
	PlexURL    string      `json:"plexUrl,omitempty"`
	IOSPlexURL string      `json:"iOSPlexUrl,omitempty"`
}

// Issue is a user report of a playback or content problem
type Issue struct {
	ID             int            `json:"id"`
	IssueType      IssueType      `json:"issueType"`
	Status         IssueStatus    `json:"status"`
	ProblemSeason  *int           `json:"problemSeason,omitempty"`
	ProblemEpisode *int           `json:"problemEpisode,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	CreatedBy      User           `json:"createdBy"`
	Comments       []IssueComment `json:"comments"`
	Media          IssueMedia     `json:"media"`

	// Merged client-side from the media detail lookup
	Title      string `json:"title,omitempty"`
	PosterPath string `json:"posterPath,omitempty"`
}

// EpisodeLabel renders the reported episode; episode 0 covers the whole season
func (i *Issue) EpisodeLabel() string {
	if i.ProblemEpisode == nil {
		return ""
	}
	if *i.ProblemEpisode == 0 {
		return "All"
	}
	return strconv.Itoa(*i.ProblemEpisode)
}
