package models

import (
	"fmt"
	"time"
)

// PosterBaseURL serves TMDB poster images at a grid-friendly width
const PosterBaseURL = "https://image.tmdb.org/t/p/w300"

// PosterURL returns the full image URL for a poster path, or "" when there is none
func PosterURL(posterPath string) string {
	if posterPath == "" {
		return ""
	}
	return PosterBaseURL + posterPath
}

// PageInfo describes one page of a list endpoint
type PageInfo struct {
	Pages    int `json:"pages"`
	PageSize int `json:"pageSize"`
	Results  int `json:"results"`
	Page     int `json:"page"`
}

// ListResponse is the envelope of paginated list endpoints
type ListResponse[T any] struct {
	PageInfo PageInfo `json:"pageInfo"`
	Results  []T      `json:"results"`
}

// MediaReference is the lightweight record returned by the media list endpoint
type MediaReference struct {
	ID        int         `json:"id"`
	MediaType MediaType   `json:"mediaType"`
	TMDBID    int         `json:"tmdbId"` // used for detail lookups
	TVDBID    int         `json:"tvdbId,omitempty"`
	Status    MediaStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// MediaInfo is the server-side tracking record attached to a title once requested
type MediaInfo struct {
	ID         int         `json:"id"`
	MediaType  MediaType   `json:"mediaType,omitempty"`
	TMDBID     int         `json:"tmdbId"`
	TVDBID     int         `json:"tvdbId,omitempty"`
	IMDBID     string      `json:"imdbId,omitempty"`
	Status     MediaStatus `json:"status"`
	PlexURL    string      `json:"plexUrl,omitempty"`
	IOSPlexURL string      `json:"iOSPlexUrl,omitempty"`
	ServiceURL string      `json:"serviceUrl,omitempty"`
}

// StatusOf returns the status of optional media info (zero when never requested)
func StatusOf(info *MediaInfo) MediaStatus {
	if info == nil {
		return 0
	}
	return info.Status
}

// CheckMediaInfo verifies that attached media info describes the same media type
func CheckMediaInfo(outer MediaType, info *MediaInfo) error {
	if info == nil || info.MediaType == "" {
		return nil
	}
	if info.MediaType != outer {
		return fmt.Errorf("media info type %q does not match %q", info.MediaType, outer)
	}
	return nil
}

// Cast is one credited actor
type Cast struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Character string `json:"character"`
}

// Crew is one credited crew member
type Crew struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// Credits groups cast and crew
type Credits struct {
	Cast []Cast `json:"cast"`
	Crew []Crew `json:"crew"`
}

// Directors returns the names of crew members credited as Director
func (c Credits) Directors() []string {
	var names []string
	for _, member := range c.Crew {
		if member.Job == "Director" {
			names = append(names, member.Name)
		}
	}
	return names
}

// Season is one season of a TV show
type Season struct {
	ID           int    `json:"id"`
	SeasonNumber int    `json:"seasonNumber"`
	Name         string `json:"name"`
	EpisodeCount int    `json:"episodeCount"`
	AirDate      string `json:"airDate,omitempty"`
}

// Creator is a credited show creator
type Creator struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TVDetail is the full record of a TV show
type TVDetail struct {
	ID               int        `json:"id"`
	Name             string     `json:"name"`
	OriginalName     string     `json:"originalName"`
	Overview         string     `json:"overview"`
	PosterPath       string     `json:"posterPath"`
	Status           string     `json:"status"` // e.g. "Returning Series"
	FirstAirDate     string     `json:"firstAirDate,omitempty"`
	NumberOfSeasons  int        `json:"numberOfSeasons"`
	NumberOfEpisodes int        `json:"numberOfEpisodes"`
	Seasons          []Season   `json:"seasons"`
	CreatedBy        []Creator  `json:"createdBy"`
	Credits          Credits    `json:"credits"`
	MediaInfo        *MediaInfo `json:"mediaInfo,omitempty"`
}

// SeasonNumbers returns every season number in server order
func (d *TVDetail) SeasonNumbers() []int {
	numbers := make([]int, 0, len(d.Seasons))
	for _, s := range d.Seasons {
		numbers = append(numbers, s.SeasonNumber)
	}
	return numbers
}

// MovieDetail is the full record of a movie
type MovieDetail struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	OriginalTitle string     `json:"originalTitle"`
	Overview      string     `json:"overview"`
	PosterPath    string     `json:"posterPath"`
	Status        string     `json:"status"` // e.g. "Released"
	ReleaseDate   string     `json:"releaseDate,omitempty"`
	Runtime       int        `json:"runtime,omitempty"`
	Credits       Credits    `json:"credits"`
	MediaInfo     *MediaInfo `json:"mediaInfo,omitempty"`
}

// MediaDetail holds exactly one of TV or Movie, selected by Type
type MediaDetail struct {
	Type  MediaType
	TV    *TVDetail
	Movie *MovieDetail
}

// Title returns the display title of whichever variant is set
func (d *MediaDetail) Title() string {
	switch d.Type {
	case MediaTypeTV:
		return d.TV.Name
	case MediaTypeMovie:
		return d.Movie.Title
	}
	panic(fmt.Sprintf("unhandled media type %q", d.Type))
}

// PosterPath returns the poster path of whichever variant is set
func (d *MediaDetail) PosterPath() string {
	switch d.Type {
	case MediaTypeTV:
		return d.TV.PosterPath
	case MediaTypeMovie:
		return d.Movie.PosterPath
	}
	panic(fmt.Sprintf("unhandled media type %q", d.Type))
}

// MediaInfo returns the attached media info of whichever variant is set
func (d *MediaDetail) MediaInfo() *MediaInfo {
	switch d.Type {
	case MediaTypeTV:
		return d.TV.MediaInfo
	case MediaTypeMovie:
		return d.Movie.MediaInfo
	}
	panic(fmt.Sprintf("unhandled media type %q", d.Type))
}

// ContentSummary is the uniform projection shown in lists and grids
type ContentSummary struct {
	ID         int         `json:"id"`
	Type       MediaType   `json:"type"`
	Title      string      `json:"title"`
	PosterPath string      `json:"posterPath"`
	Status     MediaStatus `json:"status"`
	MediaInfo  *MediaInfo  `json:"mediaInfo,omitempty"`
}

// NewContentSummary projects a resolved detail record, taking status from the reference
func NewContentSummary(ref MediaReference, detail *MediaDetail) ContentSummary {
	var id int
	switch detail.Type {
	case MediaTypeTV:
		id = detail.TV.ID
	case MediaTypeMovie:
		id = detail.Movie.ID
	default:
		panic(fmt.Sprintf("unhandled media type %q", detail.Type))
	}
	return ContentSummary{
		ID:         id,
		Type:       detail.Type,
		Title:      detail.Title(),
		PosterPath: detail.PosterPath(),
		Status:     ref.Status,
		MediaInfo:  detail.MediaInfo(),
	}
}
