package models

import (
	"encoding/json"
	"fmt"
)

// SearchResponse is the envelope of the search endpoint
type SearchResponse struct {
	Page         int            `json:"page"`
	TotalPages   int            `json:"totalPages"`
	TotalResults int            `json:"totalResults"`
	Results      []SearchResult `json:"results"`
}

// MovieResult is a movie hit
type MovieResult struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Overview    string     `json:"overview"`
	PosterPath  string     `json:"posterPath"`
	ReleaseDate string     `json:"releaseDate,omitempty"`
	MediaInfo   *MediaInfo `json:"mediaInfo,omitempty"`
}

// TVResult is a TV show hit
type TVResult struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Overview     string     `json:"overview"`
	PosterPath   string     `json:"posterPath"`
	FirstAirDate string     `json:"firstAirDate,omitempty"`
	MediaInfo    *MediaInfo `json:"mediaInfo,omitempty"`
}

// PersonResult is a person hit; people are never requestable
type PersonResult struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ProfilePath string `json:"profilePath,omitempty"`
}

// SearchResult is a tagged union keyed on MediaType. Exactly one variant is set.
type SearchResult struct {
	MediaType MediaType
	Movie     *MovieResult
	TV        *TVResult
	Person    *PersonResult
}

// UnmarshalJSON decodes the variant named by the mediaType discriminant
func (r *SearchResult) UnmarshalJSON(data []byte) error {
	var head struct {
		MediaType MediaType `json:"mediaType"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	*r = SearchResult{MediaType: head.MediaType}
	switch head.MediaType {
	case MediaTypeMovie:
		r.Movie = &MovieResult{}
		if err := json.Unmarshal(data, r.Movie); err != nil {
			return err
		}
		return CheckMediaInfo(MediaTypeMovie, r.Movie.MediaInfo)
	case MediaTypeTV:
		r.TV = &TVResult{}
		if err := json.Unmarshal(data, r.TV); err != nil {
			return err
		}
		return CheckMediaInfo(MediaTypeTV, r.TV.MediaInfo)
	case MediaTypePerson:
		r.Person = &PersonResult{}
		return json.Unmarshal(data, r.Person)
	}
	return fmt.Errorf("unexpected search result media type %q", head.MediaType)
}

// MarshalJSON writes the active variant with its discriminant
func (r SearchResult) MarshalJSON() ([]byte, error) {
	switch r.MediaType {
	case MediaTypeMovie:
		return json.Marshal(struct {
			MediaType MediaType `json:"mediaType"`
			*MovieResult
		}{r.MediaType, r.Movie})
	case MediaTypeTV:
		return json.Marshal(struct {
			MediaType MediaType `json:"mediaType"`
			*TVResult
		}{r.MediaType, r.TV})
	case MediaTypePerson:
		return json.Marshal(struct {
			MediaType MediaType `json:"mediaType"`
			*PersonResult
		}{r.MediaType, r.Person})
	}
	return nil, fmt.Errorf("unexpected search result media type %q", r.MediaType)
}

// ID returns the TMDB id of the active variant
func (r *SearchResult) ID() int {
	switch r.MediaType {
	case MediaTypeMovie:
		return r.Movie.ID
	case MediaTypeTV:
		return r.TV.ID
	case MediaTypePerson:
		return r.Person.ID
	}
	panic(fmt.Sprintf("unhandled media type %q", r.MediaType))
}

// Title returns the display name of the active variant
func (r *SearchResult) Title() string {
	switch r.MediaType {
	case MediaTypeMovie:
		return r.Movie.Title
	case MediaTypeTV:
		return r.TV.Name
	case MediaTypePerson:
		return r.Person.Name
	}
	panic(fmt.Sprintf("unhandled media type %q", r.MediaType))
}

// MediaInfo returns the attached media info; people never carry any
func (r *SearchResult) MediaInfo() *MediaInfo {
	switch r.MediaType {
	case MediaTypeMovie:
		return r.Movie.MediaInfo
	case MediaTypeTV:
		return r.TV.MediaInfo
	case MediaTypePerson:
		return nil
	}
	panic(fmt.Sprintf("unhandled media type %q", r.MediaType))
}
