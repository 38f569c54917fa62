package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchResultDecodesVariants(t *testing.T) {
	raw := `{"page":1,"totalPages":1,"totalResults":3,"results":[
		{"id":438631,"mediaType":"movie","title":"Dune","posterPath":"/d.jpg","mediaInfo":{"id":1,"mediaType":"movie","status":5}},
		{"id":1399,"mediaType":"tv","name":"Game of Thrones","posterPath":"/g.jpg"},
		{"id":12,"mediaType":"person","name":"Frank Herbert"}
	]}`

	var response SearchResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &response))
	require.Len(t, response.Results, 3)

	movie := response.Results[0]
	require.Equal(t, MediaTypeMovie, movie.MediaType)
	require.NotNil(t, movie.Movie)
	assert.Nil(t, movie.TV)
	assert.Equal(t, "Dune", movie.Title())
	assert.Equal(t, 438631, movie.ID())
	assert.Equal(t, MediaStatusAvailable, StatusOf(movie.MediaInfo()))

	tv := response.Results[1]
	require.NotNil(t, tv.TV)
	assert.Equal(t, "Game of Thrones", tv.Title())
	assert.Nil(t, tv.MediaInfo())

	person := response.Results[2]
	require.NotNil(t, person.Person)
	assert.Equal(t, "Frank Herbert", person.Title())
	assert.Nil(t, person.MediaInfo())
}

func TestSearchResultRejectsUnknownVariant(t *testing.T) {
	var r SearchResult
	assert.Error(t, json.Unmarshal([]byte(`{"id":1,"mediaType":"collection"}`), &r))
	assert.Error(t, json.Unmarshal([]byte(`{"id":1}`), &r))
}

func TestSearchResultRejectsMismatchedMediaInfo(t *testing.T) {
	var r SearchResult
	err := json.Unmarshal([]byte(`{"id":1,"mediaType":"tv","name":"x","mediaInfo":{"id":2,"mediaType":"movie","status":1}}`), &r)
	assert.Error(t, err)
}

func TestSearchResultMarshalKeepsDiscriminant(t *testing.T) {
	r := SearchResult{MediaType: MediaTypeTV, TV: &TVResult{ID: 1399, Name: "Game of Thrones"}}
	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "tv", decoded["mediaType"])
	assert.Equal(t, "Game of Thrones", decoded["name"])
}

func TestNewContentSummary(t *testing.T) {
	ref := MediaReference{ID: 3, MediaType: MediaTypeMovie, TMDBID: 438631, Status: MediaStatusPartiallyAvailable}
	info := &MediaInfo{ID: 3, MediaType: MediaTypeMovie, Status: MediaStatusAvailable}
	detail := &MediaDetail{Type: MediaTypeMovie, Movie: &MovieDetail{ID: 438631, Title: "Dune", PosterPath: "/d.jpg", MediaInfo: info}}

	summary := NewContentSummary(ref, detail)
	assert.Equal(t, ContentSummary{
		ID:         438631,
		Type:       MediaTypeMovie,
		Title:      "Dune",
		PosterPath: "/d.jpg",
		Status:     MediaStatusPartiallyAvailable,
		MediaInfo:  info,
	}, summary)
}
