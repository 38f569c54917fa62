package seerr

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/amaumene/seerrctl/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieAuthHeaders(t *testing.T) {
	var got *http.Request
	client, _ := newTestClient(t, config.AuthModeCookie, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		writeJSON(w, http.StatusOK, map[string]interface{}{"results": []interface{}{}})
	}))

	_, err := client.Search(context.Background(), "dune")
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/search", got.URL.Path)
	assert.Equal(t, "query=dune", got.URL.RawQuery)
	assert.Equal(t, "connect.sid=secret-token", got.Header.Get("Cookie"))
	assert.Empty(t, got.Header.Get("X-Api-Key"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(got.Header.Get("User-Agent"), "seerrctl/"))
}

func TestAPIKeyAuthHeaders(t *testing.T) {
	var got *http.Request
	client, _ := newTestClient(t, config.AuthModeAPIKey, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		writeJSON(w, http.StatusOK, map[string]interface{}{"results": []interface{}{}})
	}))

	_, err := client.Search(context.Background(), "dune")
	require.NoError(t, err)

	assert.Equal(t, "secret-token", got.Header.Get("X-Api-Key"))
	assert.Empty(t, got.Header.Get("Cookie"))
}

func TestServerURLWithBasePath(t *testing.T) {
	var path string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		writeJSON(w, http.StatusOK, map[string]interface{}{"id": 1, "title": "Dune"})
	})
	_, server := newTestClient(t, config.AuthModeCookie, handler)

	client, err := NewClient(&config.Config{
		ServerURL: server.URL + "/seerr/",
		Token:     "t",
		AuthMode:  config.AuthModeCookie,
	}, testLogger())
	require.NoError(t, err)

	_, err = client.GetMovie(context.Background(), 438631)
	require.NoError(t, err)
	assert.Equal(t, "/seerr/api/v1/movie/438631", path)
}

func TestSearchEncodesQuery(t *testing.T) {
	var rawQuery string
	client, _ := newTestClient(t, config.AuthModeCookie, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		writeJSON(w, http.StatusOK, map[string]interface{}{"results": []interface{}{}})
	}))

	_, err := client.Search(context.Background(), "fast & furious+1")
	require.NoError(t, err)
	assert.Equal(t, "query=fast%20%26%20furious%2B1", rawQuery)
}

func TestRequestErrorUsesServerMessage(t *testing.T) {
	client, _ := newTestClient(t, config.AuthModeCookie, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, map[string]string{"message": "Not authorized"})
	}))

	_, err := client.Search(context.Background(), "dune")
	require.Error(t, err)
	assert.Equal(t, "Not authorized", err.Error())

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusForbidden, reqErr.StatusCode)
	assert.True(t, reqErr.IsUnauthorized())
}

func TestRequestErrorFallbackMessage(t *testing.T) {
	bodies := map[string]string{
		"html":          "<html>Bad Gateway</html>",
		"empty":         "",
		"no message":    `{"error":"boom"}`,
		"blank message": `{"message":"  "}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			client, _ := newTestClient(t, config.AuthModeCookie, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				w.Write([]byte(body))
			}))

			_, err := client.GetTV(context.Background(), 1)
			require.Error(t, err)
			assert.Equal(t, "request failed with status 502", err.Error())
		})
	}
}

func TestTransportFailure(t *testing.T) {
	client, server := newTestClient(t, config.AuthModeCookie, http.NotFoundHandler())
	server.Close()

	_, err := client.Search(context.Background(), "dune")
	require.Error(t, err)

	var reqErr *RequestError
	assert.False(t, errors.As(err, &reqErr))
}

func TestNewClientValidation(t *testing.T) {
	cases := map[string]*config.Config{
		"no url":   {Token: "t", AuthMode: config.AuthModeCookie},
		"no token": {ServerURL: "http://localhost", AuthMode: config.AuthModeCookie},
		"bad mode": {ServerURL: "http://localhost", Token: "t", AuthMode: "bearer"},
		"no mode":  {ServerURL: "http://localhost", Token: "t"},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewClient(cfg, testLogger())
			assert.Error(t, err)
		})
	}
}

func TestWebURL(t *testing.T) {
	client, err := NewClient(&config.Config{
		ServerURL: "https://requests.example.com/",
		Token:     "t",
		AuthMode:  config.AuthModeAPIKey,
	}, testLogger())
	require.NoError(t, err)

	assert.Equal(t, "https://requests.example.com/tv/1399", client.WebURL("tv", 1399))
}

func TestEndpointLabel(t *testing.T) {
	assert.Equal(t, "media", endpointLabel("media?filter=allavailable&sort=mediaAdded&take=20"))
	assert.Equal(t, "tv/:id", endpointLabel("tv/1399"))
	assert.Equal(t, "issue/:id/comment", endpointLabel("issue/12/comment"))
	assert.Equal(t, "issue/:id/resolved", endpointLabel("/issue/12/resolved"))
}
