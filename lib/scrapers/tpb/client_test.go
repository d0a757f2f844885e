package tpb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"tpb-scraper/lib/restyutil"
	"tpb-scraper/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func newMirror(t testing.TB, handler http.HandlerFunc) (*httptest.Server, *int32) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return server, &hits
}

func TestScrape(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/tpb")
	defer cleanup()

	var userAgent string
	server, hits := newMirror(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != ScriptPath {
			http.NotFound(w, r)
			return
		}
		userAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/javascript")
		w.Write([]byte(mainJs))
	})

	// trailing slashes should not produce "//static/main.js"
	client, err := NewClient(ClientOptions{
		Mirror:    server.URL + "/",
		UserAgent: "tpb-scraper-test",
	})
	require.NoError(t, err)
	require.Equal(t, server.URL+ScriptPath, client.ScriptUrl())

	result, err := client.Scrape(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Categories, 4)
	require.Len(t, result.Trackers, 4)
	require.Equal(t, "tpb-scraper-test", userAgent)
	require.EqualValues(t, 1, atomic.LoadInt32(hits))
}

func TestFetchNonSuccess(t *testing.T) {
	server, hits := newMirror(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("down for maintenance"))
	})

	client, err := NewClient(ClientOptions{Mirror: server.URL})
	require.NoError(t, err)

	_, err = client.Scrape(context.Background())
	require.Error(t, err)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	require.Equal(t, http.StatusServiceUnavailable, fetchErr.StatusCode)
	require.Equal(t, server.URL+ScriptPath, fetchErr.URL)
	require.Nil(t, fetchErr.Err)
	require.Contains(t, err.Error(), "503")

	// no retries
	require.EqualValues(t, 1, atomic.LoadInt32(hits))
}

func TestFetchDoesNotFollowRedirects(t *testing.T) {
	var redirectedHits int32
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&redirectedHits, 1)
		w.Write([]byte(mainJs))
	}))
	defer target.Close()

	server, _ := newMirror(t, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target.URL+ScriptPath, http.StatusFound)
	})

	client, err := NewClient(ClientOptions{Mirror: server.URL})
	require.NoError(t, err)

	_, err = client.FetchScript(context.Background())
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	require.Equal(t, http.StatusFound, fetchErr.StatusCode)
	require.Zero(t, atomic.LoadInt32(&redirectedHits))
}

func TestFetchTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	mirror := server.URL
	server.Close()

	client, err := NewClient(ClientOptions{Mirror: mirror})
	require.NoError(t, err)

	_, err = client.FetchScript(context.Background())
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	require.NotNil(t, fetchErr.Err)
	require.Zero(t, fetchErr.StatusCode)
}

func TestFetchMalformed(t *testing.T) {
	server, _ := newMirror(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`category:101">Music</a>`))
	})

	client, err := NewClient(ClientOptions{Mirror: server.URL})
	require.NoError(t, err)

	_, err = client.Scrape(context.Background())
	var malformed *MalformedInputError
	require.True(t, errors.As(err, &malformed))
}

func TestInstrumentOutput(t *testing.T) {
	telemetry.InitSlog(true)
	defer telemetry.InitSlog(false)

	server, _ := newMirror(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(mainJs))
	})

	dir := filepath.Join(t.TempDir(), "dumps")
	output, err := restyutil.NewFilesystemOutput(dir)
	require.NoError(t, err)

	client, err := NewClient(ClientOptions{Mirror: server.URL, Instrument: output})
	require.NoError(t, err)
	_, err = client.FetchScript(context.Background())
	require.NoError(t, err)

	dump, err := os.ReadFile(filepath.Join(dir, "1"))
	require.NoError(t, err)
	require.Contains(t, string(dump), "---- REQUEST ----")
	require.Contains(t, string(dump), "print_category_menu")
}

func TestDefaultUserAgent(t *testing.T) {
	var userAgent string
	server, _ := newMirror(t, func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		w.Write([]byte(mainJs))
	})

	client, err := NewClient(ClientOptions{Mirror: server.URL})
	require.NoError(t, err)
	_, err = client.FetchScript(context.Background())
	require.NoError(t, err)
	require.Equal(t, restyutil.DefaultUserAgent, userAgent)
}
