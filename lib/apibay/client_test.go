package apibay

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"tpb-scraper/lib/restyutil"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const searchBody = `[
	{"id":"7","name":"Ubuntu 24.04 Desktop","info_hash":"ABCDEF0123456789ABCDEF0123456789ABCDEF01","leechers":"3","seeders":"120","num_files":"1","size":"6114656256","username":"canonical","added":"1714000000","status":"vip","category":"303","imdb":""},
	{"id":8,"name":"Debian 12","info_hash":"0123456789ABCDEF0123456789ABCDEF01234567","leechers":0,"seeders":12,"num_files":2,"size":661651456,"username":"debian","added":1700000000,"status":"trusted","category":303,"imdb":null}
]`

const emptySearchBody = `[{"id":"0","name":"No results returned","info_hash":"0000000000000000000000000000000000000000","leechers":"0","seeders":"0","num_files":"0","size":"0","username":"","added":"0","status":"member","category":"0","imdb":""}]`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(ClientOptions{BaseUrl: server.URL, UserAgent: "apibay-test"})
}

func TestSearch(t *testing.T) {
	var query url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/q.php", r.URL.Path)
		require.Equal(t, "apibay-test", r.Header.Get("user-agent"))
		query = r.URL.Query()
		w.Header().Set("content-type", "text/html")
		_, _ = w.Write([]byte(searchBody))
	})

	category := Category(303)
	torrents, err := client.Search(context.Background(), "linux iso", &category)
	require.NoError(t, err)
	require.Equal(t, "linux iso", query.Get("q"))
	require.Equal(t, "303", query.Get("cat"))

	expected := []PartialTorrent{
		{
			ID:       7,
			Name:     "Ubuntu 24.04 Desktop",
			InfoHash: "ABCDEF0123456789ABCDEF0123456789ABCDEF01",
			Leechers: 3,
			Seeders:  120,
			NumFiles: 1,
			Size:     6114656256,
			Username: "canonical",
			Added:    time.Unix(1714000000, 0).UTC(),
			Status:   StatusVip,
			Category: 303,
		},
		{
			ID:       8,
			Name:     "Debian 12",
			InfoHash: "0123456789ABCDEF0123456789ABCDEF01234567",
			Seeders:  12,
			NumFiles: 2,
			Size:     661651456,
			Username: "debian",
			Added:    time.Unix(1700000000, 0).UTC(),
			Status:   StatusTrusted,
			Category: 303,
		},
	}
	if diff := cmp.Diff(expected, torrents); diff != "" {
		t.Fatalf("search mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchNoResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "", r.URL.Query().Get("cat"))
		_, _ = w.Write([]byte(emptySearchBody))
	})

	torrents, err := client.Search(context.Background(), "nothing matches this", nil)
	require.NoError(t, err)
	require.Empty(t, torrents)
}

func TestTop100(t *testing.T) {
	var paths []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_, _ = w.Write([]byte(searchBody))
	})

	_, err := client.Top100(context.Background(), Category(200), false)
	require.NoError(t, err)
	torrents, err := client.Top100(context.Background(), Category(207), true)
	require.NoError(t, err)
	require.Len(t, torrents, 2)

	require.Equal(t, []string{
		"/precompiled/data_top100_200.json",
		"/precompiled/data_top100_48h_207.json",
	}, paths)
}

func TestTorrent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/t.php", r.URL.Path)
		require.Equal(t, "7", r.URL.Query().Get("id"))
		_, _ = w.Write([]byte(`{"id":7,"name":"Ubuntu","info_hash":"AB","leechers":1,"seeders":2,"num_files":1,"size":10,"username":"canonical","added":1714000000,"status":"helper","category":303,"imdb":"tt0000001","descr":"an os","language":1,"textlanguage":null}`))
	})

	torrent, err := client.Torrent(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, uint64(7), torrent.ID)
	require.Equal(t, StatusHelper, torrent.Status)
	require.Equal(t, "tt0000001", torrent.IMDB)
	require.Equal(t, "an os", torrent.Descr)
	require.NotNil(t, torrent.Language)
	require.Equal(t, 1, *torrent.Language)
	require.Nil(t, torrent.TextLanguage)
}

func TestTorrentFiles(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/f.php", r.URL.Path)
		_, _ = w.Write([]byte(`[{"name":["ubuntu.iso"],"size":[6114656256]},{"name":["SHA256SUMS"],"size":["98"]}]`))
	})

	files, err := client.TorrentFiles(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, []TorrentFile{
		{Name: "ubuntu.iso", Size: 6114656256},
		{Name: "SHA256SUMS", Size: 98},
	}, files)
}

func TestTorrentFilesNotUnit(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"name":["a","b"],"size":[1]}]`))
	})

	_, err := client.TorrentFiles(context.Background(), 7)
	require.ErrorContains(t, err, "expected an array of length 1, got 2")
}

func TestUnknownStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"name":"x","info_hash":"x","leechers":0,"seeders":0,"num_files":0,"size":0,"username":"x","added":0,"status":"overlord","category":100,"imdb":null}]`))
	})

	_, err := client.Search(context.Background(), "x", nil)
	require.ErrorContains(t, err, `unknown value "overlord"`)
}

func TestResponseError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Top100(context.Background(), Category(100), false)
	require.Error(t, err)

	var resErr *ResponseError
	require.True(t, errors.As(err, &resErr))
	require.Equal(t, http.StatusBadGateway, resErr.StatusCode)
	require.Equal(t, "/precompiled/data_top100_100.json", resErr.Endpoint)
}

func TestMagnet(t *testing.T) {
	torrent := PartialTorrent{InfoHash: "ABCDEF", Name: "Some Name & more"}
	link := torrent.Magnet()

	require.Regexp(t, `^magnet:\?xt=urn:btih:ABCDEF&`, link)
	parsed, err := url.Parse(link)
	require.NoError(t, err)

	query := parsed.Query()
	require.Equal(t, "Some Name & more", query.Get("dn"))
	require.Equal(t, Trackers, query["tr"])
}

func TestDefaultUserAgent(t *testing.T) {
	var userAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("user-agent")
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientOptions{BaseUrl: server.URL})
	_, err := client.TorrentFiles(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, restyutil.DefaultUserAgent, userAgent)
}
