// Package apibay is a client for the json api behind thepiratebay.org. It only
// fetches torrent metadata, it is not a torrent client.
package apibay

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"tpb-scraper/lib/restyutil"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("apibay")

const DefaultBaseUrl = "https://apibay.org"

// ResponseError is returned when the api answers with a non-2xx status.
type ResponseError struct {
	Endpoint   string
	StatusCode int
	Status     string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("apibay %s: unexpected status %s", e.Endpoint, e.Status)
}

type Client struct {
	Http *resty.Client
}

type ClientOptions struct {
	// BaseUrl defaults to DefaultBaseUrl.
	BaseUrl string
	// UserAgent defaults to restyutil.DefaultUserAgent, the same one the
	// scraper sends.
	UserAgent string
	// Instrument receives request/response dumps, it can be nil.
	Instrument restyutil.InstrumentOutput
}

func NewClient(opts ClientOptions) *Client {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = restyutil.DefaultUserAgent
	}

	client := resty.New()
	client.SetBaseURL(baseUrl)
	client.SetHeader("accept", "application/json")
	client.SetHeader("user-agent", userAgent)
	restyutil.InstrumentClient(client, otel.Tracer("apibay/http"), opts.Instrument)

	return &Client{Http: client}
}

func (c *Client) get(ctx context.Context, endpoint string, query map[string]string, out any) error {
	ctx, span := tracer.Start(ctx, "client:get")
	defer span.End()
	span.SetAttributes(attribute.String("custom.endpoint", endpoint))

	res, err := c.Http.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(endpoint)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to make request")
		return fmt.Errorf("apibay %s: %w", endpoint, err)
	}
	if !res.IsSuccess() {
		resErr := &ResponseError{
			Endpoint:   endpoint,
			StatusCode: res.StatusCode(),
			Status:     res.Status(),
		}
		span.SetStatus(codes.Error, resErr.Error())
		return resErr
	}

	// the api serves json as text/html, so resty's automatic decoding can't be used
	err = json.Unmarshal(res.Body(), out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to decode response")
		return fmt.Errorf("apibay %s: decode response: %w", endpoint, err)
	}
	return nil
}

// the api answers an empty search with a single placeholder entry
func dropPlaceholder(torrents []PartialTorrent) []PartialTorrent {
	out := make([]PartialTorrent, 0, len(torrents))
	for _, t := range torrents {
		if t.ID == 0 {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Search looks up torrents by name, optionally within a category.
func (c *Client) Search(ctx context.Context, query string, category *Category) ([]PartialTorrent, error) {
	cat := ""
	if category != nil {
		cat = strconv.FormatUint(uint64(category.Code()), 10)
	}

	var torrents []PartialTorrent
	err := c.get(ctx, "/q.php", map[string]string{"q": query, "cat": cat}, &torrents)
	if err != nil {
		return nil, err
	}
	return dropPlaceholder(torrents), nil
}

// Top100 returns the 100 most popular torrents in a category, or only those
// uploaded in the last 48 hours.
func (c *Client) Top100(ctx context.Context, category Category, last48h bool) ([]PartialTorrent, error) {
	specifier := ""
	if last48h {
		specifier = "_48h"
	}
	endpoint := fmt.Sprintf("/precompiled/data_top100%s_%d.json", specifier, category.Code())

	var torrents []PartialTorrent
	err := c.get(ctx, endpoint, nil, &torrents)
	if err != nil {
		return nil, err
	}
	return torrents, nil
}

// Torrent fetches the full details of a torrent by id.
func (c *Client) Torrent(ctx context.Context, id uint64) (Torrent, error) {
	var torrent Torrent
	err := c.get(ctx, "/t.php", map[string]string{"id": strconv.FormatUint(id, 10)}, &torrent)
	if err != nil {
		return Torrent{}, err
	}
	return torrent, nil
}

// TorrentFiles lists the files of a torrent by id.
func (c *Client) TorrentFiles(ctx context.Context, id uint64) ([]TorrentFile, error) {
	var files []TorrentFile
	err := c.get(ctx, "/f.php", map[string]string{"id": strconv.FormatUint(id, 10)}, &files)
	if err != nil {
		return nil, err
	}
	return files, nil
}
