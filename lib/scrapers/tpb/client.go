package tpb

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"tpb-scraper/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

var tracer = otel.Tracer("scrapers/tpb")
var meter = otel.Meter("scrapers/tpb")

var scrapeCounter, _ = meter.Int64Counter(
	"tpb.scrapes",
	metric.WithDescription("Number of main.js scrapes by outcome."),
)

const (
	DefaultMirror = "https://thepiratebay.org"
	ScriptPath    = "/static/main.js"
)

type Client struct {
	Mirror *url.URL
	Http   *resty.Client
}

type ClientOptions struct {
	// Mirror defaults to DefaultMirror.
	Mirror    string
	UserAgent string
	// BypassCloudflare swaps in a TLS config and headers that get past the
	// mirror's bot check.
	BypassCloudflare bool
	// Instrument receives request/response dumps, it can be nil.
	Instrument restyutil.InstrumentOutput
}

func NewClient(opts ClientOptions) (*Client, error) {
	mirror := opts.Mirror
	if mirror == "" {
		mirror = DefaultMirror
	}
	mirror = strings.TrimRight(mirror, "/")
	mirrorUrl, err := url.Parse(mirror)
	if err != nil {
		return nil, err
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = restyutil.DefaultUserAgent
	}

	client := resty.New()
	client.SetBaseURL(mirror)
	client.SetHeader("user-agent", userAgent)
	// a 3xx is handed back as-is so it surfaces as a non-2xx FetchError
	client.SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}))
	if opts.BypassCloudflare {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}

	restyutil.InstrumentClient(client, otel.Tracer("scrapers/tpb/http"), opts.Instrument)

	return &Client{
		Mirror: mirrorUrl,
		Http:   client,
	}, nil
}

func (c *Client) ScriptUrl() string {
	return c.Mirror.String() + ScriptPath
}

// FetchScript downloads main.js from the mirror. It makes exactly one request.
func (c *Client) FetchScript(ctx context.Context) (string, error) {
	ctx, span := tracer.Start(ctx, "client:FetchScript")
	defer span.End()

	link := c.ScriptUrl()
	span.SetAttributes(attribute.String("custom.url", link))

	res, err := c.Http.R().
		SetContext(ctx).
		Get(ScriptPath)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch main.js")
		return "", &FetchError{URL: link, Err: err}
	}
	if !res.IsSuccess() {
		fetchErr := &FetchError{
			URL:        link,
			StatusCode: res.StatusCode(),
			Status:     res.Status(),
		}
		span.SetStatus(codes.Error, fetchErr.Error())
		return "", fetchErr
	}

	span.SetAttributes(attribute.Int("custom.contentlength", len(res.Body())))
	return res.String(), nil
}

// Scrape fetches main.js and extracts categories and trackers from it.
func (c *Client) Scrape(ctx context.Context) (Result, error) {
	ctx, span := tracer.Start(ctx, "client:Scrape")
	defer span.End()

	text, err := c.FetchScript(ctx)
	if err != nil {
		scrapeCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "fetch_error")))
		return Result{}, err
	}

	result, err := Extract(text)
	if err != nil {
		scrapeCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "malformed")))
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract main.js")
		return Result{}, err
	}
	scrapeCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "ok")))

	span.SetAttributes(
		attribute.Int("custom.categories", len(result.Categories)),
		attribute.Int("custom.trackers", len(result.Trackers)),
	)
	return result, nil
}
