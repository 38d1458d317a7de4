package espn

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/sportsfeed/internal/platform/logging"
	"github.com/riskibarqy/sportsfeed/internal/platform/resilience"
	"github.com/riskibarqy/sportsfeed/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultCoreBaseURL      = "https://sports.core.api.espn.com/v2"
	defaultSiteBaseURL      = "https://site.api.espn.com/apis/site/v2"
	defaultStandingsBaseURL = "https://site.api.espn.com/apis/v2"
	defaultCommonBaseURL    = "https://site.web.api.espn.com/apis/common/v3"
	defaultCDNBaseURL       = "https://cdn.espn.com/core"
	defaultLang             = "en"
	defaultRegion           = "us"
	defaultTimeout          = 10 * time.Second
	defaultMaxConcurrency   = 50
	defaultPageLimit        = 1000
	maxResponseBytes        = 16 << 20
)

var errESPNTransient = crerr.New("espn transient failure")

type ClientConfig struct {
	HTTPClient       *http.Client
	CoreBaseURL      string
	SiteBaseURL      string
	StandingsBaseURL string
	CommonBaseURL    string
	CDNBaseURL       string
	Lang             string
	Region           string
	Timeout          time.Duration
	MaxConcurrency   int
	PageLimit        int
	Logger           *logging.Logger
	CircuitBreaker   resilience.CircuitBreakerConfig
}

// Client talks to the public ESPN core, site and cdn APIs and normalizes their payloads.
type Client struct {
	httpClient       *http.Client
	coreBaseURL      string
	siteBaseURL      string
	standingsBaseURL string
	commonBaseURL    string
	cdnBaseURL       string
	lang             string
	region           string
	maxConcurrency   int
	pageLimit        int
	logger           *logging.Logger
	breaker          *resilience.CircuitBreaker
	flight           resilience.Group[[]byte]
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	maxConcurrency := cfg.MaxConcurrency
	if maxConcurrency < 1 {
		maxConcurrency = defaultMaxConcurrency
	}
	pageLimit := cfg.PageLimit
	if pageLimit < 1 {
		pageLimit = defaultPageLimit
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.MaxIdleConnsPerHost = maxConcurrency
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(transport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	return &Client{
		httpClient:       httpClient,
		coreBaseURL:      baseURLOrDefault(cfg.CoreBaseURL, defaultCoreBaseURL),
		siteBaseURL:      baseURLOrDefault(cfg.SiteBaseURL, defaultSiteBaseURL),
		standingsBaseURL: baseURLOrDefault(cfg.StandingsBaseURL, defaultStandingsBaseURL),
		commonBaseURL:    baseURLOrDefault(cfg.CommonBaseURL, defaultCommonBaseURL),
		cdnBaseURL:       baseURLOrDefault(cfg.CDNBaseURL, defaultCDNBaseURL),
		lang:             firstNonEmpty(cfg.Lang, defaultLang),
		region:           firstNonEmpty(cfg.Region, defaultRegion),
		maxConcurrency:   maxConcurrency,
		pageLimit:        pageLimit,
		logger:           logger,
		breaker: resilience.NewCircuitBreaker(cfg.CircuitBreaker, func(from, to resilience.CircuitState) {
			logger.Warn("espn circuit breaker state changed", "from", from, "to", to)
		}),
	}
}

func baseURLOrDefault(raw, fallback string) string {
	value := strings.TrimRight(strings.TrimSpace(raw), "/")
	if value == "" {
		return fallback
	}
	return value
}

// getDocument fetches base+path with the default locale params and decodes the JSON object.
func (c *Client) getDocument(ctx context.Context, baseURL, path string, query url.Values) (map[string]any, error) {
	return c.getURL(ctx, baseURL+"/"+strings.TrimLeft(path, "/"), query)
}

// getURL fetches an absolute URL, typically a $ref link.
func (c *Client) getURL(ctx context.Context, rawURL string, extra url.Values) (map[string]any, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: parse url %q: %v", usecase.ErrInvalidInput, rawURL, err)
	}
	values := parsed.Query()
	for key, items := range extra {
		values.Del(key)
		for _, item := range items {
			values.Add(key, item)
		}
	}
	if !values.Has("lang") {
		values.Set("lang", c.lang)
	}
	if !values.Has("region") {
		values.Set("region", c.region)
	}
	parsed.RawQuery = values.Encode()

	var doc map[string]any
	if _, err := c.doJSON(ctx, parsed.String(), &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

// doJSON shares one upstream request among concurrent callers of the same URL.
// The shared request is detached from any single caller's cancellation; each
// caller stops waiting when its own context ends.
func (c *Client) doJSON(ctx context.Context, fullURL string, target any) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	shared := context.WithoutCancel(ctx)
	results := c.flight.DoChan(fullURL, func() ([]byte, error) {
		return c.guardedRequest(shared, fullURL)
	})

	var res resilience.Result[[]byte]
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-results:
	}
	if res.Err != nil {
		return nil, res.Err
	}

	if err := sonic.Unmarshal(res.Val, target); err != nil {
		return nil, fmt.Errorf("decode provider payload url=%s: %w", fullURL, err)
	}

	return res.Val, nil
}

// guardedRequest pairs every breaker admission with exactly one outcome.
func (c *Client) guardedRequest(ctx context.Context, fullURL string) ([]byte, error) {
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "espn circuit breaker rejected request", "state", c.breaker.State())
		return nil, fmt.Errorf("%w: sports data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}

	body, err := c.executeRequest(ctx, fullURL)
	if isCircuitFailure(err) {
		c.breaker.RecordFailure()
	} else {
		c.breaker.RecordSuccess()
	}
	return body, err
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		c.logger.WarnContext(ctx, "espn request failed", "url", fullURL, "error", err)
		return nil, crerr.Mark(fmt.Errorf("send request: %w", err), errESPNTransient)
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxResponseBytes)); err != nil {
		return nil, crerr.Mark(fmt.Errorf("read response body: %w", err), errESPNTransient)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		upstream := &usecase.UpstreamError{StatusCode: resp.StatusCode, URL: fullURL}
		c.logger.WarnContext(ctx, "espn request rejected",
			"url", fullURL,
			"status", resp.StatusCode,
			"body", abbreviateBody(buf.B),
		)
		if isTransientStatus(resp.StatusCode) {
			return nil, crerr.Mark(upstream, errESPNTransient)
		}
		return nil, upstream
	}

	raw := make([]byte, buf.Len())
	copy(raw, buf.B)
	return raw, nil
}

func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return crerr.Is(err, errESPNTransient) && !stderrors.Is(err, context.Canceled)
}

func isTransientStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
