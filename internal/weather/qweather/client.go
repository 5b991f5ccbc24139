// Package qweather fetches daily forecasts from the QWeather v7 API using
// Ed25519-signed JWT authentication.
package qweather

import (
	"context"
	"crypto"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/klauspost/compress/gzhttp"
	"github.com/tidwall/gjson"

	"github.com/chris/morning/internal/weather"
)

const (
	DefaultHost     = "https://devapi.qweather.com"
	DefaultLocation = "101040500"
	DefaultLang     = "zh-hans"
	DefaultUnit     = "m"

	forecastPath = "/v7/weather/3d"
	tokenTTL     = 10 * time.Minute
)

var (
	// ErrAPI is returned when the response carries a non-200 status code.
	ErrAPI = errors.New("qweather api error")
	// ErrNoForecast is returned when the response has no daily entries.
	ErrNoForecast = errors.New("qweather response has no daily forecast")
)

type Config struct {
	Host          string
	Location      string
	Lang          string
	Unit          string
	CredentialsID string
	ProjectID     string
	PrivateKeyPEM string
	Timeout       time.Duration
}

type Client struct {
	cfg  Config
	key  crypto.PrivateKey
	http *http.Client
	now  func() time.Time
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New parses the PEM key and fills unset request parameters with defaults.
func New(cfg Config, opts ...Option) (*Client, error) {
	key, err := jwt.ParseEdPrivateKeyFromPEM([]byte(cfg.PrivateKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("parsing qweather private key: %w", err)
	}
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Location == "" {
		cfg.Location = DefaultLocation
	}
	if cfg.Lang == "" {
		cfg.Lang = DefaultLang
	}
	if cfg.Unit == "" {
		cfg.Unit = DefaultUnit
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	c := &Client{
		cfg: cfg,
		key: key,
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: gzhttp.Transport(http.DefaultTransport),
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Token signs a short-lived JWT with header {alg: EdDSA, kid} and claims
// {sub, iat, exp}.
func (c *Client) Token() (string, error) {
	now := c.now()
	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, jwt.RegisteredClaims{
		Subject:   c.cfg.ProjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	})
	delete(token.Header, "typ")
	token.Header["kid"] = c.cfg.CredentialsID
	signed, err := token.SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("signing qweather token: %w", err)
	}
	return signed, nil
}

// Today returns the first day of the 3-day forecast.
func (c *Client) Today(ctx context.Context) (weather.Record, error) {
	token, err := c.Token()
	if err != nil {
		return weather.Record{}, err
	}

	q := url.Values{}
	q.Set("location", c.cfg.Location)
	q.Set("lang", c.cfg.Lang)
	q.Set("unit", c.cfg.Unit)
	endpoint := strings.TrimRight(c.cfg.Host, "/") + forecastPath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return weather.Record{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return weather.Record{}, fmt.Errorf("qweather request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return weather.Record{}, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return weather.Record{}, fmt.Errorf("%w: %s %s", ErrAPI, resp.Status, string(body))
	}
	return parseForecast(body)
}

func parseForecast(body []byte) (weather.Record, error) {
	if !gjson.ValidBytes(body) {
		return weather.Record{}, fmt.Errorf("%w: invalid json", ErrAPI)
	}
	if code := gjson.GetBytes(body, "code").String(); code != "200" {
		return weather.Record{}, fmt.Errorf("%w: code %q", ErrAPI, code)
	}
	day := gjson.GetBytes(body, "daily.0")
	if !day.IsObject() {
		return weather.Record{}, ErrNoForecast
	}
	var rec weather.Record
	if err := json.Unmarshal([]byte(day.Raw), &rec); err != nil {
		return weather.Record{}, fmt.Errorf("decoding forecast: %w", err)
	}
	return rec, nil
}
