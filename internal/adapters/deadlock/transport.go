package deadlock

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jose-valero/deadlock-match-bot/internal/infra/cache"
)

const (
	defaultAPIURL    = "https://api.deadlock-api.com/v1"
	defaultAssetsURL = "https://assets.deadlock-api.com/v2"
	userAgent        = "deadlock-bot/1.0"
)

type Client struct {
	http      *http.Client
	apiURL    string
	assetsURL string
	cache     cache.Cache
}

func New(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: 10 * time.Second},
		apiURL:    defaultAPIURL,
		assetsURL: defaultAssetsURL,
		cache:     cache.Nop{},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// AssetsURL lo usa el bot para resolver paths relativos de imágenes.
func (c *Client) AssetsURL() string { return c.assetsURL }

// doJSON: arma URL, headers, maneja 404 y 429 con Retry-After (un reintento).
func (c *Client) doJSON(ctx context.Context, base, path string, q url.Values, out any) error {
	return c.do(ctx, base, path, q, out, true)
}

func (c *Client) do(ctx context.Context, base, path string, q url.Values, out any, retry bool) error {
	u := base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("deadlock http: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusTooManyRequests && retry {
		if sec, _ := strconv.Atoi(res.Header.Get("Retry-After")); sec > 0 {
			select {
			case <-time.After(time.Duration(sec) * time.Second):
			case <-ctx.Done():
				return ctx.Err()
			}
			return c.do(ctx, base, path, q, out, false)
		}
	}

	if res.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		return &APIError{Status: res.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("deadlock decode %s: %w", path, err)
	}
	return nil
}

// cached: intenta cache, si no va a la API y guarda el JSON ya decodificado.
func (c *Client) cached(ctx context.Context, key string, ttl time.Duration, out any, fetch func() error) error {
	if b, err := c.cache.Get(ctx, key); err == nil {
		if json.Unmarshal(b, out) == nil {
			return nil
		}
	}
	if err := fetch(); err != nil {
		return err
	}
	if b, err := json.Marshal(out); err == nil {
		_ = c.cache.Set(ctx, key, b, ttl)
	}
	return nil
}
