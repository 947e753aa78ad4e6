package deadlock

import (
	"net/http"

	"github.com/jose-valero/deadlock-match-bot/internal/infra/cache"
)

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}
func WithAPIURL(u string) Option {
	return func(c *Client) { c.apiURL = u }
}
func WithAssetsURL(u string) Option {
	return func(c *Client) { c.assetsURL = u }
}

// WithCache guarda héroes y rangos; sin esto se usa cache.Nop.
func WithCache(cc cache.Cache) Option {
	return func(c *Client) { c.cache = cc }
}
