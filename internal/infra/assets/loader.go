// Package assets baja (o lee de disco) las imágenes que pide el compositor.
package assets

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp" // los héroes vienen en webp

	"github.com/jose-valero/deadlock-match-bot/internal/infra/cache"
)

const maxAssetBytes = 8 << 20

type Option func(*Loader)

func WithHTTPClient(h *http.Client) Option {
	return func(l *Loader) { l.http = h }
}

func WithCache(c cache.Cache) Option {
	return func(l *Loader) { l.cache = c }
}

func WithLogger(log *zap.Logger) Option {
	return func(l *Loader) { l.log = log }
}

type Loader struct {
	http  *http.Client
	cache cache.Cache
	log   *zap.Logger
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		http:  &http.Client{Timeout: 10 * time.Second},
		cache: cache.Nop{},
		log:   zap.NewNop(),
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Load acepta http(s)://, file:// o un path local.
func (l *Loader) Load(ctx context.Context, ref string) (image.Image, error) {
	b, err := l.read(ctx, ref)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", ref, err)
	}
	return img, nil
}

func (l *Loader) read(ctx context.Context, ref string) ([]byte, error) {
	switch {
	case ref == "":
		return nil, errors.New("empty asset ref")
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return l.fetch(ctx, ref)
	default:
		return os.ReadFile(strings.TrimPrefix(ref, "file://"))
	}
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	key := cacheKey(url)
	if b, err := l.cache.Get(ctx, key); err == nil {
		return b, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		l.log.Warn("asset cache get", zap.String("url", url), zap.Error(err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "deadlock-bot/1.0")
	res, err := l.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("asset http: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("asset %s: status %d", url, res.StatusCode)
	}
	b, err := io.ReadAll(io.LimitReader(res.Body, maxAssetBytes))
	if err != nil {
		return nil, fmt.Errorf("asset read: %w", err)
	}

	if err := l.cache.Set(ctx, key, b, cache.AssetTTL); err != nil {
		l.log.Warn("asset cache set", zap.String("url", url), zap.Error(err))
	}
	return b, nil
}

func cacheKey(url string) string {
	sum := sha256.Sum256([]byte(url))
	return "asset:" + hex.EncodeToString(sum[:])
}
