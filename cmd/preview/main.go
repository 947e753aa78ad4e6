// Lambda detrás de API Gateway (HTTP API v2): devuelve el PNG del scoreboard de ?match_id=.
package main

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/jose-valero/deadlock-match-bot/internal/adapters/deadlock"
	"github.com/jose-valero/deadlock-match-bot/internal/app/service"
	"github.com/jose-valero/deadlock-match-bot/internal/infra/assets"
	"github.com/jose-valero/deadlock-match-bot/internal/infra/cache"
	"github.com/jose-valero/deadlock-match-bot/internal/infra/logging"
	"github.com/jose-valero/deadlock-match-bot/internal/render/scoreboard"
)

const secretHeader = "x-preview-secret"

type renderer interface {
	Render(ctx context.Context, matchID int64) ([]byte, error)
}

var (
	log         *zap.Logger
	sb          renderer
	secretValue = os.Getenv("PREVIEW_SECRET")
)

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func init() {
	var err error
	log, err = logging.New(getenv("LOG_LEVEL", "info"))
	if err != nil {
		log = zap.NewNop()
	}

	// Redis opcional; entre invocaciones calientes reusa héroes/rangos/imágenes
	var cc cache.Cache = cache.Nop{}
	if url := os.Getenv("REDIS_URL"); url != "" {
		if rdb, err := cache.Open(context.Background(), url); err == nil {
			cc = cache.NewRedisCache(rdb, "deadlock:")
		} else {
			log.Warn("redis unavailable", zap.Error(err))
		}
	}

	api := deadlock.New(
		deadlock.WithAPIURL(getenv("DEADLOCK_API_URL", "https://api.deadlock-api.com/v1")),
		deadlock.WithAssetsURL(getenv("DEADLOCK_ASSETS_URL", "https://assets.deadlock-api.com/v2")),
		deadlock.WithCache(cc),
	)
	compositor := scoreboard.New(assets.NewLoader(assets.WithCache(cc), assets.WithLogger(log)), scoreboard.WithLogger(log))
	sb = service.NewScoreboardService(service.NewMatchAssembler(api, log), compositor)
}

func readSecret(req events.APIGatewayV2HTTPRequest) string {
	for k, v := range req.Headers {
		if strings.EqualFold(k, secretHeader) {
			return v
		}
	}
	return ""
}

func text(status int, body string) events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "text/plain"},
		Body:       body,
	}
}

func handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	log.Info("preview hit",
		zap.String("path", req.RawPath),
		zap.String("ip", req.RequestContext.HTTP.SourceIP),
	)

	got := readSecret(req)
	if secretValue == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secretValue)) != 1 {
		return text(401, "unauthorized"), nil
	}

	matchID, err := strconv.ParseInt(req.QueryStringParameters["match_id"], 10, 64)
	if err != nil || matchID <= 0 {
		return text(400, "invalid match_id"), nil
	}

	png, err := sb.Render(ctx, matchID)
	if err != nil {
		log.Warn("render", zap.Int64("match_id", matchID), zap.Error(err))
		if errors.Is(err, deadlock.ErrNotFound) || errors.Is(err, deadlock.ErrEmptyMetadata) {
			return text(404, "match not found"), nil
		}
		return text(502, fmt.Sprintf("render failed: %v", err)), nil
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode:      200,
		Headers:         map[string]string{"Content-Type": "image/png", "Cache-Control": "public, max-age=3600"},
		Body:            base64.StdEncoding.EncodeToString(png),
		IsBase64Encoded: true,
	}, nil
}

func main() { lambda.Start(handler) }
