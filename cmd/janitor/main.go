package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jackc/pgx/v5/pgxpool"
)

// posted_matches sólo sirve para no repostear; pasado un mes no aporta nada
const postedRetention = "30 days"

func handler(ctx context.Context) (string, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return "no DATABASE_URL", nil
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return fmt.Sprintf("parse: %v", err), nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return fmt.Sprintf("pool: %v", err), nil
	}
	defer pool.Close()

	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := pool.Exec(cctx, `DELETE FROM posted_matches WHERE posted_at < now() - $1::interval`, postedRetention)
	if err != nil {
		return fmt.Sprintf("delete: %v", err), nil
	}
	return fmt.Sprintf("ok: %d posted_matches purged", tag.RowsAffected()), nil
}

func main() { lambda.Start(handler) }
