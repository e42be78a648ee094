package redis

import (
	"context"
	"time"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/vfg2006/shorten-rest-connector/internal/config"
)

// NewClient abre o cliente e confirma conectividade com um PING
func NewClient(ctx context.Context, cfg config.Redis) (*goredis.Client, error) {
	opt, err := clientOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := goredis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "redis: falha ao conectar")
	}

	return client, nil
}

func clientOptions(cfg config.Redis) (*goredis.Options, error) {
	opt, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "redis: url inválida")
	}
	// REDIS_DB, quando definido, tem precedência sobre o banco da URL
	if cfg.DB != nil {
		opt.DB = *cfg.DB
	}
	return opt, nil
}
