package shortenrestclient

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	shortenrestdomain "github.com/vfg2006/shorten-rest-connector/infrastructure/integrator/shortenrest/domain"
	"github.com/vfg2006/shorten-rest-connector/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	clicksPath   = "/clicks"
	apiKeyHeader = "x-api-key"
)

type Client interface {
	// CheckKey faz um GET /clicks e devolve apenas o status HTTP
	CheckKey(ctx context.Context, apiKey string) (int, error)
	GetClicks(ctx context.Context, apiKey string) ([]shortenrestdomain.Click, error)
}

type ShortenRestClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg *config.Config) Client {
	return &ShortenRestClient{
		httpClient: &http.Client{
			Timeout: cfg.ShortenRest.Timeout,
		},
		baseURL: cfg.ShortenRest.URL,
	}
}
