package shortenrest

import (
	"context"

	"github.com/samber/lo"
	shortenrestdomain "github.com/vfg2006/shorten-rest-connector/infrastructure/integrator/shortenrest/domain"
	"github.com/vfg2006/shorten-rest-connector/infrastructure/integrator/shortenrest/shortenrestclient"
	"github.com/vfg2006/shorten-rest-connector/internal/domain"
	"github.com/vfg2006/shorten-rest-connector/pkg/log"
	"github.com/vfg2006/shorten-rest-connector/pkg/metrics"
)

//go:generate mockgen -source=service.go -destination=mocks/integrator.go -package=mocks

type Integrator interface {
	Probe(ctx context.Context, apiKey string) shortenrestdomain.ProbeResult
	GetClicks(ctx context.Context, apiKey string) ([]domain.Click, error)
}

type ShortenRestService struct {
	Client shortenrestclient.Client
}

func New(client shortenrestclient.Client) Integrator {
	return &ShortenRestService{
		Client: client,
	}
}

// Probe faz uma única chamada sem novas tentativas
func (s *ShortenRestService) Probe(ctx context.Context, apiKey string) shortenrestdomain.ProbeResult {
	status, err := s.Client.CheckKey(ctx, apiKey)

	result := shortenrestdomain.ProbeResult{
		Performed:  err == nil,
		StatusCode: status,
		Err:        err,
	}

	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("shortenrest: não foi possível verificar a chave")
	}

	metrics.RecordProbe(result.Outcome())

	return result
}

func (s *ShortenRestService) GetClicks(ctx context.Context, apiKey string) ([]domain.Click, error) {
	resp, err := s.Client.GetClicks(ctx, apiKey)
	if err != nil {
		metrics.RecordFetch(metrics.FetchOutcomeError, 0)
		return nil, err
	}

	metrics.RecordFetch(metrics.FetchOutcomeOK, len(resp))

	return lo.Map(resp, func(c shortenrestdomain.Click, _ int) domain.Click {
		return domain.Click{
			Alias:       string(c.Alias),
			AliasID:     string(c.AliasID),
			Browser:     string(c.Browser),
			Country:     string(c.Country),
			CreatedAt:   int64(c.CreatedAt),
			Destination: string(c.Destination),
			Domain:      string(c.Domain),
			OS:          string(c.OS),
		}
	}), nil
}
