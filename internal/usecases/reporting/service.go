package reporting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/shorten-rest-connector/infrastructure/integrator/shortenrest"
	"github.com/vfg2006/shorten-rest-connector/infrastructure/repository"
	"github.com/vfg2006/shorten-rest-connector/internal/config"
	"github.com/vfg2006/shorten-rest-connector/internal/domain"
	"github.com/vfg2006/shorten-rest-connector/pkg/log"
)

var ErrStorage = errors.New("erro ao ler a chave de API armazenada")

type Reporter interface {
	GetConfig() domain.ConfigResponse
	GetSchema() domain.SchemaResponse
	GetData(ctx context.Context, userID string, req domain.DataRequest) (*domain.DataResponse, error)
}

type Service struct {
	store        repository.PropertyStore
	integrator   shortenrest.Integrator
	keyName      string
	hourLocation *time.Location
}

func NewService(store repository.PropertyStore, integrator shortenrest.Integrator, cfg *config.Config, hourLocation *time.Location) Reporter {
	return &Service{
		store:        store,
		integrator:   integrator,
		keyName:      cfg.Properties.KeyName,
		hourLocation: hourLocation,
	}
}

// GetConfig não define opções próprias
func (s *Service) GetConfig() domain.ConfigResponse {
	return domain.ConfigResponse{ConfigParams: []any{}}
}

func (s *Service) GetSchema() domain.SchemaResponse {
	return domain.SchemaResponse{Schema: AllFields()}
}

// GetData busca todos os cliques numa única chamada; falhas da Shorten.REST são devolvidas sem nova tentativa
func (s *Service) GetData(ctx context.Context, userID string, req domain.DataRequest) (*domain.DataResponse, error) {
	schema := SchemaFor(req.FieldNames())

	// Sem chave gravada a busca segue com chave vazia e a Shorten.REST a recusa
	key, _, err := s.store.Get(ctx, userID, s.keyName)
	if err != nil {
		return nil, errors.Wrap(ErrStorage, err.Error())
	}

	clicks, err := s.integrator.GetClicks(ctx, key)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id":     userID,
		"user_fields": len(schema),
		"user_clicks": len(clicks),
	}).Debug("Cliques mapeados para linhas")

	return &domain.DataResponse{
		Schema: schema,
		Rows:   MapToRows(schema, clicks, s.hourLocation),
	}, nil
}
