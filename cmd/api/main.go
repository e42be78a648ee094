package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/shorten-rest-connector/infrastructure/database/postgres"
	"github.com/vfg2006/shorten-rest-connector/infrastructure/database/redis"
	"github.com/vfg2006/shorten-rest-connector/infrastructure/integrator/shortenrest"
	"github.com/vfg2006/shorten-rest-connector/infrastructure/integrator/shortenrest/shortenrestclient"
	"github.com/vfg2006/shorten-rest-connector/infrastructure/repository"
	"github.com/vfg2006/shorten-rest-connector/internal/api"
	"github.com/vfg2006/shorten-rest-connector/internal/config"
	"github.com/vfg2006/shorten-rest-connector/internal/scheduler"
	"github.com/vfg2006/shorten-rest-connector/internal/usecases/authenticating"
	"github.com/vfg2006/shorten-rest-connector/internal/usecases/reporting"
	"github.com/vfg2006/shorten-rest-connector/pkg/log"
	"github.com/vfg2006/shorten-rest-connector/pkg/secret"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(cfg.App)
	log.L.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore, err := newPropertyStore(ctx, cfg)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao preparar armazenamento de propriedades")
	}
	defer closeStore()

	hourLocation, err := cfg.HourLocation()
	if err != nil {
		log.L.Fatal(err)
	}

	shortenRestClient := shortenrestclient.NewClient(cfg)
	shortenRestIntegrator := shortenrest.New(shortenRestClient)

	authenticator := authenticating.NewService(store, shortenRestIntegrator, cfg)
	reporter := reporting.NewService(store, shortenRestIntegrator, cfg, hourLocation)

	credentialAuditService := scheduler.NewCredentialAuditService(store, shortenRestIntegrator, cfg)
	if err := credentialAuditService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de auditoria de credenciais")
	}

	server, err := api.New(cfg, authenticator, reporter, credentialAuditService)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// newPropertyStore escolhe o driver configurado; com segredo definido os valores são cifrados
func newPropertyStore(ctx context.Context, cfg *config.Config) (repository.PropertyStore, func(), error) {
	var (
		store     repository.PropertyStore
		closeFunc = func() {}
	)

	switch cfg.Properties.Driver {
	case config.PropertyDriverPostgres:
		conn, err := postgres.NewConnection(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		if err := conn.Ping(ctx); err != nil {
			_ = conn.Close()
			return nil, nil, err
		}
		log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")

		store = repository.NewPostgresPropertyStore(conn)
		closeFunc = func() { _ = conn.Close() }

	case config.PropertyDriverRedis:
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		log.L.Info("Conexão com Redis estabelecida com sucesso")

		store = repository.NewRedisPropertyStore(client, cfg.Redis.KeyPrefix)
		closeFunc = func() { _ = client.Close() }

	default:
		log.L.Warn("Usando armazenamento em memória; chaves serão perdidas ao reiniciar")
		store = repository.NewMemoryPropertyStore()
	}

	if cfg.Properties.EncryptionSecret == "" {
		return store, closeFunc, nil
	}

	box, err := secret.NewBox(cfg.Properties.EncryptionSecret)
	if err != nil {
		closeFunc()
		return nil, nil, errors.Wrap(err, "segredo de cifragem inválido")
	}

	return repository.NewSealedPropertyStore(store, box), closeFunc, nil
}
