package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shorten-rest-connector/infrastructure/database/postgres"
	"github.com/vfg2006/shorten-rest-connector/internal/config"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS user_properties (
		id             VARCHAR(21)  PRIMARY KEY,
		user_id        VARCHAR(255) NOT NULL,
		property_key   VARCHAR(255) NOT NULL,
		property_value TEXT         NOT NULL,
		updated_at     TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`,
	`DO $$
	BEGIN
		IF NOT EXISTS (
			SELECT 1 FROM pg_constraint WHERE conname = 'user_properties_user_key_unique'
		) THEN
			ALTER TABLE user_properties
				ADD CONSTRAINT user_properties_user_key_unique UNIQUE (user_id, property_key);
		END IF;
	END $$`,
	`CREATE INDEX IF NOT EXISTS idx_user_properties_property_key ON user_properties (property_key)`,
}

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao carregar configuração")
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao abrir conexão com o banco")
	}
	defer conn.Close()

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao banco")
	}

	startTime := time.Now()
	err = conn.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		for i, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("statement %d/%d: %w", i+1, len(statements), err)
			}
			logrus.Infof("Progresso: %d/%d statements executados", i+1, len(statements))
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao executar migração")
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Migração concluída com sucesso")
}
