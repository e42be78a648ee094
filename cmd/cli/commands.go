package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vfg2006/shorten-rest-connector/infrastructure/integrator/shortenrest"
	"github.com/vfg2006/shorten-rest-connector/infrastructure/integrator/shortenrest/shortenrestclient"
	"github.com/vfg2006/shorten-rest-connector/infrastructure/repository"
	"github.com/vfg2006/shorten-rest-connector/internal/config"
	"github.com/vfg2006/shorten-rest-connector/internal/domain"
	"github.com/vfg2006/shorten-rest-connector/internal/usecases/authenticating"
	"github.com/vfg2006/shorten-rest-connector/internal/usecases/reporting"
	"github.com/vfg2006/shorten-rest-connector/pkg/utils"
)

type configKey struct{}

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, configKey{}, cfg)
}

func configFrom(cmd *cobra.Command) *config.Config {
	cfg, _ := cmd.Context().Value(configKey{}).(*config.Config)
	return cfg
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := utils.PrettyJson(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func newIntegrator(cfg *config.Config) shortenrest.Integrator {
	return shortenrest.New(shortenrestclient.NewClient(cfg))
}

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Mostra o catálogo de campos exposto ao host",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd, domain.SchemaResponse{Schema: reporting.AllFields()})
		},
	}
}

func newProbeCommand() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Verifica uma chave de API contra a Shorten.REST",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result := newIntegrator(configFrom(cmd)).Probe(cmd.Context(), key)

			out := map[string]any{
				"valid":   result.Valid(),
				"outcome": result.Outcome(),
			}
			if result.Performed {
				out["statusCode"] = result.StatusCode
			}
			if result.Err != nil {
				out["error"] = result.Err.Error()
			}

			return printJSON(cmd, out)
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "chave de API da Shorten.REST")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func newDataCommand() *cobra.Command {
	var (
		key    string
		fields []string
	)

	cmd := &cobra.Command{
		Use:   "data",
		Short: "Busca os cliques e imprime as linhas como o host as recebe",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFrom(cmd)

			hourLocation, err := cfg.HourLocation()
			if err != nil {
				return err
			}

			// Slot efêmero só para reaproveitar o fluxo do serviço
			const cliUser = "cli"
			store := repository.NewMemoryPropertyStore()
			if err := store.Set(cmd.Context(), cliUser, cfg.Properties.KeyName, key); err != nil {
				return err
			}

			reporter := reporting.NewService(store, newIntegrator(cfg), cfg, hourLocation)

			names := lo.Compact(lo.Map(fields, func(f string, _ int) string { return strings.TrimSpace(f) }))
			if len(names) == 0 {
				return errors.New("informe ao menos um campo em --fields")
			}

			req := domain.DataRequest{
				Fields: lo.Map(names, func(name string, _ int) domain.RequestedField {
					return domain.RequestedField{Name: name}
				}),
			}

			response, err := reporter.GetData(cmd.Context(), cliUser, req)
			if err != nil {
				return err
			}

			return printJSON(cmd, response)
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "chave de API da Shorten.REST")
	cmd.Flags().StringSliceVarP(&fields, "fields", "f", nil, "campos separados por vírgula, ex: date,country,clickCount")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("fields")
	return cmd
}

func newTokenCommand() *cobra.Command {
	var (
		userID string
		scopes []string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite um token de host assinado com AUTH_SECRET",
		RunE: func(cmd *cobra.Command, _ []string) error {
			authenticator := authenticating.NewService(nil, nil, configFrom(cmd))

			token, err := authenticator.IssueToken(userID, scopes, ttl)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVarP(&userID, "user", "u", "", "id do usuário no host")
	cmd.Flags().StringSliceVarP(&scopes, "scope", "s", []string{domain.ScopeConnector}, "escopos do token")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "validade do token; 0 usa AUTH_TOKEN_TTL")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
