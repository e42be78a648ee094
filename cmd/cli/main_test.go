package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shorten-rest-connector/internal/config"
	"github.com/vfg2006/shorten-rest-connector/internal/domain"
	"github.com/vfg2006/shorten-rest-connector/internal/usecases/authenticating"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestSchemaCommand(t *testing.T) {
	out, err := run(t, "schema")

	require.NoError(t, err)
	assert.Contains(t, out, `"aliasName"`)
	assert.Contains(t, out, `"opreatingSystem"`)
	assert.Contains(t, out, `"defaultAggregationType": "COUNT"`)
}

func TestTokenCommand(t *testing.T) {
	out, err := run(t, "token", "--user", "host-1", "--scope", "admin")
	require.NoError(t, err)

	cfg, err := config.NewConfig()
	require.NoError(t, err)

	claims, err := authenticating.NewService(nil, nil, cfg).ValidateToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "host-1", claims.UserID)
	assert.Equal(t, []string{domain.ScopeAdmin}, claims.Scopes)
}

func TestDataCommand_SemCampos(t *testing.T) {
	_, err := run(t, "data", "--key", "k", "--fields", " ,")

	assert.Error(t, err)
}

func TestProbeCommand_ExigeChave(t *testing.T) {
	_, err := run(t, "probe")

	assert.Error(t, err)
}
