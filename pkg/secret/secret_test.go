package secret

import (
	"encoding/base64"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealOpen(t *testing.T) {
	box, err := NewBox("segredo-de-teste")
	require.NoError(t, err)

	sealed, err := box.Seal("minha-chave-api")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "minha-chave-api")

	opened, err := box.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "minha-chave-api", opened)
}

func TestSeal_NonceDiferenteACadaChamada(t *testing.T) {
	box, err := NewBox("s")
	require.NoError(t, err)

	a, err := box.Seal("x")
	require.NoError(t, err)
	b, err := box.Seal("x")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestOpen_ValorVazioSelado(t *testing.T) {
	box, err := NewBox("s")
	require.NoError(t, err)

	sealed, err := box.Seal("")
	require.NoError(t, err)

	opened, err := box.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "", opened)
}

func TestOpen_Falhas(t *testing.T) {
	box, err := NewBox("s")
	require.NoError(t, err)
	other, err := NewBox("outro")
	require.NoError(t, err)

	sealed, err := box.Seal("valor")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(sealed)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xff
	tampered := base64.StdEncoding.EncodeToString(raw)

	tests := []struct {
		name    string
		box     *Box
		input   string
		wantErr error
	}{
		{name: "não é base64", box: box, input: "%%%", wantErr: ErrMalformed},
		{name: "curto demais", box: box, input: base64.StdEncoding.EncodeToString([]byte("abc")), wantErr: ErrMalformed},
		{name: "adulterado", box: box, input: tampered, wantErr: ErrTampered},
		{name: "segredo errado", box: other, input: sealed, wantErr: ErrTampered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.box.Open(tt.input)
			assert.True(t, errors.Is(err, tt.wantErr), "erro inesperado: %v", err)
		})
	}
}

func TestNewBox_SegredoVazio(t *testing.T) {
	_, err := NewBox("")
	assert.ErrorIs(t, err, ErrEmptySecret)
}
