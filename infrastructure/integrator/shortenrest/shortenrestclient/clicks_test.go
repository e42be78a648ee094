package shortenrestclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	shortenrestdomain "github.com/vfg2006/shorten-rest-connector/infrastructure/integrator/shortenrest/domain"
	"github.com/vfg2006/shorten-rest-connector/internal/config"
)

func newTestClient(url string) Client {
	cfg := &config.Config{}
	cfg.ShortenRest.URL = url
	cfg.ShortenRest.Timeout = 2 * time.Second
	return NewClient(cfg)
}

func TestCheckKey_EnviaCabecalhos(t *testing.T) {
	var gotPath, gotKey, gotContentType, gotMethod string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-api-key")
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	status, err := newTestClient(server.URL).CheckKey(context.Background(), "abc123")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/clicks", gotPath)
	assert.Equal(t, "abc123", gotKey)
	assert.Equal(t, "application/json", gotContentType)
}

func TestCheckKey_Status(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "chave aceita", status: http.StatusOK},
		{name: "chave recusada", status: http.StatusUnauthorized},
		{name: "sem conteúdo não é 200", status: http.StatusNoContent},
		{name: "erro do servidor", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			status, err := newTestClient(server.URL).CheckKey(context.Background(), "k")

			require.NoError(t, err)
			assert.Equal(t, tt.status, status)
		})
	}
}

func TestCheckKey_ServidorIndisponivel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	status, err := newTestClient(url).CheckKey(context.Background(), "k")

	assert.Error(t, err)
	assert.Equal(t, 0, status)
}

func TestGetClicks_Sucesso(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc123", r.Header.Get("x-api-key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"clicks":[
			{"alias":"promo","aliasId":"a1","browser":"Chrome","country":"BR","createdAt":1700000000000,
			 "destination":"https://example.com","domain":"short.fyi","os":"Linux"},
			{"alias":"promo","aliasId":"a1","browser":"Firefox","country":"US","createdAt":1700003600000,
			 "destination":"https://example.com","domain":"short.fyi","os":"Mac OS"}
		]}`))
	}))
	defer server.Close()

	clicks, err := newTestClient(server.URL).GetClicks(context.Background(), "abc123")

	require.NoError(t, err)
	require.Len(t, clicks, 2)
	assert.Equal(t, shortenrestdomain.Click{
		Alias:       "promo",
		AliasID:     "a1",
		Browser:     "Chrome",
		Country:     "BR",
		CreatedAt:   1700000000000,
		Destination: "https://example.com",
		Domain:      "short.fyi",
		OS:          "Linux",
	}, clicks[0])
	assert.Equal(t, "Mac OS", clicks[1].OS)
}

func TestGetClicks_ValoresFlexiveis(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"clicks":[
			{"alias":"promo","aliasId":123,"browser":null,"country":"BR","createdAt":1700000000000.0,"os":"Linux"},
			{"alias":"promo","aliasId":"a1","country":"US","createdAt":"1700003600000"}
		]}`))
	}))
	defer server.Close()

	clicks, err := newTestClient(server.URL).GetClicks(context.Background(), "k")

	require.NoError(t, err)
	require.Len(t, clicks, 2)
	assert.Equal(t, shortenrestdomain.LooseString("123"), clicks[0].AliasID)
	assert.Empty(t, clicks[0].Browser)
	assert.Equal(t, shortenrestdomain.EpochMillis(1700000000000), clicks[0].CreatedAt)
	assert.Empty(t, clicks[1].Destination)
	assert.Equal(t, shortenrestdomain.EpochMillis(1700003600000), clicks[1].CreatedAt)
}

func TestGetClicks_ListaVazia(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"clicks":[]}`))
	}))
	defer server.Close()

	clicks, err := newTestClient(server.URL).GetClicks(context.Background(), "k")

	require.NoError(t, err)
	assert.NotNil(t, clicks)
	assert.Empty(t, clicks)
}

func TestGetClicks_Falhas(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantErr    error
	}{
		{name: "status 401", status: http.StatusUnauthorized, body: `{"message":"unauthorized"}`, wantStatus: http.StatusUnauthorized, wantErr: shortenrestdomain.ErrUnexpectedStatus},
		{name: "status 500", status: http.StatusInternalServerError, body: ``, wantStatus: http.StatusInternalServerError, wantErr: shortenrestdomain.ErrUnexpectedStatus},
		{name: "json inválido", status: http.StatusOK, body: `{"clicks":[`},
		{name: "sem campo clicks", status: http.StatusOK, body: `{"data":[]}`, wantErr: shortenrestdomain.ErrMissingClicks},
		{name: "clicks nulo", status: http.StatusOK, body: `{"clicks":null}`, wantErr: shortenrestdomain.ErrMissingClicks},
		{name: "clicks não é lista", status: http.StatusOK, body: `{"clicks":"x"}`},
		{name: "createdAt não numérico", status: http.StatusOK, body: `{"clicks":[{"createdAt":"ontem"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			clicks, err := newTestClient(server.URL).GetClicks(context.Background(), "k")

			assert.Nil(t, clicks)
			var fetchErr *shortenrestdomain.FetchError
			require.True(t, errors.As(err, &fetchErr))
			assert.Equal(t, tt.wantStatus, fetchErr.StatusCode)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestGetClicks_ServidorIndisponivel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestClient(url).GetClicks(context.Background(), "k")

	var fetchErr *shortenrestdomain.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, 0, fetchErr.StatusCode)
}
