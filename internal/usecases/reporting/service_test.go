package reporting

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	shortenrestdomain "github.com/vfg2006/shorten-rest-connector/infrastructure/integrator/shortenrest/domain"
	integratormocks "github.com/vfg2006/shorten-rest-connector/infrastructure/integrator/shortenrest/mocks"
	repomocks "github.com/vfg2006/shorten-rest-connector/infrastructure/repository/mocks"
	"github.com/vfg2006/shorten-rest-connector/internal/config"
	"github.com/vfg2006/shorten-rest-connector/internal/domain"
	"go.uber.org/mock/gomock"
)

const keyName = "dscc.key"

func newTestService(t *testing.T) (Reporter, *repomocks.MockPropertyStore, *integratormocks.MockIntegrator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := repomocks.NewMockPropertyStore(ctrl)
	integrator := integratormocks.NewMockIntegrator(ctrl)

	cfg := &config.Config{}
	cfg.Properties.KeyName = keyName

	return NewService(store, integrator, cfg, time.UTC), store, integrator
}

func dataRequest(names ...string) domain.DataRequest {
	req := domain.DataRequest{}
	for _, n := range names {
		req.Fields = append(req.Fields, domain.RequestedField{Name: n})
	}
	return req
}

func TestGetConfig(t *testing.T) {
	svc, _, _ := newTestService(t)

	resp := svc.GetConfig()

	assert.NotNil(t, resp.ConfigParams)
	assert.Empty(t, resp.ConfigParams)
}

func TestGetSchema(t *testing.T) {
	svc, _, _ := newTestService(t)

	assert.Len(t, svc.GetSchema().Schema, 10)
}

func TestGetData(t *testing.T) {
	svc, store, integrator := newTestService(t)

	store.EXPECT().Get(gomock.Any(), "u1", keyName).Return("k", true, nil)
	integrator.EXPECT().GetClicks(gomock.Any(), "k").Return([]domain.Click{
		{Alias: "promo", Country: "BR", CreatedAt: 1700000000000},
		{Alias: "promo", Country: "US", CreatedAt: 1700003600000},
	}, nil)

	resp, err := svc.GetData(context.Background(), "u1", dataRequest("clickCount", "country", "desconhecido"))

	require.NoError(t, err)
	assert.Equal(t, []string{"country", "clickCount"}, fieldNames(resp.Schema))
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, []any{"BR", 2}, resp.Rows[0].Values)
	assert.Equal(t, []any{"US", 2}, resp.Rows[1].Values)
}

func TestGetData_SemChaveUsaChaveVazia(t *testing.T) {
	svc, store, integrator := newTestService(t)

	fetchErr := &shortenrestdomain.FetchError{Op: "get clicks", StatusCode: http.StatusUnauthorized, Err: shortenrestdomain.ErrUnexpectedStatus}
	store.EXPECT().Get(gomock.Any(), "u1", keyName).Return("", false, nil)
	integrator.EXPECT().GetClicks(gomock.Any(), "").Return(nil, fetchErr)

	resp, err := svc.GetData(context.Background(), "u1", dataRequest("date"))

	assert.Nil(t, resp)
	var got *shortenrestdomain.FetchError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, http.StatusUnauthorized, got.StatusCode)
}

func TestGetData_ErroNoArmazenamento(t *testing.T) {
	svc, store, _ := newTestService(t)

	store.EXPECT().Get(gomock.Any(), "u1", keyName).Return("", false, errors.New("db down"))

	resp, err := svc.GetData(context.Background(), "u1", dataRequest("date"))

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, ErrStorage))
}

func TestGetData_SemCliques(t *testing.T) {
	svc, store, integrator := newTestService(t)

	store.EXPECT().Get(gomock.Any(), "u1", keyName).Return("k", true, nil)
	integrator.EXPECT().GetClicks(gomock.Any(), "k").Return([]domain.Click{}, nil)

	resp, err := svc.GetData(context.Background(), "u1", dataRequest("date", "clickCount"))

	require.NoError(t, err)
	assert.NotNil(t, resp.Rows)
	assert.Empty(t, resp.Rows)
}
