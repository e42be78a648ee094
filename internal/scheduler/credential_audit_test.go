package scheduler

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	shortenrestdomain "github.com/vfg2006/shorten-rest-connector/infrastructure/integrator/shortenrest/domain"
	integratormocks "github.com/vfg2006/shorten-rest-connector/infrastructure/integrator/shortenrest/mocks"
	"github.com/vfg2006/shorten-rest-connector/infrastructure/repository"
	repomocks "github.com/vfg2006/shorten-rest-connector/infrastructure/repository/mocks"
	"github.com/vfg2006/shorten-rest-connector/internal/config"
	"github.com/vfg2006/shorten-rest-connector/internal/domain"
	"go.uber.org/mock/gomock"
)

const keyName = "dscc.key"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Properties.KeyName = keyName
	cfg.CredentialAudit.CronSchedule = "0 6 * * *"
	return cfg
}

func TestRunAudit(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	store := repository.NewMemoryPropertyStore()
	require.NoError(t, store.Set(ctx, "u1", keyName, "boa"))
	require.NoError(t, store.Set(ctx, "u2", keyName, "ruim"))
	require.NoError(t, store.Set(ctx, "u3", keyName, "fora-do-ar"))
	require.NoError(t, store.Set(ctx, "u4", "outra", "ignorada"))

	integrator := integratormocks.NewMockIntegrator(ctrl)
	integrator.EXPECT().Probe(gomock.Any(), "boa").
		Return(shortenrestdomain.ProbeResult{Performed: true, StatusCode: http.StatusOK})
	integrator.EXPECT().Probe(gomock.Any(), "ruim").
		Return(shortenrestdomain.ProbeResult{Performed: true, StatusCode: http.StatusUnauthorized})
	integrator.EXPECT().Probe(gomock.Any(), "fora-do-ar").
		Return(shortenrestdomain.ProbeResult{Err: errors.New("timeout")})

	svc := NewCredentialAuditService(store, integrator, testConfig())

	report, err := svc.RunAudit(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 1, report.Valid)
	assert.Equal(t, 1, report.Invalid)
	assert.Equal(t, 1, report.Unreachable)

	// nada é removido pela auditoria
	value, found, err := store.Get(ctx, "u2", keyName)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "ruim", value)

	status := svc.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Same(t, report, status["last_report"])
}

func TestRunAudit_ErroAoListar(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := repomocks.NewMockPropertyStore(ctrl)
	store.EXPECT().List(gomock.Any(), keyName).Return(nil, errors.New("db down"))

	svc := NewCredentialAuditService(store, integratormocks.NewMockIntegrator(ctrl), testConfig())

	report, err := svc.RunAudit(context.Background())

	assert.Nil(t, report)
	assert.Error(t, err)
	assert.Equal(t, false, svc.GetStatus()["sync_running"])
}

func TestRunAudit_ExecucaoSimultanea(t *testing.T) {
	svc := NewCredentialAuditService(repository.NewMemoryPropertyStore(), nil, testConfig())
	require.True(t, svc.begin())

	_, err := svc.RunAudit(context.Background())
	assert.ErrorIs(t, err, ErrAuditRunning)
	assert.False(t, svc.TriggerManualSync())

	svc.finish(&domain.CredentialAuditReport{})
	assert.Equal(t, false, svc.GetStatus()["sync_running"])
}

func TestTriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := repomocks.NewMockPropertyStore(ctrl)

	done := make(chan struct{})
	store.EXPECT().List(gomock.Any(), keyName).DoAndReturn(func(context.Context, string) (map[string]string, error) {
		close(done)
		return map[string]string{}, nil
	})

	svc := NewCredentialAuditService(store, integratormocks.NewMockIntegrator(ctrl), testConfig())

	assert.True(t, svc.TriggerManualSync())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("auditoria manual não foi executada")
	}

	assert.Eventually(t, func() bool {
		return svc.GetStatus()["sync_running"] == false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestTriggerManualSync_DisparosSimultaneos(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := repomocks.NewMockPropertyStore(ctrl)

	release := make(chan struct{})
	store.EXPECT().List(gomock.Any(), keyName).Times(1).DoAndReturn(func(context.Context, string) (map[string]string, error) {
		<-release
		return map[string]string{}, nil
	})

	svc := NewCredentialAuditService(store, integratormocks.NewMockIntegrator(ctrl), testConfig())

	var (
		wg       sync.WaitGroup
		accepted atomic.Int32
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if svc.TriggerManualSync() {
				accepted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), accepted.Load())
	assert.Equal(t, true, svc.GetStatus()["sync_running"])

	_, err := svc.RunAudit(context.Background())
	assert.ErrorIs(t, err, ErrAuditRunning)

	close(release)

	assert.Eventually(t, func() bool {
		return svc.GetStatus()["sync_running"] == false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestStart_Desabilitado(t *testing.T) {
	svc := NewCredentialAuditService(repository.NewMemoryPropertyStore(), nil, testConfig())

	assert.NoError(t, svc.Start(context.Background()))
	assert.Equal(t, false, svc.GetStatus()["sync_enabled"])
}
