package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/shorten-rest-connector/internal/scheduler"
	"github.com/vfg2006/shorten-rest-connector/pkg/apiErrors"
	"github.com/vfg2006/shorten-rest-connector/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeCredentialAudit = "credential-audit"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	CredentialAuditService *scheduler.CredentialAuditService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeCredentialAudit:
			if services.CredentialAuditService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de auditoria de credenciais não disponível", nil)
				return
			}

			if !services.CredentialAuditService.TriggerManualSync() {
				writeJSON(w, r, http.StatusConflict, map[string]any{
					"message": "Cron job já está em execução",
					"type":    cronType,
				})
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: credential-audit", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.CredentialAuditService != nil {
			status[CronJobTypeCredentialAudit] = services.CredentialAuditService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
