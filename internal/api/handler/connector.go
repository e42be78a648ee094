package handler

import (
	"net/http"

	"github.com/pkg/errors"
	shortenrestdomain "github.com/vfg2006/shorten-rest-connector/infrastructure/integrator/shortenrest/domain"
	"github.com/vfg2006/shorten-rest-connector/internal/domain"
	"github.com/vfg2006/shorten-rest-connector/internal/usecases/authenticating"
	"github.com/vfg2006/shorten-rest-connector/internal/usecases/reporting"
	"github.com/vfg2006/shorten-rest-connector/pkg/apiErrors"
	"github.com/vfg2006/shorten-rest-connector/pkg/log"
	"github.com/vfg2006/shorten-rest-connector/pkg/middleware"
)

// userID devolve o dono do slot; sem claims a rota responde 401
func userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || claims.UserID == "" {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não identificado no token", nil)
		return "", false
	}
	return claims.UserID, true
}

func GetAuthType(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.AuthType())
	}
}

func ResetAuth(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		if err := service.ResetAuth(r.Context(), uid); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao remover chave de API")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Não foi possível remover a chave de API", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func IsAuthValid(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		writeJSON(w, r, http.StatusOK, service.IsAuthValid(r.Context(), uid))
	}
}

// SetCredentials sempre responde 200; a recusa da chave vai no errorCode
func SetCredentials(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var req domain.SetCredentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, service.SetCredentials(r.Context(), uid, req.Key))
	}
}

func GetConfig(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.GetConfig())
	}
}

func GetSchema(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.GetSchema())
	}
}

func GetData(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var req domain.DataRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := validate.Struct(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campos obrigatórios ausentes", validationDetails(err))
			return
		}

		response, err := service.GetData(r.Context(), uid, req)
		if err != nil {
			handleDataError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	}
}

func handleDataError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var fetchErr *shortenrestdomain.FetchError
	switch {
	case errors.As(err, &fetchErr):
		logger.WithField("status_code", fetchErr.StatusCode).Error("Falha ao buscar cliques na Shorten.REST")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, fetchErr.Error(), nil)
	case errors.Is(err, reporting.ErrStorage):
		logger.Error("Falha ao ler a chave de API")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Não foi possível ler a chave de API", nil)
	default:
		logger.Error("Erro inesperado ao buscar dados")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}
