package middleware

import (
	"net/http"

	"github.com/samber/lo"
	"github.com/vfg2006/shorten-rest-connector/internal/domain"
	"github.com/vfg2006/shorten-rest-connector/pkg/apiErrors"
	"github.com/vfg2006/shorten-rest-connector/pkg/log"
)

// ScopeMiddleware restringe a rota a tokens que tenham ao menos um dos escopos
func ScopeMiddleware(allowedScopes []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				log.ForContext(r.Context()).Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !lo.SomeBy(allowedScopes, claims.HasScope) {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"user_id":     claims.UserID,
					"user_scopes": claims.Scopes,
				}).Warn("Acesso negado por escopo")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ConnectorOnly libera as rotas chamadas pelo host
func ConnectorOnly() func(http.Handler) http.Handler {
	return ScopeMiddleware([]string{domain.ScopeConnector})
}

func AdminOnly() func(http.Handler) http.Handler {
	return ScopeMiddleware([]string{domain.ScopeAdmin})
}
