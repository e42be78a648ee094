package authenticating

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/shorten-rest-connector/infrastructure/integrator/shortenrest"
	shortenrestdomain "github.com/vfg2006/shorten-rest-connector/infrastructure/integrator/shortenrest/domain"
	"github.com/vfg2006/shorten-rest-connector/infrastructure/repository"
	"github.com/vfg2006/shorten-rest-connector/internal/config"
	"github.com/vfg2006/shorten-rest-connector/internal/domain"
	"github.com/vfg2006/shorten-rest-connector/pkg/apiErrors"
	"github.com/vfg2006/shorten-rest-connector/pkg/log"
)

type Authenticator interface {
	AuthType() domain.AuthTypeResponse
	ResetAuth(ctx context.Context, userID string) error
	IsAuthValid(ctx context.Context, userID string) bool
	SetCredentials(ctx context.Context, userID, key string) domain.SetCredentialsResponse
	IssueToken(userID string, scopes []string, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	store      repository.PropertyStore
	integrator shortenrest.Integrator
	cfg        *config.Config
}

func NewService(store repository.PropertyStore, integrator shortenrest.Integrator, cfg *config.Config) Authenticator {
	return &Service{
		store:      store,
		integrator: integrator,
		cfg:        cfg,
	}
}

func (s *Service) AuthType() domain.AuthTypeResponse {
	return domain.AuthTypeResponse{
		Type:    domain.AuthTypeKey,
		HelpURL: s.cfg.ShortenRest.HelpURL,
	}
}

// ResetAuth remove a chave do usuário; remover uma chave ausente não é erro
func (s *Service) ResetAuth(ctx context.Context, userID string) error {
	if err := s.store.Delete(ctx, userID, s.cfg.Properties.KeyName); err != nil {
		return NewAuthError(fmt.Errorf("%w: %v", ErrStorage, err), apiErrors.ErrDatabaseOperation, "Erro ao remover a chave de API")
	}

	log.ForContext(ctx).WithField("user_id", userID).Info("Chave de API removida")
	return nil
}

// IsAuthValid verifica a chave armazenada contra a Shorten.REST a cada chamada.
// Qualquer falha de leitura ou de transporte resulta em false.
func (s *Service) IsAuthValid(ctx context.Context, userID string) bool {
	logger := log.ForContext(ctx).WithField("user_id", userID)

	key, _, err := s.store.Get(ctx, userID, s.cfg.Properties.KeyName)
	if err != nil {
		logger.WithError(err).Warn("Erro ao ler a chave de API; tratando como inválida")
		return false
	}

	result := s.integrator.Probe(ctx, key)
	if !result.Performed {
		logger.WithError(result.Err).Warn("Verificação da chave não realizada; tratando como inválida")
	}

	return result.Valid()
}

// SetCredentials só grava a chave depois de a Shorten.REST responder 200 para ela
func (s *Service) SetCredentials(ctx context.Context, userID, key string) domain.SetCredentialsResponse {
	logger := log.ForContext(ctx).WithField("user_id", userID)

	result := s.integrator.Probe(ctx, key)
	if !result.Valid() {
		logger.WithError(rejectionCause(result)).WithField("outcome", result.Outcome()).
			Info("Chave de API recusada")
		return invalidCredentials()
	}

	if err := s.store.Set(ctx, userID, s.cfg.Properties.KeyName, key); err != nil {
		logger.WithError(fmt.Errorf("%w: %w: %v", ErrInvalidCredentials, ErrStorage, err)).
			Error("Chave válida, mas não foi possível gravá-la")
		return invalidCredentials()
	}

	logger.Info("Chave de API gravada")
	return domain.SetCredentialsResponse{ErrorCode: domain.ErrorCodeNone}
}

// rejectionCause descreve por que a verificação não aceitou a chave
func rejectionCause(result shortenrestdomain.ProbeResult) error {
	if !result.Performed {
		return fmt.Errorf("%w: verificação não realizada: %v", ErrInvalidCredentials, result.Err)
	}
	return fmt.Errorf("%w: status %d", ErrInvalidCredentials, result.StatusCode)
}

func invalidCredentials() domain.SetCredentialsResponse {
	return domain.SetCredentialsResponse{ErrorCode: domain.ErrorCodeInvalidCredentials}
}

// IssueToken gera o token que o host envia em cada chamada
func (s *Service) IssueToken(userID string, scopes []string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", ErrMissingUser
	}
	if ttl <= 0 {
		ttl = s.cfg.Auth.TokenTTL
	}

	now := time.Now()
	claims := domain.Claims{
		UserID: userID,
		Scopes: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, ErrMissingUser
	}

	return claims, nil
}
