package domain

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/lo"
)

const (
	ScopeConnector = "connector"
	ScopeAdmin     = "admin"
)

// Claims identifica o usuário do host dono do slot de propriedades
type Claims struct {
	UserID string   `json:"uid"`
	Scopes []string `json:"scopes"`
	jwt.RegisteredClaims
}

func (c *Claims) HasScope(scope string) bool {
	return lo.Contains(c.Scopes, scope)
}
