package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedisPropertyStore_Chaves(t *testing.T) {
	store := &redisPropertyStore{prefix: "connector"}

	assert.Equal(t, "connector:u1:dscc.key", store.redisKey("u1", testKey))

	tests := []struct {
		name     string
		redisKey string
		wantUser string
		wantOK   bool
	}{
		{name: "chave do slot", redisKey: "connector:u1:dscc.key", wantUser: "u1", wantOK: true},
		{name: "usuário com dois pontos", redisKey: "connector:org:42:dscc.key", wantUser: "org:42", wantOK: true},
		{name: "outro prefixo", redisKey: "outro:u1:dscc.key", wantOK: false},
		{name: "outra propriedade", redisKey: "connector:u1:outra", wantOK: false},
		{name: "usuário vazio", redisKey: "connector::dscc.key", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, ok := store.userIDFromKey(tt.redisKey, testKey)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantUser, userID)
		})
	}
}
