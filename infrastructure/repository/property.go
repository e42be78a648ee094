package repository

import (
	"context"
	"sync"
)

//go:generate mockgen -source=property.go -destination=mocks/property.go -package=mocks

// PropertyStore guarda propriedades por usuário do host, como a chave de API em dscc.key
type PropertyStore interface {
	// Get devolve found=false quando a propriedade não existe
	Get(ctx context.Context, userID, key string) (value string, found bool, err error)
	Set(ctx context.Context, userID, key, value string) error
	// Delete de uma propriedade inexistente não é erro
	Delete(ctx context.Context, userID, key string) error
	// List devolve o valor de key para todos os usuários, indexado pelo userID
	List(ctx context.Context, key string) (map[string]string, error)
}

type memoryPropertyStore struct {
	mu    sync.RWMutex
	props map[string]map[string]string
}

// NewMemoryPropertyStore mantém as propriedades apenas no processo atual
func NewMemoryPropertyStore() PropertyStore {
	return &memoryPropertyStore{
		props: make(map[string]map[string]string),
	}
}

func (s *memoryPropertyStore) Get(_ context.Context, userID, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, found := s.props[userID][key]
	return value, found, nil
}

func (s *memoryPropertyStore) Set(_ context.Context, userID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	userProps, ok := s.props[userID]
	if !ok {
		userProps = make(map[string]string)
		s.props[userID] = userProps
	}
	userProps[key] = value

	return nil
}

func (s *memoryPropertyStore) Delete(_ context.Context, userID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.props[userID], key)
	if len(s.props[userID]) == 0 {
		delete(s.props, userID)
	}

	return nil
}

func (s *memoryPropertyStore) List(_ context.Context, key string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]string)
	for userID, userProps := range s.props {
		if value, ok := userProps[key]; ok {
			result[userID] = value
		}
	}

	return result, nil
}
