package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/shorten-rest-connector/pkg/log"
	"github.com/vfg2006/shorten-rest-connector/pkg/secret"
)

type sealedPropertyStore struct {
	next PropertyStore
	box  *secret.Box
}

// NewSealedPropertyStore cifra os valores antes de repassá-los ao armazenamento
func NewSealedPropertyStore(next PropertyStore, box *secret.Box) PropertyStore {
	return &sealedPropertyStore{
		next: next,
		box:  box,
	}
}

func (s *sealedPropertyStore) Get(ctx context.Context, userID, key string) (string, bool, error) {
	sealed, found, err := s.next.Get(ctx, userID, key)
	if err != nil || !found {
		return "", found, err
	}

	value, err := s.box.Open(sealed)
	if err != nil {
		return "", false, errors.Wrap(err, "erro ao abrir propriedade cifrada")
	}

	return value, true, nil
}

func (s *sealedPropertyStore) Set(ctx context.Context, userID, key, value string) error {
	sealed, err := s.box.Seal(value)
	if err != nil {
		return err
	}
	return s.next.Set(ctx, userID, key, sealed)
}

func (s *sealedPropertyStore) Delete(ctx context.Context, userID, key string) error {
	return s.next.Delete(ctx, userID, key)
}

// List ignora valores que não abrem com o segredo atual
func (s *sealedPropertyStore) List(ctx context.Context, key string) (map[string]string, error) {
	sealedValues, err := s.next.List(ctx, key)
	if err != nil {
		return nil, err
	}

	result := make(map[string]string, len(sealedValues))
	for userID, sealed := range sealedValues {
		value, err := s.box.Open(sealed)
		if err != nil {
			log.L.WithFields(log.Fields{"user_id": userID, "error": err.Error()}).
				Warn("Propriedade cifrada ignorada na listagem")
			continue
		}
		result[userID] = value
	}

	return result, nil
}
