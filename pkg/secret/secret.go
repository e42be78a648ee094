package secret

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	keySize   = 32
	nonceSize = 24
	hkdfInfo  = "shorten-rest-connector/property-store"
)

var (
	ErrEmptySecret = errors.New("secret: segredo vazio")
	ErrMalformed   = errors.New("secret: valor selado malformado")
	ErrTampered    = errors.New("secret: valor selado não pôde ser aberto")
)

// Box sela e abre valores com NaCl secretbox
type Box struct {
	key [keySize]byte
}

// NewBox deriva a chave simétrica a partir do segredo com HKDF-SHA256
func NewBox(passphrase string) (*Box, error) {
	if passphrase == "" {
		return nil, ErrEmptySecret
	}

	b := &Box{}
	reader := hkdf.New(sha256.New, []byte(passphrase), nil, []byte(hkdfInfo))
	if _, err := io.ReadFull(reader, b.key[:]); err != nil {
		return nil, errors.Wrap(err, "secret: falha ao derivar chave")
	}

	return b, nil
}

// Seal devolve base64(nonce || caixa)
func (b *Box) Seal(plaintext string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", errors.Wrap(err, "secret: falha ao gerar nonce")
	}

	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &b.key)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (b *Box) Open(sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", errors.Wrap(ErrMalformed, err.Error())
	}
	if len(raw) < nonceSize+secretbox.Overhead {
		return "", ErrMalformed
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])

	plaintext, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &b.key)
	if !ok {
		return "", ErrTampered
	}

	return string(plaintext), nil
}
