package nostd

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var ErrUnseal = errors.New("unable to open sealed value")

// Sealer 对称加密存储敏感字段（交易所API密钥）
type Sealer struct {
	key [32]byte
}

func NewSealer(secret string) *Sealer {
	return &Sealer{key: sha256.Sum256([]byte(secret))}
}

func (s *Sealer) Seal(plain string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("read nonce: %w", err)
	}
	out := secretbox.Seal(nonce[:], []byte(plain), &nonce, &s.key)
	return base64.StdEncoding.EncodeToString(out), nil
}

func (s *Sealer) Open(sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil || len(raw) < nonceSize {
		return "", ErrUnseal
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &s.key)
	if !ok {
		return "", ErrUnseal
	}
	return string(plain), nil
}
