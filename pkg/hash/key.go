package hash

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"sync/atomic"

	"golang.org/x/crypto/bcrypt"
)

var ErrNoKey = errors.New("admin key is not configured")

// KeyVerifier проверяет общий секрет администратора.
// Секрет задаётся один раз при старте и дальше не меняется.
type KeyVerifier struct {
	plain  []byte
	hashed []byte

	// sha256 последнего ключа, прошедшего bcrypt: middleware и сервис
	// проверяют ключ дважды за запрос, bcrypt нужен только один раз
	verified atomic.Pointer[[sha256.Size]byte]
}

// NewKeyVerifier принимает секрет в открытом виде или его bcrypt-хэш.
// Если задан хэш, он имеет приоритет.
func NewKeyVerifier(plain, bcryptHash string) (*KeyVerifier, error) {
	if bcryptHash != "" {
		if _, err := bcrypt.Cost([]byte(bcryptHash)); err != nil {
			return nil, err
		}
		return &KeyVerifier{hashed: []byte(bcryptHash)}, nil
	}
	if plain == "" {
		return nil, ErrNoKey
	}
	return &KeyVerifier{plain: []byte(plain)}, nil
}

func (v *KeyVerifier) Verify(key string) bool {
	if key == "" {
		return false
	}
	if v.hashed == nil {
		return subtle.ConstantTimeCompare(v.plain, []byte(key)) == 1
	}

	sum := sha256.Sum256([]byte(key))
	if cached := v.verified.Load(); cached != nil && subtle.ConstantTimeCompare(cached[:], sum[:]) == 1 {
		return true
	}
	if bcrypt.CompareHashAndPassword(v.hashed, []byte(key)) != nil {
		return false
	}
	v.verified.Store(&sum)
	return true
}
