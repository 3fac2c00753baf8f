// hasher - пакет для хэширования паролей с помощью scrypt.
// Хэш хранится строкой вида N&R&P&соль&ключ, соль и ключ закодированы в base64url.
package hasher

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/abezemskiy/authforms/internal/common/identity/tools/checker"
	"github.com/abezemskiy/authforms/internal/common/identity/tools/random"

	"golang.org/x/crypto/scrypt"
)

const (
	// SaltBytes - длина соли в байтах.
	SaltBytes = 32
	// KeyBytes - длина производного ключа в байтах.
	KeyBytes = 64

	separator = "&"
)

var (
	// ErrMismatchedHash - пароль не соответствует хэшу.
	ErrMismatchedHash = errors.New("mismatched hash")
	// ErrInvalidHash - строка хэша имеет неверный формат.
	ErrInvalidHash = errors.New("invalid hash")
)

// Params - параметры scrypt.
type Params struct {
	N int
	R int
	P int
}

// DefaultParams - параметры, с которыми хэшируются новые пароли.
var DefaultParams = Params{N: 16384, R: 8, P: 1}

// Generate - хэширует пароль со случайной солью.
func Generate(password []byte, params Params) (string, error) {
	salt, err := random.GenerateCryptoRandom(SaltBytes)
	if err != nil {
		return "", fmt.Errorf("generate salt error, %w", err)
	}

	dk, err := scrypt.Key(password, salt, params.N, params.R, params.P, KeyBytes)
	if err != nil {
		return "", fmt.Errorf("derive key error, %w", err)
	}

	return strings.Join([]string{
		strconv.Itoa(params.N),
		strconv.Itoa(params.R),
		strconv.Itoa(params.P),
		base64.URLEncoding.EncodeToString(salt),
		base64.URLEncoding.EncodeToString(dk),
	}, separator), nil
}

// Compare - проверяет пароль по хэшу, полученному из Generate.
// Параметры scrypt берутся из самого хэша.
func Compare(hash string, password []byte) error {
	params, salt, dk, err := decode(hash)
	if err != nil {
		return err
	}

	other, err := scrypt.Key(password, salt, params.N, params.R, params.P, len(dk))
	if err != nil {
		return fmt.Errorf("derive key error, %w", err)
	}

	if subtle.ConstantTimeCompare(dk, other) != 1 {
		return ErrMismatchedHash
	}
	return nil
}

func decode(hash string) (Params, []byte, []byte, error) {
	if !checker.CheckHash(hash) {
		return Params{}, nil, nil, ErrInvalidHash
	}
	parts := strings.Split(hash, separator)
	if len(parts) != 5 {
		return Params{}, nil, nil, ErrInvalidHash
	}

	var nums [3]int
	for i := range nums {
		n, err := strconv.Atoi(parts[i])
		if err != nil || n <= 0 {
			return Params{}, nil, nil, ErrInvalidHash
		}
		nums[i] = n
	}

	salt, err := base64.URLEncoding.DecodeString(parts[3])
	if err != nil {
		return Params{}, nil, nil, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	dk, err := base64.URLEncoding.DecodeString(parts[4])
	if err != nil || len(dk) == 0 {
		return Params{}, nil, nil, ErrInvalidHash
	}

	return Params{N: nums[0], R: nums[1], P: nums[2]}, salt, dk, nil
}
