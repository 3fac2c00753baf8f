package random

import (
	"crypto/rand"
	"fmt"
)

// GenerateCryptoRandom - функция для генерации криптостойкой случайной последовательности байт длины size.
func GenerateCryptoRandom(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("negative size %d", size)
	}
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("read random bytes error, %w", err)
	}
	return b, nil
}
