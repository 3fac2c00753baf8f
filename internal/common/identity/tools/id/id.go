package id

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateID - идентификатор аккаунта, случайный UUID.
func GenerateID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate id error, %w", err)
	}
	return id.String(), nil
}
