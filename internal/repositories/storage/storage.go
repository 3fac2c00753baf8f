package storage

import (
	"context"

	"github.com/abezemskiy/authforms/internal/repositories/identity"
)

//go:generate mockgen -destination=../mocks/mock_storage.go -package=mocks github.com/abezemskiy/authforms/internal/repositories/storage IAccountStorage

type (
	// Starter - интерфейс для инициализации хранилища аккаунтов.
	Starter interface {
		Bootstrap(context.Context) error
	}

	// IAccountStorage - интерфейс хранилища аккаунтов пользователей.
	IAccountStorage interface {
		identity.Identifier
		Starter
	}
)
