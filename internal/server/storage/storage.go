// storage - выбор хранилища аккаунтов сервера.
package storage

import (
	"context"
	"fmt"
	"io"

	repoStorage "github.com/abezemskiy/authforms/internal/repositories/storage"
	"github.com/abezemskiy/authforms/internal/server/storage/inmemory"
	"github.com/abezemskiy/authforms/internal/server/storage/pg"
)

// IAccountServerStorage - хранилище аккаунтов, которое сервер закрывает при завершении работы.
type IAccountServerStorage interface {
	repoStorage.IAccountStorage
	io.Closer
}

// New - PostgreSQL-хранилище по адресу dsn, либо хранилище в памяти, если адрес пустой.
func New(ctx context.Context, dsn string) (IAccountServerStorage, error) {
	if dsn == "" {
		return inmemory.NewStore(), nil
	}
	stor, err := pg.NewStore(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create postgres storage error, %w", err)
	}
	return stor, nil
}
