package inmemory

import (
	"context"
	"sync"

	"github.com/abezemskiy/authforms/internal/common/identity/tools/checker"
	"github.com/abezemskiy/authforms/internal/repositories/identity"
)

// Store - потокобезопасное хранилище аккаунтов в оперативной памяти.
// Используется, когда адрес БД не задан.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]identity.Account // ключ - email аккаунта
}

// NewStore - создает пустое хранилище.
func NewStore() *Store {
	return &Store{accounts: make(map[string]identity.Account)}
}

// Bootstrap - хранилищу в памяти подготовка не требуется.
func (s *Store) Bootstrap(ctx context.Context) error {
	return ctx.Err()
}

// Close - хранилище в памяти не держит ресурсов.
func (s *Store) Close() error {
	return nil
}

// Register - сохраняет новый аккаунт. Если аккаунт с таким email уже существует, возвращается false.
func (s *Store) Register(ctx context.Context, account identity.Account) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	email := account.Email()
	if _, ok := s.accounts[email]; ok {
		return false, nil
	}
	s.accounts[email] = account
	return true, nil
}

// Authorize - возвращает аккаунт по email. Если аккаунт не найден, возвращается false.
func (s *Store) Authorize(ctx context.Context, email string) (identity.Account, bool, error) {
	if err := ctx.Err(); err != nil {
		return identity.Account{}, false, err
	}
	if _, _, ok := checker.SplitEmail(email); !ok {
		return identity.Account{}, false, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[email]
	return account, ok, nil
}
