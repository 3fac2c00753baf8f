package identity

import "sync"

// Session - аккаунт, в который выполнен вход в текущем запуске клиента.
// Предоставляет методы для потокобезопасного использования.
type Session struct {
	mu sync.RWMutex
	id string
}

// Set - запоминает идентификатор аккаунта после успешного входа.
func (s *Session) Set(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = id
}

// Get - идентификатор аккаунта и признак выполненного входа.
func (s *Session) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id, s.id != ""
}

// Reset - выход из аккаунта.
func (s *Session) Reset() {
	s.Set("")
}

// ISession - интерфейс хранения аккаунта текущего запуска клиента.
type ISession interface {
	Set(id string)
	Get() (string, bool)
	Reset()
}
