package pg

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/abezemskiy/authforms/internal/common/identity/tools/checker"
	"github.com/abezemskiy/authforms/internal/repositories/identity"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation - код ошибки PostgreSQL при нарушении ограничения уникальности.
const uniqueViolation = "23505"

// Store - хранилище аккаунтов в PostgreSQL.
type Store struct {
	// Поле conn содержит объект соединения с СУБД
	conn *sql.DB
}

// NewStore - применяет миграции и возвращает новый экземпляр PostgreSQL-хранилища.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if err := runMigrations(dsn); err != nil {
		return nil, fmt.Errorf("failed to run DB migrations: %w", err)
	}

	// Подключение к базе данных
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database error, %w", err)
	}

	s := &Store{conn: db}
	if err := s.Bootstrap(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

//go:embed migrations/*.sql
var migrationsDir embed.FS

func runMigrations(dsn string) error {
	d, err := iofs.New(migrationsDir, "migrations")
	if err != nil {
		return fmt.Errorf("failed to return an iofs driver: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", d, dsn)
	if err != nil {
		return fmt.Errorf("failed to get a new migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to apply migrations to the DB: %w", err)
		}
	}
	return nil
}

// Bootstrap - проверяет соединение с БД. Таблицы создаются миграциями.
func (s *Store) Bootstrap(ctx context.Context) error {
	if err := s.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database error, %w", err)
	}
	return nil
}

// Close - закрывает соединение с БД.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Disable - очищает таблицу аккаунтов.
// Метод необходим для тестирования, чтобы в процессе удалять тестовые записи.
func (s *Store) Disable(ctx context.Context) error {
	_, err := s.conn.ExecContext(ctx, `TRUNCATE TABLE account`)
	if err != nil {
		return fmt.Errorf("truncate table account error, %w", err)
	}
	return nil
}

// Register - сохраняет новый аккаунт. Если аккаунт с таким email уже существует, возвращается false.
func (s *Store) Register(ctx context.Context, account identity.Account) (bool, error) {
	query := `
		INSERT INTO account (id, email_local, email_domain, password_hash, email_verified)
		VALUES ($1, $2, $3, $4, $5)
	`
	stmt, err := s.conn.PrepareContext(ctx, query)
	if err != nil {
		return false, fmt.Errorf("prepare context error, %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, account.ID, account.EmailLocal, account.EmailDomain,
		account.PasswordHash, account.EmailVerified)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return false, nil
		}
		return false, fmt.Errorf("query execution error, %w", err)
	}
	return true, nil
}

// Authorize - возвращает аккаунт по email. Если аккаунт не найден, возвращается false.
func (s *Store) Authorize(ctx context.Context, email string) (identity.Account, bool, error) {
	local, domain, ok := checker.SplitEmail(email)
	if !ok {
		return identity.Account{}, false, nil
	}

	query := `
		SELECT  id,
				email_local,
				email_domain,
				password_hash,
				email_verified
		FROM account
		WHERE email_local = $1 AND email_domain = $2
	`
	stmt, err := s.conn.PrepareContext(ctx, query)
	if err != nil {
		return identity.Account{}, false, fmt.Errorf("prepare context error, %w", err)
	}
	defer stmt.Close()

	var account identity.Account
	err = stmt.QueryRowContext(ctx, local, domain).Scan(&account.ID, &account.EmailLocal,
		&account.EmailDomain, &account.PasswordHash, &account.EmailVerified)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return identity.Account{}, false, nil
		}
		return identity.Account{}, false, fmt.Errorf("scan row error, %w", err)
	}
	return account, true, nil
}
