package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	repoStorage "github.com/abezemskiy/authforms/internal/repositories/storage"
	"github.com/abezemskiy/authforms/internal/server/handlers"
	"github.com/abezemskiy/authforms/internal/server/identity/auth"
	"github.com/abezemskiy/authforms/internal/server/logger"
	"github.com/abezemskiy/authforms/internal/server/pages"
	"github.com/abezemskiy/authforms/internal/server/storage"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	shutdownWaitPeriod = 20 * time.Second // для установки в контекст для реализации graceful shutdown
	staticPrefix       = "/static"
)

func main() {
	err := parseVariables()
	if err != nil {
		log.Fatalf("failed to set global variables, %v", err)
	}

	// Инициализация логера
	if err := logger.Initialize(logLevel); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}

	ctx := context.Background()
	// если адрес БД не задан, аккаунты хранятся в памяти
	stor, err := storage.New(ctx, databaseDsn)
	if err != nil {
		log.Fatalf("Failed to create storage: %v\n", err)
	}
	defer stor.Close()

	run(ctx, stor)
}

// run - запускает сервер и останавливает его по сигналу прерывания.
func run(ctx context.Context, stor repoStorage.IAccountStorage) {
	logger.ServerLog.Info("Running authforms", zap.String("address", netAddr), zap.Bool("database", databaseDsn != ""))

	srv := &http.Server{
		Addr:    netAddr,
		Handler: Router(stor, staticDir),
	}
	// Канал для получения сигнала прерывания
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Горутина для запуска сервера
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	// Блокирование до тех пор, пока не поступит сигнал о прерывании
	<-quit
	logger.ServerLog.Info("Shutting down server...", zap.String("address", netAddr))

	ctx, cancel := context.WithTimeout(ctx, shutdownWaitPeriod)
	defer cancel()

	// останавливаю сервер, чтобы он перестал принимать новые запросы
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Stopping server error: %v", err)
	}

	logger.ServerLog.Info("Shutdown the server gracefully", zap.String("address", netAddr))
}

// Router - дирижирует обработку http запросов к серверу.
// Если static пустой, статические файлы не раздаются.
func Router(stor repoStorage.IAccountStorage, static string) chi.Router {
	r := chi.NewRouter()

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", logger.RequestLogger(handlers.SignupHandler(stor)))
		r.Post("/signin", logger.RequestLogger(handlers.SigninHandler(stor)))
		r.Get("/session", logger.RequestLogger(auth.Middleware(handlers.SessionHandler())))
	})

	r.Get("/", logger.RequestLogger(pages.RenderHandler(pages.SignIn, staticPrefix)))
	for _, name := range []string{pages.SignIn, pages.SignUp, pages.Forgot} {
		r.Get("/"+name, logger.RequestLogger(pages.RenderHandler(name, staticPrefix)))
	}

	if static != "" {
		fs := http.StripPrefix(staticPrefix, http.FileServer(http.Dir(static)))
		r.Get(staticPrefix+"/*", logger.RequestLogger(fs.ServeHTTP))
	}

	// Определяем маршрут по умолчанию для некорректных запросов
	r.NotFound(logger.RequestLogger(handlers.HandleOtherRequest()))

	return r
}
