package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/abezemskiy/authforms/internal/client/authcall"
	"github.com/abezemskiy/authforms/internal/client/dispatcher"
	"github.com/abezemskiy/authforms/internal/client/forms"
	"github.com/abezemskiy/authforms/internal/client/identity"
	"github.com/abezemskiy/authforms/internal/client/logger"
	"github.com/abezemskiy/authforms/internal/client/tui"
	"github.com/abezemskiy/authforms/internal/client/tui/app"
	"github.com/abezemskiy/authforms/internal/client/tui/home"
	"github.com/abezemskiy/authforms/internal/client/tui/ident"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

func main() {
	err := parseVariables()
	if err != nil {
		log.Fatalf("failed to set global variables, %v", err)
	}

	// инициализация логера, терминал занят интерфейсом, поэтому логи пишутся в файл
	if err := logger.Initialize(logLevel, logFile); err != nil {
		log.Fatalf("Error starting client: %v", err)
	}

	// Инициализирую resty клиента
	client := resty.New().SetBaseURL(serverURL(netAddr))

	run(context.Background(), authcall.NewClient(client))
}

// run - будет полезна при инициализации зависимостей клиента перед запуском
func run(ctx context.Context, caller authcall.Caller) {
	ctx, cancelCtx := context.WithCancel(ctx)
	defer cancelCtx()

	// Создаю TUI интерфейс
	tuiApp := createTUI(ctx, dispatcher.Config{
		Client:    caller,
		Endpoints: dispatcher.DefaultEndpoints(),
	})

	var wg sync.WaitGroup
	stopped := make(chan struct{})

	// Запускаю интерфейс в отдельной горутине
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(stopped)
		if err := tuiApp.Run(); err != nil {
			logger.ClientLog.Error("tui stopped with error", zap.Error(err))
		}
	}()

	// Канал для получения сигнала прерывания
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// Блокирование до сигнала о прерывании или до выхода пользователя из интерфейса
	select {
	case <-quit:
		logger.ClientLog.Info("Shutting down client...")
		tuiApp.Stop()
	case <-stopped:
	}

	// Отменяю незавершенные запросы аутентификации
	cancelCtx()
	wg.Wait()

	logger.ClientLog.Info("Shutdown the client gracefully")
}

func createTUI(ctx context.Context, cfg dispatcher.Config) *app.App {
	sess := &identity.Session{}
	prims := []app.Primitives{
		{Name: tui.Home, Prim: home.Page},
		{Name: tui.SignIn, Prim: ident.Page(ctx, forms.KindSignIn, cfg, sess)},
		{Name: tui.SignUp, Prim: ident.Page(ctx, forms.KindSignUp, cfg, sess)},
		{Name: tui.Forgot, Prim: ident.Page(ctx, forms.KindForgot, cfg, sess)},
	}
	return app.NewApp(prims)
}

// serverURL - адрес сервера со схемой, флаг допускает адрес без схемы.
func serverURL(addr string) string {
	if strings.HasPrefix(addr, "http://") || strings.HasPrefix(addr, "https://") {
		return addr
	}
	return "http://" + addr
}
