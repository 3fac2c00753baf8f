//go:build js && wasm

// Клиент для браузера: подключает обработчик к форме аутентификации на странице.
// Сборка: GOOS=js GOARCH=wasm go build -o static/authforms.wasm ./cmd/wasm
package main

import (
	"context"
	"log"
	"syscall/js"

	"github.com/abezemskiy/authforms/internal/client/authcall"
	"github.com/abezemskiy/authforms/internal/client/dispatcher"
	"github.com/abezemskiy/authforms/internal/client/dom/jsdom"
	"github.com/abezemskiy/authforms/internal/client/logger"

	"github.com/go-resty/resty/v2"
)

// logLevel - уровень логирования, задается при сборке через -ldflags "-X main.logLevel=debug".
var logLevel = "info"

func main() {
	// логи попадают в консоль браузера
	if err := logger.Initialize(logLevel, ""); err != nil {
		log.Fatalf("Error starting client: %v", err)
	}

	// запросы отправляются на тот же сервер, с которого загружена страница
	origin := js.Global().Get("location").Get("origin").String()
	client := authcall.NewClient(resty.New().SetBaseURL(origin))

	dispatcher.Init(context.Background(), jsdom.NewDocument(), dispatcher.Config{
		Client:    client,
		Endpoints: dispatcher.DefaultEndpoints(),
	})

	// обработчики событий живут, пока жива страница
	select {}
}
