// authcall - пакет для отправки запросов аутентификации на сервер.
package authcall

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abezemskiy/authforms/internal/client/logger"
	"github.com/abezemskiy/authforms/internal/repositories/identity"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ErrBadStatus - сервер ответил статусом вне диапазона 2xx.
var ErrBadStatus = errors.New("unexpected response status")

// RequestError - единая ошибка запроса аутентификации.
// Оборачивает ошибку транспорта, статуса ответа или разбора JSON, чтобы вызывающий код видел один вид ошибки.
type RequestError struct {
	URL        string
	StatusCode int // 0, если ответ не был получен
	Err        error
}

func (e *RequestError) Error() string {
	return "error making authentication request"
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

//go:generate mockgen -destination=../../repositories/mocks/mock_caller.go -package=mocks github.com/abezemskiy/authforms/internal/client/authcall Caller

// Caller - интерфейс отправки запроса аутентификации, который используют формы.
type Caller interface {
	AuthCall(ctx context.Context, data identity.AuthenticationData, url string) (json.RawMessage, error)
}

// Client - отправляет запросы аутентификации через resty клиента.
type Client struct {
	client *resty.Client
}

// NewClient - фабричная функция Client.
// Повторные попытки отключаются: каждый запрос отправляется ровно один раз.
func NewClient(client *resty.Client) *Client {
	client.SetRetryCount(0)
	return &Client{client: client}
}

// AuthCall - отправляет data методом POST в формате JSON по адресу url и возвращает JSON тело ответа.
func (c *Client) AuthCall(ctx context.Context, data identity.AuthenticationData, url string) (json.RawMessage, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(data).
		Post(url)
	if err != nil {
		logger.ClientLog.Error("push authentication request to server error", zap.String("url", url), zap.Error(err))
		return nil, &RequestError{URL: url, Err: fmt.Errorf("post request error, %w", err)}
	}

	if !resp.IsSuccess() {
		logger.ClientLog.Error("authentication request rejected", zap.String("url", url), zap.Int("status", resp.StatusCode()))
		return nil, &RequestError{URL: url, StatusCode: resp.StatusCode(), Err: fmt.Errorf("%w %d", ErrBadStatus, resp.StatusCode())}
	}

	var body json.RawMessage
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		logger.ClientLog.Error("failed to parse authentication response", zap.String("url", url), zap.Error(err))
		return nil, &RequestError{URL: url, StatusCode: resp.StatusCode(), Err: fmt.Errorf("decode response error, %w", err)}
	}

	logger.ClientLog.Debug("successful authentication request", zap.String("url", url), zap.Int("status", resp.StatusCode()))
	return body, nil
}
