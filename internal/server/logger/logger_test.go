package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type MockResponseWriter struct {
	HeaderMap http.Header
	Status    int
}

func (m *MockResponseWriter) Header() http.Header {
	if m.HeaderMap == nil {
		m.HeaderMap = make(http.Header)
	}
	return m.HeaderMap
}

func (m *MockResponseWriter) Write(body []byte) (int, error) {
	return len(body), nil
}

func (m *MockResponseWriter) WriteHeader(statusCode int) {
	m.Status = statusCode
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		expectError bool
	}{
		{"ValidDebugLevel", "debug", false},
		{"ValidInfoLevel", "info", false},
		{"ValidWarnLevel", "warn", false},
		{"ValidErrorLevel", "error", false},
		{"InvalidLevel", "invalid", true},
		{"EmptyLevel", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Инициализирую логгер
			err := Initialize(tt.level)

			// Проверяю наличие ошибки
			if tt.expectError {
				require.Error(t, err)
			}
			if !tt.expectError {
				require.NoError(t, err)
			}

			// Если ошибок нет, проверяю уровень логирования
			if !tt.expectError {
				require.NotEqual(t, nil, ServerLog)

				// получаю текущий уровень логгера
				level := ServerLog.Core().Enabled(zap.DebugLevel)
				expectedLevel := tt.level == "debug" // уровень "debug" должен быть доступен только при debug
				require.Equal(t, expectedLevel, level)
			}
		})
	}
}

func TestInitializeInvalidConfig(t *testing.T) {
	// Создаю буфер для вывода логов
	var buf bytes.Buffer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(&buf),
		zap.DebugLevel,
	)
	ServerLog = zap.New(core)

	// Инициализация с некорректным уровнем
	err := Initialize("invalid")
	require.Error(t, err)

	// Проверяю, что глобальный логгер не был перезаписан
	require.Equal(t, false, buf.Len() > 0)
}

func TestWrite(t *testing.T) {
	responseData := &responseData{}

	testHeaderMap := http.Header{"test_header1": []string{"test_value1"}}

	mockWriter := &MockResponseWriter{
		HeaderMap: testHeaderMap,
		Status:    200,
	}

	loggingResponseWriter := loggingResponseWriter{
		ResponseWriter: mockWriter,
		responseData:   responseData,
	}

	firstMessage := []byte("first message")
	lenFirstMessage, err := loggingResponseWriter.Write(firstMessage)
	require.NoError(t, err)
	assert.Equal(t, len(firstMessage), lenFirstMessage)
	assert.Equal(t, len(firstMessage), responseData.size)

	secondMessage := []byte("write second message")
	lenSecondMessage, err := loggingResponseWriter.Write(secondMessage)
	require.NoError(t, err)
	assert.Equal(t, len(secondMessage), lenSecondMessage)
	assert.Equal(t, len(firstMessage)+len(secondMessage), responseData.size)
}

func TestWriteHeader(t *testing.T) {
	responseData := &responseData{}

	testHeaderMap := http.Header{"test_header1": []string{"test_value1"}}

	mockWriter := &MockResponseWriter{
		HeaderMap: testHeaderMap,
		Status:    200,
	}

	loggingResponseWriter := loggingResponseWriter{
		ResponseWriter: mockWriter,
		responseData:   responseData,
	}

	firstStatusCode := 300
	loggingResponseWriter.WriteHeader(firstStatusCode)
	assert.Equal(t, firstStatusCode, mockWriter.Status)
	assert.Equal(t, firstStatusCode, responseData.status)

	secondStatusCode := 500
	loggingResponseWriter.WriteHeader(secondStatusCode)
	assert.Equal(t, secondStatusCode, mockWriter.Status)
	assert.Equal(t, secondStatusCode, responseData.status)
}

func TestRequestLogger(t *testing.T) {
	// перехватываю вывод логера
	var buf bytes.Buffer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(&buf),
		zap.DebugLevel,
	)
	prev := ServerLog
	ServerLog = zap.New(core)
	defer func() { ServerLog = prev }()

	testHandler := func(status int, body string) http.HandlerFunc {
		return func(res http.ResponseWriter, _ *http.Request) {
			if status != 0 {
				res.WriteHeader(status)
			}
			res.Write([]byte(body))
		}
	}

	r := chi.NewRouter()
	r.Post("/auth/signup", RequestLogger(testHandler(http.StatusConflict, `{"code":409}`)))
	r.Get("/", RequestLogger(testHandler(0, "page")))

	tests := []struct {
		method string
		path   string
		status int
		size   int
	}{
		{method: http.MethodPost, path: "/auth/signup", status: http.StatusConflict, size: len(`{"code":409}`)},
		{method: http.MethodGet, path: "/", status: http.StatusOK, size: len("page")},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			buf.Reset()
			request := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, request)

			res := w.Result()
			defer res.Body.Close() // Закрываем тело ответа
			assert.Equal(t, tt.status, res.StatusCode)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.path, entry["uri"])
			assert.EqualValues(t, tt.status, entry["status"])
			assert.EqualValues(t, tt.size, entry["size"])
		})
	}
}
