package logger

import (
	"os"

	"go.uber.org/zap"
)

// ClientLog будет доступен всему коду клиента как синглтон.
// Никакой код, кроме функции Initialize, не должен модифицировать эту переменную.
// По умолчанию установлен no-op-логер, который не выводит никаких сообщений.
var ClientLog *zap.Logger = zap.NewNop()

// Initialize - инициализирует синглтон логера с необходимым уровнем логирования.
// Если передан logFile, то логи пишутся в файл: терминал занят интерфейсом пользователя.
func Initialize(level, logFile string) error {
	// преобразуем текстовый уровень логирования в zap.AtomicLevel
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	// создаём новую конфигурацию логера
	cfg := zap.NewProductionConfig()
	// устанавливаем уровень
	cfg.Level = lvl

	// если установлен файл, то направляю вывод логов в файл
	if logFile != "" {
		// очищаю файл логов при старте
		err := os.Truncate(logFile, 0)
		if err != nil && !os.IsNotExist(err) {
			return err
		}
		cfg.OutputPaths = []string{logFile}
		cfg.ErrorOutputPaths = []string{logFile}
	}

	// создаём логер на основе конфигурации
	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	// устанавливаем синглтон
	ClientLog = zl.With(zap.String("role", "client"))
	return nil
}
