package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// Configs представляет структуру конфигурации клиента и сервера.
// Клиент использует только Address, LogLevel и LogFile.
type Configs struct {
	Address     string `json:"address"`      // аналог переменной окружения AUTHFORMS_*_ADDRESS или флага -a
	LogLevel    string `json:"log_level"`    // аналог переменной окружения AUTHFORMS_*_LOG_LEVEL или флага -l
	LogFile     string `json:"log_file"`     // аналог переменной окружения AUTHFORMS_CLIENT_LOG_FILE или флага -f
	DatabaseDSN string `json:"database_dsn"` // аналог переменной окружения AUTHFORMS_SERVER_DATABASE_URL или флага -d
	SecretKey   string `json:"secret_key"`   // аналог переменной окружения AUTHFORMS_SERVER_SECRET_KEY или флага -secret-key
	ExpireToken int    `json:"expire_token"` // аналог переменной окружения AUTHFORMS_SERVER_EXPIRE_TOKEN или флага -expire-token
	StaticDir   string `json:"static_dir"`   // аналог переменной окружения AUTHFORMS_SERVER_STATIC_DIR или флага -static
}

// ParseConfigFile - функция для чтения параметров конфигурации из JSON файла.
func ParseConfigFile(configFileName string) (Configs, error) {
	var configs Configs
	f, err := os.Open(configFileName)
	if err != nil {
		return Configs{}, fmt.Errorf("open configuration file error: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(bufio.NewReader(f))
	if err := dec.Decode(&configs); err != nil {
		return Configs{}, fmt.Errorf("parse configuration file error: %w", err)
	}
	return configs, nil
}
