package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Регулярное выражение для поиска плейсхолдеров вида ${VAR:-default}
var envPlaceholderRe = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandEnvWithDefaults расширяет переменные окружения с поддержкой дефолтных значений.
// Формат: ${VAR:-default}. Неустановленная переменная заменяется на default
// (пустая строка, если default не указан).
func expandEnvWithDefaults(s string) string {
	return envPlaceholderRe.ReplaceAllStringFunc(s, func(match string) string {
		matches := envPlaceholderRe.FindStringSubmatch(match)
		if len(matches) < 2 {
			return match
		}

		if value := os.Getenv(matches[1]); value != "" {
			return value
		}

		// Переменная не установлена — используем значение по умолчанию
		if len(matches) > 2 {
			return matches[2]
		}
		return ""
	})
}

// coerce приводит расширенное строковое значение к подходящему типу.
// Числа и boolean после подстановки переменных окружения иначе остались бы строками
func coerce(expanded string) any {
	if expanded == "true" || expanded == "false" {
		boolValue, _ := strconv.ParseBool(expanded)
		return boolValue
	}
	if intValue, err := strconv.Atoi(expanded); err == nil {
		return intValue
	}
	return expanded
}

// InitConfig читает конфигурационный файл и возвращает экземпляр конфигурации.
// Использует generic для работы с произвольным типом конфигурации.
// Отсутствующий файл не является ошибкой: клиент запускается с пустой
// конфигурацией, собранной только из переменных окружения (аутентификация
// в этом случае отвергается на стороне сервера — это вопрос конфигурации,
// а не кода).
func InitConfig[C any](configFile string) (*C, error) {
	v := viper.New()
	ext := strings.TrimLeft(filepath.Ext(configFile), ".")

	v.SetConfigFile(configFile)
	v.SetConfigType(ext)
	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return new(C), nil
		}
		return nil, fmt.Errorf("v.ReadInConfig: %w", err)
	}

	// Заменяем плейсхолдеры ${VAR:-default} на значения переменных окружения
	for _, k := range v.AllKeys() {
		value := v.GetString(k)
		if value == "" {
			continue
		}
		v.Set(k, coerce(expandEnvWithDefaults(value)))
	}

	cfg := new(C)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("v.Unmarshal: %w", err)
	}

	return cfg, nil
}
