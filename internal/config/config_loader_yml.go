package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// универсальная функция загрузки конфига из .yml файла (используем дженерики)
// fn - функция-конструктор конфига со значениями по умолчанию
// если путь пустой или файла нет - возвращаются дефолтные значения БЕЗ ошибки,
// чтобы сервис мог стартовать вообще без конфиг-файлов
func LoadYAMLConfig[T any](configPath string, fn func() *T) (*T, error) {
	// создаём конфиг со значениями по умолчанию
	config := fn()

	if configPath == "" {
		return config, nil
	}

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	// файл существует: ошибки чтения и парсинга уже не прощаем
	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		return config, err
	}

	if err := yaml.Unmarshal(yamlFile, config); err != nil {
		return config, err
	}

	return config, nil
}
