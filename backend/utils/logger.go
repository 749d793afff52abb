package utils

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

const appName = "Learning Catalog"

// LoggerConfig определяет конфигурацию для логгера
type LoggerConfig struct {
	// Формат логов (text/json)
	Format string
	// Выходной поток (os.Stdout, файл и т.д.)
	Output io.Writer
	// Включить/выключить цвета для консоли
	EnableColors bool
}

// InitLogger инициализирует и возвращает логгер
func InitLogger(config ...LoggerConfig) *log.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	prefix := "[" + appName + "] "

	var logger *log.Logger
	if cfg.Format == "json" {
		// время и префикс пишет jsonLineWriter
		logger = log.New(&jsonLineWriter{out: cfg.Output, now: time.Now}, "", 0)
	} else {
		if cfg.EnableColors {
			prefix = "\033[36m" + prefix + "\033[0m" // Голубой цвет
		}
		logger = log.New(cfg.Output, prefix, log.LstdFlags|log.Lshortfile|log.LUTC)
	}

	return logger
}

// ColorsEnabled сообщает, нужно ли раскрашивать строки логов
func ColorsEnabled(logger *log.Logger) bool {
	return strings.Contains(logger.Prefix(), "\033[")
}

// jsonLineWriter превращает каждую строку log.Logger в JSON объект:
// {"time":"...","app":"Learning Catalog","msg":"..."}
type jsonLineWriter struct {
	out io.Writer
	now func() time.Time
}

type jsonLine struct {
	Time string `json:"time"`
	App  string `json:"app"`
	Msg  string `json:"msg"`
}

func (w *jsonLineWriter) Write(p []byte) (int, error) {
	line, err := json.Marshal(jsonLine{
		Time: w.now().UTC().Format(time.RFC3339Nano),
		App:  appName,
		Msg:  strings.TrimRight(string(p), "\n"),
	})
	if err != nil {
		return 0, err
	}
	if _, err := w.out.Write(append(line, '\n')); err != nil {
		return 0, err
	}
	return len(p), nil
}
