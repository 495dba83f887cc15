package util

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"

	"trafficapi/config"
)

// InitLogger 按配置设置全局日志级别和格式
func InitLogger(cfg config.Log) error {
	return ConfigureLogger(log.StandardLogger(), cfg, os.Stdout)
}

// ConfigureLogger 配置指定的 logger，便于测试时替换输出
func ConfigureLogger(logger *log.Logger, cfg config.Log, out io.Writer) error {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	logger.SetLevel(lvl)
	logger.SetOutput(out)

	switch strings.ToLower(cfg.Format) {
	case "", "text":
		logger.SetFormatter(&log.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	case "json":
		logger.SetFormatter(&log.JSONFormatter{TimestampFormat: time.RFC3339})
	default:
		return fmt.Errorf("unsupported log format: %s", cfg.Format)
	}
	return nil
}

// NewGormLogger 把 gorm 的 SQL 日志接到 logrus 上
func NewGormLogger(logger *log.Logger, logSQL bool) gormlogger.Interface {
	level := gormlogger.Warn
	if logSQL {
		level = gormlogger.Info
	}
	return gormlogger.New(logger, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
