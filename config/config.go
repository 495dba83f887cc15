package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 应用程序配置
type Config struct {
	Server   Server   `yaml:"server"`
	Database Database `yaml:"database"`
	Log      Log      `yaml:"log"`
}

// Server 服务器配置
type Server struct {
	Address string `yaml:"address"`
}

// Database 数据库配置
type Database struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
	// Seed 为 true 时，customers 表为空则写入初始数据
	Seed bool `yaml:"seed"`
	// LogSQL 打开 gorm 的 SQL 日志
	LogSQL bool `yaml:"log_sql"`
}

// Log 日志配置
type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

const (
	DefaultAddress   = "127.0.0.1:8080"
	DefaultDriver    = "sqlite"
	DefaultSQLiteDSN = "traffic_data.db?_pragma=foreign_keys(1)"
)

// Default 返回不依赖配置文件的默认配置
func Default() *Config {
	return &Config{
		Server:   Server{Address: DefaultAddress},
		Database: Database{Driver: DefaultDriver, DSN: DefaultSQLiteDSN, Seed: true},
		Log:      Log{Level: "info", Format: "text"},
	}
}

// LoadConfig 从文件加载配置
func LoadConfig() (*Config, error) {
	// 1. 尝试从环境变量获取配置文件路径
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	return LoadFile(configPath)
}

// LoadFile 读取指定路径的配置，文件不存在时使用默认配置
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// 验证配置并设置默认值
	if cfg.Server.Address == "" {
		cfg.Server.Address = DefaultAddress
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DefaultDriver
	}
	if cfg.Database.DSN == "" && cfg.Database.Driver == DefaultDriver {
		cfg.Database.DSN = DefaultSQLiteDSN
	}
	// 非 sqlite 驱动必须显式配置 dsn
	if cfg.Database.Driver != DefaultDriver && (cfg.Database.DSN == "" || cfg.Database.DSN == DefaultSQLiteDSN) {
		return nil, fmt.Errorf("database.dsn is required for driver %s", cfg.Database.Driver)
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}
