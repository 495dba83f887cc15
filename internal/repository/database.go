package repository

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"trafficapi/config"
	"trafficapi/internal/model"
	"trafficapi/internal/util"
)

// InitDB 初始化数据库连接池并迁移表结构
// 返回的 *gorm.DB 由调用方持有，退出时调用 CloseDB 释放
func InitDB(dbConfig config.Database) (*gorm.DB, error) {
	var dialector gorm.Dialector

	// 根据配置选择数据库驱动
	switch dbConfig.Driver {
	case "sqlite":
		dialector = sqlite.Open(dbConfig.DSN)
	case "postgres":
		dialector = postgres.Open(dbConfig.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", dbConfig.Driver)
	}

	// 连接数据库
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: util.NewGormLogger(log.StandardLogger(), dbConfig.LogSQL),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	// 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// 对于SQLite，设置PRAGMA参数以提高并发性能
	if dbConfig.Driver == "sqlite" {
		// 设置WAL模式，提高并发性能
		db.Exec("PRAGMA journal_mode = WAL;")
		// 设置busy_timeout，避免"database is locked"错误
		db.Exec("PRAGMA busy_timeout = 5000;")
		db.Exec("PRAGMA synchronous = NORMAL;")
	}

	if err := Migrate(db); err != nil {
		_ = CloseDB(db)
		return nil, err
	}

	log.WithField("driver", dbConfig.Driver).Info("数据库初始化成功")
	return db, nil
}

// Migrate 幂等地创建表结构，customers 必须先于 traffic
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Customer{}, &model.Traffic{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// CloseDB 关闭连接池
func CloseDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
