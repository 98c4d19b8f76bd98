// Package db はGORMによるデータベース接続とマイグレーションを提供します。
package db

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v6"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	preventionadapters "climaseguro_backend/internal/feature/prevention/adapters"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	retryInterval = 3 * time.Second
)

// Config はデータベース接続設定です。
type Config struct {
	Driver         string        `env:"DB_DRIVER" envDefault:"sqlite"`
	DSN            string        `env:"DB_DSN"` // 設定されている場合は他の接続設定より優先
	Path           string        `env:"DB_PATH" envDefault:"./climaseguro.db"`
	Host           string        `env:"DB_HOST" envDefault:"localhost"`
	Port           string        `env:"DB_PORT" envDefault:"5432"`
	User           string        `env:"DB_USER"`
	Password       string        `env:"DB_PASSWORD"`
	Name           string        `env:"DB_NAME"`
	SSLMode        string        `env:"DB_SSLMODE" envDefault:"disable"`
	InstanceName   string        `env:"INSTANCE_CONNECTION_NAME"` // Cloud SQLのUnixソケット接続
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"60s"`
	RunMigrations  bool          `env:"RUN_MIGRATIONS" envDefault:"true"`
}

// Opener はDSNからDB接続を開く関数です。テストで差し替えられます。
type Opener func(dsn string) (*gorm.DB, error)

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse db config: %w", err)
	}
	return cfg, nil
}

// BuildDSN は設定からDSN文字列を生成します。
// sqliteではファイルパス、postgresではkey=value形式を返します。
func BuildDSN(cfg Config) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	if cfg.Driver != DriverPostgres {
		return cfg.Path
	}
	host, port := cfg.Host, cfg.Port
	if cfg.InstanceName != "" {
		host = "/cloudsql/" + cfg.InstanceName
		port = ""
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=%s", host, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
	if port != "" {
		dsn += " port=" + port
	}
	return dsn
}

// ConnectWithRetry はtimeoutまでretryIntervalごとに接続を試みます。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(retryInterval).After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(retryInterval)
	}
}

// OpenerFor はドライバーに対応するOpenerを返します。
func OpenerFor(driver string) (Opener, error) {
	var dialect func(string) gorm.Dialector
	switch driver {
	case DriverSQLite, "":
		dialect = sqlite.Open
	case DriverPostgres:
		dialect = postgres.Open
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
	return func(dsn string) (*gorm.DB, error) {
		return gorm.Open(dialect(dsn), &gorm.Config{})
	}, nil
}

// OpenDB は接続を確立し、必要に応じてマイグレーションを実行します。
func OpenDB(cfg Config) (*gorm.DB, error) {
	open, err := OpenerFor(cfg.Driver)
	if err != nil {
		return nil, err
	}
	dsn := BuildDSN(cfg)
	if dsn == "" {
		return nil, errors.New("database dsn is empty")
	}

	db, err := ConnectWithRetry(dsn, cfg.ConnectTimeout, open)
	if err != nil {
		return nil, err
	}
	if cfg.Driver != DriverPostgres {
		// sqliteの書き込みは単一コネクションに限定する
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if cfg.RunMigrations {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Migrate はアプリケーションのテーブルを作成・更新します。
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(preventionadapters.Models()...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
