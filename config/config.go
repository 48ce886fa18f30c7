package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	BACKEND_RELACIONAL = "relacional"
	BACKEND_DOCUMENTO  = "documento"

	SESSION_STORE_MEMORY = "memory"
	SESSION_STORE_REDIS  = "redis"
)

type Configuration struct {
	ApiPort string `json:"api_port"`
	LogPath string `json:"log_path"`
	GinMode string `json:"gin_mode"`

	Backend string `json:"backend"` // "relacional" ou "documento"

	Database    string `json:"database"` // "sqlite3" ou "postgres"
	DbHost      string `json:"db_host"`
	DbPort      string `json:"db_port"`
	DbUser      string `json:"db_user"`
	DbName      string `json:"db_name"`
	DbPass      string `json:"db_pass"`
	DbPath      string `json:"db_path"`
	AutoMigrate bool   `json:"automigrate"`

	MongoURI      string `json:"mongo_uri"`
	MongoDatabase string `json:"mongo_database"`

	// AutoLogin reproduz o comportamento antigo da versão com banco de documentos:
	// visitar "/" autentica a sessão sem checar credenciais.
	AutoLogin bool `json:"auto_login"`

	Session struct {
		Store     string `json:"store"`
		RedisAddr string `json:"redis_addr"`
		Cookie    string `json:"cookie"`
		MaxAge    int    `json:"max_age"`
		Secure    bool   `json:"secure"`
	} `json:"session"`
}

// Get lê o arquivo de configuração. Arquivo ausente não é erro: ficam os defaults.
func Get(path string) (Configuration, error) {
	var c Configuration
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return c, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := json.Unmarshal(b, &c); err != nil {
			return c, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&c)
	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func (c Configuration) Validate() error {
	switch c.Backend {
	case BACKEND_RELACIONAL, BACKEND_DOCUMENTO:
	default:
		return fmt.Errorf("backend inválido: %q", c.Backend)
	}
	switch c.Session.Store {
	case SESSION_STORE_MEMORY, SESSION_STORE_REDIS:
	default:
		return fmt.Errorf("session.store inválido: %q", c.Session.Store)
	}
	if c.Backend == BACKEND_RELACIONAL && c.Database != "sqlite3" && c.Database != "postgres" && c.Database != "postgresql" {
		return fmt.Errorf("database inválido: %q", c.Database)
	}
	return nil
}

func applyEnv(c *Configuration) {
	if v := getenv("PORT", ""); v != "" {
		c.ApiPort = v
	}
	if v := getenv("BACKEND", ""); v != "" {
		c.Backend = v
	}
	if v := getenv("MONGO_URI", ""); v != "" {
		c.MongoURI = v
	}
	if v := getenv("REDIS_ADDR", ""); v != "" {
		c.Session.RedisAddr = v
	}
	if getenv("AUTOMIGRATE", "0") == "1" {
		c.AutoMigrate = true
	}
	if v := getenv("SESSION_MAX_AGE", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Session.MaxAge = n
		}
	}
}

// defaults (pra evitar nil/zero chato)
func applyDefaults(c *Configuration) {
	if c.ApiPort == "" {
		c.ApiPort = "3000"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/server.log"
	}
	if c.Backend == "" {
		c.Backend = BACKEND_RELACIONAL
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.DbPath == "" {
		c.DbPath = "db/database.db"
	}
	if c.MongoURI == "" {
		c.MongoURI = "mongodb://localhost:27017"
	}
	if c.MongoDatabase == "" {
		c.MongoDatabase = "oficios"
	}
	if c.Session.Store == "" {
		c.Session.Store = SESSION_STORE_MEMORY
	}
	if c.Session.RedisAddr == "" {
		c.Session.RedisAddr = "localhost:6379"
	}
	if c.Session.Cookie == "" {
		c.Session.Cookie = "oficios_sessao"
	}
	if c.Session.MaxAge <= 0 {
		c.Session.MaxAge = 86400
	}
}

func getenv(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}
