package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"oficios/config"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Connect abre o backend escolhido em conf.Backend.
func Connect(ctx context.Context, conf config.Configuration) (Backend, error) {
	switch conf.Backend {
	case config.BACKEND_DOCUMENTO:
		return connectMongo(ctx, conf)
	default:
		return connectGorm(conf)
	}
}

func connectGorm(conf config.Configuration) (Backend, error) {
	var (
		database *gorm.DB
		err      error
	)

	if conf.Database == "postgres" || conf.Database == "postgresql" {
		zap.L().Info("Utilizando conexão com o postgresql...")
		path := "host=" + conf.DbHost + " port=" + conf.DbPort
		path += " user=" + conf.DbUser + " dbname=" + conf.DbName
		path += " password=" + conf.DbPass
		database, err = gorm.Open("postgres", path)
	} else {
		zap.L().Info("Utilizando conexão com o sqlite3...", zap.String("path", conf.DbPath))
		if err := os.MkdirAll(filepath.Dir(conf.DbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
		database, err = gorm.Open("sqlite3", conf.DbPath)
	}
	if err != nil {
		zap.L().Error("Got error when connect database", zap.Error(err))
		return nil, err
	}

	r := NewRelational(database)
	migrate := r.EnsureSchema
	if conf.AutoMigrate {
		migrate = r.Migrate
	}
	if err := migrate(); err != nil {
		database.Close()
		return nil, err
	}
	return r, nil
}

func connectMongo(ctx context.Context, conf config.Configuration) (Backend, error) {
	zap.L().Info("Utilizando conexão com o mongodb...", zap.String("database", conf.MongoDatabase))

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(conf.MongoURI))
	if err != nil {
		zap.L().Error("Got error when connect mongodb", zap.Error(err))
		return nil, err
	}
	d := NewDocument(client.Database(conf.MongoDatabase))
	d.client = client

	if err := d.Ping(connectCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return d, nil
}
