package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/bistro-boss-api/internal/config"
	"github.com/franciscosanchezn/bistro-boss-api/internal/database"
	"github.com/franciscosanchezn/bistro-boss-api/internal/store"
	"github.com/franciscosanchezn/bistro-boss-api/internal/store/mongostore"
	"github.com/franciscosanchezn/bistro-boss-api/internal/store/sqlstore"
)

// openStore connects the configured backend and prepares its schema or indexes
func openStore(ctx context.Context, conf *config.Config) (store.Store, error) {
	if conf.StoreDriver == config.DriverMongo {
		client, db, err := database.InitMongo(ctx, database.MongoConfig{
			URI:      conf.MongoURI,
			Database: conf.MongoDatabase,
		})
		if err != nil {
			return nil, err
		}
		s := mongostore.New(client, db)
		if err := s.EnsureIndexes(ctx); err != nil {
			_ = s.Close(ctx)
			return nil, fmt.Errorf("ensure indexes: %w", err)
		}
		return s, nil
	}

	db, err := database.InitDatabase(database.DatabaseConfig{
		Driver:   conf.StoreDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
		Path:     conf.DBPath,
	})
	if err != nil {
		return nil, err
	}
	s, err := sqlstore.New(db)
	if err != nil {
		return nil, err
	}
	if err := s.Migrate(); err != nil {
		_ = s.Close(ctx)
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.WithField("store_driver", conf.StoreDriver).Info("Relational schema migrated")
	return s, nil
}
