package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/franciscosanchezn/bistro-boss-api/internal/metrics"
)

// InitMongo connects to the document store, pins the stable server API and
// verifies the deployment with a ping. The returned client is safe for
// concurrent use and must be disconnected at shutdown.
func InitMongo(ctx context.Context, cfg MongoConfig) (*mongo.Client, *mongo.Database, error) {
	log.WithField("mongo_database", cfg.Database).Info("Initializing document store connection")

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(50).
		SetMonitor(commandMonitor())

	client, err := mongo.Connect(connectCtx, clientOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo: connect: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo: ping: %w", err)
	}

	log.WithFields(logrus.Fields{
		"mongo_database": cfg.Database,
	}).Info("Pinged your deployment. Document store connection established")

	return client, client.Database(cfg.Database), nil
}

// commandMonitor feeds command round trips into the store metrics
func commandMonitor() *event.CommandMonitor {
	return &event.CommandMonitor{
		Succeeded: func(_ context.Context, e *event.CommandSucceededEvent) {
			metrics.ObserveStoreOp("mongo", e.CommandName, e.Duration, false)
		},
		Failed: func(_ context.Context, e *event.CommandFailedEvent) {
			metrics.ObserveStoreOp("mongo", e.CommandName, e.Duration, true)
			log.WithFields(logrus.Fields{
				"command": e.CommandName,
				"failure": e.Failure,
			}).Debug("Document store command failed")
		},
	}
}
