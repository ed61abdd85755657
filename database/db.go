package database

import (
	"context"
	"sync"
	"time"

	"turfbook/config"
	"turfbook/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

var (
	mu          sync.Mutex
	mongoClient *mongo.Client
	db          *mongo.Database
)

// GetDatabase returns the shared database handle, connecting on first use.
// Initialization is serialized so concurrent first requests share a single
// connection attempt. On failure the handle stays unset and the next request
// retries; the connection is never explicitly closed.
func GetDatabase(ctx context.Context) (*mongo.Database, error) {
	mu.Lock()
	defer mu.Unlock()
	if db != nil {
		return db, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		utils.GetLogger().Error("failed to connect to MongoDB", zap.Error(err))
		return nil, err
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		utils.GetLogger().Error("failed to ping MongoDB", zap.Error(err))
		_ = client.Disconnect(connectCtx)
		return nil, err
	}

	mongoClient = client
	db = mongoClient.Database(config.AppConfig.DatabaseName)
	utils.GetLogger().Info("Connected to MongoDB successfully",
		zap.String("database", config.AppConfig.DatabaseName))
	return db, nil
}
