package db

import (
	"context"
	"fmt"
	"time"

	"PGRegistry/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client   *mongo.Client
	database *mongo.Database
	bucket   *gridfs.Bucket
)

// Init connects to MongoDB and prepares the document-blob bucket.
func Init(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoUri))
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}

	client = c
	database = c.Database(cfg.MongoDb)

	b, err := gridfs.NewBucket(database, options.GridFSBucket().SetName("documents"))
	if err != nil {
		return fmt.Errorf("failed to open gridfs bucket: %w", err)
	}
	bucket = b
	return nil
}

func OpenCollection(name string) *mongo.Collection {
	return database.Collection(name)
}

// Bucket returns the GridFS bucket holding uploaded tenant documents.
func Bucket() *gridfs.Bucket {
	return bucket
}

func Close(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
