package database

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Environment variable names.
const (
	EnvMongoURI       = "MONGO_URI"
	EnvDBName         = "DB_NAME"
	EnvCollectionName = "COLLECTION_NAME"
	EnvPort           = "PORT"
	EnvLogLevel       = "LOG_LEVEL"
)

const (
	DefaultPort     = "8000"
	DefaultLogLevel = "info"

	connectTimeout = 10 * time.Second
)

// Config is the process configuration read at startup.
type Config struct {
	MongoURI       string
	DBName         string
	CollectionName string
	Port           string
	LogLevel       string
}

// LoadEnv loads variables from a .env file if one exists. Variables already
// present in the environment win.
func LoadEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !os.IsNotExist(errors.Cause(err)) {
		return errors.Wrap(err, "loading .env file")
	}
	return nil
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	cfg := Config{
		MongoURI:       os.Getenv(EnvMongoURI),
		DBName:         os.Getenv(EnvDBName),
		CollectionName: os.Getenv(EnvCollectionName),
		Port:           os.Getenv(EnvPort),
		LogLevel:       os.Getenv(EnvLogLevel),
	}
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	var missing []string
	if cfg.MongoURI == "" {
		missing = append(missing, EnvMongoURI)
	}
	if cfg.DBName == "" {
		missing = append(missing, EnvDBName)
	}
	if cfg.CollectionName == "" {
		missing = append(missing, EnvCollectionName)
	}
	if len(missing) > 0 {
		return cfg, errors.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}

// Connect opens the shared client and checks the server is reachable. The
// client is safe for concurrent use and should be created once per process.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "connecting to mongodb")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "pinging mongodb")
	}
	return client, nil
}

func OpenCollection(client *mongo.Client, dbName, collectionName string) *mongo.Collection {
	return client.Database(dbName).Collection(collectionName)
}
