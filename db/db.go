package db

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection       *mongo.Collection
	LocationsCollection  *mongo.Collection
	MediaCollection      *mongo.Collection
	SettingsCollection   *mongo.Collection
	CategoriesCollection *mongo.Collection
	Client               *mongo.Client
)

// Connect establishes the MongoDB connection and binds the collections.
// Callers that run purely on the in-memory store never call this.
func Connect() error {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return err
	}
	Client = client

	database := client.Database("waymarkdb")
	UserCollection = database.Collection("users")
	LocationsCollection = database.Collection("locations")
	MediaCollection = database.Collection("media")
	SettingsCollection = database.Collection("settings")
	CategoriesCollection = database.Collection("categories")

	log.Println("Connected to MongoDB at", uri)
	return nil
}

func Disconnect(ctx context.Context) {
	if Client == nil {
		return
	}
	if err := Client.Disconnect(ctx); err != nil {
		log.Printf("Mongo disconnect error: %v", err)
	}
}
