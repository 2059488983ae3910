package configs

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DatabaseName = "coolWave"

// ConnectDB dials MongoDB and verifies the connection with a ping. The returned
// client is handed to the controllers at startup; nothing here keeps package
// state, so tests can swap in their own client.
func ConnectDB() *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(EnvMongoURI()))
	if err != nil {
		log.Fatal(err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal(err)
	}

	log.Println("Connected to MongoDB")
	return client
}

func GetDatabase(client *mongo.Client) *mongo.Database {
	return client.Database(DatabaseName)
}
