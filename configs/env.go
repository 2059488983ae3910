package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads the .env file if one is present. In deployed environments the
// variables come from the process environment, so a missing file is not fatal.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}
}

func EnvMongoURI() string {
	uri := os.Getenv("MONGOURI")
	if uri == "" {
		log.Fatal("MONGOURI must be set")
	}
	return uri
}

func EnvTokenSecret() string {
	secret := os.Getenv("TOKEN_SECRET")
	if secret == "" {
		log.Fatal("TOKEN_SECRET must be set")
	}
	return secret
}

func EnvPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	return port
}
