package config

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

func loadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Cannot load .env file, falling back to system environment variables")
	}
}

// ConnectRedis opens a client against the configured Redis instance and
// verifies the connection.
func ConnectRedis() (*redis.Client, error) {
	loadEnv()

	RDB := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Username: os.Getenv("REDIS_USER"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	res, err := RDB.Ping(Ctx).Result()
	if err != nil {
		return nil, err
	}

	log.Println("Redis connection established:", res)
	return RDB, nil
}
