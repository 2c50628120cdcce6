package rdx

import (
	"log"
	"os"
	"time"

	"waymark/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

// Init connects to Redis. A missing or unreachable Redis is not fatal:
// every helper below degrades to a no-op so caching and event fan-out
// simply switch off.
func Init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	if err := client.Ping(globals.Ctx).Err(); err != nil {
		log.Printf("Redis unavailable at %s: %v (continuing without cache)", addr, err)
		return
	}
	Conn = client
	log.Println("Connected to Redis at", addr)
}

func RdxGet(key string) (string, error) {
	if Conn == nil {
		return "", nil
	}
	val, err := Conn.Get(globals.Ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func RdxSet(key, value string) error {
	if Conn == nil {
		return nil
	}
	return Conn.Set(globals.Ctx, key, value, 10*time.Minute).Err()
}

func RdxDel(key string) (int64, error) {
	if Conn == nil {
		return 0, nil
	}
	return Conn.Del(globals.Ctx, key).Result()
}

func RdxHset(hash, field, value string) error {
	if Conn == nil {
		return nil
	}
	return Conn.HSet(globals.Ctx, hash, field, value).Err()
}

func RdxHdel(hash, field string) (int64, error) {
	if Conn == nil {
		return 0, nil
	}
	return Conn.HDel(globals.Ctx, hash, field).Result()
}
