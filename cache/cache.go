package cache

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key identifies a cached resource collection. Every write to a resource
// invalidates its key, so list endpoints never serve stale data past one
// mutation.
type Key string

const (
	KeyAppointments Key = "appointments"
	KeySchedules    Key = "schedules"
	KeyServices     Key = "services"
	KeyUsers        Key = "users"
)

const defaultTTL = 5 * time.Minute

var (
	Default *Store
	Ctx     = context.Background()
)

// Store is a redis-backed JSON cache keyed by resource.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client) *Store {
	return &Store{rdb: rdb, ttl: defaultTTL}
}

// Init connects to redis when REDIS_ADDR is set. Without it the cache is
// disabled and every lookup is a miss.
func Init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, response cache disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
	if _, err := client.Ping(Ctx).Result(); err != nil {
		log.Printf("Failed to connect to Redis, response cache disabled: %v", err)
		return
	}

	Default = New(client)
	log.Println("✅ Connected to Redis")
}

func (s *Store) GetJSON(ctx context.Context, key Key, dest interface{}) (bool, error) {
	data, err := s.rdb.Get(ctx, string(key)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) SetJSON(ctx context.Context, key Key, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, string(key), data, s.ttl).Err()
}

func (s *Store) Invalidate(ctx context.Context, keys ...Key) error {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return s.rdb.Del(ctx, names...).Err()
}

// Lookup reads a cached collection into dest. A disabled cache or a
// redis error is treated as a miss.
func Lookup(key Key, dest interface{}) bool {
	if Default == nil {
		return false
	}
	ok, err := Default.GetJSON(Ctx, key, dest)
	if err != nil {
		log.Printf("cache lookup failed for %s: %v", key, err)
		return false
	}
	return ok
}

// Put stores a collection, best effort.
func Put(key Key, v interface{}) {
	if Default == nil {
		return
	}
	if err := Default.SetJSON(Ctx, key, v); err != nil {
		log.Printf("cache put failed for %s: %v", key, err)
	}
}

// Invalidate drops the given resource keys, best effort.
func Invalidate(keys ...Key) {
	if Default == nil {
		return
	}
	if err := Default.Invalidate(Ctx, keys...); err != nil {
		log.Printf("cache invalidate failed: %v", err)
	}
}
