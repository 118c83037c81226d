package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"reflect"

	"github.com/go-redis/redis/v8"
)

// Fixed storage keys, one per collection.
const (
	KeyUsers        = "burkinaStay_users"
	KeyProperties   = "burkinaStay_properties"
	KeyReservations = "burkinaStay_reservations"
	KeyCurrentUser  = "burkinaStay_currentUser"
)

// ErrKeyNotFound reports that a key has never been written.
var ErrKeyNotFound = errors.New("key not found")

// Backend is the raw key-value substrate the adapter writes through.
type Backend interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}

type redisBackend struct {
	client *redis.Client
}

func NewRedisBackend(client *redis.Client) Backend {
	return &redisBackend{client: client}
}

func (b *redisBackend) Get(ctx context.Context, key string) (string, error) {
	value, err := b.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrKeyNotFound
	}
	return value, err
}

func (b *redisBackend) Set(ctx context.Context, key string, value string) error {
	return b.client.Set(ctx, key, value, 0).Err()
}

// Adapter is the only component that touches the backend. Its failures never
// reach callers: a failed save leaves the previously persisted value in
// place, a failed load leaves the caller's default in place. Both are logged.
type Adapter struct {
	backend Backend
}

func NewAdapter(backend Backend) *Adapter {
	return &Adapter{backend: backend}
}

// Save serializes value to JSON and writes it under key.
func (a *Adapter) Save(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("storage: save %s failed: %v", key, err)
		return
	}
	if err := a.backend.Set(ctx, key, string(data)); err != nil {
		log.Printf("storage: save %s failed: %v", key, err)
	}
}

// Load reads key into dest. dest must be prefilled with the caller's default;
// it is left untouched when the key is absent or the read fails.
func (a *Adapter) Load(ctx context.Context, key string, dest interface{}) {
	raw, err := a.backend.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.Printf("storage: load %s failed: %v", key, err)
		}
		return
	}
	// Decode into a fresh value first: a truncated payload must not leave a
	// half-written collection behind.
	fresh := reflect.New(reflect.TypeOf(dest).Elem())
	if err := json.Unmarshal([]byte(raw), fresh.Interface()); err != nil {
		log.Printf("storage: load %s failed: %v", key, err)
		return
	}
	reflect.ValueOf(dest).Elem().Set(fresh.Elem())
}
