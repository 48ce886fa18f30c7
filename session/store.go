package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Data é o estado guardado no servidor para cada sessão.
type Data struct {
	Autenticado bool `json:"autenticado"`
}

// Store guarda sessões pelo token enviado no cookie.
type Store interface {
	// Load devolve ok=false quando o token é desconhecido ou expirou.
	Load(ctx context.Context, token string) (d Data, ok bool, err error)
	Save(ctx context.Context, token string, d Data, ttl time.Duration) error
	Delete(ctx context.Context, token string) error
}

type memoryEntry struct {
	data    Data
	expires time.Time
}

// MemoryStore mantém as sessões no processo. Serve para uma instância só.
type MemoryStore struct {
	mu        sync.Mutex
	entries   map[string]memoryEntry
	now       func() time.Time
	lastSweep time.Time
}

const memorySweepInterval = time.Minute

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry), now: time.Now}
}

func (m *MemoryStore) Load(_ context.Context, token string) (Data, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[token]
	if !ok {
		return Data{}, false, nil
	}
	if m.now().After(e.expires) {
		delete(m.entries, token)
		return Data{}, false, nil
	}
	return e.data, true, nil
}

func (m *MemoryStore) Save(_ context.Context, token string, d Data, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if now.Sub(m.lastSweep) >= memorySweepInterval {
		m.sweep(now)
	}
	m.entries[token] = memoryEntry{data: d, expires: now.Add(ttl)}
	return nil
}

// sweep remove as sessões vencidas que nunca voltaram a ser lidas.
func (m *MemoryStore) sweep(now time.Time) {
	for token, e := range m.entries {
		if now.After(e.expires) {
			delete(m.entries, token)
		}
	}
	m.lastSweep = now
}

func (m *MemoryStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, token)
	return nil
}

const redisKeyPrefix = "oficios:sessao:"

// RedisStore guarda as sessões no redis, com TTL nativo.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Load(ctx context.Context, token string) (Data, bool, error) {
	b, err := r.client.Get(ctx, redisKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return Data{}, false, nil
	}
	if err != nil {
		return Data{}, false, fmt.Errorf("redis get sessao: %w", err)
	}
	var d Data
	if err := json.Unmarshal(b, &d); err != nil {
		return Data{}, false, fmt.Errorf("decode sessao: %w", err)
	}
	return d, true, nil
}

func (r *RedisStore) Save(ctx context.Context, token string, d Data, ttl time.Duration) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, redisKeyPrefix+token, b, ttl).Err(); err != nil {
		return fmt.Errorf("redis set sessao: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("redis del sessao: %w", err)
	}
	return nil
}
