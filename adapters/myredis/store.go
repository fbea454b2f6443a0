// Package myredis keeps registry records in Redis so several registry processes can share one view.
package myredis

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"myregistry/domain"
	"myregistry/helpers"
	"myregistry/interfaces"
	"myregistry/service"

	"github.com/go-redis/redis/v8"
)

// DefaultPrefix is the key prefix used when none is configured.
const DefaultPrefix = "service"

const (
	fieldURL      = "url"
	fieldStatus   = "status"
	fieldLastSeen = "last_seen_ms"
)

// KEYS[1] record hash, KEYS[2] index; ARGV id, url, now_ms.
var putScript = redis.NewScript(`
local seen = ARGV[3]
local prev = redis.call('HGET', KEYS[1], 'last_seen_ms')
if prev and tonumber(prev) > tonumber(seen) then seen = prev end
redis.call('HSET', KEYS[1], 'url', ARGV[2], 'status', 'healthy', 'last_seen_ms', seen)
redis.call('ZADD', KEYS[2], seen, ARGV[1])
return 1
`)

// KEYS[1] record hash, KEYS[2] index; ARGV id, status, now_ms. Returns 0 when the record is absent.
var touchScript = redis.NewScript(`
local prev = redis.call('HGET', KEYS[1], 'last_seen_ms')
if not prev then return 0 end
local seen = ARGV[3]
if tonumber(prev) > tonumber(seen) then seen = prev end
redis.call('HSET', KEYS[1], 'status', ARGV[2], 'last_seen_ms', seen)
redis.call('ZADD', KEYS[2], seen, ARGV[1])
return 1
`)

// KEYS[1] record hash, KEYS[2] index; ARGV id.
var removeScript = redis.NewScript(`
redis.call('DEL', KEYS[1])
redis.call('ZREM', KEYS[2], ARGV[1])
return 1
`)

// KEYS[1] record hash, KEYS[2] index; ARGV id, cutoff_ms. Removes the record only if last_seen_ms < cutoff_ms.
var evictScript = redis.NewScript(`
local seen = redis.call('HGET', KEYS[1], 'last_seen_ms')
if not seen then
  redis.call('ZREM', KEYS[2], ARGV[1])
  return 0
end
if tonumber(seen) < tonumber(ARGV[2]) then
  redis.call('DEL', KEYS[1])
  redis.call('ZREM', KEYS[2], ARGV[1])
  return 1
end
return 0
`)

// Store is the Redis implementation of interfaces.Store.
type Store struct {
	client redis.UniversalClient
	clock  interfaces.TimeProvider
	prefix string
}

var _ interfaces.Store = (*Store)(nil)

// NewStore creates a Redis backed store. An empty prefix falls back to DefaultPrefix.
// Panics on nil client or clock.
func NewStore(client redis.UniversalClient, clock interfaces.TimeProvider, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{
		client: helpers.NilPanic(client, "myredis.store.go: client is required"),
		clock:  helpers.NilPanic(clock, "myredis.store.go: clock is required"),
		prefix: prefix,
	}
}

func (s *Store) Put(ctx context.Context, serviceID, url string) error {
	nowMs := s.clock.Now().UnixMilli()
	err := putScript.Run(ctx, s.client, s.keys(serviceID), serviceID, url, nowMs).Err()
	if err != nil {
		return service.NewInternalServerError("Redis put record error", fmt.Errorf("can't put record (id='%s'), err: %w", serviceID, err))
	}
	return nil
}

func (s *Store) Touch(ctx context.Context, serviceID string, status domain.Status) error {
	nowMs := s.clock.Now().UnixMilli()
	found, err := touchScript.Run(ctx, s.client, s.keys(serviceID), serviceID, string(status), nowMs).Int()
	if err != nil {
		return service.NewInternalServerError("Redis touch record error", fmt.Errorf("can't touch record (id='%s'), err: %w", serviceID, err))
	}
	if found == 0 {
		return service.NewServiceNotFoundError(serviceID)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, serviceID string) error {
	err := removeScript.Run(ctx, s.client, s.keys(serviceID), serviceID).Err()
	if err != nil {
		return service.NewInternalServerError("Redis remove record error", fmt.Errorf("can't remove record (id='%s'), err: %w", serviceID, err))
	}
	return nil
}

func (s *Store) ListStale(ctx context.Context, timeout time.Duration) ([]string, error) {
	cutoff := s.clock.Now().Add(-timeout).UnixMilli()
	ids, err := s.client.ZRangeByScore(ctx, s.indexKey(), &redis.ZRangeBy{
		Min: "-inf",
		Max: "(" + strconv.FormatInt(cutoff, 10),
	}).Result()
	if err != nil {
		return nil, service.NewInternalServerError("Redis list stale error", fmt.Errorf("can't range index, err: %w", err))
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *Store) EvictIfStale(ctx context.Context, serviceID string, timeout time.Duration) (bool, error) {
	cutoff := s.clock.Now().Add(-timeout).UnixMilli()
	evicted, err := evictScript.Run(ctx, s.client, s.keys(serviceID), serviceID, cutoff).Int()
	if err != nil {
		return false, service.NewInternalServerError("Redis evict record error", fmt.Errorf("can't evict record (id='%s'), err: %w", serviceID, err))
	}
	return evicted == 1, nil
}

func (s *Store) Get(ctx context.Context, serviceID string) (domain.ServiceRecord, error) {
	fields, err := s.client.HGetAll(ctx, s.recordKey(serviceID)).Result()
	if err != nil {
		return domain.ServiceRecord{}, service.NewInternalServerError("Redis get record error", fmt.Errorf("can't read record (id='%s'), err: %w", serviceID, err))
	}
	if len(fields) == 0 {
		return domain.ServiceRecord{}, service.NewServiceNotFoundError(serviceID)
	}
	return toRecord(serviceID, fields)
}

// List reads the index and then every record in one pipeline. Ids whose hash vanished in between are skipped.
func (s *Store) List(ctx context.Context) ([]domain.ServiceRecord, error) {
	ids, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, service.NewInternalServerError("Redis list records error", fmt.Errorf("can't range index, err: %w", err))
	}
	out := make([]domain.ServiceRecord, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cmds := make([]*redis.StringStringMapCmd, len(ids))
	_, err = s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = pipe.HGetAll(ctx, s.recordKey(id))
		}
		return nil
	})
	if err != nil {
		return nil, service.NewInternalServerError("Redis list records error", fmt.Errorf("can't read records, err: %w", err))
	}

	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}
		rec, err := toRecord(ids[i], fields)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ServiceID < out[j].ServiceID })
	return out, nil
}

func toRecord(serviceID string, fields map[string]string) (domain.ServiceRecord, error) {
	ms, err := strconv.ParseInt(fields[fieldLastSeen], 10, 64)
	if err != nil {
		return domain.ServiceRecord{}, service.NewInternalServerError("Redis record is corrupted", fmt.Errorf("bad %s for id='%s', err: %w", fieldLastSeen, serviceID, err))
	}
	return domain.ServiceRecord{
		ServiceID: serviceID,
		URL:       fields[fieldURL],
		Status:    domain.ParseStatus(fields[fieldStatus]),
		LastSeen:  time.UnixMilli(ms).UTC(),
	}, nil
}

func (s *Store) keys(serviceID string) []string {
	return []string{s.recordKey(serviceID), s.indexKey()}
}

func (s *Store) recordKey(serviceID string) string {
	return s.prefix + ":record:" + serviceID
}

func (s *Store) indexKey() string {
	return s.prefix + ":index"
}
