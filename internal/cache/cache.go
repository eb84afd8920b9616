package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// VersionTTL bounds how long an invalidation counter outlives its last bump.
// A read older than this could store a stale entry.
const VersionTTL = time.Hour

// setIfVersion stores KEYS[1] only while KEYS[2] still holds ARGV[1]. A
// missing version key reads as "".
var setIfVersion = redis.NewScript(`
local current = redis.call("GET", KEYS[2])
if not current then current = "" end
if current ~= ARGV[1] then return 0 end
redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
return 1
`)

// Client wraps redis.Client. Reads fail safe by treating connectivity errors
// as misses; invalidation reports them.
// A nil *Client is a valid, always-missing cache.
type Client struct {
	client *redis.Client
}

// New creates a new Redis client.
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  500 * time.Millisecond,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	}
	return &Client{client: redis.NewClient(opts)}
}

// Ping reports whether redis is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying connections.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Get returns value or nil if missing or redis unavailable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil and connectivity errors both read as a miss
		return nil, nil
	}
	return res, nil
}

// GetJSON decodes a cached value into dst. It reports false on a miss or an
// undecodable entry.
func (c *Client) GetJSON(ctx context.Context, key string, dst interface{}) bool {
	data, _ := c.Get(ctx, key)
	if data == nil {
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

// Version returns the invalidation counter stored at versionKey, "" when it
// was never bumped. Unlike reads, connectivity errors are returned so callers
// can skip storing.
func (c *Client) Version(ctx context.Context, versionKey string) (string, error) {
	if c == nil || c.client == nil {
		return "", nil
	}
	v, err := c.client.Get(ctx, versionKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

// SetIfVersion stores value under key only if versionKey still holds version.
// It reports whether the value was written.
func (c *Client) SetIfVersion(ctx context.Context, key, versionKey, version string, value []byte, ttl time.Duration) (bool, error) {
	if c == nil || c.client == nil {
		return false, nil
	}
	n, err := setIfVersion.Run(ctx, c.client, []string{key, versionKey}, version, value, ttl.Milliseconds()).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// SetJSONIfVersion encodes value and stores it with SetIfVersion.
func (c *Client) SetJSONIfVersion(ctx context.Context, key, versionKey, version string, value interface{}, ttl time.Duration) (bool, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	return c.SetIfVersion(ctx, key, versionKey, version, payload, ttl)
}

// Invalidate bumps versionKey and deletes key in one transaction, so a reader
// that sampled the old version can no longer store. Errors are returned.
func (c *Client) Invalidate(ctx context.Context, key, versionKey string) error {
	if c == nil || c.client == nil {
		return nil
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey)
		pipe.Expire(ctx, versionKey, VersionTTL)
		pipe.Del(ctx, key)
		return nil
	})
	return err
}
