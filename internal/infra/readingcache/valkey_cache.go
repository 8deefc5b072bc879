package readingcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/cosmic-blueprint/internal/domain/reading"
)

// ValkeyCache persists readings in a Valkey-compatible database so replicas
// share one cache.
type ValkeyCache struct {
	client valkey.Client
	prefix string
	ttl    time.Duration
}

// NewValkeyCache constructs a cache backed by Valkey.
func NewValkeyCache(client valkey.Client, prefix string, ttl time.Duration) *ValkeyCache {
	if prefix == "" {
		prefix = "reading"
	}
	return &ValkeyCache{client: client, prefix: prefix, ttl: ttl}
}

// Get implements reading.Cache.
func (c *ValkeyCache) Get(ctx context.Context, key string) (reading.Response, bool, error) {
	if key == "" {
		return reading.Response{}, false, nil
	}
	payload, err := c.client.Do(ctx, c.client.B().Get().Key(c.entryKey(key)).Build()).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return reading.Response{}, false, nil
		}
		return reading.Response{}, false, err
	}
	var resp reading.Response
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		return reading.Response{}, false, fmt.Errorf("decode cached reading: %w", err)
	}
	return resp, true, nil
}

// Set implements reading.Cache.
func (c *ValkeyCache) Set(ctx context.Context, key string, resp reading.Response) error {
	payload, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	builder := c.client.B().Set().Key(c.entryKey(key)).Value(string(payload))
	var cmd valkey.Completed
	if ttl := c.ttl; ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return c.client.Do(ctx, cmd).Error()
}

func (c *ValkeyCache) entryKey(key string) string {
	return fmt.Sprintf("%s:r:%s", c.prefix, key)
}

var _ reading.Cache = (*ValkeyCache)(nil)
