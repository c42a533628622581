package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestFixedWindowAllow(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	client := &Client{store: mock}

	allowed, count, err := client.FixedWindowAllow(ctx, "test-scope", 2, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed {
		t.Fatalf("expected allowed on first request")
	}
	if count != 1 {
		t.Fatalf("expected counter 1 got %d", count)
	}
	if len(mock.expireCalls) != 1 {
		t.Fatalf("expected expire for first increment")
	}

	allowed, count, err = client.FixedWindowAllow(ctx, "test-scope", 2, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed || count != 2 {
		t.Fatalf("unexpected second call state allowed=%v count=%d", allowed, count)
	}
	if len(mock.expireCalls) != 1 {
		t.Fatalf("expire should not be set again")
	}

	allowed, _, err = client.FixedWindowAllow(ctx, "test-scope", 2, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if allowed {
		t.Fatalf("expected limit reached")
	}
}

func TestNotificationFeed(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	client := &Client{store: mock}

	key := client.NotificationKey("user-1")
	if err := client.LPush(ctx, key, "second", "first"); err != nil {
		t.Fatalf("lpush failed: %v", err)
	}
	if err := client.LPush(ctx, key, "newest"); err != nil {
		t.Fatalf("lpush failed: %v", err)
	}

	entries, err := client.LRange(ctx, key, 0, -1)
	if err != nil {
		t.Fatalf("lrange failed: %v", err)
	}
	if len(entries) != 3 || entries[0] != "newest" {
		t.Fatalf("unexpected feed order: %v", entries)
	}

	if err := client.LTrim(ctx, key, 0, 1); err != nil {
		t.Fatalf("ltrim failed: %v", err)
	}
	entries, err = client.LRange(ctx, key, 0, -1)
	if err != nil {
		t.Fatalf("lrange failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected trimmed feed of 2, got %v", entries)
	}
}

func TestKeyBuilders(t *testing.T) {
	client := &Client{}
	if got := client.RateLimitKey("scope"); got != "bb:rate_limit:scope" {
		t.Fatalf("unexpected rate limit key %s", got)
	}
	if got := client.AccessSessionKey("jti-1"); got != "bb:session:access:jti-1" {
		t.Fatalf("unexpected session key %s", got)
	}
	if got := client.NotificationKey("user-1"); got != "bb:notifications:user-1" {
		t.Fatalf("unexpected notification key %s", got)
	}
}

type mockCmdable struct {
	data        map[string]string
	lists       map[string][]string
	incr        map[string]int64
	expireCalls []expireCall
}

type expireCall struct {
	key string
	ttl time.Duration
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{
		data:  make(map[string]string),
		lists: make(map[string][]string),
		incr:  make(map[string]int64),
	}
}

func (m *mockCmdable) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (m *mockCmdable) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	m.data[key] = fmt.Sprint(value)
	return redis.NewStatusResult("OK", nil)
}

func (m *mockCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *mockCmdable) SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd {
	if _, exists := m.data[key]; exists {
		return redis.NewBoolResult(false, nil)
	}
	m.data[key] = fmt.Sprint(value)
	return redis.NewBoolResult(true, nil)
}

func (m *mockCmdable) Incr(ctx context.Context, key string) *redis.IntCmd {
	m.incr[key]++
	return redis.NewIntResult(m.incr[key], nil)
}

func (m *mockCmdable) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	m.expireCalls = append(m.expireCalls, expireCall{key: key, ttl: expiration})
	return redis.NewBoolResult(true, nil)
}

func (m *mockCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(m.data, key)
		delete(m.lists, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func (m *mockCmdable) LPush(ctx context.Context, key string, values ...any) *redis.IntCmd {
	for _, v := range values {
		m.lists[key] = append([]string{fmt.Sprint(v)}, m.lists[key]...)
	}
	return redis.NewIntResult(int64(len(m.lists[key])), nil)
}

func (m *mockCmdable) LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd {
	list := m.lists[key]
	if stop < 0 {
		stop = int64(len(list)) + stop
	}
	if start >= int64(len(list)) {
		return redis.NewStringSliceResult(nil, nil)
	}
	if stop >= int64(len(list)) {
		stop = int64(len(list)) - 1
	}
	return redis.NewStringSliceResult(list[start:stop+1], nil)
}

func (m *mockCmdable) LTrim(ctx context.Context, key string, start, stop int64) *redis.StatusCmd {
	list := m.lists[key]
	if stop < 0 {
		stop = int64(len(list)) + stop
	}
	if start >= int64(len(list)) {
		m.lists[key] = nil
	} else {
		if stop >= int64(len(list)) {
			stop = int64(len(list)) - 1
		}
		m.lists[key] = list[start : stop+1]
	}
	return redis.NewStatusResult("OK", nil)
}
