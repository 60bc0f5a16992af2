package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type mockCmdable struct {
	values map[string]string
	lists  map[string][]string
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{
		values: map[string]string{},
		lists:  map[string][]string{},
	}
}

func (m *mockCmdable) Ping(ctx context.Context) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	cmd.SetVal("PONG")
	return cmd
}

func (m *mockCmdable) Set(ctx context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	m.values[key] = toString(value)
	cmd := redis.NewStatusCmd(ctx)
	cmd.SetVal("OK")
	return cmd
}

func (m *mockCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	if val, ok := m.values[key]; ok {
		cmd.SetVal(val)
	} else {
		cmd.SetErr(redis.Nil)
	}
	return cmd
}

func (m *mockCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var removed int64
	for _, key := range keys {
		if _, ok := m.values[key]; ok {
			removed++
			delete(m.values, key)
		}
		delete(m.lists, key)
	}
	cmd := redis.NewIntCmd(ctx)
	cmd.SetVal(removed)
	return cmd
}

func (m *mockCmdable) LPush(ctx context.Context, key string, values ...any) *redis.IntCmd {
	for _, v := range values {
		m.lists[key] = append([]string{toString(v)}, m.lists[key]...)
	}
	cmd := redis.NewIntCmd(ctx)
	cmd.SetVal(int64(len(m.lists[key])))
	return cmd
}

func (m *mockCmdable) LRem(ctx context.Context, key string, _ int64, value any) *redis.IntCmd {
	target := toString(value)
	var kept []string
	var removed int64
	for _, v := range m.lists[key] {
		if v == target {
			removed++
			continue
		}
		kept = append(kept, v)
	}
	m.lists[key] = kept
	cmd := redis.NewIntCmd(ctx)
	cmd.SetVal(removed)
	return cmd
}

func (m *mockCmdable) LTrim(ctx context.Context, key string, start, stop int64) *redis.StatusCmd {
	list := m.lists[key]
	if stop >= int64(len(list)) {
		stop = int64(len(list)) - 1
	}
	if start < int64(len(list)) && start <= stop {
		m.lists[key] = list[start : stop+1]
	} else {
		m.lists[key] = nil
	}
	cmd := redis.NewStatusCmd(ctx)
	cmd.SetVal("OK")
	return cmd
}

func (m *mockCmdable) LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd {
	list := m.lists[key]
	if stop >= int64(len(list)) {
		stop = int64(len(list)) - 1
	}
	cmd := redis.NewStringSliceCmd(ctx)
	if start < int64(len(list)) && start <= stop {
		cmd.SetVal(append([]string(nil), list[start:stop+1]...))
	} else {
		cmd.SetVal(nil)
	}
	return cmd
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func TestPushRecentDeduplicatesAndCaps(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	client := &Client{store: mock}

	key := client.RecentSearchesKey(7)
	for _, term := range []string{"zapato", "polo", "zapato", "gorra"} {
		if err := client.PushRecent(ctx, key, term, 3); err != nil {
			t.Fatalf("push failed: %v", err)
		}
	}

	got, err := client.ListRecent(ctx, key, 3)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	want := []string{"gorra", "zapato", "polo"}
	if len(got) != len(want) {
		t.Fatalf("unexpected list %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %q got %q", i, want[i], got[i])
		}
	}
}

func TestPushRecentEnforcesCap(t *testing.T) {
	ctx := context.Background()
	client := &Client{store: newMockCmdable()}

	key := client.RecentSearchesKey(1)
	for _, term := range []string{"a", "b", "c", "d"} {
		if err := client.PushRecent(ctx, key, term, 3); err != nil {
			t.Fatalf("push failed: %v", err)
		}
	}

	got, err := client.ListRecent(ctx, key, 3)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 3 || got[0] != "d" {
		t.Fatalf("cap not enforced: %v", got)
	}
}

func TestKeyBuilders(t *testing.T) {
	client := &Client{}
	if got := client.RecentSearchesKey(7); got != "sfg:recent_searches:7" {
		t.Fatalf("unexpected key %s", got)
	}
	if got := client.MaintenanceKey(); got != "sfg:maintenance:status" {
		t.Fatalf("unexpected key %s", got)
	}
	if got := client.SessionStatusKey(9); got != "sfg:session_status:9" {
		t.Fatalf("unexpected key %s", got)
	}
}

func TestGetMissReturnsNil(t *testing.T) {
	client := &Client{store: newMockCmdable()}
	if _, err := client.Get(context.Background(), "missing"); err != redis.Nil {
		t.Fatalf("expected redis.Nil, got %v", err)
	}
}
