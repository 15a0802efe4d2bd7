package socket

import (
	"encoding/json"
	"testing"
	"time"
)

func newTestClient(cid int64, uid uint64, buffer int) *Client {
	return &Client{
		cid:    cid,
		uid:    uid,
		out:    make(chan []byte, buffer),
		topics: make(map[string]struct{}),
	}
}

func recvEvent(t *testing.T, c *Client) string {
	t.Helper()
	select {
	case body := <-c.out:
		var resp ClientResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		return resp.Event
	case <-time.After(time.Second):
		t.Fatal("no message received")
		return ""
	}
}

func TestHubSubscribePublish(t *testing.T) {
	hub := NewHub()
	a := newTestClient(1, 100, 4)
	b := newTestClient(2, 200, 4)

	hub.Subscribe(a, "post:7")
	hub.Subscribe(b, "post:7")
	if got := hub.Subscribers("post:7"); got != 2 {
		t.Fatalf("Subscribers = %d, want 2", got)
	}

	hub.Publish("post:7", "post:like", map[string]any{"post_id": 7})
	if ev := recvEvent(t, a); ev != "post:like" {
		t.Errorf("a got event %q", ev)
	}
	if ev := recvEvent(t, b); ev != "post:like" {
		t.Errorf("b got event %q", ev)
	}
}

func TestHubPublishNoSubscribers(t *testing.T) {
	hub := NewHub()
	// 没有订阅者时必须直接返回，不 panic 不阻塞
	hub.Publish("post:404", "post:like", nil)

	a := newTestClient(1, 100, 4)
	hub.Subscribe(a, "post:1")
	hub.Unsubscribe(a, "post:1")
	hub.Publish("post:1", "post:like", nil)

	select {
	case body := <-a.out:
		t.Fatalf("unexpected message after unsubscribe: %s", body)
	default:
	}
}

func TestHubUnsubscribeOneTopicKeepsOthers(t *testing.T) {
	hub := NewHub()
	a := newTestClient(1, 100, 4)

	hub.Subscribe(a, "post:1")
	hub.Subscribe(a, "user:100")
	hub.Unsubscribe(a, "post:1")

	if got := hub.Subscribers("post:1"); got != 0 {
		t.Errorf("post:1 Subscribers = %d, want 0", got)
	}
	if got := hub.Subscribers("user:100"); got != 1 {
		t.Errorf("user:100 Subscribers = %d, want 1", got)
	}
}

func TestHubRemoveAll(t *testing.T) {
	hub := NewHub()
	a := newTestClient(1, 100, 4)

	hub.Subscribe(a, "post:1")
	hub.Subscribe(a, "post:2")
	hub.Subscribe(a, "user:100")

	hub.RemoveAll(a)

	for _, topic := range []string{"post:1", "post:2", "user:100"} {
		if got := hub.Subscribers(topic); got != 0 {
			t.Errorf("%s Subscribers = %d, want 0", topic, got)
		}
	}
	if len(a.drainTopics()) != 0 {
		t.Error("client topics not drained")
	}
}

// 最后一个成员退出后房间要被回收，话题表不能随进程生命周期无限涨
func TestHubReclaimsEmptyRooms(t *testing.T) {
	hub := NewHub()
	a := newTestClient(1, 100, 4)
	b := newTestClient(2, 200, 4)

	hub.Subscribe(a, "post:1")
	hub.Subscribe(b, "post:1")
	hub.Unsubscribe(a, "post:1")
	if !hub.topics.Has("post:1") {
		t.Fatal("room reclaimed while still occupied")
	}

	hub.Unsubscribe(b, "post:1")
	if hub.topics.Has("post:1") {
		t.Error("empty room not reclaimed after unsubscribe")
	}

	hub.Subscribe(a, "post:2")
	hub.RemoveAll(a)
	if hub.topics.Has("post:2") {
		t.Error("empty room not reclaimed after disconnect")
	}

	// 回收后重新订阅要能重建房间
	hub.Subscribe(b, "post:1")
	if got := hub.Subscribers("post:1"); got != 1 {
		t.Errorf("Subscribers after rebuild = %d, want 1", got)
	}
}

func TestHubPublishFullBufferDoesNotBlock(t *testing.T) {
	hub := NewHub()
	a := newTestClient(1, 100, 1)
	hub.Subscribe(a, "post:1")

	done := make(chan struct{})
	go func() {
		hub.Publish("post:1", "comment:new", map[string]any{"n": 1})
		hub.Publish("post:1", "comment:new", map[string]any{"n": 2})
		hub.Publish("post:1", "comment:new", map[string]any{"n": 3})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on full client buffer")
	}

	// 缓冲只有 1，后面的直接丢
	if got := len(a.out); got != 1 {
		t.Errorf("buffered = %d, want 1", got)
	}
}

func TestValidTopic(t *testing.T) {
	tests := []struct {
		topic string
		uid   uint64
		want  bool
	}{
		{"post:1", 9, true},
		{"conversation:42", 9, true},
		{"group:3", 9, true},
		{"user:9", 9, true},
		{"user:8", 9, false},
		{"user:0", 9, false},
		{"post:", 9, false},
		{"post:abc", 9, false},
		{"post", 9, false},
		{"", 9, false},
		{"admin:1", 9, false},
	}
	for _, tt := range tests {
		if got := ValidTopic(tt.topic, tt.uid); got != tt.want {
			t.Errorf("ValidTopic(%q, %d) = %v, want %v", tt.topic, tt.uid, got, tt.want)
		}
	}
}
