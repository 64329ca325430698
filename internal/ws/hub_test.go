package ws

import (
	"testing"
	"time"
)

func waitForClients(t *testing.T, h *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if h.ClientCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d clients, have %d", want, h.ClientCount())
}

func TestHub_BroadcastReachesClients(t *testing.T) {
	h := NewHub(nil)
	go h.Run()

	a := NewClient(h, nil)
	b := NewClient(h, nil)
	h.Register(a)
	h.Register(b)
	waitForClients(t, h, 2)

	h.Broadcast([]byte(`{"type":"jobs_ingested"}`))

	for _, c := range []*Client{a, b} {
		select {
		case msg := <-c.send:
			if string(msg) != `{"type":"jobs_ingested"}` {
				t.Errorf("unexpected payload: %s", msg)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("client never received the broadcast")
		}
	}

	h.Unregister(a)
	waitForClients(t, h, 1)
	if _, open := <-a.send; open {
		t.Error("expected the send channel closed on unregister")
	}
}

func TestHub_NilSafe(t *testing.T) {
	var h *Hub
	h.Register(NewClient(h, nil))
	h.Unregister(nil)
	h.Broadcast([]byte("x"))
	if h.ClientCount() != 0 {
		t.Error("nil hub should report zero clients")
	}
}
