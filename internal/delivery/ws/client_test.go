package ws

import (
	"testing"

	"github.com/stephyg0/christmas/internal/usecase"
)

func TestNewClient(t *testing.T) {
	hub := NewHub(usecase.NewSessionRegistry())
	a := NewClient(hub, nil)
	b := NewClient(hub, nil)

	if a.ID == "" || a.ID == b.ID {
		t.Errorf("Expected unique ids, got %q and %q", a.ID, b.ID)
	}
	if cap(a.send) != sendBufferSize {
		t.Errorf("Expected send buffer %d, got %d", sendBufferSize, cap(a.send))
	}
	if a.hub != hub {
		t.Error("Client not bound to hub")
	}
}

func TestClient_SendDropsWhenFull(t *testing.T) {
	c := NewClient(NewHub(usecase.NewSessionRegistry()), nil)

	for i := 0; i < sendBufferSize+10; i++ {
		c.Send([]byte("x"))
	}

	if len(c.send) != sendBufferSize {
		t.Errorf("Expected %d queued, got %d", sendBufferSize, len(c.send))
	}
}

func TestClient_RequestPingCoalesces(t *testing.T) {
	c := NewClient(NewHub(usecase.NewSessionRegistry()), nil)

	c.requestPing()
	c.requestPing()

	if len(c.ping) != 1 {
		t.Errorf("Expected a single pending ping, got %d", len(c.ping))
	}
}

func TestClient_TerminateWithoutConn(t *testing.T) {
	c := NewClient(NewHub(usecase.NewSessionRegistry()), nil)
	c.terminate() // must not panic
}
