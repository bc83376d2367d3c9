package hui

import (
	"bytes"
	"testing"
	"time"

	"github.com/leandrodaf/hui/sdk/contracts"
)

func TestMonitorTickCadence(t *testing.T) {
	start := time.Unix(0, 0)
	m := NewMonitor(contracts.RoleHost, time.Second, 4*time.Second)
	m.Reset(start)

	ping, due := m.Tick(start)
	if !due {
		t.Fatal("first tick must emit a ping")
	}
	if !bytes.Equal(ping.Bytes(), NewEncoder(contracts.RoleHost).Ping().Bytes()) {
		t.Errorf("ping = % X", ping.Bytes())
	}

	if _, due := m.Tick(start.Add(500 * time.Millisecond)); due {
		t.Fatal("pinged again before the interval elapsed")
	}
	if _, due := m.Tick(start.Add(time.Second)); !due {
		t.Fatal("no ping after the interval elapsed")
	}
}

func TestMonitorLiveness(t *testing.T) {
	start := time.Unix(0, 0)
	timeout := 4 * time.Second
	m := NewMonitor(contracts.RoleHost, time.Second, timeout)
	m.Reset(start)

	if !m.Alive(start) {
		t.Fatal("fresh link must start alive")
	}
	if !m.Alive(start.Add(timeout - time.Nanosecond)) {
		t.Fatal("went stale before the timeout")
	}
	if m.Alive(start.Add(timeout)) {
		t.Fatal("still alive at the timeout boundary")
	}

	// A peer ping restores aliveness immediately.
	at := start.Add(10 * time.Second)
	m.Observe(contracts.PingEvent{From: contracts.RoleSurface}, at)
	if !m.Alive(at) {
		t.Fatal("ping did not restore aliveness")
	}
	if m.Alive(at.Add(timeout)) {
		t.Fatal("stale window did not restart from the ping")
	}
}

func TestMonitorIgnoresOtherEvents(t *testing.T) {
	start := time.Unix(0, 0)
	m := NewMonitor(contracts.RoleHost, time.Second, time.Second)
	m.Reset(start)

	at := start.Add(5 * time.Second)
	m.Observe(contracts.FaderEvent{Channel: 0, Level: 1}, at)
	if m.Alive(at) {
		t.Fatal("non-ping event moved the liveness window")
	}
}
