package hui

import (
	"time"

	"gitlab.com/gomidi/midi/v2"

	"github.com/leandrodaf/hui/sdk/contracts"
)

// Default ping cadence used by the client when the caller sets none.
const (
	DefaultPingInterval = 1 * time.Second
	DefaultPingTimeout  = 4 * time.Second
)

// Monitor tracks link liveness from ping traffic. It owns no clock and no
// goroutine: the caller feeds it ticks and decoded events and reads the
// derived aliveness back. Like the decoder, a monitor belongs to exactly
// one link and must not be driven concurrently.
type Monitor struct {
	interval time.Duration
	timeout  time.Duration
	enc      *Encoder

	lastSent time.Time
	lastSeen time.Time
}

// NewMonitor returns a monitor that emits role's ping every interval and
// counts the link stale after timeout without a peer ping.
func NewMonitor(role contracts.Role, interval, timeout time.Duration) *Monitor {
	if interval <= 0 {
		interval = DefaultPingInterval
	}
	if timeout <= 0 {
		timeout = DefaultPingTimeout
	}
	return &Monitor{
		interval: interval,
		timeout:  timeout,
		enc:      NewEncoder(role),
	}
}

// Reset restarts the liveness window, granting the peer a full timeout
// before the link counts as stale. Call it when the connection opens.
func (m *Monitor) Reset(now time.Time) {
	m.lastSent = time.Time{}
	m.lastSeen = now
}

// Tick advances the monitor. When the ping interval has elapsed it returns
// the ping message to transmit and due=true.
func (m *Monitor) Tick(now time.Time) (ping midi.Message, due bool) {
	if !m.lastSent.IsZero() && now.Sub(m.lastSent) < m.interval {
		return nil, false
	}
	m.lastSent = now
	return m.enc.Ping(), true
}

// Observe records a decoded event; only peer pings move the liveness
// window.
func (m *Monitor) Observe(ev contracts.Event, now time.Time) {
	if _, ok := ev.(contracts.PingEvent); ok {
		m.lastSeen = now
	}
}

// Alive reports whether the peer pinged within the timeout window.
func (m *Monitor) Alive(now time.Time) bool {
	if m.lastSeen.IsZero() {
		return false
	}
	return now.Sub(m.lastSeen) < m.timeout
}
