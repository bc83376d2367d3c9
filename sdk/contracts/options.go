package contracts

import (
	"time"

	"gitlab.com/gomidi/midi/v2/drivers"
)

// EventFilter allows users to specify which decoded event kinds to capture.
type EventFilter struct {
	Kinds []EventKind // List of event kinds to deliver; others are dropped.
}

// ClientOptions defines the configuration options for the HUI client.
type ClientOptions struct {
	Logger       Logger        // Logger for logging events and errors.
	LogLevel     LogLevel      // Level of logging to use.
	Role         Role          // Which peer this client acts as.
	In           drivers.In    // MIDI input port carrying the peer's messages.
	Out          drivers.Out   // MIDI output port toward the peer.
	PingInterval time.Duration // How often to ping the peer.
	PingTimeout  time.Duration // Silence after which the link counts as stale.
	EventFilter  *EventFilter  // Optional filter for decoded events to capture.
}

// Option is a function that modifies ClientOptions.
type Option func(*ClientOptions)

// WithLogger sets the logger for the HUI client.
func WithLogger(l Logger) Option {
	return func(opts *ClientOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the HUI client.
func WithLogLevel(level LogLevel) Option {
	return func(opts *ClientOptions) {
		opts.LogLevel = level
	}
}

// WithRole sets which peer of the link this client acts as.
func WithRole(role Role) Option {
	return func(opts *ClientOptions) {
		opts.Role = role
	}
}

// WithPorts sets the MIDI ports the client talks through. The ports must be
// open before the client starts capturing; the client closes them on Stop.
func WithPorts(in drivers.In, out drivers.Out) Option {
	return func(opts *ClientOptions) {
		opts.In = in
		opts.Out = out
	}
}

// WithPingInterval sets how often the client pings the peer.
func WithPingInterval(interval time.Duration) Option {
	return func(opts *ClientOptions) {
		opts.PingInterval = interval
	}
}

// WithPingTimeout sets the silence window after which the link is stale.
func WithPingTimeout(timeout time.Duration) Option {
	return func(opts *ClientOptions) {
		opts.PingTimeout = timeout
	}
}

// WithEventFilter sets the decoded-event filter for the HUI client.
func WithEventFilter(filter EventFilter) Option {
	return func(opts *ClientOptions) {
		opts.EventFilter = &filter
	}
}
