package hui

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"github.com/leandrodaf/hui/sdk/contracts"
)

// Error definitions for HUI connection and encoding issues.
var (
	ErrNoPorts        = errors.New("both MIDI ports are required")
	ErrOpenPort       = errors.New("error opening MIDI port")
	ErrListen         = errors.New("error starting MIDI listener")
	ErrUnknownSwitch  = errors.New("switch has no zone/port mapping")
	ErrInvalidChannel = errors.New("channel outside the surface")
	ErrInvalidVPot    = errors.New("v-pot index out of range")
)

// Client binds the protocol engine to one pair of MIDI ports. It owns the
// single decoder and monitor of the link and serializes all access to them,
// so callers get the engine's one-writer-per-link rule for free.
type Client struct {
	logger       contracts.Logger
	role         contracts.Role
	in           drivers.In
	out          drivers.Out
	send         func(midi.Message) error
	enc          *Encoder
	dec          *Decoder
	mon          *Monitor
	filter       *contracts.EventFilter
	pingInterval time.Duration

	eventChannel atomic.Value // Atomic storage for the event channel to ensure thread safety.
	mu           sync.Mutex   // Mutex guarding decoder, monitor, and send access.
	capturing    bool         // Indicates if event capturing is currently active.
	alive        bool         // Last derived liveness state, for transition logging.
	stopListen   func()       // Stops the MIDI listener.
	done         chan struct{}
	wg           sync.WaitGroup // WaitGroup for the ping scheduler goroutine.
	stopOnce     sync.Once      // Ensures Stop() is executed only once.
}

// NewClient wires an engine onto the ports in opts. The ports are opened
// here; capturing starts separately with StartCapture.
func NewClient(opts *contracts.ClientOptions) (contracts.ClientHUI, error) {
	if opts.In == nil || opts.Out == nil {
		opts.Logger.Error(ErrNoPorts.Error())
		return nil, ErrNoPorts
	}
	if err := opts.In.Open(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenPort, err)
	}
	if err := opts.Out.Open(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenPort, err)
	}
	send, err := midi.SendTo(opts.Out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenPort, err)
	}

	interval := opts.PingInterval
	if interval <= 0 {
		interval = DefaultPingInterval
	}

	c := &Client{
		logger:       opts.Logger,
		role:         opts.Role,
		in:           opts.In,
		out:          opts.Out,
		send:         send,
		enc:          NewEncoder(opts.Role),
		dec:          NewDecoder(opts.Role, opts.Logger),
		mon:          NewMonitor(opts.Role, interval, opts.PingTimeout),
		filter:       opts.EventFilter,
		pingInterval: interval,
		done:         make(chan struct{}),
	}
	c.logger.Info("HUI client created",
		c.logger.Field().String("role", opts.Role.String()),
		c.logger.Field().String("in", opts.In.String()),
		c.logger.Field().String("out", opts.Out.String()))
	return c, nil
}

// StartCapture begins decoding incoming messages onto eventChannel and
// starts the ping scheduler.
func (c *Client) StartCapture(eventChannel chan contracts.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if eventChannel == nil {
		c.logger.Error("StartCapture called with nil eventChannel")
		return
	}
	if c.capturing {
		c.logger.Warn("Capture already started")
		return
	}

	stop, err := midi.ListenTo(c.in, c.handleMessage, midi.UseSysEx(),
		midi.HandleError(func(listenErr error) {
			c.logger.Warn("MIDI listener error", c.logger.Field().Error("error", listenErr))
		}))
	if err != nil {
		c.logger.Error(ErrListen.Error(), c.logger.Field().Error("error", err))
		return
	}

	c.logger.Info("Starting HUI event capture")
	c.eventChannel.Store(eventChannel)
	c.stopListen = stop
	c.capturing = true
	c.mon.Reset(time.Now())
	c.alive = true

	c.wg.Add(1)
	go c.pingLoop()
}

// handleMessage is invoked by the MIDI listener for every incoming message.
func (c *Client) handleMessage(msg midi.Message, _ int32) {
	c.mu.Lock()
	events := c.dec.Decode(msg)
	now := time.Now()
	for _, ev := range events {
		c.mon.Observe(ev, now)
	}
	if !c.alive && c.mon.Alive(now) {
		c.alive = true
		c.logger.Info("HUI peer is alive again")
	}
	c.mu.Unlock()

	eventChannel, _ := c.eventChannel.Load().(chan contracts.Event)
	if eventChannel == nil {
		return
	}
	for _, ev := range events {
		if c.filter != nil && !isKindAllowed(ev.EventKind(), c.filter.Kinds) {
			continue
		}
		select {
		case eventChannel <- ev:
		default:
			c.logger.Warn("Event buffer full; dropping HUI event")
		}
	}
}

// isKindAllowed verifies if an event kind is allowed based on the event filter configuration.
func isKindAllowed(kind contracts.EventKind, allowed []contracts.EventKind) bool {
	for _, k := range allowed {
		if kind == k {
			return true
		}
	}
	return false
}

// pingLoop drives the monitor: it transmits due pings and logs liveness
// transitions until Stop.
func (c *Client) pingLoop() {
	defer c.wg.Done()

	period := c.pingInterval / 2
	if period <= 0 {
		period = DefaultPingInterval / 2
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case now := <-ticker.C:
			c.mu.Lock()
			if ping, due := c.mon.Tick(now); due {
				if err := c.send(ping); err != nil {
					c.logger.Error("Failed to send ping", c.logger.Field().Error("error", err))
				}
			}
			if alive := c.mon.Alive(now); alive != c.alive {
				c.alive = alive
				if alive {
					c.logger.Info("HUI peer is alive again")
				} else {
					c.logger.Warn("HUI peer went stale; no ping within timeout")
				}
			}
			c.mu.Unlock()
		}
	}
}

// Alive reports whether the peer answered a ping within the timeout.
func (c *Client) Alive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mon.Alive(time.Now())
}

// Stop halts capturing, stops the ping scheduler, and closes both ports.
// This function ensures it only executes once, even if called multiple times.
func (c *Client) Stop() error {
	c.stopOnce.Do(func() {
		c.logger.Info("Stopping HUI client")
		c.mu.Lock()
		if c.capturing {
			c.capturing = false
			if c.stopListen != nil {
				c.stopListen()
				c.stopListen = nil
			}
			// Store a closed-over dummy channel to prevent further writes.
			c.eventChannel.Store(make(chan contracts.Event))
		}
		close(c.done)
		c.mu.Unlock()

		c.wg.Wait()
		if err := c.in.Close(); err != nil {
			c.logger.Warn("Failed to close input port", c.logger.Field().Error("error", err))
		}
		if err := c.out.Close(); err != nil {
			c.logger.Warn("Failed to close output port", c.logger.Field().Error("error", err))
		}
		c.logger.Info("HUI client stopped")
	})
	return nil
}

// sendAll transmits an encoded message sequence under the client mutex.
func (c *Client) sendAll(msgs []midi.Message, emptyErr error) error {
	if len(msgs) == 0 {
		return emptyErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range msgs {
		if err := c.send(m); err != nil {
			return err
		}
	}
	return nil
}

// SetSwitch transmits a switch state (or LED state, when acting as host).
func (c *Client) SetSwitch(sw contracts.Switch, on bool) error {
	return c.sendAll(c.enc.Switch(sw, on), ErrUnknownSwitch)
}

// SetFaderLevel transmits a 14-bit fader position.
func (c *Client) SetFaderLevel(channel uint8, level uint16) error {
	return c.sendAll(c.enc.FaderLevel(channel, level), ErrInvalidChannel)
}

// SetVPot transmits a rotary encoder delta or LED-ring index.
func (c *Client) SetVPot(v contracts.VPot, value uint8) error {
	return c.sendAll(c.enc.VPot(v, value), ErrInvalidVPot)
}

// SetMeter transmits one side of a stereo channel meter.
func (c *Client) SetMeter(channel uint8, side contracts.Side, level uint8) error {
	return c.sendAll(c.enc.Meter(channel, side, level), ErrInvalidChannel)
}

// SetLargeDisplay transmits both rows of the 2x40 display.
func (c *Client) SetLargeDisplay(top, bottom string) error {
	return c.sendAll(c.enc.LargeDisplay(top, bottom), nil)
}

// SetTimeDisplay transmits the time-code readout.
func (c *Client) SetTimeDisplay(text string) error {
	return c.sendAll(c.enc.TimeDisplay(text), nil)
}

// SetSmallDisplay transmits a channel's 4-character label.
func (c *Client) SetSmallDisplay(channel uint8, text string) error {
	return c.sendAll(c.enc.SmallDisplay(channel, text), ErrInvalidChannel)
}
