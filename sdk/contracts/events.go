package contracts

// EventKind discriminates decoded protocol events, mainly for filtering.
type EventKind int

const (
	KindSwitch EventKind = iota
	KindFader
	KindFaderTouch
	KindVPot
	KindMeter
	KindLargeDisplay
	KindTimeDisplay
	KindSmallDisplay
	KindPing
)

// Event is a fully resolved HUI protocol event produced by the decoder.
// Every event carries enough context to update an application model on its
// own; the decoder never emits half of a multi-message exchange.
type Event interface {
	EventKind() EventKind
}

// SwitchEvent reports a switch press/release or an LED on/off command,
// depending on which peer sent it.
type SwitchEvent struct {
	Switch Switch
	On     bool
}

// FaderEvent reports a complete 14-bit motorized fader position.
type FaderEvent struct {
	Channel uint8
	Level   uint16 // 0..FaderMax
}

// FaderTouchEvent reports a finger landing on or leaving a fader cap.
type FaderTouchEvent struct {
	Channel uint8
	Touched bool
}

// VPotEvent reports a rotary encoder value: a 7-bit signed delta when sent
// by the surface, an LED-ring preset index when sent by the host. The wire
// shape is identical in both directions, so the consumer interprets Value
// according to the peer it is talking to.
type VPotEvent struct {
	VPot  VPot
	Value uint8
}

// MeterEvent reports one side of a stereo channel meter. Level 12 is clip.
type MeterEvent struct {
	Channel uint8
	Side    Side
	Level   uint8
}

// LargeDisplayEvent carries one 10-character slice of the 2x40 display.
// Slices arrive independently and in any order; consumers accumulate them
// by index, overwriting on repeats.
type LargeDisplayEvent struct {
	Slice uint8 // 0..7
	Text  string
}

// TimeDisplayEvent carries the 8-position time-code readout, restored to
// left-to-right order.
type TimeDisplayEvent struct {
	Text string
}

// SmallDisplayEvent carries a 4-character per-channel label.
type SmallDisplayEvent struct {
	Channel uint8
	Text    string
}

// PingEvent reports a liveness ping received from the given peer.
type PingEvent struct {
	From Role
}

func (SwitchEvent) EventKind() EventKind       { return KindSwitch }
func (FaderEvent) EventKind() EventKind        { return KindFader }
func (FaderTouchEvent) EventKind() EventKind   { return KindFaderTouch }
func (VPotEvent) EventKind() EventKind         { return KindVPot }
func (MeterEvent) EventKind() EventKind        { return KindMeter }
func (LargeDisplayEvent) EventKind() EventKind { return KindLargeDisplay }
func (TimeDisplayEvent) EventKind() EventKind  { return KindTimeDisplay }
func (SmallDisplayEvent) EventKind() EventKind { return KindSmallDisplay }
func (PingEvent) EventKind() EventKind         { return KindPing }
