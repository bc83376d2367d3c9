package contracts

// ClientHUI defines the operations of a connected HUI peer. The send
// methods mirror the encoder surface; StartCapture delivers decoded events
// from the opposite peer to the given channel until Stop is called.
type ClientHUI interface {
	Stop() error                    // Stops the client and releases the MIDI ports.
	StartCapture(events chan Event) // Starts decoding incoming messages onto the channel.
	Alive() bool                    // Reports whether the peer answered a ping recently.

	SetSwitch(sw Switch, on bool) error
	SetFaderLevel(channel uint8, level uint16) error
	SetVPot(v VPot, value uint8) error
	SetMeter(channel uint8, side Side, level uint8) error
	SetLargeDisplay(top, bottom string) error
	SetTimeDisplay(text string) error
	SetSmallDisplay(channel uint8, text string) error
}
