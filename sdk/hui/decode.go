package hui

import (
	"bytes"

	"gitlab.com/gomidi/midi/v2"

	"github.com/leandrodaf/hui/sdk/contracts"
)

// Decoder turns the ordered stream of MIDI messages arriving from the
// opposite peer into fully resolved protocol events. It carries the minimum
// state the wire format forces on it: the zone byte awaiting its port byte,
// and the last-seen fader MSB per channel. One decoder serves exactly one
// link and must not be called concurrently; callers that receive on several
// goroutines serialize before invoking Decode.
//
// No input is fatal. Foreign traffic on the shared stream is skipped
// silently, protocol desynchronization is dropped with a warning and
// recovers on the next well-formed pair.
type Decoder struct {
	role   contracts.Role // the local peer; incoming messages are from role.Opposite()
	logger contracts.Logger

	// zone-select byte waiting for its port byte; -1 when idle.
	pendingZone int

	// last-seen fader MSB per channel; -1 when no half is buffered.
	faderMSB [contracts.NumChannels]int
}

// NewDecoder returns a decoder for messages the opposite peer sends to
// role. The logger may be nil to silence decode warnings.
func NewDecoder(role contracts.Role, logger contracts.Logger) *Decoder {
	if logger == nil {
		logger = nopLogger{}
	}
	d := &Decoder{role: role, logger: logger}
	d.Reset()
	return d
}

// Reset discards any pending zone byte and buffered fader halves.
func (d *Decoder) Reset() {
	d.pendingZone = -1
	for i := range d.faderMSB {
		d.faderMSB[i] = -1
	}
}

// Decode consumes one incoming MIDI message and returns the protocol
// events it completes, which may be none.
func (d *Decoder) Decode(msg midi.Message) []contracts.Event {
	var ch, ccNum, val uint8
	if msg.GetControlChange(&ch, &ccNum, &val) {
		if ch != midiChannel {
			return nil
		}
		return d.decodeCC(ccNum, val)
	}

	var key, pressure uint8
	if msg.GetPolyAfterTouch(&ch, &key, &pressure) {
		if ch != midiChannel || key >= contracts.NumChannels {
			return nil
		}
		// Only the side bit and a level up to MeterMax fit in the pressure
		// byte; anything else is not a meter reading.
		if pressure&0x60 != 0 || pressure&0x0F > contracts.MeterMax {
			return nil
		}
		side := contracts.SideLeft
		if pressure&0x10 != 0 {
			side = contracts.SideRight
		}
		return []contracts.Event{contracts.MeterEvent{Channel: key, Side: side, Level: pressure & 0x0F}}
	}

	var body []byte
	if msg.GetSysEx(&body) {
		return d.decodeSysEx(body)
	}

	return nil
}

func (d *Decoder) decodeCC(ccNum, val uint8) []contracts.Event {
	from := d.role.Opposite()
	switch {
	case ccNum == zoneSelectCC(from):
		// A fresh zone byte supersedes any unresolved one; a stray zone
		// with no port pair is simply abandoned.
		d.pendingZone = int(val)
		return nil

	case ccNum == portCC(from):
		return d.decodePort(val)

	case ccNum < ccFaderMSBBase+contracts.NumChannels:
		d.faderMSB[ccNum-ccFaderMSBBase] = int(val)
		return nil

	case ccNum >= ccFaderLSBBase && ccNum < ccFaderLSBBase+contracts.NumChannels:
		channel := ccNum - ccFaderLSBBase
		msb := d.faderMSB[channel]
		if msb < 0 {
			d.warn("fader LSB with no buffered MSB, dropping",
				d.field().Uint8("channel", channel))
			return nil
		}
		d.faderMSB[channel] = -1
		level := uint16(msb)<<7 | uint16(val)
		return []contracts.Event{contracts.FaderEvent{Channel: channel, Level: level}}

	case ccNum >= ccVPotBase && ccNum <= ccVPotBase+uint8(contracts.VPotMaster):
		return []contracts.Event{contracts.VPotEvent{
			VPot:  contracts.VPot(ccNum - ccVPotBase),
			Value: val,
		}}
	}

	// Non-protocol controller: foreign traffic on a shared stream.
	return nil
}

func (d *Decoder) decodePort(val uint8) []contracts.Event {
	if d.pendingZone < 0 {
		// Port byte with no zone in flight: desynchronization. Drop it and
		// wait for the next zone-select.
		d.warn("port byte with no pending zone, dropping",
			d.field().Uint8("port", val&portMask))
		return nil
	}
	zone := uint8(d.pendingZone)
	d.pendingZone = -1

	port := val & portMask
	on := val&portOnBit != 0

	sw, ok := lookupSwitch(zone, port)
	if !ok {
		// Valid wire address with no switch behind it: reserved control.
		d.debug("unmapped zone/port pair",
			d.field().Uint8("zone", zone), d.field().Uint8("port", port))
		return nil
	}
	if sw.Kind == contracts.SwitchFaderTouch {
		return []contracts.Event{contracts.FaderTouchEvent{Channel: sw.Channel, Touched: on}}
	}
	return []contracts.Event{contracts.SwitchEvent{Switch: sw, On: on}}
}

func (d *Decoder) decodeSysEx(body []byte) []contracts.Event {
	if !bytes.HasPrefix(body, sysExHeader[:]) {
		return nil // some other vendor's traffic
	}
	rest := body[len(sysExHeader):]
	if len(rest) == 0 {
		return nil
	}

	switch rest[0] {
	case pingType(d.role.Opposite()):
		if len(rest) == 1 {
			return []contracts.Event{contracts.PingEvent{From: d.role.Opposite()}}
		}

	case sysExLarge:
		payload := rest[1:]
		if len(payload) != 1+largeSliceLen || payload[0] > largeSliceMax {
			d.debug("malformed large-display slice, ignoring",
				d.field().Int("len", len(payload)))
			return nil
		}
		return []contracts.Event{contracts.LargeDisplayEvent{
			Slice: payload[0],
			Text:  decodeText(payload[1:]),
		}}

	case sysExTime:
		payload := rest[1:]
		if len(payload) > timeDisplayLen {
			payload = payload[:timeDisplayLen]
		}
		// Wire order is right-to-left; restore reading order.
		ps := make([]timePos, len(payload))
		for i, b := range payload {
			ps[len(payload)-1-i] = decodeTimePos(b)
		}
		return []contracts.Event{contracts.TimeDisplayEvent{Text: formatTimeText(ps)}}

	case sysExSmall:
		payload := rest[1:]
		if len(payload) != 1+smallDisplayLen || payload[0] >= contracts.NumChannels {
			d.debug("malformed small-display update, ignoring",
				d.field().Int("len", len(payload)))
			return nil
		}
		return []contracts.Event{contracts.SmallDisplayEvent{
			Channel: payload[0],
			Text:    decodeText(payload[1:]),
		}}
	}

	// Unknown body type under our header, or our own ping echoed back.
	return nil
}

func (d *Decoder) warn(msg string, fields ...contracts.Field) {
	d.logger.Warn(msg, fields...)
}

func (d *Decoder) debug(msg string, fields ...contracts.Field) {
	d.logger.Debug(msg, fields...)
}

func (d *Decoder) field() contracts.Field {
	return d.logger.Field()
}
