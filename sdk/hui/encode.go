package hui

import (
	"sort"

	"gitlab.com/gomidi/midi/v2"

	"github.com/leandrodaf/hui/sdk/contracts"
)

// Encoder builds the outbound MIDI messages for one side of a HUI link.
// Every method is a pure function of its arguments: out-of-range inputs are
// clamped or truncated, never rejected, so a bad display string or meter
// reading cannot stall other traffic. Encoders hold no state and are safe
// for concurrent use.
type Encoder struct {
	role contracts.Role
}

// NewEncoder returns an encoder emitting messages as the given role.
func NewEncoder(role contracts.Role) *Encoder {
	return &Encoder{role: role}
}

// Switch encodes a switch state change as its zone-select / port pair.
// The zone-select message must be sent first; the receiver pairs the port
// byte with the most recent zone byte. Identities outside the addressing
// table encode to nothing.
func (e *Encoder) Switch(sw contracts.Switch, on bool) []midi.Message {
	addr, ok := switchAddress(sw)
	if !ok {
		return nil
	}
	return e.zonePortPair(addr, on)
}

// FaderTouch encodes a fader touch or release. Touch shares the switch
// pairing scheme: the channel is the zone and the fader port's on/off bit
// carries touched/released.
func (e *Encoder) FaderTouch(channel uint8, touched bool) []midi.Message {
	return e.Switch(contracts.ChannelSwitch(contracts.SwitchFaderTouch, channel), touched)
}

func (e *Encoder) zonePortPair(addr address, on bool) []midi.Message {
	portVal := addr.port & portMask
	if on {
		portVal |= portOnBit
	}
	return []midi.Message{
		midi.ControlChange(midiChannel, zoneSelectCC(e.role), addr.zone),
		midi.ControlChange(midiChannel, portCC(e.role), portVal),
	}
}

// FaderLevel encodes a 14-bit fader position as its MSB/LSB message pair.
// Levels above FaderMax clamp; channels outside the surface encode to
// nothing.
func (e *Encoder) FaderLevel(channel uint8, level uint16) []midi.Message {
	if channel >= contracts.NumChannels {
		return nil
	}
	if level > contracts.FaderMax {
		level = contracts.FaderMax
	}
	return []midi.Message{
		midi.ControlChange(midiChannel, ccFaderMSBBase+channel, uint8(level>>7)),
		midi.ControlChange(midiChannel, ccFaderLSBBase+channel, uint8(level&0x7F)),
	}
}

// VPot encodes a rotary encoder value: a 7-bit delta when the surface
// sends it, an LED-ring preset index when the host does. The wire shape is
// the same either way.
func (e *Encoder) VPot(v contracts.VPot, value uint8) []midi.Message {
	if v > contracts.VPotMaster {
		return nil
	}
	return []midi.Message{
		midi.ControlChange(midiChannel, ccVPotBase+uint8(v), value&0x7F),
	}
}

// Meter encodes one side of a stereo channel meter as a polyphonic
// aftertouch message packing the side and the clamped level into the
// pressure byte.
func (e *Encoder) Meter(channel uint8, side contracts.Side, level uint8) []midi.Message {
	if channel >= contracts.NumChannels {
		return nil
	}
	if level > contracts.MeterMax {
		level = contracts.MeterMax
	}
	var sideBit uint8
	if side == contracts.SideRight {
		sideBit = 1
	}
	return []midi.Message{
		midi.PolyAfterTouch(midiChannel, channel, sideBit<<4|level),
	}
}

// LargeDisplaySlices encodes the given 10-character slices of the 2x40
// display, one SysEx message per slice. Slice order carries no meaning on
// the wire; the output is sorted by index only to keep it deterministic.
// Indexes above 7 are dropped.
func (e *Encoder) LargeDisplaySlices(slices map[uint8]string) []midi.Message {
	idx := make([]uint8, 0, len(slices))
	for i := range slices {
		if i <= largeSliceMax {
			idx = append(idx, i)
		}
	}
	sort.Slice(idx, func(a, b int) bool { return idx[a] < idx[b] })

	out := make([]midi.Message, 0, len(idx))
	for _, i := range idx {
		body := make([]byte, 0, len(sysExHeader)+2+largeSliceLen)
		body = append(body, sysExHeader[:]...)
		body = append(body, sysExLarge, i)
		body = append(body, encodeText(slices[i], largeSliceLen)...)
		out = append(out, midi.SysEx(body))
	}
	return out
}

// LargeDisplay encodes both 40-character rows of the large display as all
// eight slices.
func (e *Encoder) LargeDisplay(top, bottom string) []midi.Message {
	slices := make(map[uint8]string, 8)
	for i := uint8(0); i < 4; i++ {
		slices[i] = sliceAt(top, int(i))
		slices[i+4] = sliceAt(bottom, int(i))
	}
	return e.LargeDisplaySlices(slices)
}

func sliceAt(row string, i int) string {
	rs := []rune(row)
	lo := i * largeSliceLen
	if lo >= len(rs) {
		return ""
	}
	hi := lo + largeSliceLen
	if hi > len(rs) {
		hi = len(rs)
	}
	return string(rs[lo:hi])
}

// TimeDisplay encodes the time-code readout. Text beyond eight positions
// keeps the rightmost eight; the wire carries positions right-to-left so
// the least significant digit travels first.
func (e *Encoder) TimeDisplay(text string) []midi.Message {
	ps := parseTimeText(text)
	if len(ps) > timeDisplayLen {
		ps = ps[len(ps)-timeDisplayLen:]
	}
	body := make([]byte, 0, len(sysExHeader)+1+len(ps))
	body = append(body, sysExHeader[:]...)
	body = append(body, sysExTime)
	for i := len(ps) - 1; i >= 0; i-- {
		body = append(body, encodeTimePos(ps[i]))
	}
	return []midi.Message{midi.SysEx(body)}
}

// SmallDisplay encodes a channel's 4-character label. Channels outside the
// surface encode to nothing.
func (e *Encoder) SmallDisplay(channel uint8, text string) []midi.Message {
	if channel >= contracts.NumChannels {
		return nil
	}
	body := make([]byte, 0, len(sysExHeader)+2+smallDisplayLen)
	body = append(body, sysExHeader[:]...)
	body = append(body, sysExSmall, channel)
	body = append(body, encodeText(text, smallDisplayLen)...)
	return []midi.Message{midi.SysEx(body)}
}

// Ping returns this role's constant liveness ping.
func (e *Encoder) Ping() midi.Message {
	body := make([]byte, 0, len(sysExHeader)+1)
	body = append(body, sysExHeader[:]...)
	body = append(body, pingType(e.role))
	return midi.SysEx(body)
}
