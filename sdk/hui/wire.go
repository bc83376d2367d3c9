package hui

import (
	"github.com/leandrodaf/hui/sdk/contracts"
)

// HUI rides on plain MIDI messages, all on MIDI channel 0. Switch and fader
// addressing is split across paired Control Change messages; displays and
// pings travel as System Exclusive with a fixed five-byte header.
const midiChannel = 0

// Controller numbers. The zone/port pair differs by direction: messages the
// host sends use one pair, messages the surface sends use another.
const (
	ccZoneSelectFromHost    = 0x0C
	ccZoneSelectFromSurface = 0x0F
	ccPortFromHost          = 0x2C
	ccPortFromSurface       = 0x2F

	// Fader position: MSB on CC 0x00+channel, LSB on CC 0x20+channel.
	ccFaderMSBBase = 0x00
	ccFaderLSBBase = 0x20

	// V-Pots: CC 0x10+index, index 8 = master encoder.
	ccVPotBase = 0x10

	// Bit 6 of the port byte carries the switch on/off (or touch/release) state.
	portOnBit = 0x40
	portMask  = 0x07
)

// sysExHeader precedes every HUI System Exclusive body: Mackie's
// manufacturer ID (00 00 66) followed by the HUI product ID and a reserved
// zero byte.
var sysExHeader = [5]byte{0x00, 0x00, 0x66, 0x05, 0x00}

// SysEx body type bytes, directly after the header.
const (
	sysExPingHost    = 0x00 // constant host liveness ping
	sysExPingSurface = 0x01 // constant surface reply ping
	sysExSmall       = 0x10 // 4-character per-channel display
	sysExTime        = 0x11 // 8-digit time-code display
	sysExLarge       = 0x12 // one 10-character slice of the 2x40 display
)

const (
	largeSliceLen   = 10
	largeSliceMax   = 7
	timeDisplayLen  = 8
	smallDisplayLen = 4
)

// zoneSelectCC returns the zone-select controller number used by messages
// the given role sends.
func zoneSelectCC(from contracts.Role) uint8 {
	if from == contracts.RoleHost {
		return ccZoneSelectFromHost
	}
	return ccZoneSelectFromSurface
}

// portCC returns the port controller number used by messages the given role
// sends.
func portCC(from contracts.Role) uint8 {
	if from == contracts.RoleHost {
		return ccPortFromHost
	}
	return ccPortFromSurface
}

// pingType returns the SysEx type byte of the given role's liveness ping.
func pingType(from contracts.Role) byte {
	if from == contracts.RoleHost {
		return sysExPingHost
	}
	return sysExPingSurface
}
