package hui

import (
	"fmt"

	"github.com/leandrodaf/hui/sdk/contracts"
)

// The surface addresses every switch with a (zone, port) pair: the zone
// selects a control group (a channel strip, the transport block, ...) and
// the port selects one switch inside it. Channel strips occupy zones 0-7
// with the same eight ports each; global groups sit in fixed zones above.

// address is a resolved zone/port pair.
type address struct {
	zone uint8 // 0..0x7F
	port uint8 // 0..7
}

// Channel-strip ports, identical for every strip zone 0x00-0x07.
const (
	portFaderTouch  = 0
	portSelect      = 1
	portMute        = 2
	portSolo        = 3
	portAuto        = 4
	portVSel        = 5
	portInsert      = 6
	portRecordReady = 7
)

// Global group zones.
const (
	zoneKeyboard  = 0x08
	zoneWindow    = 0x09
	zoneBankNav   = 0x0A
	zoneAssign    = 0x0B
	zoneTransport = 0x0E
	zoneCursor    = 0x0F
)

var channelStripPorts = map[contracts.SwitchKind]uint8{
	contracts.SwitchFaderTouch:  portFaderTouch,
	contracts.SwitchSelect:      portSelect,
	contracts.SwitchMute:        portMute,
	contracts.SwitchSolo:        portSolo,
	contracts.SwitchAuto:        portAuto,
	contracts.SwitchVSel:        portVSel,
	contracts.SwitchInsert:      portInsert,
	contracts.SwitchRecordReady: portRecordReady,
}

var globalAddresses = map[contracts.SwitchKind]address{
	contracts.SwitchCtrl:     {zoneKeyboard, 0},
	contracts.SwitchShift:    {zoneKeyboard, 1},
	contracts.SwitchEditMode: {zoneKeyboard, 2},
	contracts.SwitchUndo:     {zoneKeyboard, 3},
	contracts.SwitchAlt:      {zoneKeyboard, 4},
	contracts.SwitchOption:   {zoneKeyboard, 5},
	contracts.SwitchEditTool: {zoneKeyboard, 6},
	contracts.SwitchSave:     {zoneKeyboard, 7},

	contracts.SwitchWindowMix:       {zoneWindow, 0},
	contracts.SwitchWindowEdit:      {zoneWindow, 1},
	contracts.SwitchWindowTransport: {zoneWindow, 2},
	contracts.SwitchWindowMemLoc:    {zoneWindow, 3},
	contracts.SwitchWindowStatus:    {zoneWindow, 4},
	contracts.SwitchWindowAlt:       {zoneWindow, 5},

	contracts.SwitchChannelLeft:  {zoneBankNav, 0},
	contracts.SwitchBankLeft:     {zoneBankNav, 1},
	contracts.SwitchChannelRight: {zoneBankNav, 2},
	contracts.SwitchBankRight:    {zoneBankNav, 3},

	contracts.SwitchAssignOutput: {zoneAssign, 0},
	contracts.SwitchAssignInput:  {zoneAssign, 1},
	contracts.SwitchAssignPan:    {zoneAssign, 2},
	contracts.SwitchAssignSendE:  {zoneAssign, 3},
	contracts.SwitchAssignSendD:  {zoneAssign, 4},
	contracts.SwitchAssignSendC:  {zoneAssign, 5},
	contracts.SwitchAssignSendB:  {zoneAssign, 6},
	contracts.SwitchAssignSendA:  {zoneAssign, 7},

	contracts.SwitchTalkback: {zoneTransport, 0},
	contracts.SwitchRewind:   {zoneTransport, 1},
	contracts.SwitchFastFwd:  {zoneTransport, 2},
	contracts.SwitchStop:     {zoneTransport, 3},
	contracts.SwitchPlay:     {zoneTransport, 4},
	contracts.SwitchRecord:   {zoneTransport, 5},

	contracts.SwitchCursorDown:  {zoneCursor, 0},
	contracts.SwitchCursorLeft:  {zoneCursor, 1},
	contracts.SwitchCursorMode:  {zoneCursor, 2},
	contracts.SwitchCursorRight: {zoneCursor, 3},
	contracts.SwitchCursorUp:    {zoneCursor, 4},
	contracts.SwitchScrub:       {zoneCursor, 5},
	contracts.SwitchShuttle:     {zoneCursor, 6},
}

// reverseTable is the precomputed inverse of the two maps above, built once
// at init. Unmapped (zone, port) pairs stay valid on the wire (reserved
// controls) and resolve to ok=false.
var reverseTable map[address]contracts.Switch

func init() {
	reverseTable = make(map[address]contracts.Switch,
		len(globalAddresses)+len(channelStripPorts)*contracts.NumChannels)

	for kind, port := range channelStripPorts {
		for ch := uint8(0); ch < contracts.NumChannels; ch++ {
			addr := address{zone: ch, port: port}
			if prev, dup := reverseTable[addr]; dup {
				panic(fmt.Sprintf("hui: duplicate switch address %+v: %v", addr, prev))
			}
			reverseTable[addr] = contracts.ChannelSwitch(kind, ch)
		}
	}
	for kind, addr := range globalAddresses {
		if prev, dup := reverseTable[addr]; dup {
			panic(fmt.Sprintf("hui: duplicate switch address %+v: %v", addr, prev))
		}
		reverseTable[addr] = contracts.GlobalSwitch(kind)
	}
}

// switchAddress resolves a switch identity to its (zone, port) pair.
// ok is false for identities outside the table (an out-of-range channel or
// an unknown kind), which the encoder treats as a silent no-op.
func switchAddress(sw contracts.Switch) (address, bool) {
	if sw.Kind.IsChannelStrip() {
		if sw.Channel >= contracts.NumChannels {
			return address{}, false
		}
		port, ok := channelStripPorts[sw.Kind]
		if !ok {
			return address{}, false
		}
		return address{zone: sw.Channel, port: port}, true
	}
	addr, ok := globalAddresses[sw.Kind]
	return addr, ok
}

// lookupSwitch resolves a wire (zone, port) pair back to a switch identity.
func lookupSwitch(zone, port uint8) (contracts.Switch, bool) {
	sw, ok := reverseTable[address{zone: zone, port: port}]
	return sw, ok
}

// Switches returns every switch identity in the addressing table. The order
// is unspecified.
func Switches() []contracts.Switch {
	out := make([]contracts.Switch, 0, len(reverseTable))
	for _, sw := range reverseTable {
		out = append(out, sw)
	}
	return out
}
