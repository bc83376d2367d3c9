package contracts

// Role identifies which peer of a HUI link a message originates from.
// Several controller numbers and the ping constants differ by direction,
// so the role travels with every encoder and decoder instance.
type Role int

const (
	// RoleHost is the DAW side of the link.
	RoleHost Role = iota
	// RoleSurface is the control-surface side of the link.
	RoleSurface
)

// Opposite returns the peer role on the other end of the link.
func (r Role) Opposite() Role {
	if r == RoleHost {
		return RoleSurface
	}
	return RoleHost
}

func (r Role) String() string {
	switch r {
	case RoleHost:
		return "host"
	case RoleSurface:
		return "surface"
	}
	return "unknown"
}

// Side selects the left or right column of a stereo level meter.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// NumChannels is the number of channel strips on a HUI surface.
const NumChannels = 8

// FaderMax is the largest encodable 14-bit fader position.
const FaderMax = 0x3FFF

// MeterMax is the largest meter segment; it lights the clip indicator.
const MeterMax = 12

// VPot identifies one of the rotary encoders: indexes 0-7 are the channel
// strip V-Pots, VPotMaster is the ninth encoder next to the transport.
type VPot uint8

const VPotMaster VPot = 8

func (v VPot) String() string {
	if v == VPotMaster {
		return "vpot-master"
	}
	return "vpot-" + string('1'+rune(v))
}

// SwitchKind names a logical switch class. Channel-strip kinds repeat once
// per channel; global kinds exist exactly once on the surface.
type SwitchKind int

const (
	// Channel-strip kinds (combined with a channel number 0-7).
	SwitchFaderTouch SwitchKind = iota
	SwitchSelect
	SwitchMute
	SwitchSolo
	SwitchAuto
	SwitchVSel
	SwitchInsert
	SwitchRecordReady

	// Keyboard shortcut keys.
	SwitchCtrl
	SwitchShift
	SwitchEditMode
	SwitchUndo
	SwitchAlt
	SwitchOption
	SwitchEditTool
	SwitchSave

	// Window keys.
	SwitchWindowMix
	SwitchWindowEdit
	SwitchWindowTransport
	SwitchWindowMemLoc
	SwitchWindowStatus
	SwitchWindowAlt

	// Bank / channel navigation.
	SwitchChannelLeft
	SwitchBankLeft
	SwitchChannelRight
	SwitchBankRight

	// Assign keys.
	SwitchAssignOutput
	SwitchAssignInput
	SwitchAssignPan
	SwitchAssignSendE
	SwitchAssignSendD
	SwitchAssignSendC
	SwitchAssignSendB
	SwitchAssignSendA

	// Transport keys.
	SwitchTalkback
	SwitchRewind
	SwitchFastFwd
	SwitchStop
	SwitchPlay
	SwitchRecord

	// Cursor / jog keys.
	SwitchCursorDown
	SwitchCursorLeft
	SwitchCursorMode
	SwitchCursorRight
	SwitchCursorUp
	SwitchScrub
	SwitchShuttle
)

// IsChannelStrip reports whether the kind repeats once per channel strip.
func (k SwitchKind) IsChannelStrip() bool {
	return k >= SwitchFaderTouch && k <= SwitchRecordReady
}

var switchKindNames = []string{
	"fader-touch", "select", "mute", "solo", "auto", "v-sel", "insert", "rec-ready",
	"ctrl", "shift", "edit-mode", "undo", "alt", "option", "edit-tool", "save",
	"window-mix", "window-edit", "window-transport", "window-mem-loc", "window-status", "window-alt",
	"channel-left", "bank-left", "channel-right", "bank-right",
	"assign-output", "assign-input", "assign-pan",
	"assign-send-e", "assign-send-d", "assign-send-c", "assign-send-b", "assign-send-a",
	"talkback", "rewind", "fast-fwd", "stop", "play", "record",
	"cursor-down", "cursor-left", "cursor-mode", "cursor-right", "cursor-up", "scrub", "shuttle",
}

func (k SwitchKind) String() string {
	if int(k) < 0 || int(k) >= len(switchKindNames) {
		return "unknown"
	}
	return switchKindNames[k]
}

// Switch is a named logical control on the surface. For channel-strip kinds
// Channel selects the strip (0-7); for global kinds Channel is zero.
type Switch struct {
	Kind    SwitchKind
	Channel uint8
}

func (s Switch) String() string {
	if s.Kind.IsChannelStrip() {
		return s.Kind.String() + "-" + string('1'+rune(s.Channel))
	}
	return s.Kind.String()
}

// ChannelSwitch builds a channel-strip switch identity.
func ChannelSwitch(kind SwitchKind, channel uint8) Switch {
	return Switch{Kind: kind, Channel: channel}
}

// GlobalSwitch builds a global (non-channel) switch identity.
func GlobalSwitch(kind SwitchKind) Switch {
	return Switch{Kind: kind}
}
