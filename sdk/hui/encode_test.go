package hui

import (
	"bytes"
	"testing"

	"github.com/leandrodaf/hui/sdk/contracts"
)

func TestEncodeSwitchPair(t *testing.T) {
	enc := NewEncoder(contracts.RoleSurface)
	msgs := enc.Switch(contracts.ChannelSwitch(contracts.SwitchMute, 2), true)
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	// Zone select first, then the port byte with the on bit.
	if !bytes.Equal(msgs[0].Bytes(), []byte{0xB0, 0x0F, 0x02}) {
		t.Errorf("zone select = % X", msgs[0].Bytes())
	}
	if !bytes.Equal(msgs[1].Bytes(), []byte{0xB0, 0x2F, 0x42}) {
		t.Errorf("port byte = % X", msgs[1].Bytes())
	}
}

func TestEncodeSwitchHostControllers(t *testing.T) {
	enc := NewEncoder(contracts.RoleHost)
	msgs := enc.Switch(contracts.GlobalSwitch(contracts.SwitchPlay), false)
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if !bytes.Equal(msgs[0].Bytes(), []byte{0xB0, 0x0C, 0x0E}) {
		t.Errorf("zone select = % X", msgs[0].Bytes())
	}
	if !bytes.Equal(msgs[1].Bytes(), []byte{0xB0, 0x2C, 0x04}) {
		t.Errorf("port byte = % X", msgs[1].Bytes())
	}
}

func TestEncodeSwitchUnmapped(t *testing.T) {
	enc := NewEncoder(contracts.RoleSurface)
	if msgs := enc.Switch(contracts.ChannelSwitch(contracts.SwitchSolo, 12), true); msgs != nil {
		t.Fatalf("expected no messages, got %d", len(msgs))
	}
}

func TestEncodeFaderLevel(t *testing.T) {
	enc := NewEncoder(contracts.RoleHost)
	msgs := enc.FaderLevel(5, 0x1234)
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if !bytes.Equal(msgs[0].Bytes(), []byte{0xB0, 0x05, 0x24}) {
		t.Errorf("MSB = % X", msgs[0].Bytes())
	}
	if !bytes.Equal(msgs[1].Bytes(), []byte{0xB0, 0x25, 0x34}) {
		t.Errorf("LSB = % X", msgs[1].Bytes())
	}
}

func TestEncodeFaderLevelClamp(t *testing.T) {
	enc := NewEncoder(contracts.RoleHost)
	over := enc.FaderLevel(0, 0x7FFF)
	max := enc.FaderLevel(0, contracts.FaderMax)
	for i := range over {
		if !bytes.Equal(over[i].Bytes(), max[i].Bytes()) {
			t.Fatalf("clamped message %d = % X, want % X", i, over[i].Bytes(), max[i].Bytes())
		}
	}
}

func TestEncodeFaderTouch(t *testing.T) {
	enc := NewEncoder(contracts.RoleSurface)
	msgs := enc.FaderTouch(4, true)
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if !bytes.Equal(msgs[0].Bytes(), []byte{0xB0, 0x0F, 0x04}) {
		t.Errorf("zone select = % X", msgs[0].Bytes())
	}
	// Fader port is 0; the on bit alone signals touch.
	if !bytes.Equal(msgs[1].Bytes(), []byte{0xB0, 0x2F, 0x40}) {
		t.Errorf("port byte = % X", msgs[1].Bytes())
	}
}

func TestEncodeVPot(t *testing.T) {
	enc := NewEncoder(contracts.RoleSurface)
	msgs := enc.VPot(3, 0x41)
	if len(msgs) != 1 || !bytes.Equal(msgs[0].Bytes(), []byte{0xB0, 0x13, 0x41}) {
		t.Fatalf("vpot = %v", msgs)
	}
	if msgs := enc.VPot(contracts.VPotMaster, 1); !bytes.Equal(msgs[0].Bytes(), []byte{0xB0, 0x18, 0x01}) {
		t.Fatalf("master vpot = % X", msgs[0].Bytes())
	}
	if msgs := enc.VPot(9, 1); msgs != nil {
		t.Fatal("index 9 must encode to nothing")
	}
}

func TestEncodeMeterClamp(t *testing.T) {
	enc := NewEncoder(contracts.RoleHost)
	over := enc.Meter(2, contracts.SideLeft, 20)
	max := enc.Meter(2, contracts.SideLeft, 12)
	if len(over) != 1 || !bytes.Equal(over[0].Bytes(), max[0].Bytes()) {
		t.Fatalf("clamp: % X vs % X", over[0].Bytes(), max[0].Bytes())
	}
	if !bytes.Equal(over[0].Bytes(), []byte{0xA0, 0x02, 0x0C}) {
		t.Errorf("meter bytes = % X", over[0].Bytes())
	}
	right := enc.Meter(2, contracts.SideRight, 5)
	if !bytes.Equal(right[0].Bytes(), []byte{0xA0, 0x02, 0x15}) {
		t.Errorf("right-side meter bytes = % X", right[0].Bytes())
	}
}

func TestEncodeLargeDisplaySlices(t *testing.T) {
	enc := NewEncoder(contracts.RoleHost)
	msgs := enc.LargeDisplaySlices(map[uint8]string{3: "Bass", 0: "Kick drum!", 9: "dropped"})
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	want0 := append([]byte{0xF0, 0x00, 0x00, 0x66, 0x05, 0x00, 0x12, 0x00}, []byte("Kick drum!")...)
	want0 = append(want0, 0xF7)
	if !bytes.Equal(msgs[0].Bytes(), want0) {
		t.Errorf("slice 0 = % X\nwant % X", msgs[0].Bytes(), want0)
	}
	want3 := append([]byte{0xF0, 0x00, 0x00, 0x66, 0x05, 0x00, 0x12, 0x03}, []byte("Bass      ")...)
	want3 = append(want3, 0xF7)
	if !bytes.Equal(msgs[1].Bytes(), want3) {
		t.Errorf("slice 3 = % X\nwant % X", msgs[1].Bytes(), want3)
	}
}

func TestEncodeLargeDisplayRows(t *testing.T) {
	enc := NewEncoder(contracts.RoleHost)
	msgs := enc.LargeDisplay("0123456789abcdefghij", "")
	if len(msgs) != 8 {
		t.Fatalf("got %d messages, want 8", len(msgs))
	}
	// Second slice of the top row carries columns 10-19.
	if !bytes.Contains(msgs[1].Bytes(), []byte("abcdefghij")) {
		t.Errorf("slice 1 = % X", msgs[1].Bytes())
	}
}

func TestEncodeTimeDisplayReversal(t *testing.T) {
	enc := NewEncoder(contracts.RoleHost)
	msgs := enc.TimeDisplay("0123")
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	want := []byte{0xF0, 0x00, 0x00, 0x66, 0x05, 0x00, 0x11, 0x03, 0x02, 0x01, 0x00, 0xF7}
	if !bytes.Equal(msgs[0].Bytes(), want) {
		t.Errorf("time display = % X\nwant % X", msgs[0].Bytes(), want)
	}
}

func TestEncodeTimeDisplayTruncation(t *testing.T) {
	enc := NewEncoder(contracts.RoleHost)
	// Ten positions: the rightmost eight survive, reversed on the wire.
	msgs := enc.TimeDisplay("0123456789")
	want := []byte{0xF0, 0x00, 0x00, 0x66, 0x05, 0x00, 0x11,
		0x09, 0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0xF7}
	if !bytes.Equal(msgs[0].Bytes(), want) {
		t.Errorf("time display = % X\nwant % X", msgs[0].Bytes(), want)
	}
}

func TestEncodeTimeDisplayDots(t *testing.T) {
	enc := NewEncoder(contracts.RoleHost)
	msgs := enc.TimeDisplay("1.2")
	want := []byte{0xF0, 0x00, 0x00, 0x66, 0x05, 0x00, 0x11, 0x02, 0x11, 0xF7}
	if !bytes.Equal(msgs[0].Bytes(), want) {
		t.Errorf("time display = % X\nwant % X", msgs[0].Bytes(), want)
	}
}

func TestEncodeSmallDisplay(t *testing.T) {
	enc := NewEncoder(contracts.RoleHost)
	msgs := enc.SmallDisplay(6, "Vox")
	want := append([]byte{0xF0, 0x00, 0x00, 0x66, 0x05, 0x00, 0x10, 0x06}, []byte("Vox ")...)
	want = append(want, 0xF7)
	if len(msgs) != 1 || !bytes.Equal(msgs[0].Bytes(), want) {
		t.Fatalf("small display = % X\nwant % X", msgs[0].Bytes(), want)
	}
	if msgs := enc.SmallDisplay(8, "Vox"); msgs != nil {
		t.Fatal("channel 8 must encode to nothing")
	}
}

func TestEncodePingConstants(t *testing.T) {
	host := NewEncoder(contracts.RoleHost).Ping()
	surface := NewEncoder(contracts.RoleSurface).Ping()
	if !bytes.Equal(host.Bytes(), []byte{0xF0, 0x00, 0x00, 0x66, 0x05, 0x00, 0x00, 0xF7}) {
		t.Errorf("host ping = % X", host.Bytes())
	}
	if !bytes.Equal(surface.Bytes(), []byte{0xF0, 0x00, 0x00, 0x66, 0x05, 0x00, 0x01, 0xF7}) {
		t.Errorf("surface ping = % X", surface.Bytes())
	}
	if bytes.Equal(host.Bytes(), surface.Bytes()) {
		t.Error("host and surface pings must differ")
	}
}
