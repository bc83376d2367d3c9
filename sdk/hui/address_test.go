package hui

import (
	"testing"

	"github.com/leandrodaf/hui/sdk/contracts"
)

func TestSwitchAddressBijection(t *testing.T) {
	seen := map[address]contracts.Switch{}
	for _, sw := range Switches() {
		addr, ok := switchAddress(sw)
		if !ok {
			t.Fatalf("switch %v has no address", sw)
		}
		if prev, dup := seen[addr]; dup {
			t.Fatalf("address %+v claimed by both %v and %v", addr, prev, sw)
		}
		seen[addr] = sw

		back, ok := lookupSwitch(addr.zone, addr.port)
		if !ok {
			t.Fatalf("reverse lookup failed for %v at %+v", sw, addr)
		}
		if back != sw {
			t.Fatalf("round trip %v -> %+v -> %v", sw, addr, back)
		}
	}
	if len(seen) != len(Switches()) {
		t.Fatalf("got %d addresses for %d switches", len(seen), len(Switches()))
	}
}

func TestLookupSwitchUnmapped(t *testing.T) {
	// Zone 0x7D carries no controls; unmapped pairs are valid on the wire
	// and must resolve to ok=false, not blow up.
	if sw, ok := lookupSwitch(0x7D, 0); ok {
		t.Fatalf("expected unmapped, got %v", sw)
	}
}

func TestSwitchAddressOutOfRangeChannel(t *testing.T) {
	if _, ok := switchAddress(contracts.ChannelSwitch(contracts.SwitchMute, 8)); ok {
		t.Fatal("channel 8 must not resolve")
	}
}

func TestChannelStripAddresses(t *testing.T) {
	cases := []struct {
		sw   contracts.Switch
		zone uint8
		port uint8
	}{
		{contracts.ChannelSwitch(contracts.SwitchFaderTouch, 0), 0x00, 0},
		{contracts.ChannelSwitch(contracts.SwitchMute, 3), 0x03, 2},
		{contracts.ChannelSwitch(contracts.SwitchRecordReady, 7), 0x07, 7},
		{contracts.GlobalSwitch(contracts.SwitchPlay), 0x0E, 4},
		{contracts.GlobalSwitch(contracts.SwitchScrub), 0x0F, 5},
	}
	for _, tc := range cases {
		addr, ok := switchAddress(tc.sw)
		if !ok {
			t.Fatalf("%v: no address", tc.sw)
		}
		if addr.zone != tc.zone || addr.port != tc.port {
			t.Errorf("%v: got zone=%#x port=%d, want zone=%#x port=%d",
				tc.sw, addr.zone, addr.port, tc.zone, tc.port)
		}
	}
}
