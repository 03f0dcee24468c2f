package bootsel

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMatchTarget(t *testing.T) {
	rp2040 := DeviceIdentity{VendorID: VendorRaspberryPi, ProductID: ProductRP2040Boot, Name: "RP2 Boot"}
	rp2350 := DeviceIdentity{VendorID: VendorRaspberryPi, ProductID: ProductRP2350Boot, Name: "RP2350 Boot"}
	keyboard := DeviceIdentity{VendorID: 0x046D, ProductID: 0xC31C, Name: "Keyboard"}
	flashDrive := DeviceIdentity{VendorID: 0x0781, ProductID: 0x5567, Name: "Cruzer"}

	tests := []struct {
		name        string
		massStorage []DeviceIdentity
		others      []DeviceIdentity
		want        *DeviceIdentity
	}{
		{
			name:        "match in mass storage list",
			massStorage: []DeviceIdentity{flashDrive, rp2040},
			others:      []DeviceIdentity{keyboard},
			want:        &rp2040,
		},
		{
			name:        "alternate bootloader variant",
			massStorage: []DeviceIdentity{rp2350},
			want:        &rp2350,
		},
		{
			name:        "fallback to unclassified list",
			massStorage: []DeviceIdentity{flashDrive},
			others:      []DeviceIdentity{keyboard, rp2040},
			want:        &rp2040,
		},
		{
			name:        "mass storage list takes precedence",
			massStorage: []DeviceIdentity{rp2350},
			others:      []DeviceIdentity{rp2040},
			want:        &rp2350,
		},
		{
			name:        "no match",
			massStorage: []DeviceIdentity{flashDrive},
			others:      []DeviceIdentity{keyboard},
			want:        nil,
		},
		{
			name: "empty lists",
			want: nil,
		},
		{
			name:        "right vendor wrong product",
			massStorage: []DeviceIdentity{{VendorID: VendorRaspberryPi, ProductID: 0x000A, Name: "Pico serial"}},
			want:        nil,
		},
		{
			name:        "right product wrong vendor",
			massStorage: []DeviceIdentity{{VendorID: 0x1234, ProductID: ProductRP2040Boot}},
			want:        nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchTarget(tt.massStorage, tt.others)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("MatchTarget() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListKnownDevices(t *testing.T) {
	got := ListKnownDevices()
	if len(got) != 2 {
		t.Fatalf("ListKnownDevices() returned %d entries, want 2", len(got))
	}

	for _, want := range []string{"2E8A:0003", "2E8A:000F"} {
		found := false
		for _, entry := range got {
			if strings.Contains(entry, want) {
				found = true
			}
		}
		if !found {
			t.Errorf("ListKnownDevices() = %v, missing %q", got, want)
		}
	}
}

func TestDeviceIdentityString(t *testing.T) {
	d := DeviceIdentity{VendorID: 0x2E8A, ProductID: 0x0003, Name: "RP2 Boot"}
	if got, want := d.String(), "2E8A:0003 RP2 Boot"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	unnamed := DeviceIdentity{VendorID: 0x2E8A, ProductID: 0x000F}
	if got, want := unnamed.String(), "2E8A:000F"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
