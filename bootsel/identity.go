package bootsel

import "fmt"

// DeviceIdentity identifies an enumerated USB device.
// Immutable; produced by an Enumerator.
type DeviceIdentity struct {
	// VendorID is the USB vendor ID
	VendorID uint16

	// ProductID is the USB product ID
	ProductID uint16

	// Name is the human-readable device name reported by enumeration
	Name string
}

func (d DeviceIdentity) String() string {
	if d.Name == "" {
		return fmt.Sprintf("%04X:%04X", d.VendorID, d.ProductID)
	}
	return fmt.Sprintf("%04X:%04X %s", d.VendorID, d.ProductID, d.Name)
}

// Known bootloader identity signatures.
const (
	// VendorRaspberryPi is the Raspberry Pi USB vendor ID
	VendorRaspberryPi = 0x2E8A

	// ProductRP2040Boot is the RP2040 BOOTSEL product ID
	ProductRP2040Boot = 0x0003

	// ProductRP2350Boot is the RP2350 BOOTSEL product ID
	ProductRP2350Boot = 0x000F
)

// knownSignatures is the static allow-list of bootloader identities the
// matcher accepts.
var knownSignatures = []DeviceIdentity{
	{VendorID: VendorRaspberryPi, ProductID: ProductRP2040Boot, Name: "RP2040 BOOTSEL"},
	{VendorID: VendorRaspberryPi, ProductID: ProductRP2350Boot, Name: "RP2350 BOOTSEL"},
}

func isKnownSignature(vendor, product uint16) bool {
	for _, s := range knownSignatures {
		if s.VendorID == vendor && s.ProductID == product {
			return true
		}
	}
	return false
}

// MatchTarget returns the first enumerated device whose vendor/product pair
// matches a known bootloader signature, or nil if none match.
//
// The mass-storage-classified list is checked before the fallback list:
// some platform enumerations fail to classify the bootloader's mass-storage
// interface, so a device missing from massStorage may still show up in
// others. No side effects.
func MatchTarget(massStorage, others []DeviceIdentity) *DeviceIdentity {
	for _, list := range [][]DeviceIdentity{massStorage, others} {
		for i := range list {
			if isKnownSignature(list[i].VendorID, list[i].ProductID) {
				d := list[i]
				return &d
			}
		}
	}
	return nil
}

// ListKnownDevices formats the known bootloader signatures for display.
func ListKnownDevices() []string {
	out := make([]string, 0, len(knownSignatures))
	for _, s := range knownSignatures {
		out = append(out, s.String())
	}
	return out
}
