// Package usbenum implements bootsel.Enumerator over libusb via gousb.
package usbenum

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/google/gousb"
	"github.com/google/gousb/usbid"

	"github.com/moffa90/go-bootsel/bootsel"
)

// Lister enumerates USB devices on the host bus. It classifies devices by
// descriptor only and never opens them; opening is left to whatever
// ChannelOpener the caller pairs it with.
type Lister struct {
	ctx *gousb.Context
}

// New creates a Lister with its own libusb context. Call Close when done.
func New() *Lister {
	return &Lister{ctx: gousb.NewContext()}
}

// NewWithContext creates a Lister over an existing gousb context. The caller
// keeps ownership of the context.
func NewWithContext(ctx *gousb.Context) *Lister {
	return &Lister{ctx: ctx}
}

// Close releases the libusb context created by New.
func (l *Lister) Close() error {
	return l.ctx.Close()
}

// MassStorageDevices returns devices exposing a mass-storage interface.
func (l *Lister) MassStorageDevices() ([]bootsel.DeviceIdentity, error) {
	return l.list(true)
}

// OtherDevices returns devices without a mass-storage interface.
func (l *Lister) OtherDevices() ([]bootsel.DeviceIdentity, error) {
	return l.list(false)
}

func (l *Lister) list(massStorage bool) ([]bootsel.DeviceIdentity, error) {
	var out []bootsel.DeviceIdentity

	// The selector only inspects descriptors. Returning false keeps every
	// device unopened, so no handle or permission is consumed here.
	_, err := l.ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		if hasMassStorageInterface(desc) != massStorage {
			return false
		}
		id := bootsel.DeviceIdentity{
			VendorID:  uint16(desc.Vendor),
			ProductID: uint16(desc.Product),
			Name:      usbid.Describe(desc),
		}
		glog.V(1).Infof("usbenum: %s (mass storage: %v)", id, massStorage)
		out = append(out, id)
		return false
	})
	if err != nil {
		return nil, fmt.Errorf("enumerate usb devices: %w", err)
	}
	return out, nil
}

func hasMassStorageInterface(desc *gousb.DeviceDesc) bool {
	for _, cfg := range desc.Configs {
		for _, intf := range cfg.Interfaces {
			for _, alt := range intf.AltSettings {
				if alt.Class == gousb.ClassMassStorage {
					return true
				}
			}
		}
	}
	return false
}
