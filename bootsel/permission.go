package bootsel

import (
	"context"
	"fmt"
)

// PermissionHost is the platform capability for raw-I/O authorization.
// Implementations bridge to whatever the host OS offers: an asynchronous
// grant dialog, a udev/device-node permission check, or a test double.
type PermissionHost interface {
	// HasPermission reports whether raw I/O on the device is already
	// authorized. Queried fresh on every attempt; grants are not cached
	// by this package.
	HasPermission(dev DeviceIdentity) bool

	// Subscribe registers a listener for asynchronous permission results.
	// The returned function unregisters it; unregistering must guarantee
	// the listener will not fire afterwards.
	Subscribe(fn func(dev DeviceIdentity, granted bool)) (unsubscribe func())

	// Request asks the host to authorize raw I/O on the device. The
	// result is delivered to subscribed listeners, not returned here.
	Request(dev DeviceIdentity) error
}

// Broker performs the asynchronous permission handshake against a
// PermissionHost.
//
// A broker supports one in-flight request at a time; issuing a second Ask
// concurrently on the same broker is a usage error the broker does not
// defend against. Callers must serialize.
type Broker struct {
	host PermissionHost
}

// NewBroker creates a Broker over the given host capability.
func NewBroker(host PermissionHost) *Broker {
	if host == nil {
		panic("permission host cannot be nil")
	}
	return &Broker{host: host}
}

// Ask obtains raw-I/O authorization for the device.
//
// If authorization is already held it returns true immediately without
// touching the host. Otherwise it subscribes a one-shot listener, issues the
// request, and blocks until the host delivers grant/deny or ctx is
// cancelled. The listener is always unregistered before Ask returns, so no
// result can be delivered to a caller that has moved on.
//
// On cancellation Ask returns (false, ctx.Err()).
func (b *Broker) Ask(ctx context.Context, dev DeviceIdentity) (bool, error) {
	if b.host.HasPermission(dev) {
		return true, nil
	}

	// Buffered so a host firing on another goroutine never blocks against
	// a caller that already gave up.
	result := make(chan bool, 1)
	unsubscribe := b.host.Subscribe(func(d DeviceIdentity, granted bool) {
		if d != dev {
			return
		}
		select {
		case result <- granted:
		default:
			// A second fire violates the one-shot contract; drop it.
		}
	})
	defer unsubscribe()

	if err := b.host.Request(dev); err != nil {
		return false, fmt.Errorf("request permission for %s: %w", dev, err)
	}

	select {
	case granted := <-result:
		return granted, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}
