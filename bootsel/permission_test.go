package bootsel

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeHost simulates the platform permission capability.
type fakeHost struct {
	mu sync.Mutex

	held       bool // HasPermission result
	decision   bool // grant/deny delivered after Request
	requestErr error
	silent     bool // never deliver a result
	fireTwice  bool // violate the one-shot contract

	requests int
	listener func(DeviceIdentity, bool)
	live     int // currently registered listeners
}

func (h *fakeHost) HasPermission(DeviceIdentity) bool {
	return h.held
}

func (h *fakeHost) Subscribe(fn func(DeviceIdentity, bool)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listener = fn
	h.live++
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.listener = nil
		h.live--
	}
}

func (h *fakeHost) Request(dev DeviceIdentity) error {
	h.mu.Lock()
	fn := h.listener
	h.requests++
	h.mu.Unlock()

	if h.requestErr != nil {
		return h.requestErr
	}
	if h.silent || fn == nil {
		return nil
	}

	// Deliver asynchronously like a real OS event.
	go func() {
		fn(dev, h.decision)
		if h.fireTwice {
			fn(dev, !h.decision)
		}
	}()
	return nil
}

func (h *fakeHost) liveListeners() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.live
}

var testDevice = DeviceIdentity{VendorID: VendorRaspberryPi, ProductID: ProductRP2040Boot, Name: "RP2 Boot"}

func TestBrokerAsk(t *testing.T) {
	t.Run("already held short-circuits", func(t *testing.T) {
		host := &fakeHost{held: true}
		granted, err := NewBroker(host).Ask(context.Background(), testDevice)
		if err != nil {
			t.Fatalf("Ask() error = %v", err)
		}
		if !granted {
			t.Error("Ask() = false, want true")
		}
		if host.requests != 0 {
			t.Errorf("requests = %d, want 0 when permission already held", host.requests)
		}
	})

	t.Run("grant", func(t *testing.T) {
		host := &fakeHost{decision: true}
		granted, err := NewBroker(host).Ask(context.Background(), testDevice)
		if err != nil {
			t.Fatalf("Ask() error = %v", err)
		}
		if !granted {
			t.Error("Ask() = false, want true")
		}
		if host.liveListeners() != 0 {
			t.Errorf("live listeners = %d, want 0 after Ask returns", host.liveListeners())
		}
	})

	t.Run("deny", func(t *testing.T) {
		host := &fakeHost{decision: false}
		granted, err := NewBroker(host).Ask(context.Background(), testDevice)
		if err != nil {
			t.Fatalf("Ask() error = %v", err)
		}
		if granted {
			t.Error("Ask() = true, want false")
		}
		if host.liveListeners() != 0 {
			t.Errorf("live listeners = %d, want 0 after Ask returns", host.liveListeners())
		}
	})

	t.Run("cancellation unregisters listener", func(t *testing.T) {
		host := &fakeHost{silent: true}
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan struct{})
		var granted bool
		var err error
		go func() {
			granted, err = NewBroker(host).Ask(ctx, testDevice)
			close(done)
		}()

		// Let Ask reach its wait before cancelling.
		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Ask() did not return after cancellation")
		}

		if granted {
			t.Error("Ask() = true after cancellation, want false")
		}
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Ask() error = %v, want context.Canceled", err)
		}
		if host.liveListeners() != 0 {
			t.Errorf("live listeners = %d, want 0 after cancellation", host.liveListeners())
		}
	})

	t.Run("request failure", func(t *testing.T) {
		host := &fakeHost{requestErr: errors.New("subsystem gone")}
		granted, err := NewBroker(host).Ask(context.Background(), testDevice)
		if granted {
			t.Error("Ask() = true, want false")
		}
		if err == nil || !strings.Contains(err.Error(), "subsystem gone") {
			t.Errorf("Ask() error = %v, want wrapped subsystem gone", err)
		}
		if host.liveListeners() != 0 {
			t.Errorf("live listeners = %d, want 0 after request failure", host.liveListeners())
		}
	})

	t.Run("second fire is dropped", func(t *testing.T) {
		host := &fakeHost{decision: true, fireTwice: true}
		granted, err := NewBroker(host).Ask(context.Background(), testDevice)
		if err != nil {
			t.Fatalf("Ask() error = %v", err)
		}
		if !granted {
			t.Error("Ask() = false, want first delivered value true")
		}
	})

	t.Run("result for another device ignored", func(t *testing.T) {
		host := &fakeHost{silent: true}
		broker := NewBroker(host)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		done := make(chan struct{})
		go func() {
			_, _ = broker.Ask(ctx, testDevice)
			close(done)
		}()

		time.Sleep(10 * time.Millisecond)
		host.mu.Lock()
		fn := host.listener
		host.mu.Unlock()
		if fn == nil {
			t.Fatal("no listener registered")
		}
		// Fire for an unrelated device; Ask must keep waiting.
		fn(DeviceIdentity{VendorID: 0x1234, ProductID: 0x5678}, true)

		select {
		case <-done:
			t.Fatal("Ask() returned on a result for another device")
		case <-time.After(20 * time.Millisecond):
		}
		cancel()
		<-done
	})
}
