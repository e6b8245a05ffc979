package mem

import (
	"sync"
	"testing"
)

// TestStoreLoadAllValues verifies that every possible byte value survives a
// store/load round trip.
func TestStoreLoadAllValues(t *testing.T) {
	var b byte
	for v := 0; v < 256; v++ {
		StoreByte(&b, byte(v))
		if got := LoadByte(&b); got != byte(v) {
			t.Fatalf("LoadByte after StoreByte(%#02x) = %#02x", v, got)
		}
	}
}

// TestOverwrite verifies that a second store fully replaces the first.
func TestOverwrite(t *testing.T) {
	var b byte
	StoreByte(&b, 0xA5)
	StoreByte(&b, 0x5A)
	if got := LoadByte(&b); got != 0x5A {
		t.Fatalf("LoadByte = %#02x, want 0x5a", got)
	}
}

// TestBackendReported verifies the provider identifies itself.
func TestBackendReported(t *testing.T) {
	if Backend() == "" {
		t.Fatal("Backend() returned empty string")
	}
}

// TestConcurrentNoTearing hammers one byte from many goroutines and checks
// that every load observes a value some store fully wrote.
//
// Each writer stores a distinct constant. A torn access would surface as a
// byte that no writer ever produced.
func TestConcurrentNoTearing(t *testing.T) {
	const (
		writers    = 8
		readers    = 4
		iterations = 10000
	)

	// Constants chosen with differing bit patterns so that a bit-mixed
	// observation cannot collide with a legal value by accident.
	values := []byte{0x11, 0x22, 0x44, 0x88, 0x33, 0x66, 0xCC, 0xFF}

	var allowed [256]bool
	allowed[0] = true // initial value before any store
	for _, v := range values {
		allowed[v] = true
	}

	var b byte
	var wg sync.WaitGroup
	done := make(chan struct{})

	errs := make(chan byte, readers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(v byte) {
			defer wg.Done()
			for n := 0; n < iterations; n++ {
				StoreByte(&b, v)
			}
		}(values[i])
	}

	var rg sync.WaitGroup
	for i := 0; i < readers; i++ {
		rg.Add(1)
		go func() {
			defer rg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				if v := LoadByte(&b); !allowed[v] {
					select {
					case errs <- v:
					default:
					}
					return
				}
			}
		}()
	}

	wg.Wait()
	close(done)
	rg.Wait()

	select {
	case v := <-errs:
		t.Fatalf("observed torn byte %#02x, not written by any goroutine", v)
	default:
	}
}
