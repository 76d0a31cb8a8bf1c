package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
)

func TestNew_startsClosed(t *testing.T) {
	cb := New(DefaultConfig("test"))
	if cb.State() != gobreaker.StateClosed {
		t.Fatalf("new breaker state = %v, want closed", cb.State())
	}
	if cb.IsOpen() {
		t.Fatal("new breaker reports open")
	}
	if cb.Name() != "test" {
		t.Fatalf("Name() = %q", cb.Name())
	}
}

func TestExecute_passesThroughResult(t *testing.T) {
	cb := New(DefaultConfig("test"))
	got, err := cb.Execute(func() (interface{}, error) {
		return 42, nil
	})
	if err != nil {
		t.Fatalf("Execute err=%v", err)
	}
	if got.(int) != 42 {
		t.Fatalf("Execute result = %v, want 42", got)
	}
}

func TestExecute_tripsAfterThreshold(t *testing.T) {
	cfg := Config{
		Name:             "trippy",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 1.0,
		MinRequests:      3,
	}
	cb := New(cfg)

	boom := errors.New("store down")
	for i := 0; i < 3; i++ {
		if _, err := cb.Execute(func() (interface{}, error) { return nil, boom }); !errors.Is(err, boom) {
			t.Fatalf("call %d: err=%v, want %v", i, err, boom)
		}
	}

	if !cb.IsOpen() {
		t.Fatal("breaker should be open after consecutive failures")
	}
	if _, err := cb.Execute(func() (interface{}, error) { return nil, nil }); !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("open breaker err=%v, want ErrOpenState", err)
	}
}

func TestExecute_staysClosedBelowMinRequests(t *testing.T) {
	cfg := DefaultConfig("quiet")
	cb := New(cfg)

	boom := errors.New("transient")
	for i := uint32(0); i < cfg.MinRequests-1; i++ {
		_, _ = cb.Execute(func() (interface{}, error) { return nil, boom })
	}
	if cb.IsOpen() {
		t.Fatal("breaker tripped before MinRequests failures")
	}
}
