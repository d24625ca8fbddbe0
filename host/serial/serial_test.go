package serial

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/dev/ttyUSB0")
	if cfg.Device != "/dev/ttyUSB0" || cfg.Baud != 115200 || cfg.ReadTimeout != 500 {
		t.Errorf("DefaultConfig = %+v", cfg)
	}
}

func TestOpenRejectsBadConfig(t *testing.T) {
	if _, err := Open(nil); err == nil {
		t.Error("Open(nil) succeeded")
	}
	if _, err := Open(&Config{Device: "/dev/null", Baud: 0}); err == nil {
		t.Error("Open with zero baud succeeded")
	}
}

func TestCloseIdempotent(t *testing.T) {
	p := &NativePort{}

	done := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { done <- p.Close() }()
	}
	for i := 0; i < 2; i++ {
		if err := <-done; err != nil {
			t.Errorf("Close = %v", err)
		}
	}
	if err := p.Close(); err != nil {
		t.Errorf("third Close = %v", err)
	}
}
