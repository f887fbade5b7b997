package debug

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"
)

func TestSetEnabledTogglesLogging(t *testing.T) {
	var buf bytes.Buffer
	prevEnabled, prevLogger := enabled, logger
	t.Cleanup(func() {
		enabled, logger = prevEnabled, prevLogger
	})
	logger = log.New(&buf, "", 0)

	enabled = false
	Log("hidden %d", 1)
	LogTiming("hidden op", time.Millisecond)
	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote %q", buf.String())
	}
	if Enabled() {
		t.Error("Enabled() should report false")
	}

	SetEnabled(true)
	if !Enabled() {
		t.Error("Enabled() should report true after SetEnabled")
	}
	Log("visible %d", 2)
	LogTiming("refresh", 5*time.Millisecond)

	out := buf.String()
	if !strings.Contains(out, "visible 2") {
		t.Errorf("output %q missing Log line", out)
	}
	if !strings.Contains(out, "refresh took 5ms") {
		t.Errorf("output %q missing timing line", out)
	}
}

func TestSetEnabledInitializesLogger(t *testing.T) {
	prevEnabled, prevLogger := enabled, logger
	t.Cleanup(func() {
		enabled, logger = prevEnabled, prevLogger
	})

	logger = nil
	enabled = false
	SetEnabled(true)
	if logger == nil {
		t.Fatal("SetEnabled(true) must initialize the logger")
	}
}
