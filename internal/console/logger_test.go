package console

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLogger_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{Verbose: true, NoColor: true, Writer: &buf})

	logger.Debug("parsed plugin", "name", "javax.xml.rpc", "version", "1.1.0")

	out := buf.String()
	for _, want := range []string{"eclean", "parsed plugin", "javax.xml.rpc", "1.1.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestNewLogger_QuietDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{Writer: &buf, NoColor: true})

	logger.Debug("hidden")
	logger.Info("hidden too")
	if buf.Len() != 0 {
		t.Errorf("expected no output without verbose, got %q", buf.String())
	}

	logger.Warn("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("expected warning in output, got %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("nothing happens")
}
