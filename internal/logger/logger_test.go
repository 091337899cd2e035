package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("warn")
	l.SetOutput(&buf)
	l.EnableColors(false)

	l.Debug("quiet")
	l.Info("quiet")
	l.Warn("loud")
	l.Error("louder")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Error("messages below the level were logged")
	}
	if !strings.Contains(out, "loud") || !strings.Contains(out, "louder") {
		t.Error("messages at or above the level were dropped")
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("error")
	l.SetOutput(&buf)
	l.EnableColors(false)

	l.Info("first")
	l.SetLevel("debug")
	l.Info("second")

	out := buf.String()
	if strings.Contains(out, "first") {
		t.Error("info logged at error level")
	}
	if !strings.Contains(out, "second") {
		t.Error("info dropped after lowering the level")
	}
}

func TestUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("verbose")
	l.SetOutput(&buf)
	l.EnableColors(false)

	l.Debug("hidden")
	l.Infof("shown %d", 1)

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown 1") {
		t.Errorf("unknown level did not behave as info: %q", out)
	}
}

func TestPrefixCarriesLevelTag(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("debug")
	l.SetOutput(&buf)
	l.EnableColors(false)

	l.Warnf("disk %s", "full")
	if !strings.Contains(buf.String(), "WARN") {
		t.Errorf("missing level tag: %q", buf.String())
	}
}
