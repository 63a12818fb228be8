package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	logger := New("test")

	tests := []struct {
		name     string
		level    Level
		emit     func()
		expected string
		visible  bool
	}{
		{"Debug hidden at Notice", Notice, func() { logger.Debugf("bvh %d", 1) }, "bvh 1", false},
		{"Notice shown at Notice", Notice, func() { logger.Noticef("frame %s", "done") }, "frame done", true},
		{"Info shown at Info", Info, func() { logger.Infof("band %d", 3) }, "band 3", true},
		{"Debug shown at Debug", Debug, func() { logger.Debug("tree built") }, "tree built", true},
		{"Info hidden at Warning", Warning, func() { logger.Info("quiet") }, "quiet", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			SetLevel(tt.level)
			tt.emit()

			out := buf.String()
			if strings.Contains(out, tt.expected) != tt.visible {
				t.Errorf("Expected visible=%v for %q, got output %q", tt.visible, tt.expected, out)
			}
			if tt.visible && !strings.Contains(out, " test ") {
				t.Errorf("Expected module column in output, got %q", out)
			}
		})
	}

	SetLevel(Notice)
	if IsEnabled(Info) {
		t.Error("Expected Info to be disabled at Notice")
	}
	if !IsEnabled(Warning) {
		t.Error("Expected Warning to be enabled at Notice")
	}
}
