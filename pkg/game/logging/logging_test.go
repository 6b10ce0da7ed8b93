package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestSetup(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(log.InfoLevel)
		log.SetFormatter(&log.TextFormatter{})
	})

	var buf bytes.Buffer
	if err := Setup("debug", "json", &buf); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	log.WithField("folders", 2).Debug("picked up")

	out := buf.String()
	if !strings.Contains(out, `"folders":2`) || !strings.Contains(out, `"level":"debug"`) {
		t.Errorf("json output = %q, want folders field at debug level", out)
	}
}

func TestSetup_Errors(t *testing.T) {
	if err := Setup("loud", "text", nil); err == nil {
		t.Error("Setup(loud) error = nil, want error")
	}
	if err := Setup("info", "xml", nil); err == nil {
		t.Error("Setup(format xml) error = nil, want error")
	}
}
