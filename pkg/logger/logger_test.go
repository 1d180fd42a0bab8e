package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestGetWithoutInit(t *testing.T) {
	saved := Log
	Log = nil
	defer func() { Log = saved }()

	if Get() == nil {
		t.Fatal("Get() = nil before Init")
	}
	Get().Info("dropped") // must not panic
}

func TestInitHonoursLevel(t *testing.T) {
	saved := Log
	defer func() { Log = saved }()

	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	Init()
	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", Log.GetLevel())
	}

	var buf bytes.Buffer
	SetOutput(&buf)
	Get().WithField("zone", "lab").Debug("entered")
	if !strings.Contains(buf.String(), `"zone":"lab"`) {
		t.Errorf("json output = %q, want zone field", buf.String())
	}
}
