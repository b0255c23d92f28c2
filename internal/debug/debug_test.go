package debug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/address-parsing/internal/logger"
)

func TestDebugHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger.SetupWriter(&buf, "info", "text")
	defer logger.Setup()

	DebugOutput(false, "hidden %d", 1)
	DebugAttrs(false, "hidden attrs")
	DebugTiming(false, "hidden op")()
	if buf.Len() != 0 {
		t.Fatalf("disabled helpers wrote output: %s", buf.String())
	}

	DebugHeader(true)
	DebugOutput(true, "cleaned %q", "上海")
	DebugAttrs(true, "parse stats", "items", 3)
	DebugTiming(true, "build")()
	DebugFooter(true)

	out := buf.String()
	for _, want := range []string{"DEBUG START", `cleaned \"上海\"`, "items=3", "Completed: build", "DEBUG END"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}
