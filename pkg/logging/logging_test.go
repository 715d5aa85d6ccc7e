package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIModeWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelDebug, &buf)

	Info("Nav", "moved to %s", "shop")
	Error("Store", errors.New("disk full"), "save failed")

	out := buf.String()
	assert.Contains(t, out, "moved to shop")
	assert.Contains(t, out, "subsystem=Nav")
	assert.Contains(t, out, "disk full")
}

func TestCLIModeFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelWarn, &buf)

	Debug("Nav", "noise")
	Info("Nav", "also noise")
	Warn("Nav", "kept")

	out := buf.String()
	assert.NotContains(t, out, "noise")
	assert.Contains(t, out, "kept")
}

func TestTUIModeDeliversEntries(t *testing.T) {
	ch := InitForTUI(LevelInfo)
	defer CloseChannel()

	Warn("Gesture", "snap back at %d", 42)

	select {
	case entry := <-ch:
		assert.Equal(t, LevelWarn, entry.Level)
		assert.Equal(t, "Gesture", entry.Subsystem)
		assert.Equal(t, "snap back at 42", entry.Message)
	default:
		t.Fatal("expected an entry on the TUI channel")
	}
}

func TestTUIModeDropsWhenFull(t *testing.T) {
	ch := InitForTUI(LevelInfo)
	defer CloseChannel()

	for i := 0; i < channelBuffer+10; i++ {
		Info("Flood", "entry %d", i)
	}
	// Channel holds exactly its buffer; overflow was dropped, not blocked.
	require.Equal(t, channelBuffer, len(ch))
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", Level(99).String())
}
