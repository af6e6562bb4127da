package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/san-kum/thorny/internal/sim"
)

func TestLiveRendererDrawsEveryStep(t *testing.T) {
	s, err := sim.New(28, 5)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	r := NewLiveRendererTo(&buf, 0)
	s.AddObserver(r)

	if _, err := s.Run(context.Background(), 3); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if n := strings.Count(out, clearScreen); n != 3 {
		t.Errorf("drew %d frames, want 3", n)
	}
	if !strings.Contains(out, "frame=2") {
		t.Error("last frame header missing")
	}
	if !strings.Contains(out, red+"@"+reset) {
		t.Error("active body not highlighted")
	}
}

func TestLiveRendererThrottles(t *testing.T) {
	s, err := sim.New(4, 5)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	r := NewLiveRendererTo(&buf, 1)
	s.AddObserver(r)

	if _, err := s.Run(context.Background(), 50); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), clearScreen); n != 1 {
		t.Errorf("drew %d frames at 1 fps, want 1", n)
	}
}

func TestLiveRendererCountsTransfers(t *testing.T) {
	r := NewLiveRendererTo(&bytes.Buffer{}, 1000000)
	s, err := sim.New(2, 5)
	if err != nil {
		t.Fatal(err)
	}
	r.OnStep(s, sim.Record{Frame: 1, Active: 1, Transferred: true})
	r.OnStep(s, sim.Record{Frame: 2, Active: 1})
	if r.transfers != 1 {
		t.Errorf("transfers = %d, want 1", r.transfers)
	}
}

func TestStartStop(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRendererTo(&buf, 30)
	r.Start()
	r.Stop()
	if buf.String() != hideCursor+showCursor {
		t.Errorf("Start/Stop wrote %q", buf.String())
	}
}
