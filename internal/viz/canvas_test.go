package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetAndIsSet(t *testing.T) {
	c := NewCanvas(4, 2)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{7, 7, true},
		{-1, 0, false},
		{8, 0, false},
		{0, 8, false},
	}
	for _, tt := range tests {
		c.Set(tt.x, tt.y)
		if got := c.IsSet(tt.x, tt.y); got != tt.want {
			t.Errorf("IsSet(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if c.IsSet(1, 0) {
		t.Error("neighbouring dot should stay unset")
	}
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("cell (0,0) = %U, want U+2801", c.Grid[0][0])
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(3, 3)
	c.FillCircle(3, 6, 2)
	c.Clear()
	for y := 0; y < 12; y++ {
		for x := 0; x < 6; x++ {
			if c.IsSet(x, y) {
				t.Fatalf("dot (%d, %d) still set after Clear", x, y)
			}
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(0, 0, 9, 9)
	for i := 0; i <= 9; i++ {
		if !c.IsSet(i, i) {
			t.Errorf("diagonal dot (%d, %d) not set", i, i)
		}
	}
}

func TestCanvasCircles(t *testing.T) {
	c := NewCanvas(20, 10)
	c.DrawCircle(20, 20, 8)
	for _, p := range [][2]int{{28, 20}, {12, 20}, {20, 28}, {20, 12}} {
		if !c.IsSet(p[0], p[1]) {
			t.Errorf("outline dot %v not set", p)
		}
	}
	if c.IsSet(20, 20) {
		t.Error("outline should leave the centre empty")
	}

	c.Clear()
	c.FillCircle(20, 20, 3)
	if !c.IsSet(20, 20) || !c.IsSet(22, 20) {
		t.Error("filled circle missing interior dots")
	}
	if c.IsSet(24, 20) {
		t.Error("filled circle spills past its radius")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	out := c.String()
	if strings.Count(out, "\n") != 2 {
		t.Errorf("String has %d rows, want 2", strings.Count(out, "\n"))
	}
	if !strings.Contains(out, "⠀") {
		t.Error("empty canvas should render blank braille")
	}
}

func TestSparklineChart(t *testing.T) {
	if got := SparklineChart(nil, 5); got != "─────" {
		t.Errorf("empty sparkline = %q", got)
	}
	got := []rune(SparklineChart([]float64{0, 1, 2, 3, 4, 5, 6, 7}, 8))
	if got[0] != '▁' || got[7] != '█' {
		t.Errorf("ramp sparkline = %q", string(got))
	}
	if n := len([]rune(SparklineChart([]float64{1, 2, 3, 4, 5}, 3))); n != 3 {
		t.Errorf("sparkline width = %d, want 3", n)
	}
}

func TestNextThemeCycles(t *testing.T) {
	th := GetTheme("minimal")
	seen := map[string]bool{}
	for range Themes {
		seen[th.Name] = true
		th = NextTheme(th)
	}
	if len(seen) != len(Themes) {
		t.Errorf("cycled through %d themes, want %d", len(seen), len(Themes))
	}
	if th.Name != "minimal" {
		t.Errorf("cycle ended on %q, want minimal", th.Name)
	}
	if GetTheme("nope").Name != "minimal" {
		t.Error("unknown theme should fall back to minimal")
	}
}
