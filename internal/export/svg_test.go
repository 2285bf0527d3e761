package export

import (
	"strings"
	"testing"

	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/debris"
	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/material"
	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/vec"
	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(4, 4)
	c.Set(0, 0)
	c.Set(3, 7)

	svg := CanvasToSVG(c, 4)
	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing xml header")
	}
	if strings.Count(svg, "<circle") != 2 {
		t.Errorf("expected 2 dots, got %d", strings.Count(svg, "<circle"))
	}

	if CanvasToSVG(nil, 4) != "" {
		t.Error("expected empty output for nil canvas")
	}
}

func TestFieldToSVG(t *testing.T) {
	bounds := debris.Bounds{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	snaps := []debris.Snapshot{
		{
			Pos:      vec.New(50, 50),
			Size:     10,
			Material: material.Soft,
			Trail:    []vec.Vec{vec.New(40, 40), vec.New(45, 45), vec.New(50, 50)},
		},
		{
			Pos:      vec.New(20, 80),
			Size:     6,
			Material: material.Rigid,
		},
	}

	svg := FieldToSVG(snaps, bounds, 400, 400)
	if strings.Count(svg, "<circle") != 2 {
		t.Errorf("expected 2 particles, got %d circles", strings.Count(svg, "<circle"))
	}
	if strings.Count(svg, "<polyline") != 1 {
		t.Errorf("expected 1 trail, got %d polylines", strings.Count(svg, "<polyline"))
	}
	// Soft material color from its RGB triple.
	if !strings.Contains(svg, "#64c896") {
		t.Error("expected soft material fill color")
	}
	if !strings.Contains(svg, "</svg>") {
		t.Error("unterminated document")
	}
}
