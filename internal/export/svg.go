package export

import (
	"fmt"
	"strings"

	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/debris"
	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/material"
	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/viz"
)

// CanvasToSVG converts a Braille canvas to SVG format
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	// Braille dot-to-bit mapping
	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func fill(mt material.Type) string {
	c := material.ForType(mt).Color
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// FieldToSVG renders a frozen particle field: one circle per particle
// colored by material, with its trail as a faded polyline. World
// coordinates are mapped onto a width x height viewport.
func FieldToSVG(snaps []debris.Snapshot, bounds debris.Bounds, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	sx := float64(width) / bounds.Width()
	sy := float64(height) / bounds.Height()

	// Ground line.
	sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%d" x2="%d" y2="%d" stroke="#444444" stroke-width="2"/>
`, height-1, width, height-1))

	for _, s := range snaps {
		color := fill(s.Material)

		if len(s.Trail) > 1 {
			sb.WriteString(fmt.Sprintf(`<polyline fill="none" stroke="%s" stroke-width="1" stroke-opacity="0.35" points="`, color))
			for i, tp := range s.Trail {
				if i > 0 {
					sb.WriteString(" ")
				}
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", (tp.X-bounds.MinX)*sx, (tp.Y-bounds.MinY)*sy))
			}
			sb.WriteString("\"/>\n")
		}

		cx := (s.Pos.X - bounds.MinX) * sx
		cy := (s.Pos.Y - bounds.MinY) * sy
		r := s.Size / 2 * sx
		if r < 1 {
			r = 1
		}
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, r, color))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
