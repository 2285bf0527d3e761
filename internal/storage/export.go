package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/sim"
)

type ExportData struct {
	ID       string             `json:"id"`
	Material string             `json:"material"`
	Dt       float64            `json:"dt"`
	Duration float64            `json:"duration"`
	Force    float64            `json:"force"`
	Count    int                `json:"count"`
	Steps    int                `json:"steps"`
	Frames   []sim.Frame        `json:"frames"`
	Metrics  map[string]float64 `json:"metrics"`
}

func exportData(meta *RunMetadata, frames []sim.Frame) ExportData {
	return ExportData{
		ID:       meta.ID,
		Material: meta.Material,
		Dt:       meta.Dt,
		Duration: meta.Duration,
		Force:    meta.Force,
		Count:    meta.Count,
		Steps:    len(frames),
		Frames:   frames,
		Metrics:  meta.Metrics,
	}
}

func ExportJSON(w io.Writer, meta *RunMetadata, frames []sim.Frame) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(meta, frames))
}

func ExportJSONStdout(meta *RunMetadata, frames []sim.Frame) error {
	return ExportJSON(os.Stdout, meta, frames)
}
