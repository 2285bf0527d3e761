package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/config"
	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/export"
	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/sim"
	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/storage"
	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/viz"
)

var (
	dataDir      string
	configFile   string
	preset       string
	dt           float64
	duration     float64
	seed         int64
	force        float64
	count        int
	materialName string
	maxParticles int
	svgWidth     int
	svgHeight    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "debris",
		Short: "2d debris explosion simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the live view when no command given
			return runLive(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".debris", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and store the result",
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive explosion sandbox",
		RunE:  runLive,
	}
	addSimFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run's time series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run series to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "simulate and render the final field as SVG on stdout",
		RunE:  exportSVG,
	}
	addSimFlags(exportSVGCmd)
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 500, "image height")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark across force and count grid",
		RunE:  benchGrid,
	}
	addSimFlags(benchCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().Float64Var(&force, "force", config.DefaultForce, "blast force")
	cmd.Flags().IntVar(&count, "count", config.DefaultCount, "particles per blast")
	cmd.Flags().StringVar(&materialName, "material", "semi_rigid", "debris material")
	cmd.Flags().IntVar(&maxParticles, "max-particles", config.DefaultMaxParticles, "population cap")
}

// buildConfig resolves preset, config file, then CLI flag overrides,
// in that order.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		copied := *p
		cfg = &copied
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.Simulation.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Simulation.Duration = duration
	}
	if cmd.Flags().Changed("seed") {
		cfg.Simulation.Seed = seed
	}
	if cmd.Flags().Changed("force") {
		cfg.Explosion.Force = force
	}
	if cmd.Flags().Changed("count") {
		cfg.Explosion.Count = count
	}
	if cmd.Flags().Changed("material") {
		cfg.Explosion.Material = materialName
	}
	if cmd.Flags().Changed("max-particles") {
		cfg.Simulation.MaxParticles = maxParticles
	}

	if cfg.Simulation.Seed == 0 {
		cfg.Simulation.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runner, err := sim.NewRunner(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("running %s explosion (force %.0f, %d particles)...\n",
		cfg.Explosion.Material, cfg.Explosion.Force, cfg.Explosion.Count)

	result, err := runner.Run(context.Background())
	if err != nil {
		return err
	}

	runID, err := st.Save(result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", result.Elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	m, err := viz.NewModel(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMATERIAL\tTIME\tFORCE\tCOUNT\tSTEPS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0f\t%d\t%d\n",
			run.ID,
			run.Material,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Force,
			run.Count,
			run.Steps,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("material: %s\n", meta.Material)
	fmt.Printf("samples: %d\n\n", len(frames))

	series := []struct {
		caption string
		pick    func(f sim.Frame) float64
	}{
		{"population", func(f sim.Frame) float64 { return float64(f.Count) }},
		{"kinetic energy", func(f sim.Frame) float64 { return f.KineticEnergy }},
		{"max stress", func(f sim.Frame) float64 { return f.MaxStress }},
		{"mean speed", func(f sim.Frame) float64 { return f.MeanSpeed }},
	}

	for _, s := range series {
		data := make([]float64, len(frames))
		for i, f := range frames {
			data[i] = s.pick(f)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption+" vs time"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	frames, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	if len(frames) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "count", "kinetic_energy", "max_stress", "mean_speed"}); err != nil {
		return err
	}

	for _, f := range frames {
		row := []string{
			strconv.FormatFloat(f.Time, 'f', 6, 64),
			strconv.Itoa(f.Count),
			strconv.FormatFloat(f.KineticEnergy, 'f', 6, 64),
			strconv.FormatFloat(f.MaxStress, 'f', 6, 64),
			strconv.FormatFloat(f.MeanSpeed, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, frames)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	runner, err := sim.NewRunner(cfg)
	if err != nil {
		return err
	}
	snaps, err := runner.RunToField(context.Background())
	if err != nil {
		return err
	}

	svg := export.FieldToSVG(snaps, cfg.Environment().Bounds, svgWidth, svgHeight)
	fmt.Println(svg)
	return nil
}

func benchGrid(cmd *cobra.Command, args []string) error {
	base, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	forces := []float64{200, 500, 1000}
	counts := []int{10, 30, 50}

	fmt.Printf("benchmarking %s debris\n\n", base.Explosion.Material)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FORCE\tCOUNT\tSTEPS\tTIME\tSTEPS/SEC")

	for _, f := range forces {
		for _, c := range counts {
			cfg := *base
			cfg.Explosion.Force = f
			cfg.Explosion.Count = c

			runner, err := sim.NewRunner(&cfg)
			if err != nil {
				return err
			}

			result, err := runner.Run(context.Background())
			if err != nil {
				return err
			}

			stepsPerSec := float64(result.StepsTaken) / result.Elapsed.Seconds()
			fmt.Fprintf(w, "%.0f\t%d\t%d\t%v\t%.0f\n",
				f, c, result.StepsTaken, result.Elapsed, stepsPerSec)
		}
	}

	return w.Flush()
}
