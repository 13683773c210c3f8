package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/gravlab/internal/analysis"
	"github.com/san-kum/gravlab/internal/config"
	"github.com/san-kum/gravlab/internal/export"
	"github.com/san-kum/gravlab/internal/metrics"
	"github.com/san-kum/gravlab/internal/physics"
	"github.com/san-kum/gravlab/internal/sim"
	"github.com/san-kum/gravlab/internal/tui"
)

const secondsPerDay = 86400.0

var (
	configFile string
	dt         float64
	steps      int
	trailLen   int
	workers    int
	fps        int
	bodyIndex  int
	csvOut     string
	jsonOut    string
	svgOut     string
	svgWidth   int
	svgHeight  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravlab",
		Short: "interactive newtonian n-body laboratory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, nil)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run headless and report conservation metrics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "run with live terminal visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().IntVar(&fps, "fps", 30, "frame rate")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Printf("  %s (%d bodies)\n", name, len(config.GetPreset(name)))
			}
			return nil
		},
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [preset]",
		Short: "estimate the dominant orbital period of one body",
		Args:  cobra.MaximumNArgs(1),
		RunE:  analyzeRun,
	}
	addSimFlags(analyzeCmd)
	analyzeCmd.Flags().IntVar(&bodyIndex, "body", 0, "body index to analyze")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [preset]",
		Short: "run and export trails to CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportCSV,
	}
	addSimFlags(exportCSVCmd)
	exportCSVCmd.Flags().StringVar(&csvOut, "out", "trails.csv", "output file")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [preset]",
		Short: "run and export snapshot plus trails to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportJSON,
	}
	addSimFlags(exportJSONCmd)
	exportJSONCmd.Flags().StringVar(&jsonOut, "out", "trails.json", "output file")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [preset]",
		Short: "run and render trails to SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	addSimFlags(exportSVGCmd)
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "trails.svg", "output file")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 800, "image height")

	rootCmd.AddCommand(runCmd, liveCmd, presetsCmd, analyzeCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep in seconds")
	cmd.Flags().IntVar(&steps, "steps", 365, "number of steps")
	cmd.Flags().IntVar(&trailLen, "trail", config.DefaultTrailLength, "trail length per body")
	cmd.Flags().IntVar(&workers, "workers", 1, "force pass workers (0 = all cpus)")
}

func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = c
	}
	if len(args) > 0 {
		cfg.Preset = args[0]
		cfg.Bodies = nil
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("trail") {
		cfg.TrailLength = trailLen
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	return cfg, nil
}

func buildSim(cmd *cobra.Command, args []string) (*sim.Simulation, *config.Config, error) {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return nil, nil, err
	}
	s := sim.New()
	if err := cfg.Apply(s); err != nil {
		return nil, nil, err
	}
	return s, cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	s, cfg, err := buildSim(cmd, args)
	if err != nil {
		return err
	}

	energyDrift := metrics.NewEnergyDrift()
	momentumDrift := metrics.NewMomentumDrift()
	history := make([]float64, 0, steps)

	for i := 0; i < steps; i++ {
		snap := s.Snapshot()
		energyDrift.Observe(snap)
		momentumDrift.Observe(snap)
		history = append(history, energyDrift.Value())
		if err := s.Step(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "preset\t%s\n", cfg.Preset)
	fmt.Fprintf(w, "bodies\t%d\n", s.Len())
	fmt.Fprintf(w, "steps\t%d\n", s.Steps())
	fmt.Fprintf(w, "sim time\t%.1f days\n", s.Time()/secondsPerDay)
	fmt.Fprintf(w, "energy drift\t%.3e\n", energyDrift.Value())
	fmt.Fprintf(w, "momentum drift\t%.3e kg*m/s\n", momentumDrift.Value())
	w.Flush()

	if len(history) >= 2 {
		fmt.Println("\nenergy drift over time:")
		fmt.Println(asciigraph.Plot(history, asciigraph.Height(8), asciigraph.Width(60)))
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	s, cfg, err := buildSim(cmd, args)
	if err != nil {
		return err
	}
	specs, err := cfg.BodySpecs()
	if err != nil {
		return err
	}
	return tui.Run(s, specs, cfg.Preset, fps)
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	s, cfg, err := buildSim(cmd, args)
	if err != nil {
		return err
	}
	if bodyIndex < 0 || bodyIndex >= s.Len() {
		return fmt.Errorf("body index %d out of range (%d bodies)", bodyIndex, s.Len())
	}

	signal := make([]float64, 0, steps)
	for i := 0; i < steps; i++ {
		signal = append(signal, s.Snapshot()[bodyIndex].Pos.X)
		if err := s.Step(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}

	period := analysis.EstimatePeriod(signal, cfg.Dt)
	if period == 0 {
		fmt.Println("no dominant period found; try more steps")
		return nil
	}
	fmt.Printf("dominant period of body %d: %.4g s (%.2f days)\n",
		bodyIndex, period, period/secondsPerDay)
	return nil
}

func runToState(cmd *cobra.Command, args []string) ([]sim.BodyState, [][]physics.Vec2, error) {
	s, _, err := buildSim(cmd, args)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < steps; i++ {
		if err := s.Step(); err != nil {
			return nil, nil, fmt.Errorf("step %d: %w", i, err)
		}
	}
	return s.Snapshot(), s.Trails(), nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	snap, trails, err := runToState(cmd, args)
	if err != nil {
		return err
	}
	f, err := os.Create(csvOut)
	if err != nil {
		return err
	}
	defer f.Close()
	return export.WriteCSV(f, snap, trails)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	snap, trails, err := runToState(cmd, args)
	if err != nil {
		return err
	}
	f, err := os.Create(jsonOut)
	if err != nil {
		return err
	}
	defer f.Close()
	return export.WriteJSON(f, snap, trails)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	snap, trails, err := runToState(cmd, args)
	if err != nil {
		return err
	}
	svg := export.TrailsToSVG(snap, trails, svgWidth, svgHeight)
	return os.WriteFile(svgOut, []byte(svg), 0644)
}
