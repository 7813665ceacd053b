package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/stepanmracek/lorenz/internal/config"
	"github.com/stepanmracek/lorenz/internal/gui"
	"github.com/stepanmracek/lorenz/internal/sim"
	"github.com/stepanmracek/lorenz/internal/viz"
)

var (
	sigma      float64
	beta       float64
	rho        float64
	dt         float64
	tailLength int
	steps      int
	format     string
	configFile string
	preset     string
	frameRate  int
)

// main registers the CLI commands and runs the root command, which opens
// the GUI when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "lorenz",
		Short: "interactive Lorenz attractor visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg)
			return nil
		},
	}
	addSimFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate headlessly and write the trail to stdout",
		RunE:  runTrajectory,
	}
	addSimFlags(runCmd)
	runCmd.Flags().IntVar(&steps, "steps", 1000, "integration steps")
	runCmd.Flags().StringVar(&format, "format", "csv", "output format (csv|json)")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "integrate headlessly and plot the coordinate traces",
		RunE:  plotTrajectory,
	}
	addSimFlags(plotCmd)
	plotCmd.Flags().IntVar(&steps, "steps", 1000, "integration steps")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch the attractor in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return viz.Run(newSimulator(cfg), frameRate)
		},
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named parameter presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Printf("%-10s sigma=%.2f beta=%.2f rho=%.2f\n",
					name, p.Simulation.Sigma, p.Simulation.Beta, p.Simulation.Rho)
			}
		},
	}

	rootCmd.AddCommand(runCmd, plotCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&sigma, "sigma", 10.0, "sigma coefficient")
	cmd.Flags().Float64Var(&beta, "beta", 8.0/3.0, "beta coefficient")
	cmd.Flags().Float64Var(&rho, "rho", 28.0, "rho coefficient")
	cmd.Flags().Float64Var(&dt, "dt", 0.005, "integration time step")
	cmd.Flags().IntVar(&tailLength, "tail", config.DefaultTailLength, "maximum trail length")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "named preset")
}

// resolveConfig layers preset, config file, and CLI flags: flags win only
// when explicitly changed.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("sigma") {
		cfg.Simulation.Sigma = sigma
	}
	if cmd.Flags().Changed("beta") {
		cfg.Simulation.Beta = beta
	}
	if cmd.Flags().Changed("rho") {
		cfg.Simulation.Rho = rho
	}
	if cmd.Flags().Changed("dt") {
		cfg.Simulation.Dt = dt
	}
	if cmd.Flags().Changed("tail") {
		cfg.Simulation.TailLength = tailLength
	}
	return cfg, nil
}

func newSimulator(cfg *config.Config) *sim.Simulator {
	return sim.New(sim.DefaultStart, sim.Settings{
		Sigma:         cfg.Simulation.Sigma,
		Beta:          cfg.Simulation.Beta,
		Rho:           cfg.Simulation.Rho,
		Dt:            cfg.Simulation.Dt,
		TailLength:    cfg.Simulation.TailLength,
		StepsPerFrame: cfg.Simulation.StepsPerFrame,
	})
}

func integrate(cmd *cobra.Command) (*sim.Simulator, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	s := newSimulator(cfg)
	s.Settings.StepsPerFrame = 1
	if steps >= s.Settings.TailLength {
		s.Settings.TailLength = steps + 1
	}
	for i := 0; i < steps; i++ {
		s.Step()
	}
	return s, nil
}

func runTrajectory(cmd *cobra.Command, args []string) error {
	s, err := integrate(cmd)
	if err != nil {
		return err
	}

	switch format {
	case "csv":
		w := csv.NewWriter(os.Stdout)
		defer w.Flush()
		if err := w.Write([]string{"step", "x", "y", "z"}); err != nil {
			return err
		}
		for i, p := range s.Trail() {
			row := []string{
				strconv.Itoa(i),
				strconv.FormatFloat(p.X, 'f', 6, 64),
				strconv.FormatFloat(p.Y, 'f', 6, 64),
				strconv.FormatFloat(p.Z, 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil

	case "json":
		out := struct {
			Sigma float64     `json:"sigma"`
			Beta  float64     `json:"beta"`
			Rho   float64     `json:"rho"`
			Dt    float64     `json:"dt"`
			Trail interface{} `json:"trail"`
		}{s.Settings.Sigma, s.Settings.Beta, s.Settings.Rho, s.Settings.Dt, s.Trail()}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)

	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func plotTrajectory(cmd *cobra.Command, args []string) error {
	s, err := integrate(cmd)
	if err != nil {
		return err
	}

	trail := s.Trail()
	coords := []struct {
		name string
		get  func(i int) float64
	}{
		{"x vs step", func(i int) float64 { return trail[i].X }},
		{"y vs step", func(i int) float64 { return trail[i].Y }},
		{"z vs step", func(i int) float64 { return trail[i].Z }},
	}

	for _, c := range coords {
		data := make([]float64, len(trail))
		for i := range trail {
			data[i] = c.get(i)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(c.name),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}
