package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/violationbit/internal/config"
	"github.com/san-kum/violationbit/internal/encoding"
	"github.com/san-kum/violationbit/internal/export"
	"github.com/san-kum/violationbit/internal/metrics"
	"github.com/san-kum/violationbit/internal/registry"
	"github.com/san-kum/violationbit/internal/scenario"
	"github.com/san-kum/violationbit/internal/visualizer"
	"github.com/san-kum/violationbit/internal/viz"
)

var (
	minVoltage int
	maxVoltage int
	data       string
	delay      time.Duration
	backend    string
	theme      string
	configFile string
	preset     string
	verbose    bool

	plotGraph bool
	outDir    string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "violationbit"})

// main registers commands and flags and executes the root command, which
// animates the encoded waveform. It exits with status 1 on any error,
// including invalid signal data.
func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "violationbit",
		Short: "Manchester II (BiPhase-L) violation bit simulation",
		Long: "Encodes a digital signal of 0, 1 and space characters with Manchester II\n" +
			"(BiPhase-L) and animates the resulting voltage waveform.",
		Example: `  violationbit -x -5 -n 5 -d "01011 10"
  violationbit --preset rs232 -d "1 0 1" --backend stream`,
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
		RunE: runAnimation,
	}

	pf := rootCmd.PersistentFlags()
	pf.IntVarP(&minVoltage, "min-voltage", "x", 0, "minimum voltage")
	pf.IntVarP(&maxVoltage, "max-voltage", "n", 0, "maximum voltage")
	pf.StringVarP(&data, "data", "d", "", "digital signal (0, 1 and space)")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset voltage levels")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.Flags().DurationVar(&delay, "delay", config.DefaultDelay, "pause between slots")
	rootCmd.Flags().StringVar(&backend, "backend", config.DefaultBackend, "display backend ("+strings.Join(registry.NewRegistry().ListBackends(), ", ")+")")
	rootCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "tui theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "print the Manchester II code of every slot",
		Args:  cobra.NoArgs,
		RunE:  encodeSignal,
	}
	encodeCmd.Flags().BoolVar(&plotGraph, "plot", false, "also print an ascii plot")

	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "render the full waveform to a file (" + strings.Join(export.Formats, " ") + ")",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSignal,
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file.yaml]",
		Short: "render every signal of a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().StringVar(&outDir, "out", ".", "output directory")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list voltage presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "inspect configuration",
	}
	dumpCmd := &cobra.Command{
		Use:   "dump [path]",
		Short: "write the resolved configuration as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  dumpConfig,
	}
	dumpCmd.Flags().DurationVar(&delay, "delay", config.DefaultDelay, "pause between slots")
	dumpCmd.Flags().StringVar(&backend, "backend", config.DefaultBackend, "display backend")
	dumpCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "tui theme")
	configCmd.AddCommand(dumpCmd)

	rootCmd.AddCommand(encodeCmd, exportCmd, scenarioCmd, presetsCmd, configCmd)
	return rootCmd
}

// resolveConfig layers preset, config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var layers []config.Overrides

	if preset != "" {
		o, err := config.PresetOverrides(preset)
		if err != nil {
			return config.Config{}, err
		}
		layers = append(layers, o)
	}

	if configFile != "" {
		o, err := config.Load(configFile)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		layers = append(layers, o)
	}

	var flags config.Overrides
	f := cmd.Flags()
	if f.Changed("min-voltage") {
		flags.MinVoltage = &minVoltage
	}
	if f.Changed("max-voltage") {
		flags.MaxVoltage = &maxVoltage
	}
	if f.Changed("data") {
		flags.Data = &data
	}
	if f.Lookup("delay") != nil && f.Changed("delay") {
		flags.Delay = &delay
	}
	if f.Lookup("backend") != nil && f.Changed("backend") {
		flags.Backend = &backend
	}
	if f.Lookup("theme") != nil && f.Changed("theme") {
		flags.Theme = &theme
	}
	layers = append(layers, flags)

	cfg, err := config.Resolve(layers...)
	if err != nil {
		return cfg, err
	}
	logger.Debug("resolved config", "min", cfg.MinVoltage, "max", cfg.MaxVoltage, "data", cfg.Data, "delay", cfg.Delay, "backend", cfg.Backend)
	return cfg, nil
}

// signalFigure resolves the config and encodes the signal. Usage is only
// printed for configuration problems, not for invalid data.
func signalFigure(cmd *cobra.Command) (config.Config, visualizer.Figure, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return cfg, visualizer.Figure{}, err
	}
	cmd.SilenceUsage = true

	fig, err := visualizer.New(cfg, visualizer.WithLogger(logger)).Figure()
	if err != nil {
		return cfg, fig, err
	}
	return cfg, fig, nil
}

func runAnimation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	b, err := registry.NewRegistry().GetBackend(cfg.Backend, registry.Options{
		Theme:  cfg.Theme,
		Out:    cmd.OutOrStdout(),
		Logger: logger,
	})
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return visualizer.New(cfg, visualizer.WithLogger(logger)).Show(ctx, b)
}

func encodeSignal(cmd *cobra.Command, args []string) error {
	_, fig, err := signalFigure(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SLOT\tCHAR\tCODE\tTRANSITION")
	chars := []rune(fig.Data)
	for i, s := range fig.Symbols {
		fmt.Fprintf(w, "%d\t%q\t%s\t%s\n", i, chars[i], s, s.Name())
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nframes: %d\n", fig.Frames())
	fmt.Fprintf(out, "codes: %s\n", strings.Join(encoding.Codes(fig.Symbols), " "))
	for _, m := range metrics.Default() {
		metrics.Collect(fig.Generator().All(), m)
		fmt.Fprintf(out, "%s: %g\n", m.Name(), m.Value())
	}

	if plotGraph {
		fmt.Fprintln(out)
		fmt.Fprint(out, viz.Graph(fig, fig.Trace(), 72, 12))
	}
	return nil
}

func exportSignal(cmd *cobra.Command, args []string) error {
	_, fig, err := signalFigure(cmd)
	if err != nil {
		return err
	}
	path := args[0]

	start := time.Now()
	if err := export.Write(path, fig, fig.Trace()); err != nil {
		return err
	}
	logger.Debug("exported", "path", path, "elapsed", time.Since(start))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d slots)\n", path, fig.Slots())
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := scenario.LoadScenario(args[0])
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, runErr := scenario.Run(ctx, sc, outDir, logger)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIGNAL\tSLOTS\tOUTPUT")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%s\n", r.Name, r.Slots, r.Output)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return runErr
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tMIN V\tMAX V\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		p, _ := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", name, p.MinVoltage, p.MaxVoltage, p.Description)
	}
	return w.Flush()
}

func dumpConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return config.Write(cmd.OutOrStdout(), cfg)
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
	return nil
}
