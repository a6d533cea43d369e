package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/sortsim/internal/array"
	"github.com/san-kum/sortsim/internal/config"
	"github.com/san-kum/sortsim/internal/export"
	"github.com/san-kum/sortsim/internal/logger"
	"github.com/san-kum/sortsim/internal/playback"
	"github.com/san-kum/sortsim/internal/report"
	"github.com/san-kum/sortsim/internal/sorting"
	"github.com/san-kum/sortsim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	size       int
	maxValue   int
	seed       int64
	shape      string
	speed      int
	unit       time.Duration
	watch      bool
	logFile    string
	verbose    bool
	svgFile    string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sortsim [algorithm]",
		Short: "step-by-step sorting algorithm visualizer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path (yaml)")
	flags.StringVar(&preset, "preset", "", "use preset configuration")
	flags.IntVar(&size, "size", array.DefaultSize, "number of bars")
	flags.IntVar(&maxValue, "max", array.DefaultMax, "exclusive upper bound of values")
	flags.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	flags.StringVar(&shape, "shape", string(array.ShapeRandom), "seed shape (random, sorted, reversed, few-unique)")
	flags.IntVar(&speed, "speed", 100, "speed level 1-100")
	flags.DurationVar(&unit, "unit", time.Millisecond, "delay per missing speed level")
	flags.StringVar(&logFile, "log", "", "write logs to this file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log debug and info lines")

	liveCmd := &cobra.Command{
		Use:   "live [algorithm]",
		Short: "interactive terminal visualizer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	for _, c := range []*cobra.Command{rootCmd, liveCmd} {
		c.Flags().BoolVar(&watch, "watch", false, "reload --config when it changes")
	}

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "sort headless and print the result",
		Args:  cobra.ExactArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().StringVar(&svgFile, "svg", "", "write the final frame as svg")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "run every algorithm on the same seed",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "plot the seed array",
		Args:  cobra.NoArgs,
		RunE:  plotSeed,
	}
	seedCmd.Flags().StringVar(&svgFile, "svg", "", "write the seed as svg")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for i, alg := range sorting.NewRegistry().List() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %d  %-10s %s\n", i+1, alg.Name, alg.Title)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "presets:")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(out, "  %-10s size=%d shape=%s speed=%d\n", name, p.Size, p.Shape, p.Speed)
			}
		},
	}

	rootCmd.AddCommand(liveCmd, runCmd, benchCmd, seedCmd, listCmd, presetsCmd)
	return rootCmd
}

// resolveConfig layers preset, then config file, then explicitly set flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("max") {
		cfg.Max = maxValue
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("shape") {
		cfg.Shape = shape
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("unit") {
		cfg.Unit = unit
	}
	if flags.Changed("log") {
		cfg.LogFile = logFile
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, fallback io.Writer) (*logger.Logger, func(), error) {
	if cfg.LogFile == "" {
		return logger.NewWithWriter("sortsim", fallback, func() bool { return cfg.Verbose }), func() {}, nil
	}
	f, err := tea.LogToFile(cfg.LogFile, "")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logger.NewWithWriter("sortsim", f, func() bool { return cfg.Verbose }), func() { f.Close() }, nil
}

func newPlayer(cfg *config.Config, log *logger.Logger) (*playback.Player, error) {
	st, err := cfg.NewState()
	if err != nil {
		return nil, err
	}
	return playback.New(st, cfg.NewGate(), sorting.NewRegistry(), log), nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Algorithm = args[0]
	}

	// stderr is behind the alt screen while the program runs
	log, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	p, err := newPlayer(cfg, log)
	if err != nil {
		return err
	}
	defer p.Stop()

	if cfg.Algorithm != "" {
		if err := p.Start(cfg.Algorithm); err != nil {
			return err
		}
	}

	m := viz.NewModel(p, cfg.Max, cfg.FPS, cfg.Theme, log)
	prog := tea.NewProgram(m, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if watch {
		if configFile == "" {
			return fmt.Errorf("--watch needs --config")
		}
		go func() {
			err := config.Watch(ctx, configFile,
				func(c *config.Config) { prog.Send(viz.ConfigMsg{Config: c}) },
				func(err error) { prog.Send(viz.ErrMsg{Err: err}) },
			)
			if err != nil {
				prog.Send(viz.ErrMsg{Err: err})
			}
		}()
	}

	_, err = prog.Run()
	return err
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	p, err := newPlayer(cfg, log)
	if err != nil {
		return err
	}
	defer p.Stop()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	res, err := p.Run(ctx, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d steps in %.3fs (session %s)\n",
		res.Algorithm, res.Steps, res.Elapsed.Seconds(), res.Session)
	fmt.Fprintln(out, report.ArrayChart(res.Values, "sorted", 80, 10))
	if svgFile != "" {
		return export.WriteBars(svgFile, res.Values, cfg.Max)
	}
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// bench measures the algorithms, not the throttle, unless asked
	if !cmd.Flags().Changed("unit") {
		cfg.Unit = 0
	}

	log, closeLog, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	st, err := cfg.NewState()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "benchmarking %d values (%s)\n\n", st.Len(), st.Shape())

	rows, err := report.Bench(ctx, st, sorting.NewRegistry(), cfg.Speed, cfg.Unit, log)
	if err != nil {
		return err
	}
	if err := report.WriteTable(out, rows); err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, report.StepsChart(rows, 60, 10))
	return nil
}

func plotSeed(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	st, err := cfg.NewState()
	if err != nil {
		return err
	}
	caption := fmt.Sprintf("seed: %d values in [0, %d), %s", st.Len(), st.Max(), st.Shape())
	fmt.Fprintln(cmd.OutOrStdout(), report.ArrayChart(st.Seed(), caption, 80, 15))
	if svgFile != "" {
		return export.WriteBars(svgFile, st.Seed(), st.Max())
	}
	return nil
}
