package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/thorny/internal/analysis"
	"github.com/san-kum/thorny/internal/automation"
	"github.com/san-kum/thorny/internal/config"
	"github.com/san-kum/thorny/internal/experiment"
	"github.com/san-kum/thorny/internal/export"
	"github.com/san-kum/thorny/internal/gui"
	"github.com/san-kum/thorny/internal/metrics"
	"github.com/san-kum/thorny/internal/orbit"
	"github.com/san-kum/thorny/internal/sim"
	"github.com/san-kum/thorny/internal/storage"
	"github.com/san-kum/thorny/internal/tui"
	"github.com/san-kum/thorny/internal/viz"
)

var (
	configFile string
	preset     string
	dataDir    string
	seed       int64
	numBodies  int
	frames     int
	frameRate  int
	trail      int
	theme      string
	debug      bool
	watch      bool
	snapOut    string
	pathOut    string
	snapFrame  int
	jsonOut    string
	sweepRuns  int
	sweepN     []int
	metricName string
	minimize   bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logFile *os.File

	rootCmd := &cobra.Command{
		Use:   "thorny",
		Short: "orbiting bodies passing a red token on contact",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logFile = setupLogging(debug)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logFile != nil {
				logFile.Close()
			}
		},
		RunE: runLive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	pf.Int64Var(&seed, "seed", orbit.DefaultSeed, "random seed for angular velocities")
	pf.IntVar(&numBodies, "bodies", orbit.DefaultCount, "number of orbiting bodies")
	pf.IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	pf.IntVar(&trail, "trail", config.DefaultTrail, "trail length in frames")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "terminal color theme")
	pf.BoolVar(&debug, "debug", false, "write debug log to logs/thorny.log")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and save the run",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	runCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "frames to simulate")
	runCmd.Flags().BoolVar(&watch, "watch", false, "draw frames in the terminal while running")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch the simulation in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "watch the simulation in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			s, err := newSimulation(cfg)
			if err != nil {
				return err
			}
			gui.Run(s, cfg.FPS, cfg.Trail)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot token holder and cooldown size",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "spectrum and tenure analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render one frame as SVG",
		Args:  cobra.NoArgs,
		RunE:  snapshot,
	}
	snapshotCmd.Flags().IntVar(&snapFrame, "frame", 0, "frame to render")
	snapshotCmd.Flags().StringVar(&snapOut, "out", "frame.svg", "output SVG path")
	snapshotCmd.Flags().StringVar(&pathOut, "path", "", "also write the token's path up to --frame to this SVG")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&jsonOut, "out", "", "output path (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSEED\tBODIES\tFRAMES\tFPS\tTHEME")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\n", name, p.Seed, p.Bodies, p.Frames, p.FPS, p.Theme)
			}
			w.Flush()
		},
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "compare metrics across seeds and body counts",
		Args:  cobra.NoArgs,
		RunE:  sweep,
	}
	sweepCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "frames per run")
	sweepCmd.Flags().IntVar(&sweepRuns, "runs", 8, "seeds per body count, counting up from --seed")
	sweepCmd.Flags().IntSliceVar(&sweepN, "counts", nil, "body counts to sweep (default --bodies)")
	sweepCmd.Flags().StringVar(&metricName, "metric", "transfers", "metric to rank by")
	sweepCmd.Flags().BoolVar(&minimize, "min", false, "rank lowest first")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted list of runs from YAML",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	rootCmd.AddCommand(runCmd, liveCmd, windowCmd, listCmd, plotCmd, analyzeCmd, snapshotCmd, exportJSONCmd, presetsCmd, sweepCmd, scenarioCmd)
	return rootCmd
}

// resolveConfig layers defaults, then a preset, then a config file, then
// flags given explicitly on the command line.
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

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("bodies") {
		cfg.Bodies = numBodies
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("trail") {
		cfg.Trail = trail
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("frames") {
		cfg.Frames = frames
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newSimulation(cfg *config.Config) (*sim.Simulation, error) {
	s, err := sim.New(cfg.Bodies, cfg.Seed)
	if err != nil {
		return nil, err
	}
	if debug {
		s.AddObserver(transferLogger{})
	}
	return s, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}

	s, err := newSimulation(cfg)
	if err != nil {
		return err
	}
	for _, m := range metrics.Default() {
		s.AddMetric(m)
	}

	if watch {
		r := tui.NewLiveRenderer(cfg.FPS)
		r.Start()
		defer r.Stop()
		s.AddObserver(r)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running %d bodies (seed %d) for %d frames...\n", cfg.Bodies, cfg.Seed, cfg.Frames)
	start := time.Now()

	result, err := s.Run(ctx, cfg.Frames)
	if err != nil {
		if !errors.Is(err, context.Canceled) || result == nil || result.StepsTaken == 0 {
			return fmt.Errorf("run: %w", err)
		}
		fmt.Printf("interrupted after %d frames, saving partial run\n", result.StepsTaken)
	}
	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Seed, cfg.Bodies, result)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", result.StepsTaken)
	fmt.Printf("final holder: %d\n", s.ActiveIndex())
	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, result.Metrics[name])
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s, err := newSimulation(cfg)
	if err != nil {
		return err
	}
	return viz.Run(s, cfg.FPS, cfg.Trail, cfg.Theme)
}

func openStore(cmd *cobra.Command) (*storage.Store, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	return storage.New(cfg.DataDir), nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSEED\tBODIES\tFRAMES\tTRANSFERS\tTIMESTAMP")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.0f\t%s\n",
			r.ID, r.Seed, r.Bodies, r.Frames, r.Metrics["transfers"], r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func loadRun(cmd *cobra.Command, runID string) (*storage.RunMetadata, []sim.Record, error) {
	st, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	records, err := st.LoadRecords(runID)
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("run %s has no frames", runID)
	}
	return meta, records, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, records, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}

	active := make([]float64, len(records))
	cooldown := make([]float64, len(records))
	for i, r := range records {
		active[i] = float64(r.Active)
		cooldown[i] = float64(r.Cooldown)
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("bodies: %d  seed: %d\n", meta.Bodies, meta.Seed)
	fmt.Printf("frames: %d\n\n", len(records))

	fmt.Println(asciigraph.Plot(active,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("token holder"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(cooldown,
		asciigraph.Height(6),
		asciigraph.Width(80),
		asciigraph.Caption("cooldown size"),
	))
	fmt.Println()
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, records, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}
	series := (&sim.Result{Records: records}).ActiveSeries()

	fmt.Printf("analysis: %s\n", meta.ID)
	fmt.Printf("bodies: %d  frames: %d\n\n", meta.Bodies, len(records))

	if ps := analysis.PowerSpectrum(series); len(ps) > 1 {
		fmt.Println(asciigraph.Plot(ps[1:],
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum (token holder)"),
		))
		fmt.Println()
	}
	if period, ok := analysis.DominantPeriod(series); ok {
		fmt.Printf("dominant period: %.1f frames\n", period)
	} else {
		fmt.Println("dominant period: none")
	}

	tenures := analysis.Tenures(records)
	fmt.Printf("holdings: %d\n", len(tenures))
	if best, ok := analysis.Longest(tenures); ok {
		fmt.Printf("longest holding: body %d for %d frames from frame %d\n", best.Body, best.Frames, best.Start)
	}

	visits := analysis.Visits(records, meta.Bodies)
	fmt.Println("\nframes held per body:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for body, n := range visits {
		if n > 0 {
			fmt.Fprintf(w, "  %d\t%d\t%.1f%%\n", body, n, 100*float64(n)/float64(len(records)))
		}
	}
	return w.Flush()
}

func snapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if snapFrame < 0 {
		return fmt.Errorf("frame must be non-negative, got %d", snapFrame)
	}
	s, err := newSimulation(cfg)
	if err != nil {
		return err
	}

	// Frames 0..snapFrame are decided so the holder drawn matches the frame.
	records := make([]sim.Record, 0, snapFrame+1)
	for i := 0; i <= snapFrame; i++ {
		records = append(records, s.Step())
	}

	if err := os.WriteFile(snapOut, []byte(export.FrameSVG(s, cfg.Trail)), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote frame %d to %s\n", s.Shown(), snapOut)

	if pathOut != "" {
		svg := export.TokenPathSVG(export.TokenPath(s, records), "#ff3030")
		if svg == "" {
			return fmt.Errorf("token path needs at least 2 frames")
		}
		if err := os.WriteFile(pathOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote token path to %s\n", pathOut)
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, records, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}
	data := storage.NewExportData(meta.Seed, meta.Bodies, records, meta.Metrics)
	if jsonOut == "" {
		return storage.WriteJSON(os.Stdout, data)
	}
	if err := storage.ExportJSON(jsonOut, data); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", jsonOut)
	return nil
}

func sweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if sweepRuns < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", sweepRuns)
	}

	counts := sweepN
	if len(counts) == 0 {
		counts = []int{cfg.Bodies}
	}
	seeds := make([]int64, sweepRuns)
	for i := range seeds {
		seeds[i] = cfg.Seed + int64(i)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "BODIES\tRUNS\tMEAN %s\n", metricName)
	for _, n := range counts {
		out, err := experiment.NewEnsemble(n, cfg.Frames, sweepRuns, cfg.Seed).Run(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%d\t%.4f\n", n, len(out), experiment.Mean(out, metricName))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	grid := &experiment.Grid{Bodies: counts, Seeds: seeds, Frames: cfg.Frames}
	_, best, err := grid.Search(ctx, metricName, !minimize)
	if err != nil {
		return err
	}
	fmt.Printf("\nbest: seed %d with %d bodies, %s = %.4f\n", best.Seed, best.Bodies, metricName, best.Metrics[metricName])
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	st, err := openStore(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if sc.Name != "" {
		fmt.Printf("scenario: %s\n", sc.Name)
	}
	results, err := automation.RunScenario(ctx, sc, st, os.Stdout)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\nSTEP\tBODIES\tFRAMES\tTRANSFERS\tHOLDER\tRUN")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.0f\t%d\t%s\n",
			r.Name, r.Config.Bodies, r.Result.StepsTaken, r.Result.Metrics["transfers"], r.Holder, r.RunID)
	}
	return w.Flush()
}
