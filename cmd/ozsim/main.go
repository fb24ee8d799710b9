package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/ozsim/internal/config"
	"github.com/san-kum/ozsim/internal/fluid"
	"github.com/san-kum/ozsim/internal/solver"
	"github.com/san-kum/ozsim/internal/storage"
	"github.com/san-kum/ozsim/internal/thermo"
	"github.com/san-kum/ozsim/internal/viz"
)

var (
	dataDir     string
	configFile  string
	preset      string
	closureName string
	temperature float64
	density     float64
	mix         float64
	tolerance   float64
	maxIter     int
	nPoints     int
	dr          float64
	bjerrum     float64
	// Plot window and pair selection
	maxR     float64
	maxK     float64
	pairI    int
	pairJ    int
	// Sweep bounds
	sweepFrom  float64
	sweepTo    float64
	sweepSteps int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ozsim",
		Short: "integral-equation solver for simple liquids",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".ozsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [potential]",
		Short: "solve a system and store the result",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSolve,
	}
	addSolveFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live [potential]",
		Short: "solve with a live convergence monitor",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addSolveFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot stored correlation functions",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().Float64Var(&maxR, "max-r", 6.0, "largest radius to plot (0 = full grid)")
	plotCmd.Flags().Float64Var(&maxK, "max-k", 20.0, "largest wavenumber to plot (0 = full grid)")
	plotCmd.Flags().IntVar(&pairI, "i", 0, "first component of the pair")
	plotCmd.Flags().IntVar(&pairJ, "j", 0, "second component of the pair")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [potential]",
		Short: "solve across a density range",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	addSolveFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0.1, "first density")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 0.8, "last density")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 8, "number of densities")

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

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCmd, sweepCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSolveFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&closureName, "closure", solver.DefaultClosure, "closure relation")
	cmd.Flags().Float64Var(&temperature, "temp", config.DefaultTemperature, "temperature")
	cmd.Flags().Float64Var(&density, "density", 0.5, "number density (single component)")
	cmd.Flags().Float64Var(&mix, "mix", solver.DefaultMixParam, "picard mixing coefficient")
	cmd.Flags().Float64Var(&tolerance, "tol", solver.DefaultTolerance, "convergence tolerance")
	cmd.Flags().IntVar(&maxIter, "max-iter", solver.DefaultMaxIter, "iteration budget")
	cmd.Flags().IntVar(&nPoints, "points", config.DefaultNPoints, "radial grid points")
	cmd.Flags().Float64Var(&dr, "dr", config.DefaultDr, "radial grid spacing")
	cmd.Flags().Float64Var(&bjerrum, "bjerrum", 1.0, "bjerrum length (coulomb)")
}

// resolveConfig layers preset, config file, and explicit flags; flags the
// user set win over both.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
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

	if len(args) > 0 {
		cfg.Potential = args[0]
	}
	if cmd.Flags().Changed("closure") {
		cfg.Closure = closureName
	}
	if cmd.Flags().Changed("temp") {
		cfg.Temperature = temperature
	}
	if cmd.Flags().Changed("mix") {
		cfg.Solver.Mix = mix
	}
	if cmd.Flags().Changed("tol") {
		cfg.Solver.Tolerance = tolerance
	}
	if cmd.Flags().Changed("max-iter") {
		cfg.Solver.MaxIter = maxIter
	}
	if cmd.Flags().Changed("points") {
		cfg.NPoints = nPoints
	}
	if cmd.Flags().Changed("dr") {
		cfg.Dr = dr
	}
	if cmd.Flags().Changed("bjerrum") {
		cfg.Bjerrum = bjerrum
	}
	if cmd.Flags().Changed("density") {
		if len(cfg.Components) != 1 {
			return nil, fmt.Errorf("--density applies to single-component systems only")
		}
		cfg.Components[0].Density = density
	}

	return cfg, nil
}

func buildSystem(cfg *config.Config) (*solver.System, error) {
	grid, err := fluid.NewGrid(cfg.NPoints, cfg.Dr)
	if err != nil {
		return nil, err
	}

	sys := solver.NewSystem(grid, cfg.Temperature)

	table, err := cfg.BuildTable()
	if err != nil {
		return nil, err
	}
	if err := table.Apply(sys, grid); err != nil {
		return nil, err
	}
	return sys, nil
}

func solveOptions(cfg *config.Config) solver.Options {
	return solver.Options{
		Closure:       cfg.Closure,
		MixParam:      cfg.Solver.Mix,
		Tolerance:     cfg.Solver.Tolerance,
		MaxIterations: cfg.Solver.MaxIter,
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	sys, err := buildSystem(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("solving %s (%s closure, %d components)...\n",
		cfg.Potential, cfg.Closure, len(cfg.Components))

	rhos := cfg.Densities()
	result, err := sys.Solve(context.Background(), rhos, solveOptions(cfg))
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg, result)
	if err != nil {
		return err
	}

	fmt.Println(viz.Summary(result))
	fmt.Println(viz.PairCorrelation(result, 0, 0, 6.0))
	fmt.Println(viz.StructureFactor(result, 0, 0, 20.0))
	printThermo(result, rhos)
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func printThermo(result *solver.Result, rhos []float64) {
	chi := thermo.ExcessCompressibility(result.Grid, rhos, result.C)
	fmt.Printf("\nexcess compressibility: %.6f\n", chi.Excess)

	mu := thermo.ExcessChemicalPotential(result.Grid, rhos, result.H, result.E, result.C)
	act := thermo.ActivityCoefficients(mu)
	for i := range mu {
		fmt.Printf("component %d: beta*mu_ex = %.6f, activity = %.6f\n", i, mu[i], act[i])
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	sys, err := buildSystem(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := make(chan tea.Msg, 64)
	opts := solveOptions(cfg)
	opts.Observers = []solver.Observer{
		solver.ObserverFunc(func(iteration int, elapsed time.Duration, rms float64) {
			updates <- viz.IterationMsg{Iteration: iteration, Elapsed: elapsed, RMS: rms}
		}),
	}

	var (
		result   *solver.Result
		solveErr error
	)
	go func() {
		result, solveErr = sys.Solve(ctx, cfg.Densities(), opts)
		updates <- viz.DoneMsg{Err: solveErr}
		close(updates)
	}()

	title := fmt.Sprintf("%s / %s", cfg.Potential, cfg.Closure)
	p := tea.NewProgram(viz.NewMonitor(title, updates, cancel))
	if _, err := p.Run(); err != nil {
		return err
	}

	// Drain until the solver goroutine closes the channel; an early quit
	// cancels the context and the solve stops at its next iteration.
	for range updates {
	}

	if solveErr != nil {
		return solveErr
	}
	if result == nil {
		return errors.New("solve canceled")
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg, result)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
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
	fmt.Fprintln(w, "ID\tPOTENTIAL\tCLOSURE\tT\tRHO\tITER\tRMS\tCONVERGED")

	for _, run := range runs {
		total := 0.0
		for _, rho := range run.Densities {
			total += rho
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.3f\t%.3f\t%d\t%.2e\t%v\n",
			run.ID, run.Potential, run.Closure, run.Temperature,
			total, run.Iterations, run.FinalRMS, run.Converged)
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
	corr, err := st.LoadCorrelations(runID)
	if err != nil {
		return err
	}
	structure, err := st.LoadStructure(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s (%s / %s)\n\n", meta.ID, meta.Potential, meta.Closure)

	lo, hi := pairI, pairJ
	if lo > hi {
		lo, hi = hi, lo
	}
	suffix := fmt.Sprintf("_%d_%d", lo, hi)

	for _, plot := range []struct {
		column  string
		axis    []float64
		bound   float64
		caption string
	}{
		{"g" + suffix, corr["r"], maxR, fmt.Sprintf("g%s(r)", suffix)},
		{"c" + suffix, corr["r"], maxR, fmt.Sprintf("c%s(r)", suffix)},
		{"S" + suffix, structure["k"], maxK, fmt.Sprintf("S%s(k)", suffix)},
	} {
		var values []float64
		if plot.column[0] == 'S' {
			values = structure[plot.column]
		} else {
			values = corr[plot.column]
		}
		if values == nil {
			return fmt.Errorf("no column %s; run has %d-component data", plot.column, componentCount(corr))
		}

		series := clipToAxis(plot.axis, values, plot.bound)
		graph := asciigraph.Plot(series,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption(plot.caption))
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func componentCount(cols map[string][]float64) int {
	nc := 0
	for {
		if _, ok := cols[fmt.Sprintf("g_%d_%d", nc, nc)]; !ok {
			return nc
		}
		nc++
	}
}

func clipToAxis(axis, values []float64, bound float64) []float64 {
	if bound <= 0 || len(axis) != len(values) {
		return values
	}
	for k, x := range axis {
		if x > bound {
			return values[:k]
		}
	}
	return values
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// runSweep solves the same system over a density ladder, reusing each
// converged indirect correlation as the next starting point.
func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	if len(cfg.Components) != 1 {
		return fmt.Errorf("sweep supports single-component systems only")
	}
	if sweepSteps < 1 {
		return fmt.Errorf("steps must be positive")
	}

	sys, err := buildSystem(cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RHO\tITER\tRMS\tCHI_EX\tSTATUS")

	opts := solveOptions(cfg)
	for step := 0; step < sweepSteps; step++ {
		rho := sweepFrom
		if sweepSteps > 1 {
			rho += float64(step) * (sweepTo - sweepFrom) / float64(sweepSteps-1)
		}

		result, err := sys.Solve(context.Background(), []float64{rho}, opts)
		status := "ok"
		if err != nil {
			var solveErr *fluid.SolveError
			if errors.As(err, &solveErr) {
				status = solveErr.Wrapped.Error()
			} else {
				return err
			}
		}

		chi := 0.0
		if result != nil && result.C != nil {
			chi = thermo.ExcessCompressibility(result.Grid, []float64{rho}, result.C).Excess
		}
		iterations, rms := 0, 0.0
		if result != nil {
			iterations, rms = result.Iterations, result.FinalRMS
		}
		fmt.Fprintf(w, "%.4f\t%d\t%.2e\t%.4f\t%s\n", rho, iterations, rms, chi, status)

		// Continuation: seed the next density with this solution.
		if err == nil && result.E != nil {
			opts.InitialE = result.E
		}
	}

	return w.Flush()
}
