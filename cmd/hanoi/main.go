package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/hanoi/internal/config"
	"github.com/san-kum/hanoi/internal/hanoi"
	"github.com/san-kum/hanoi/internal/player"
	"github.com/san-kum/hanoi/internal/storage"
	"github.com/san-kum/hanoi/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	disks      int
	speed      string
	theme      string
	configFile string
	preset     string
	noSave     bool
)

// main registers commands and flags; running with no subcommand opens the
// interactive TUI. Exits with status 1 on command error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "hanoi",
		Short: "animated tower of hanoi solver",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			pacing, err := player.ParsePacing(cfg.Speed)
			if err != nil {
				return err
			}
			return viz.RunInteractive(cfg.Disks, pacing, cfg.Theme)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().IntVar(&disks, "disks", config.DefaultDisks, "number of disks (3-10)")
	rootCmd.PersistentFlags().StringVar(&speed, "speed", config.DefaultSpeed, "animation speed (slow/normal/fast)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", config.DefaultTheme, "colour theme")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "animate the solution",
		RunE:  runPlay,
	}

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "solve headlessly and record the run",
		RunE:  runSolve,
	}
	solveCmd.Flags().BoolVar(&noSave, "no-save", false, "do not record the run")

	movesCmd := &cobra.Command{
		Use:   "moves [disks]",
		Short: "print the optimal move sequence",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listMoves,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot peg heights over the run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run moves to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDISKS\tSPEED\tTHEME")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", name, cfg.Disks, cfg.Speed, cfg.Theme)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(playCmd, solveCmd, movesCmd, listCmd, plotCmd, exportCmd, exportJSONCmd, exportCSVCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges preset, config file and flags, flags winning.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Disks = p.Disks
		cfg.Speed = p.Speed
		if p.Theme != "" {
			cfg.Theme = p.Theme
		}
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	if cmd.Flags().Changed("disks") {
		cfg.Disks = disks
	}
	if cmd.Flags().Changed("speed") {
		cfg.Speed = speed
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("data") {
		cfg.DataDir = dataDir
	}

	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	pacing, err := player.ParsePacing(cfg.Speed)
	if err != nil {
		return err
	}
	return viz.RunLive(cfg.Disks, pacing, cfg.Theme)
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Disks < hanoi.MinDisks || cfg.Disks > hanoi.MaxDisks {
		return fmt.Errorf("disks must be between %d and %d, got %d: %w",
			hanoi.MinDisks, hanoi.MaxDisks, cfg.Disks, hanoi.ErrDiskCount)
	}

	fmt.Printf("solving %d disks...\n", cfg.Disks)
	start := time.Now()

	board := hanoi.NewBoard(cfg.Disks)
	moves := hanoi.Solve(cfg.Disks)
	for i, mv := range moves {
		if err := board.Apply(mv); err != nil {
			return &hanoi.MoveError{Index: i, Move: mv, Wrapped: err}
		}
	}
	elapsed := time.Since(start)

	if !board.Solved() {
		return fmt.Errorf("board not solved after %d moves", board.MoveCount())
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("moves: %d\n", board.MoveCount())

	if !noSave {
		st := storage.New(cfg.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg.Disks, cfg.Speed, player.StatusSolved.String(), elapsed, moves)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	fmt.Println("\nmoves per disk:")
	counts := make(map[int]int)
	for _, mv := range moves {
		counts[mv.Disk]++
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DISK\tMOVES")
	for k := 1; k <= cfg.Disks; k++ {
		fmt.Fprintf(w, "%d\t%d\n", k, counts[k])
	}
	return w.Flush()
}

func listMoves(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	n := cfg.Disks
	if len(args) == 1 {
		n, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid disk count: %s", args[0])
		}
	}
	if n < 1 || n > hanoi.MaxDisks {
		return fmt.Errorf("disks must be between 1 and %d, got %d: %w", hanoi.MaxDisks, n, hanoi.ErrDiskCount)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tDISK\tFROM\tTO")
	for i, mv := range hanoi.Solve(n) {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", i+1, mv.Disk, mv.From, mv.To)
	}
	return w.Flush()
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
	fmt.Fprintln(w, "ID\tTIME\tDISKS\tSPEED\tMOVES\tSTATUS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Disks,
			run.Speed,
			run.Moves,
			run.Status,
		)
	}

	return w.Flush()
}

// plotRun replays a stored run and charts how the source empties and the
// destination fills, move by move.
func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	moves, err := st.LoadMoves(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("disks: %d\n", meta.Disks)
	fmt.Printf("moves: %d\n\n", len(moves))

	board := hanoi.NewBoard(meta.Disks)
	source := make([]float64, 0, len(moves)+1)
	dest := make([]float64, 0, len(moves)+1)
	source = append(source, float64(board.Peg(hanoi.RoleSource).Len()))
	dest = append(dest, float64(board.Peg(hanoi.RoleDestination).Len()))

	for i, mv := range moves {
		if err := board.Apply(mv); err != nil {
			return fmt.Errorf("stored run is corrupt at move %d: %w", i+1, err)
		}
		source = append(source, float64(board.Peg(hanoi.RoleSource).Len()))
		dest = append(dest, float64(board.Peg(hanoi.RoleDestination).Len()))
	}

	graph := asciigraph.Plot(source,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("source peg height (A) vs move"),
	)
	fmt.Println(graph)
	fmt.Println()

	graph = asciigraph.Plot(dest,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("destination peg height (C) vs move"),
	)
	fmt.Println(graph)

	return nil
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

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	moves, err := st.LoadMoves(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, moves)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	moves, err := st.LoadMoves(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"index", "disk", "from", "to"}); err != nil {
		return err
	}
	for i, mv := range moves {
		row := []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(mv.Disk),
			mv.From.String(),
			mv.To.String(),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
