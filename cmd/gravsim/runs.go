package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/export"
	"github.com/san-kum/gravsim/internal/storage"
	"github.com/san-kum/gravsim/internal/viz"
)

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
	fmt.Fprintln(w, "ID\tSCENE\tTIME\tBODIES\tTICKS\tDT\tDRIFT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.3g\t%.3g\n",
			run.ID,
			run.Scene,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Bodies,
			run.Ticks,
			run.TimeStep,
			run.Metrics["energy_drift"],
		)
	}

	return w.Flush()
}

// resolveRun returns args[0] or the newest saved run.
func resolveRun(st *storage.Store, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return st.Latest()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runID, err := resolveRun(st, args)
	if err != nil {
		return err
	}
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	xs, ys := storage.Track(states, bodyIndex)
	if len(xs) == 0 {
		return fmt.Errorf("run %s has no body %d", runID, bodyIndex)
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scene: %s\n", meta.Scene)
	fmt.Printf("samples: %d\n\n", len(xs))

	for _, series := range []struct {
		data    []float64
		caption string
	}{
		{xs, fmt.Sprintf("body %d x vs time", bodyIndex)},
		{ys, fmt.Sprintf("body %d y vs time", bodyIndex)},
	} {
		fmt.Println(asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		))
		fmt.Println()
	}
	return nil
}

// orbitPlot draws every body's recorded path on a braille canvas, fitted to
// the bounds of all paths.
func orbitPlot(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runID, err := resolveRun(st, args)
	if err != nil {
		return err
	}
	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, frame := range states {
		for i := 0; i+1 < len(frame); i += 2 {
			minX, maxX = math.Min(minX, frame[i]), math.Max(maxX, frame[i])
			minY, maxY = math.Min(minY, frame[i+1]), math.Max(maxY, frame[i+1])
		}
	}
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	canvas := viz.NewCanvas(70, 20)
	cw, ch := canvas.Dots()
	for _, frame := range states {
		for i := 0; i+1 < len(frame); i += 2 {
			px := int(float64(cw-1) * (frame[i] - minX) / spanX)
			py := int(float64(ch-1) * (frame[i+1] - minY) / spanY)
			canvas.Set(px, py)
		}
	}

	fmt.Printf("orbits: %s\n", runID)
	fmt.Printf("x: %.1f .. %.1f   y: %.1f .. %.1f\n\n", minX, maxX, minY, maxY)
	fmt.Print(canvas.String())
	return nil
}

func traceRun(cmd *cobra.Command, args []string) error {
	tr, err := storage.OpenTrace(args[0], "")
	if err != nil {
		return err
	}
	defer tr.Close()

	track, err := tr.Trace(args[1], bodyIndex)
	if err != nil {
		return err
	}
	if len(track) == 0 {
		runs, _ := tr.Runs()
		return fmt.Errorf("no positions for run %s body %d (runs: %v)", args[1], bodyIndex, runs)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TICK\tX\tY")
	for tick, p := range track {
		fmt.Fprintf(w, "%d\t%.6f\t%.6f\n", tick, p[0], p[1])
	}
	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).ExportCSV(args[0], os.Stdout)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).ExportJSON(args[0], os.Stdout)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runID, err := resolveRun(st, args)
	if err != nil {
		return err
	}
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	out := os.Stdout
	if svgOut != "" {
		f, err := os.Create(svgOut)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err := export.OrbitsSVG(out, states, meta.Colors, 800, 600); err != nil {
		return err
	}
	if svgOut != "" {
		logger.Info("wrote svg", "path", svgOut, "run", runID)
	}
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "gravsim.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	cfg := config.DefaultConfig()
	if preset != "" {
		if cfg = config.GetPreset(preset); cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	logger.Info("wrote scene", "path", path, "scene", cfg.Name)
	return nil
}
