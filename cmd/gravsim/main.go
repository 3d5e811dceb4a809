package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/san-kum/gravsim/internal/config"
)

var (
	dataDir    string
	logLevel   string
	configFile string
	preset     string

	ticks       int
	timeStep    float64
	minDistance float64
	gravConst   float64
	frameRate   int

	sqlitePath string
	redisAddr  string
	channel    string
	recordStep int
	noSave     bool

	bodyIndex int
	benchMax  int
	svgOut    string

	logger hclog.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravsim",
		Short: "two-dimensional n-body gravity simulator",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = hclog.New(&hclog.LoggerOptions{
				Name:   "gravsim",
				Level:  hclog.LevelFromString(logLevel),
				Output: os.Stderr,
			})
		},
		RunE: runGUI,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gravsim", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scene headless and save the trajectory",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	sceneFlags(runCmd)
	runCmd.Flags().StringVar(&sqlitePath, "sqlite", "", "also write every position to this sqlite file")
	runCmd.Flags().StringVar(&redisAddr, "redis", "", "publish frames to redis at this address")
	runCmd.Flags().StringVar(&channel, "channel", "", "redis channel (default gravsim.tick)")
	runCmd.Flags().IntVar(&recordStep, "every", 1, "record every n-th tick to states.csv")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not write the run to the data directory")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a scene in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	sceneFlags(liveCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run a scene in a window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	sceneFlags(guiCmd)
	sceneFlags(rootCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot one body's coordinates against time",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&bodyIndex, "body", 0, "body index")

	orbitCmd := &cobra.Command{
		Use:   "orbit [run_id]",
		Short: "draw the paths of every body",
		Args:  cobra.MaximumNArgs(1),
		RunE:  orbitPlot,
	}

	traceCmd := &cobra.Command{
		Use:   "trace [sqlite_file] [run_id]",
		Short: "print one body's positions from a sqlite trace",
		Args:  cobra.ExactArgs(2),
		RunE:  traceRun,
	}
	traceCmd.Flags().IntVar(&bodyIndex, "body", 0, "body index")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write a run's states.csv to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "write a run's metadata and frames to stdout as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "draw a run's orbits as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&svgOut, "out", "o", "", "output file (default stdout)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure ticks per second for growing ring scenes",
		RunE:  benchRing,
	}
	benchCmd.Flags().IntVar(&benchMax, "max", 256, "largest ring size")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("  %-8s %d bodies, %d ticks\n", name, len(cfg.Bodies), cfg.Ticks)
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a scene as YAML to start editing from",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	initCmd.Flags().StringVar(&preset, "preset", "", "scene to write (default solar)")

	rootCmd.AddCommand(runCmd, liveCmd, guiCmd, listCmd, plotCmd, orbitCmd, traceCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, benchCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// sceneFlags registers the flags that pick and tune a scene.
func sceneFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "scene file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "built-in scene")
	cmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "ticks to run")
	cmd.Flags().Float64Var(&timeStep, "dt", 0, "time step")
	cmd.Flags().Float64Var(&minDistance, "min-distance", 0, "pairs closer than this exert no force")
	cmd.Flags().Float64Var(&gravConst, "g", 0, "gravitational constant")
	cmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frames per second")
}
