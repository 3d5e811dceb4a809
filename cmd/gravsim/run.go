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

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/gui"
	"github.com/san-kum/gravsim/internal/scene"
	"github.com/san-kum/gravsim/internal/storage"
	"github.com/san-kum/gravsim/internal/stream"
	"github.com/san-kum/gravsim/internal/viz"
)

type runOptions struct {
	DataDir    string
	Save       bool
	Every      int
	SQLite     string
	RedisAddr  string
	Channel    string
	Publisher  stream.Client
	MetricsOff bool
}

type runOutput struct {
	RunID  string
	Result *dynamo.Result
}

// runHeadless builds the scene, attaches the requested outputs and runs
// cfg.Ticks ticks. A canceled ctx still saves the partial run.
func runHeadless(ctx context.Context, cfg *config.Config, opts runOptions, log hclog.Logger) (*runOutput, error) {
	w, err := newWorld(cfg)
	if err != nil {
		return nil, err
	}
	if !opts.MetricsOff {
		for _, m := range w.defaultMetrics() {
			w.sim.AddMetric(m)
		}
	}

	runID := storage.NewRunID(cfg.Name)
	log = log.With("run", runID)

	rec := storage.NewRecorder(cfg.TimeStep, opts.Every)
	for _, sh := range w.scene.Shapes() {
		rec.Colors = append(rec.Colors, scene.Hex(sh.Color))
	}
	if opts.Save {
		w.sim.AddObserver(rec)
	}

	if opts.SQLite != "" {
		trace, err := storage.OpenTrace(opts.SQLite, runID)
		if err != nil {
			return nil, fmt.Errorf("open trace: %w", err)
		}
		defer trace.Close()
		w.sim.AddObserver(trace)
		defer func() {
			if err := trace.Err(); err != nil {
				log.Error("trace write failed", "path", opts.SQLite, "error", err)
			}
		}()
	}

	client := opts.Publisher
	if client == nil && opts.RedisAddr != "" {
		rc, err := stream.Dial(ctx, opts.RedisAddr)
		if err != nil {
			return nil, fmt.Errorf("connect redis %s: %w", opts.RedisAddr, err)
		}
		defer rc.Close()
		client = rc
	}
	if client != nil {
		pub := stream.NewPublisher(client, opts.Channel, log)
		w.sim.SetSink(scene.Fanout{w.scene, pub})
		w.sim.AddObserver(pub)
		defer func() {
			sent, failed := pub.Stats()
			log.Debug("stream closed", "sent", sent, "failed", failed)
		}()
	}

	log.Info("running", "scene", cfg.Name, "bodies", w.sim.Len(), "ticks", cfg.Ticks)
	start := time.Now()
	result, runErr := w.sim.Run(ctx, cfg.Ticks)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return nil, runErr
	}
	log.Info("finished", "ticks", result.Ticks, "wall", time.Since(start))

	out := &runOutput{RunID: runID, Result: result}
	if opts.Save {
		st := storage.New(opts.DataDir)
		if err := st.Init(); err != nil {
			return nil, err
		}
		if err := st.Save(runID, cfg.Name, cfg.Params(), result, rec); err != nil {
			return nil, fmt.Errorf("save run: %w", err)
		}
	}
	return out, runErr
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out, err := runHeadless(ctx, cfg, runOptions{
		DataDir:   dataDir,
		Save:      !noSave,
		Every:     recordStep,
		SQLite:    sqlitePath,
		RedisAddr: redisAddr,
		Channel:   channel,
	}, logger)
	if err != nil && out == nil {
		return err
	}

	if !noSave {
		fmt.Printf("run id: %s\n", out.RunID)
	}
	fmt.Printf("ticks: %d  time: %.2f\n", out.Result.Ticks, out.Result.Elapsed)
	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(out.Result.Metrics))
	for name := range out.Result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6g\n", name, out.Result.Metrics[name])
	}
	if errors.Is(err, context.Canceled) {
		fmt.Println("\ninterrupted")
		return nil
	}
	return err
}

func runLive(cmd *cobra.Command, args []string) error {
	if preset == "" && configFile == "" {
		return viz.RunPicker(viz.NewPicker(config.ListPresets(), presetInfo(), func(name string) (viz.Model, error) {
			cfg := config.GetPreset(name)
			if flags := cmd.Flags(); flags.Changed("fps") {
				cfg.FPS = frameRate
			}
			return liveModel(cfg)
		}))
	}

	cfg, err := loadScene(cmd)
	if err != nil {
		return err
	}
	m, err := liveModel(cfg)
	if err != nil {
		return err
	}
	return viz.Run(m)
}

func liveModel(cfg *config.Config) (viz.Model, error) {
	w, err := newWorld(cfg)
	if err != nil {
		return viz.Model{}, err
	}
	return viz.NewModel(w.sim, w.scene, viz.Options{
		Name:   cfg.Name,
		FPS:    cfg.FPS,
		World:  w.center().Mul(2),
		Energy: w.gravity,
	}), nil
}

func presetInfo() map[string]string {
	info := make(map[string]string)
	for _, name := range config.ListPresets() {
		info[name] = fmt.Sprintf("%d bodies", len(config.GetPreset(name).Bodies))
	}
	return info
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(cmd)
	if err != nil {
		return err
	}
	w, err := newWorld(cfg)
	if err != nil {
		return err
	}
	gui.NewApp(w.sim, w.scene, cfg.Name, cfg.FPS, logger).Run()
	return nil
}

func benchRing(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODIES\tTICKS\tTIME\tTICKS/SEC")

	for n := 4; n <= benchMax; n *= 2 {
		cfg := config.RingPreset(n)
		cfg.Ticks = 200

		start := time.Now()
		out, err := runHeadless(context.Background(), cfg, runOptions{MetricsOff: true}, hclog.NewNullLogger())
		if err != nil {
			return err
		}
		elapsed := time.Since(start)
		fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\n", n+1, out.Result.Ticks, elapsed, float64(out.Result.Ticks)/elapsed.Seconds())
	}
	return w.Flush()
}
