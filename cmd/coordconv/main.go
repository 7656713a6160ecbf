// Command coordconv converts game API exports to map data and runs
// one-off coordinate conversions.
//
// Usage:
//
//	coordconv all                           # ports.json and distances.json
//	coordconv ports                         # ports.json only
//	coordconv point --x 100000 --y -200000  # engine -> map
//	coordconv point --inverse --x 4096 --y 4096
//	coordconv compass NE                    # label -> degrees
//	coordconv compass 212.5                 # degrees -> label
//	coordconv bearing --from-x 0 --from-y 0 --to-x 10 --to-y 10
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/namap/internal/config"
	"github.com/udisondev/namap/internal/convert"
	"github.com/udisondev/namap/internal/coord"
)

const ConfigPath = "config/namap.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("loading .env", "err", err)
	}

	if err := newApp(os.Stdout).Run(ctx, os.Args); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "coordconv",
		Usage: "convert game coordinates to map data",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   ConfigPath,
				Usage:   "YAML config file",
				Sources: cli.EnvVars("NAMAP_CONFIG"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "ports",
				Usage: "convert the port export to map coordinates",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := setup(cmd, out)
					if err != nil {
						return err
					}
					return convert.ConvertPorts(ctx, cfg)
				},
			},
			{
				Name:  "distances",
				Usage: "compute travel distances between all ports",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := setup(cmd, out)
					if err != nil {
						return err
					}
					return convert.ConvertDistances(ctx, cfg)
				},
			},
			{
				Name:   "all",
				Usage:  "run every converter",
				Action: runAll(out),
			},
			{
				Name:  "point",
				Usage: "convert a single point (engine -> map unless --inverse)",
				Flags: []cli.Flag{
					&cli.FloatFlag{Name: "x", Required: true},
					&cli.FloatFlag{Name: "y", Required: true},
					&cli.BoolFlag{Name: "inverse", Usage: "map -> engine"},
					&cli.BoolFlag{Name: "flip", Usage: "flip the map Y axis of the result"},
				},
				Action: pointAction(out),
			},
			{
				Name:      "compass",
				Usage:     "convert a compass label to degrees or degrees to a label",
				ArgsUsage: "<label|degrees>",
				Action:    compassAction(out),
			},
			{
				Name:  "bearing",
				Usage: "bearing and travel distance between two map points",
				Flags: []cli.Flag{
					&cli.FloatFlag{Name: "from-x", Required: true},
					&cli.FloatFlag{Name: "from-y", Required: true},
					&cli.FloatFlag{Name: "to-x", Required: true},
					&cli.FloatFlag{Name: "to-y", Required: true},
				},
				Action: bearingAction(out),
			},
		},
	}
}

// setup configures slog and loads the converter config.
func setup(cmd *cli.Command, out io.Writer) (config.Converter, error) {
	level := slog.LevelInfo
	if cmd.Bool("debug") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
	})))

	cfgPath := cmd.String("config")
	cfg, err := config.LoadConverter(cfgPath)
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	slog.Debug("config loaded",
		"path", cfgPath,
		"map_size", cfg.Calibration.MapSize,
		"time_factor", cfg.Calibration.TimeFactor,
		"speed_factor", cfg.Calibration.SpeedFactor)
	return cfg, nil
}

func runAll(out io.Writer) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := setup(cmd, out)
		if err != nil {
			return err
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			if err := convert.ConvertPorts(gctx, cfg); err != nil {
				return fmt.Errorf("ports: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			if err := convert.ConvertDistances(gctx, cfg); err != nil {
				return fmt.Errorf("distances: %w", err)
			}
			return nil
		})
		return g.Wait()
	}
}

func pointAction(out io.Writer) cli.ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		cfg, err := setup(cmd, io.Discard)
		if err != nil {
			return err
		}
		cal := cfg.Calibration

		p := coord.Pt(cmd.Float("x"), cmd.Float("y"))
		if cmd.Bool("inverse") {
			if cmd.Bool("flip") {
				p = cal.AdjustXY(p.X, p.Y).Point()
			}
			p = cal.ToEngine(p)
		} else {
			p = cal.ToMap(p)
			if cmd.Bool("flip") {
				p = cal.AdjustXY(p.X, p.Y).Point()
			}
		}

		_, err = fmt.Fprintf(out, "%s %s\n", formatFloat(p.X), formatFloat(p.Y))
		return err
	}
}

func compassAction(out io.Writer) cli.ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		if cmd.NArg() != 1 {
			return fmt.Errorf("compass: expected one argument, got %d: %w", cmd.NArg(), coord.ErrInvalidArgument)
		}
		arg := cmd.Args().First()

		if deg, err := strconv.ParseFloat(arg, 64); err == nil {
			_, err = fmt.Fprintln(out, coord.DegreesToCompass(deg))
			return err
		}

		deg, err := coord.CompassToDegrees(arg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, formatFloat(deg))
		return err
	}
}

func bearingAction(out io.Writer) cli.ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		cfg, err := setup(cmd, io.Discard)
		if err != nil {
			return err
		}

		from := coord.Pt(cmd.Float("from-x"), cmd.Float("from-y"))
		to := coord.Pt(cmd.Float("to-x"), cmd.Float("to-y"))
		deg := coord.RotationAngleInDegrees(from, to)

		_, err = fmt.Fprintf(out, "bearing=%s compass=%s distance=%s\n",
			formatFloat(deg),
			coord.DegreesToCompass(deg),
			formatFloat(cfg.Calibration.TravelDistance(from, to)))
		return err
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
