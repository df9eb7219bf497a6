package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-g-everett/keyframer/api"
	"github.com/matt-g-everett/keyframer/scene"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type app struct {
	Config scene.Config
	Logger *zap.Logger
	Runner *scene.Runner
	Api    *api.Api
}

func newApp(config scene.Config) (*app, error) {
	a := new(app)
	a.Config = config

	level, err := config.Level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableCaller = true
	if a.Logger, err = zc.Build(); err != nil {
		return nil, err
	}

	s, err := scene.New(config, a.Logger)
	if err != nil {
		return nil, err
	}
	a.Runner = scene.NewRunner(s, config.TickRate, a.Logger)
	if config.Listen != "" {
		a.Api = api.NewApi(a.Runner, a.Logger)
	}
	return a, nil
}

func (a *app) run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.Runner.Run(ctx)
	})
	if a.Api != nil {
		g.Go(func() error {
			return a.Api.Serve(ctx, a.Config.Listen)
		})
	} else {
		a.Logger.Info("api disabled")
	}

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func main() {
	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	flag.Parse()

	boot := zap.Must(zap.NewProduction())
	config, err := scene.LoadConfig(*configPath)
	if err != nil {
		boot.Fatal("config", zap.Error(err))
	}

	a, err := newApp(config)
	if err != nil {
		boot.Fatal("startup", zap.Error(err))
	}
	defer a.Logger.Sync()
	a.Logger.Info("config loaded",
		zap.String("path", *configPath),
		zap.Float64("tickRate", config.TickRate),
		zap.Int("sprites", len(config.Sprites)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.run(ctx); err != nil {
		a.Logger.Error("stopped", zap.Error(err))
		stop()
		_ = a.Logger.Sync()
		os.Exit(1)
	}
}
