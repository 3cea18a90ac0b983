package main

import (
	"runtime"
	"strings"

	"github.com/akmonengine/hedron"
	"github.com/akmonengine/hedron/internal/brushfile"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the configuration shared by every subcommand
type app struct {
	conf   *viper.Viper
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{conf: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "hedron",
		Short: "Geometry queries over convex brushes",
		Long: `
hedron loads convex brushes (solids, polygons, edges and points) from a YAML file
and answers intersection, containment and picking queries about them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden to values set with environment variables and flags.")
	flags.Int("workers", runtime.NumCPU(), "Number of goroutines running the queries.")
	flags.Float64("cell-size", 4, "Size of a broad phase grid cell.")
	flags.Int("cells", 1024, "Number of broad phase grid cells, rounded up to a power of two.")
	flags.String("log-level", "warn", "Log level, one of [debug, info, warn, error].")
	_ = a.conf.BindPFlags(flags)
	a.conf.SetEnvPrefix("HEDRON")
	a.conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.conf.AutomaticEnv()

	root.AddCommand(
		a.checkCmd(),
		a.overlapsCmd(),
		a.selectCmd(),
		a.pickCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	if cfg := a.conf.GetString("config"); cfg != "" {
		a.conf.SetConfigFile(cfg)
		if err := a.conf.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "while reading config %s", cfg)
		}
	}

	level, err := zapcore.ParseLevel(a.conf.GetString("log-level"))
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(cmd.ErrOrStderr()), level)
	a.logger = zap.New(core)

	if a.conf.GetInt("workers") < 1 {
		return errors.Errorf("workers must be positive, got %d", a.conf.GetInt("workers"))
	}
	if a.conf.GetFloat64("cell-size") <= 0 {
		return errors.Errorf("cell size must be positive, got %v", a.conf.GetFloat64("cell-size"))
	}
	return nil
}

// load reads a brush file into a new world
func (a *app) load(path string) (*hedron.World, error) {
	f, err := brushfile.Load(path)
	if err != nil {
		return nil, err
	}
	brushes, err := f.Build()
	if err != nil {
		return nil, err
	}

	world := hedron.NewWorld(a.conf.GetFloat64("cell-size"), a.conf.GetInt("cells"),
		a.conf.GetInt("workers"), a.logger)
	for _, brush := range brushes {
		world.AddBrush(brush)
	}
	a.logger.Info("brushes loaded", zap.String("file", path), zap.Int("brushes", len(brushes)))
	return world, nil
}
