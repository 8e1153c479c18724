package main

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/terrapath/internal/config"
)

var (
	// These variables are set using -ldflags
	version string
	commit  string
	date    string
)

var log *zap.SugaredLogger

// app carries the I/O endpoints of one invocation.
type app struct {
	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    *zap.SugaredLogger
}

func Cmd() {
	log = newLogger("console", zap.InfoLevel, os.Stderr).Sugar()

	a := &app{
		fs:     afero.NewOsFs(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		log:    log,
	}
	if err := a.rootCmd().Execute(); err != nil {
		a.log.Fatalf("%s", err)
	}
}

func (a *app) rootCmd() *cobra.Command {
	var cpath string

	cobra.EnableCommandSorting = false
	c := &cobra.Command{
		Use:           "terrapath [flags] <input_file|->",
		Short:         "Find the cheapest path across a height map",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			vi := config.New()
			vi.SetFs(a.fs)
			if err := config.BindFlags(vi, cmd.Flags()); err != nil {
				return err
			}
			conf, err := config.Load(vi, cpath)
			if err != nil {
				return err
			}

			level, err := zapcore.ParseLevel(conf.LogLevel)
			if err != nil {
				return err
			}
			a.log = newLogger(conf.LogFormat, level, a.stderr).Sugar()
			defer a.log.Sync() //nolint: errcheck

			return a.run(conf, args[0])
		},
	}
	c.SetOut(a.stdout)
	c.SetErr(a.stderr)

	c.Flags().StringVar(&cpath, "config", "", "path to an optional config file")
	config.RegisterFlags(c.Flags())

	c.AddCommand(a.versionCmd())
	return c
}

func newLogger(format string, level zapcore.Level, w io.Writer) *zap.Logger {
	econf := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		NameKey:        "logger",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	var core zapcore.Core

	if format == "json" {
		core = zapcore.NewCore(zapcore.NewJSONEncoder(econf), zapcore.AddSync(w), level)
	} else {
		econf.EncodeLevel = zapcore.CapitalColorLevelEncoder
		core = zapcore.NewCore(zapcore.NewConsoleEncoder(econf), zapcore.AddSync(w), level)
	}
	return zap.New(core)
}
