// Package launcher is the entry point of the hashgraph command-line
// interface. It wires together CLI flags, logging setup (including the
// optional Sentry hook) and the fake-network demo command.
package launcher

import (
	"fmt"

	"github.com/evalphobia/logrus_sentry"
	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-hashgraph/flags"
	"github.com/rony4d/go-hashgraph/integration"
)

var app = flags.NewApp("the go-hashgraph command line interface")

func init() {
	app.Flags = append(app.Flags, flags.CommonFlags()...)
	app.Commands = []cli.Command{
		{
			Name:   "demo",
			Usage:  "Run an in-process gossip network and print its consensus ordering",
			Flags:  append(flags.CommonFlags(), flags.NetworkFlags()...),
			Action: demoAction,
		},
	}
}

// Launch parses the arguments and runs the selected command.
func Launch(args []string) error {
	return app.Run(args)
}

func setupLogging(ctx *cli.Context) error {
	if ctx.String("log.format") == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	verbosity := ctx.Int("log.verbosity")
	if verbosity < 0 || verbosity > int(logrus.TraceLevel) {
		return fmt.Errorf("log.verbosity out of range: %d", verbosity)
	}
	logrus.SetLevel(logrus.Level(verbosity))

	if dsn := ctx.String("sentry.dsn"); dsn != "" {
		hook, err := logrus_sentry.NewSentryHook(dsn, []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		})
		if err != nil {
			return fmt.Errorf("sentry hook: %w", err)
		}
		logrus.AddHook(hook)
	}
	return nil
}

func resolvePreset(ctx *cli.Context) (integration.PresetConfig, error) {
	cfg, err := integration.GetPresetByName(ctx.String("preset"))
	if err != nil {
		return cfg, err
	}
	if ctx.IsSet("peers") {
		cfg.Peers = ctx.Int("peers")
	}
	if ctx.IsSet("sweeps") {
		cfg.Sweeps = ctx.Int("sweeps")
	}
	return cfg, cfg.Validate()
}
