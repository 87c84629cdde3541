package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// CommonFlags returns the base set of CLI flags shared across commands.
func CommonFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "log.format",
			Usage: "Log output format (text|json)",
			Value: "text",
		},
		cli.IntFlag{
			Name:  "log.verbosity",
			Usage: "Logging verbosity (0=panic,1=fatal,2=error,3=warn,4=info,5=debug,6=trace)",
			Value: 4,
		},
		cli.StringFlag{
			Name:  "sentry.dsn",
			Usage: "Sentry DSN for crash reporting (disabled when empty)",
		},
	}
}

// NetworkFlags returns the flags describing the simulated network.
func NetworkFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "preset",
			Usage: "Simulation preset (default|small|wide)",
			Value: "default",
		},
		cli.IntFlag{
			Name:  "peers",
			Usage: "Override the preset's peer count",
		},
		cli.IntFlag{
			Name:  "sweeps",
			Usage: "Override the preset's number of gossip sweeps",
		},
		cli.StringFlag{
			Name:  "snapshot",
			Usage: "Write a binary snapshot of the first peer's graph to this file",
		},
		cli.StringFlag{
			Name:  "genesis.dump",
			Usage: "Write the generated network genesis (validator public keys) to this JSON file",
		},
	}
}
