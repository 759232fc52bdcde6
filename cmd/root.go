// Package cmd implements the command line interface that runs agents
// in the example environments
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/samuelfneumann/goqlearn/examples"
)

var (
	agentName     string
	backend       string
	epochs        int
	seed          uint64
	alpha         float64
	gamma         float64
	minExplore    float64
	configFile    string
	displayName   string
	fps           int
	stepTime      time.Duration
	stepTimeStart int
	out           string
	addr          string
	logLevel      string
)

// GetRootCommand returns the root command, with a subcommand for each
// environment
func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "goqlearn",
		Short:         "Train Q-learning agents on small environments",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := rootCommand.PersistentFlags()
	flags.StringVarP(&agentName, "agent", "a", examples.QLearning, "Agent to train (qlearning or deepq)")
	flags.StringVar(&backend, "backend", examples.MLP, "Network backend of deepq agents (mlp or graph)")
	flags.IntVarP(&epochs, "epochs", "e", 0, "Number of epochs to run, 0 uses the environment default")
	flags.Uint64Var(&seed, "seed", 0, "Seed of all random number generators")
	flags.Float64Var(&alpha, "alpha", 0, "Q-learning step size, 0 uses the environment default")
	flags.Float64Var(&gamma, "gamma", 0, "Q-learning discount, 0 uses the environment default")
	flags.Float64Var(&minExplore, "min-explore", 0, "Lowest exploration rate, 0 uses the environment default")
	flags.StringVarP(&configFile, "config", "c", "", "JSON configuration of deepq agents")
	flags.StringVarP(&displayName, "display", "d", examples.NoDisplay, "Display to draw the environment to (none, terminal, png or http)")
	flags.IntVar(&fps, "fps", 10, "Frames displayed per second")
	flags.DurationVar(&stepTime, "step-time", 0, "Time to wait after each step once displaying slowly")
	flags.IntVar(&stepTimeStart, "step-time-start", 0, "First epoch that waits after each step")
	flags.StringVarP(&out, "out", "o", "results", "Save data and plots to the specified folder")
	flags.StringVar(&addr, "addr", "localhost:8080", "Address of the http display")
	flags.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn or error)")

	rootCommand.AddCommand(MouseCommand())
	rootCommand.AddCommand(TaxiCommand())
	rootCommand.AddCommand(GridworldCommand())
	return rootCommand
}

// options builds the examples.Options described by the flags
func options(cmd *cobra.Command, preset func() examples.FileConfig) (examples.Options, error) {
	o := examples.DefaultOptions()
	o.Agent = agentName
	o.Backend = backend
	o.Epochs = epochs
	o.Seed = seed
	o.Alpha = alpha
	o.Gamma = gamma
	o.MinExplore = minExplore
	o.Display = displayName
	o.DisplayConfig.FPS = fps
	o.DisplayConfig.StepTime = stepTime
	o.DisplayConfig.StepTimeStart = stepTimeStart
	o.Out = out
	o.Addr = addr
	o.ProgressOut = cmd.OutOrStderr()

	logger, err := newLogger(logLevel)
	if err != nil {
		return examples.Options{}, err
	}
	o.Logger = logger

	if configFile != "" {
		c, err := examples.LoadConfig(configFile, preset())
		if err != nil {
			return examples.Options{}, err
		}
		o.DeepQ = &c
	}
	if o.Display != examples.NoDisplay {
		if err := o.DisplayConfig.Validate(); err != nil {
			return examples.Options{}, err
		}
	}
	return o, nil
}

// newLogger returns a logfmt logger on stderr that drops records below
// the named level
func newLogger(name string) (log.Logger, error) {
	var filter level.Option
	switch name {
	case "debug":
		filter = level.AllowDebug()
	case "info":
		filter = level.AllowInfo()
	case "warn":
		filter = level.AllowWarn()
	case "error":
		filter = level.AllowError()
	default:
		return nil, fmt.Errorf("unknown log level %q", name)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	return level.NewFilter(logger, filter), nil
}

// signalContext returns a context cancelled on interrupt
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt)
}
