package cmd

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/inference-sim/reassign-analytics/analysis"
)

// options holds the persistent flags and the session resolved from them.
type options struct {
	fs         afero.Fs
	configPath string // YAML session file
	logLevel   string // log verbosity level
	fraction   float64

	session *SessionConfig
	log     *logrus.Logger
}

// rootCmd is the base command for the CLI
var rootCmd = newRootCmd(afero.NewOsFs())

// newRootCmd builds the command tree reading move logs and config from fs.
func newRootCmd(fs afero.Fs) *cobra.Command {
	opts := &options{fs: fs}
	root := &cobra.Command{
		Use:          "reassign-analytics",
		Short:        "Analytics over process-reassignment move logs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML session file (dataset, fraction, log_level, vector_widths)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	root.PersistentFlags().Float64Var(&opts.fraction, "fraction", 1.0, "Fraction of leading moves to load, in (0, 1]")

	root.AddCommand(
		newSummaryCmd(opts),
		newTransitionsCmd(opts),
		newTopCmd(opts),
		newProcessCmd(opts),
		newMachineCmd(opts),
		newCompareCmd(opts),
	)
	return root
}

// resolve merges the session file under the explicit flags and sets up logging.
func (o *options) resolve(cmd *cobra.Command) error {
	o.session = &SessionConfig{}
	if o.configPath != "" {
		cfg, err := loadSessionConfig(o.fs, o.configPath)
		if err != nil {
			return err
		}
		o.session = cfg
	}
	flags := cmd.Flags()
	if !flags.Changed("log") && o.session.LogLevel != "" {
		o.logLevel = o.session.LogLevel
	}
	if !flags.Changed("fraction") && o.session.Fraction != 0 {
		o.fraction = o.session.Fraction
	}

	level, err := logrus.ParseLevel(o.logLevel)
	if err != nil {
		return err
	}
	o.log = logrus.New()
	o.log.SetOutput(cmd.ErrOrStderr())
	o.log.SetLevel(level)
	return nil
}

// datasetPath picks the positional move log, falling back to the session file.
func (o *options) datasetPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if o.session != nil && o.session.Dataset != "" {
		return o.session.Dataset, nil
	}
	return "", errors.New("no move log given: pass a path or set dataset in --config")
}

func (o *options) load(path string) (*analysis.Dataset, error) {
	return analysis.LoadDataset(analysis.LoadConfig{
		Path:         path,
		Fraction:     o.fraction,
		Fs:           o.fs,
		Logger:       o.log,
		VectorWidths: o.session.VectorWidths,
	})
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
