// Command sparsecalc adds, subtracts and multiplies sparse matrices stored in
// the rows=/cols=/(row, col, value) text format, and shows their statistics.
//
// Run without arguments for the interactive menu.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvsparse/config"
	"github.com/katalvlaran/lvsparse/workspace"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by all commands of one invocation.
type app struct {
	// flags
	configPath string
	verbose    bool
	noSave     bool
	printOut   bool

	in     io.Reader
	cfg    *config.Config
	logger *zap.Logger
	ws     *workspace.Workspace
}

func main() {
	if err := newRootCmd(os.Stdin).Execute(); err != nil {
		var shown reportedError
		if !errors.As(err, &shown) {
			errColor.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. in feeds the interactive menu.
func newRootCmd(in io.Reader) *cobra.Command {
	a := &app{in: in}

	rootCmd := &cobra.Command{
		Use:   "sparsecalc",
		Short: "Sparse matrix calculator",
		Long: `sparsecalc performs arithmetic on sparse integer matrices.

Matrix files look like:

  rows=<number>
  cols=<number>
  (row, col, value)
  ...

Run without arguments to start the interactive menu.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu(cmd.OutOrStdout())
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "sparsecalc.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	binary := []struct {
		use   string
		short string
		op    workspace.Operation
	}{
		{"add [matrix1] [matrix2]", "Add two matrices", workspace.OpAdd},
		{"sub [matrix1] [matrix2]", "Subtract matrix2 from matrix1", workspace.OpSub},
		{"mul [matrix1] [matrix2]", "Multiply matrix1 by matrix2", workspace.OpMul},
	}
	for _, b := range binary {
		op := b.op
		c := &cobra.Command{
			Use:   b.use,
			Short: b.short,
			Long: b.short + `.

Arguments are file paths, or 1..N to pick one of the configured sample files.
The result is saved to the results directory unless --no-save is given.`,
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runBinary(cmd.OutOrStdout(), op, args[0], args[1])
			},
		}
		c.Flags().BoolVar(&a.noSave, "no-save", false, "do not write the result file")
		c.Flags().BoolVarP(&a.printOut, "print", "p", false, "print the result matrix to stdout")
		rootCmd.AddCommand(c)
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "stats [matrix]",
		Short: "Display matrix statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStats(cmd.OutOrStdout(), args[0])
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "menu",
		Short: "Start the interactive menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu(cmd.OutOrStdout())
		},
	})

	return rootCmd
}

// setup loads the config and builds the logger and workspace.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	level, err := cfg.Logging.ZapLevel()
	if err != nil {
		return err
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.DisableStacktrace = true
	zcfg.Level = zap.NewAtomicLevelAt(level)
	if a.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.ws = workspace.New(cfg.ResultsDir,
		workspace.WithLogger(logger),
		workspace.WithSamples(cfg.SampleFiles...),
		workspace.WithParseOptions(cfg.ParseOptions()...))
	logger.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.String("results_dir", cfg.ResultsDir),
		zap.String("duplicates", cfg.Parse.Duplicates),
		zap.Bool("skip_out_of_range", cfg.Parse.SkipOutOfRange))

	return nil
}
