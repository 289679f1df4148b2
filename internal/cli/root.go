package cli

import (
	"fmt"
	"os"

	"github.com/henderiw/rangelist/internal/logger"
	"github.com/henderiw/rangelist/pkg/rangelist"
	"github.com/henderiw/rangelist/pkg/script"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	cfgFile string
	config  *Config
	log     *zap.Logger
}

// NewRootCommand returns the rangelist command tree.
func NewRootCommand(version, commit, buildDate string) *cobra.Command {
	a := &app{log: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:           "rangelist",
		Short:         "Maintain a list of half-open integer ranges",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig(a.cfgFile, cmd)
			if err != nil {
				return err
			}
			a.config = config
			a.log = logger.NewLogger(config.Debug)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default ./.rangelist.yaml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.Bool("trace", false, "print the list after every step")

	rootCmd.AddCommand(
		newRunCommand(a),
		newEvalCommand(a),
	)
	return rootCmd
}

func newRunCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run script.yaml",
		Short: "Apply a YAML list of add/remove steps",
		Example: `  # script.yaml
  - add: [1, 5]
  - remove: [2, 3]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "cannot read script %s", args[0])
			}
			s, err := script.Parse(data)
			if err != nil {
				return err
			}
			return a.apply(cmd, s)
		},
	}
}

func newEvalCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "eval (add|remove) range [(add|remove) range ...]",
		Short:   "Apply add/remove steps given on the command line",
		Example: "  rangelist eval add 1-5 add 10-20 remove '[3, 12)'",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || len(args)%2 != 0 {
				return fmt.Errorf("expects pairs of operation and range, received %d arg(s)", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := parseSteps(args)
			if err != nil {
				return err
			}
			return a.apply(cmd, s)
		},
	}
}

func parseSteps(args []string) (script.Script, error) {
	s := make(script.Script, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		r, err := rangelist.ParseRange(args[i+1])
		if err != nil {
			return nil, err
		}
		switch script.Op(args[i]) {
		case script.OpAdd:
			s = append(s, script.AddStep(r))
		case script.OpRemove:
			s = append(s, script.RemoveStep(r))
		default:
			return nil, errors.Wrapf(rangelist.ErrInvalidArgument, "unknown operation %q", args[i])
		}
	}
	return s, nil
}

func (a *app) apply(cmd *cobra.Command, s script.Script) error {
	out := cmd.OutOrStdout()

	l, err := a.config.InitialList()
	if err != nil {
		return err
	}
	a.log.Debug("initial list", zap.Stringer("list", l))

	err = s.Apply(l, func(i int, op script.Op, r rangelist.Range, l *rangelist.RangeList) {
		a.log.Debug("step applied",
			zap.Int("step", i),
			zap.String("op", string(op)),
			zap.Stringer("range", r),
			zap.Int("len", l.Len()),
		)
		if a.config.Trace {
			fmt.Fprintf(out, "%s %s: %s\n", op, r, l)
		}
	})
	if err != nil {
		a.log.Error("script rejected", zap.Error(err))
		return err
	}
	return l.Print(out)
}
