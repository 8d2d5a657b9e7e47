package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danmuck/calckit/internal/config"
	"github.com/danmuck/calckit/internal/logging"
	"github.com/danmuck/calckit/internal/ops"
)

type evalResult struct {
	Op    string  `json:"op"`
	A     float64 `json:"a"`
	B     float64 `json:"b"`
	Value float64 `json:"value"`
}

func evalCmd(cfg *config.Config) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "eval <op> <a> <b>",
		Short: "Evaluate one arithmetic operation",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := resolveFormat(format, cfg)
			if err != nil {
				return err
			}

			reg := ops.Builtin()
			op, ok := reg.Resolve(args[0])
			if !ok {
				return fmt.Errorf("unknown operation %q (see `calcctl ops`)", args[0])
			}

			a, err := parseOperand(args[1])
			if err != nil {
				return err
			}
			b, err := parseOperand(args[2])
			if err != nil {
				return err
			}

			v, err := op.Apply(a, b)
			if err != nil {
				return err
			}
			logging.L().Debug().
				Str("op", args[0]).
				Float64("a", a).
				Float64("b", b).
				Float64("value", v).
				Msg("evaluated")

			return printEval(cmd.OutOrStdout(), outFormat, cfg.Precision, evalResult{
				Op: args[0], A: a, B: b, Value: v,
			})
		},
	}

	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json (default from config)")
	return c
}

func printEval(w io.Writer, format string, precision int, res evalResult) error {
	if format == "json" {
		return printJSON(w, res)
	}
	fmt.Fprintf(w, "%s(%s, %s) = %s\n",
		res.Op,
		formatNumber(res.A, precision),
		formatNumber(res.B, precision),
		formatNumber(res.Value, precision),
	)
	return nil
}
