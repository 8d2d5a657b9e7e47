package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danmuck/calckit/internal/config"
	"github.com/danmuck/calckit/internal/logging"
	"github.com/danmuck/calckit/internal/ops"
)

type batchOpResult struct {
	Op    string  `json:"op"`
	A     float64 `json:"a"`
	B     float64 `json:"b"`
	Value float64 `json:"value"`
	Error string  `json:"error,omitempty"`
}

type batchResult struct {
	Results []batchOpResult `json:"results"`
	OK      int             `json:"ok"`
	Failed  int             `json:"failed"`
}

func runCmd(cfg *config.Config) *cobra.Command {
	var file string
	var format string

	c := &cobra.Command{
		Use:   "run",
		Short: "Evaluate a batch of operations from a TOML file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			outFormat, err := resolveFormat(format, cfg)
			if err != nil {
				return err
			}

			batch, err := config.LoadBatch(file)
			if err != nil {
				return err
			}
			logging.L().Debug().Int("ops", len(batch.Ops)).Str("file", file).Msg("batch loaded")

			res := evalBatch(ops.Builtin(), batch)
			if err := printBatch(cmd.OutOrStdout(), outFormat, cfg.Precision, res); err != nil {
				return err
			}

			if res.Failed > 0 {
				return fmt.Errorf("batch failed (%d failed op(s))", res.Failed)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Batch file (required)")
	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json (default from config)")
	_ = c.MarkFlagRequired("file")
	return c
}

func evalBatch(reg *ops.Registry, batch config.Batch) batchResult {
	var res batchResult
	for _, req := range batch.Ops {
		r := batchOpResult{Op: req.Name, A: req.A, B: req.B}

		op, ok := reg.Resolve(req.Name)
		if !ok {
			r.Error = fmt.Sprintf("unknown operation %q", req.Name)
		} else if v, err := op.Apply(req.A, req.B); err != nil {
			r.Error = err.Error()
		} else {
			r.Value = v
		}

		if r.Error == "" {
			res.OK++
		} else {
			res.Failed++
		}
		res.Results = append(res.Results, r)
	}
	return res
}

func printBatch(w io.Writer, format string, precision int, res batchResult) error {
	if format == "json" {
		return printJSON(w, res)
	}

	for _, r := range res.Results {
		if r.Error != "" {
			fmt.Fprintf(w, "- [FAIL] %s(%s, %s): %s\n",
				r.Op, formatNumber(r.A, precision), formatNumber(r.B, precision), r.Error)
			continue
		}
		fmt.Fprintf(w, "- [OK] %s(%s, %s) = %s\n",
			r.Op, formatNumber(r.A, precision), formatNumber(r.B, precision),
			formatNumber(r.Value, precision))
	}
	fmt.Fprintf(w, "\n%d op(s): %d ok / %d failed\n", res.OK+res.Failed, res.OK, res.Failed)
	return nil
}
