package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danmuck/calckit/internal/config"
	"github.com/danmuck/calckit/internal/logging"
	"github.com/danmuck/calckit/internal/player"
)

type simulateResult struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	HP      int     `json:"hp"`
	Alive   bool    `json:"alive"`
	Journal []int64 `json:"journal"`
}

func simulateCmd(cfg *config.Config) *cobra.Command {
	var file string
	var format string

	c := &cobra.Command{
		Use:   "simulate",
		Short: "Run a player scenario from a TOML file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			outFormat, err := resolveFormat(format, cfg)
			if err != nil {
				return err
			}

			s, err := config.LoadScenario(file)
			if err != nil {
				return err
			}
			logging.L().Debug().
				Str("player", s.Start.Name).
				Int("events", len(s.Events)).
				Msg("scenario loaded")

			res, err := player.Run(s)
			if err != nil {
				return err
			}

			return printSimulate(cmd.OutOrStdout(), outFormat, simulateResult{
				ID:      res.Final.ID,
				Name:    res.Final.Name,
				HP:      res.Final.HP,
				Alive:   res.Final.Alive(),
				Journal: res.Journal.Take(),
			})
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Scenario file (required)")
	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json (default from config)")
	_ = c.MarkFlagRequired("file")
	return c
}

func printSimulate(w io.Writer, format string, res simulateResult) error {
	if format == "json" {
		return printJSON(w, res)
	}

	status := "alive"
	if !res.Alive {
		status = "down"
	}
	fmt.Fprintf(w, "Player:  %s (id=%d)\n", res.Name, res.ID)
	fmt.Fprintf(w, "Final:   %d hp (%s)\n", res.HP, status)
	fmt.Fprintf(w, "Journal:")
	for _, hp := range res.Journal {
		fmt.Fprintf(w, " %d", hp)
	}
	fmt.Fprintln(w)
	return nil
}
