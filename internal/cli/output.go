package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/danmuck/calckit/internal/config"
)

// resolveFormat prefers the flag value over the config default.
func resolveFormat(flag string, cfg *config.Config) (string, error) {
	f := strings.TrimSpace(flag)
	if f == "" {
		f = cfg.Format
	}
	switch f {
	case "pretty", "json":
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected pretty|json)", f)
	}
}

func formatNumber(v float64, precision int) string {
	return strconv.FormatFloat(v, 'g', precision, 64)
}

func parseOperand(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid operand %q", raw)
	}
	return v, nil
}

func printJSON(w io.Writer, payload any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
