package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/calckit/internal/player"
)

type fileScenario struct {
	Player fileScenarioPlayer  `toml:"player"`
	Events []fileScenarioEvent `toml:"event"`
}

type fileScenarioPlayer struct {
	ID   int64  `toml:"id"`
	Name string `toml:"name"`
	HP   int    `toml:"hp"`
}

type fileScenarioEvent struct {
	Kind   string `toml:"kind"`
	Amount int    `toml:"amount"`
}

// LoadScenario reads a player scenario file.
func LoadScenario(path string) (player.Scenario, error) {
	var raw fileScenario
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return player.Scenario{}, fmt.Errorf("load scenario: %w", err)
	}

	if strings.TrimSpace(raw.Player.Name) == "" {
		return player.Scenario{}, fmt.Errorf("scenario file %s: player name is required", path)
	}

	s := player.Scenario{
		Start:  player.New(raw.Player.ID, strings.TrimSpace(raw.Player.Name), raw.Player.HP),
		Events: make([]player.Event, 0, len(raw.Events)),
	}
	for i, ev := range raw.Events {
		kind := player.EventKind(strings.ToLower(strings.TrimSpace(ev.Kind)))
		switch kind {
		case player.EventDamage, player.EventHeal:
		default:
			return player.Scenario{}, fmt.Errorf("event[%d]: %w: %q", i, player.ErrUnknownEventKind, ev.Kind)
		}
		if ev.Amount < 0 {
			return player.Scenario{}, fmt.Errorf("event[%d]: amount must be non-negative", i)
		}
		s.Events = append(s.Events, player.Event{Kind: kind, Amount: ev.Amount})
	}
	return s, nil
}
