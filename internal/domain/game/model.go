package game

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Outcome string

const (
	OutcomeWin  Outcome = "W"
	OutcomeLoss Outcome = "L"
	OutcomeTie  Outcome = "T"
)

// Game is one played home game.
type Game struct {
	ID           int64
	VisitorName  string
	HomeScore    int64
	VisitorScore int64
	GameDate     time.Time
	PlayerIDs    []int64
}

func (g Game) Validate() error {
	if strings.TrimSpace(g.VisitorName) == "" {
		return fmt.Errorf("visitor name is required")
	}
	if g.HomeScore < 0 || g.VisitorScore < 0 {
		return fmt.Errorf("scores must not be negative")
	}
	if g.GameDate.IsZero() {
		return fmt.Errorf("game date is required")
	}

	return nil
}

func (g Game) Outcome() Outcome {
	switch {
	case g.HomeScore > g.VisitorScore:
		return OutcomeWin
	case g.HomeScore < g.VisitorScore:
		return OutcomeLoss
	default:
		return OutcomeTie
	}
}

// Season is the full game list with its win and loss counts. Ties count as
// neither.
type Season struct {
	Games  []Game
	Wins   int64
	Losses int64
}

func (s Season) Ties() int64 {
	ties := int64(len(s.Games)) - s.Wins - s.Losses
	if ties < 0 {
		return 0
	}
	return ties
}

// ParsePlayerIDs reads a player list written either as an array literal
// ("{1,2,3}") or as a plain comma or space separated list.
func ParsePlayerIDs(raw string) ([]int64, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimSuffix(strings.TrimPrefix(raw, "{"), "}")

	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	ids := make([]int64, 0, len(fields))
	for _, field := range fields {
		id, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse player id %q: %w", field, err)
		}
		if id <= 0 {
			return nil, fmt.Errorf("player id must be positive: %d", id)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
