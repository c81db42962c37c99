package player

import (
	"fmt"
	"strings"
)

// Player is a roster entry with its season yardage.
type Player struct {
	ID             int64
	Name           string
	Year           string
	Major          string
	PassingYards   int64
	RushingYards   int64
	ReceivingYards int64
	ImageSrc       string
}

// Summary is the (id, name) pair used by the roster picker.
type Summary struct {
	ID   int64
	Name string
}

// Profile is one player's record together with the roster and the number of
// games the player appeared in.
type Profile struct {
	Roster      []Summary
	Player      Player
	GamesPlayed int64
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if p.PassingYards < 0 || p.RushingYards < 0 || p.ReceivingYards < 0 {
		return fmt.Errorf("player yards must not be negative")
	}

	return nil
}

func (p Player) TotalYards() int64 {
	return p.PassingYards + p.RushingYards + p.ReceivingYards
}
