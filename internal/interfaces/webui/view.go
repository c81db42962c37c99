package webui

import (
	"time"

	"github.com/riskibarqy/football-lab/internal/domain/color"
	"github.com/riskibarqy/football-lab/internal/domain/game"
	"github.com/riskibarqy/football-lab/internal/domain/player"
)

type homeView struct {
	Colors          []color.FavoriteColor
	SelectedHex     string
	SelectedMessage string
}

type gameRowView struct {
	Date         string
	VisitorName  string
	HomeScore    int64
	VisitorScore int64
	Outcome      string
	PlayerCount  int
}

type teamStatsView struct {
	Games  []gameRowView
	Wins   int64
	Losses int64
	Ties   int64
}

type playerView struct {
	ID             int64
	Name           string
	Year           string
	Major          string
	PassingYards   int64
	RushingYards   int64
	ReceivingYards int64
	TotalYards     int64
	ImageSrc       string
}

type playerInfoView struct {
	Roster      []player.Summary
	Selected    *playerView
	GamesPlayed int64
}

func newHomeView(colors []color.FavoriteColor, selected color.FavoriteColor) homeView {
	return homeView{
		Colors:          colors,
		SelectedHex:     selected.HexValue,
		SelectedMessage: selected.Message,
	}
}

func newTeamStatsView(season game.Season) teamStatsView {
	rows := make([]gameRowView, 0, len(season.Games))
	for _, g := range season.Games {
		rows = append(rows, gameRowView{
			Date:         formatGameDate(g.GameDate),
			VisitorName:  g.VisitorName,
			HomeScore:    g.HomeScore,
			VisitorScore: g.VisitorScore,
			Outcome:      outcomeLabel(g.Outcome()),
			PlayerCount:  len(g.PlayerIDs),
		})
	}

	return teamStatsView{
		Games:  rows,
		Wins:   season.Wins,
		Losses: season.Losses,
		Ties:   season.Ties(),
	}
}

func newPlayerInfoView(profile player.Profile, found bool) playerInfoView {
	view := playerInfoView{Roster: profile.Roster}
	if !found {
		return view
	}

	p := profile.Player
	view.Selected = &playerView{
		ID:             p.ID,
		Name:           p.Name,
		Year:           p.Year,
		Major:          p.Major,
		PassingYards:   p.PassingYards,
		RushingYards:   p.RushingYards,
		ReceivingYards: p.ReceivingYards,
		TotalYards:     p.TotalYards(),
		ImageSrc:       p.ImageSrc,
	}
	view.GamesPlayed = profile.GamesPlayed
	return view
}

func formatGameDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

func outcomeLabel(outcome game.Outcome) string {
	switch outcome {
	case game.OutcomeWin:
		return "Win"
	case game.OutcomeLoss:
		return "Loss"
	default:
		return "Tie"
	}
}
