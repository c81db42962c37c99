package memory

import (
	"time"

	"github.com/riskibarqy/football-lab/internal/domain/color"
	"github.com/riskibarqy/football-lab/internal/domain/game"
	"github.com/riskibarqy/football-lab/internal/domain/player"
)

// DefaultPlayerImage is the placeholder image given to every new player.
const DefaultPlayerImage = "/resources/img/helmet.svg"

func SeedFavoriteColors() []color.FavoriteColor {
	return []color.FavoriteColor{
		{HexValue: "#CFB87C", Name: "Gold", Message: "Go Buffs!"},
		{HexValue: "#000000", Name: "Black", Message: "Classic and timeless."},
		{HexValue: "#A2A4A3", Name: "Silver", Message: "Always in style."},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 1, Name: "Steven Montez", Year: "Junior", Major: "Communication", PassingYards: 2849, RushingYards: 120, ImageSrc: DefaultPlayerImage},
		{ID: 2, Name: "Laviska Shenault", Year: "Sophomore", Major: "Ethnic Studies", RushingYards: 115, ReceivingYards: 1011, ImageSrc: DefaultPlayerImage},
		{ID: 3, Name: "Travon McMillian", Year: "Senior", Major: "Business", RushingYards: 1009, ReceivingYards: 101, ImageSrc: DefaultPlayerImage},
		{ID: 4, Name: "Sam Noyer", Year: "Sophomore", Major: "Economics", PassingYards: 120, RushingYards: 8, ImageSrc: DefaultPlayerImage},
	}
}

func SeedGames() []game.Game {
	return []game.Game{
		{ID: 1, VisitorName: "Colorado State", HomeScore: 45, VisitorScore: 13, GameDate: seedDate(2018, time.August, 31), PlayerIDs: []int64{1, 2, 3}},
		{ID: 2, VisitorName: "Nebraska", HomeScore: 33, VisitorScore: 28, GameDate: seedDate(2018, time.September, 8), PlayerIDs: []int64{1, 2, 3}},
		{ID: 3, VisitorName: "New Hampshire", HomeScore: 45, VisitorScore: 14, GameDate: seedDate(2018, time.September, 15), PlayerIDs: []int64{1, 2}},
		{ID: 4, VisitorName: "UCLA", HomeScore: 31, VisitorScore: 38, GameDate: seedDate(2018, time.October, 25), PlayerIDs: []int64{1, 3}},
	}
}

func seedDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
