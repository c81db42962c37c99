package postgres

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/riskibarqy/football-lab/internal/domain/game"
	"github.com/riskibarqy/football-lab/internal/infrastructure/gateway"
)

const (
	listGamesSQL   = "SELECT id, visitor_name, home_score, visitor_score, game_date, players FROM football_games ORDER BY game_date, id"
	countWinsSQL   = "SELECT COUNT(*) AS score FROM football_games WHERE home_score > visitor_score"
	countLossesSQL = "SELECT COUNT(*) AS score FROM football_games WHERE home_score < visitor_score"
	insertGameSQL  = "INSERT INTO football_games (visitor_name, home_score, visitor_score, game_date, players) VALUES ($1, $2, $3, $4, $5)"
)

func TestGameRepository_Season(t *testing.T) {
	exec, mock := newMockExecutor(t)
	repo := NewGameRepository(exec)

	first := time.Date(2018, time.September, 1, 0, 0, 0, 0, time.UTC)
	second := time.Date(2018, time.September, 8, 0, 0, 0, 0, time.UTC)
	third := time.Date(2018, time.September, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(listGamesSQL).
		WillReturnRows(sqlmock.NewRows([]string{"id", "visitor_name", "home_score", "visitor_score", "game_date", "players"}).
			AddRow(int64(1), "Colorado State", int64(45), int64(13), first, []byte("{1,2}")).
			AddRow(int64(2), "Nebraska", int64(28), int64(33), second, []byte("{1}")).
			AddRow(int64(3), "New Hampshire", int64(14), int64(14), third, []byte("{}")))
	mock.ExpectQuery(countWinsSQL).
		WillReturnRows(sqlmock.NewRows([]string{"score"}).AddRow(int64(1)))
	mock.ExpectQuery(countLossesSQL).
		WillReturnRows(sqlmock.NewRows([]string{"score"}).AddRow(int64(1)))
	mock.ExpectCommit()

	season, err := repo.Season(context.Background())
	if err != nil {
		t.Fatalf("season: %v", err)
	}
	if len(season.Games) != 3 {
		t.Fatalf("unexpected game count: %d", len(season.Games))
	}
	if season.Wins != 1 || season.Losses != 1 || season.Ties() != 1 {
		t.Fatalf("unexpected record: wins=%d losses=%d ties=%d", season.Wins, season.Losses, season.Ties())
	}
	if season.Wins+season.Losses > int64(len(season.Games)) {
		t.Fatalf("wins and losses exceed games played")
	}
	if got := season.Games[0].PlayerIDs; !reflect.DeepEqual(got, []int64{1, 2}) {
		t.Fatalf("unexpected players: %v", got)
	}
	if got := season.Games[1].Outcome(); got != game.OutcomeLoss {
		t.Fatalf("unexpected outcome for second game: %s", got)
	}
	if !season.Games[2].GameDate.Equal(third) {
		t.Fatalf("unexpected date: %s", season.Games[2].GameDate)
	}
	assertExpectations(t, mock)
}

func TestGameRepository_Season_FailureReturnsNoPartialData(t *testing.T) {
	exec, mock := newMockExecutor(t)
	repo := NewGameRepository(exec)

	mock.ExpectBegin()
	mock.ExpectQuery(listGamesSQL).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery(countWinsSQL).
		WillReturnError(&pq.Error{Code: "42703", Message: "column does not exist"})
	mock.ExpectRollback()

	season, err := repo.Season(context.Background())
	if !errors.Is(err, gateway.ErrStatement) {
		t.Fatalf("expected ErrStatement, got %v", err)
	}
	if len(season.Games) != 0 || season.Wins != 0 || season.Losses != 0 {
		t.Fatalf("expected empty season on failure, got %+v", season)
	}
	assertExpectations(t, mock)
}

func TestGameRepository_Create(t *testing.T) {
	exec, mock := newMockExecutor(t)
	repo := NewGameRepository(exec)

	date := time.Date(2018, time.October, 6, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(insertGameSQL).
		WithArgs("Arizona State", int64(28), int64(21), date, pq.Int64Array{1, 3}).
		WillReturnRows(sqlmock.NewRows([]string{}))

	err := repo.Create(context.Background(), game.Game{
		VisitorName:  "Arizona State",
		HomeScore:    28,
		VisitorScore: 21,
		GameDate:     date,
		PlayerIDs:    []int64{1, 3},
	})
	if err != nil {
		t.Fatalf("create game: %v", err)
	}
	assertExpectations(t, mock)
}

func TestGameRepository_Create_NoPlayersStoresEmptyArray(t *testing.T) {
	exec, mock := newMockExecutor(t)
	repo := NewGameRepository(exec)

	date := time.Date(2018, time.October, 13, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(insertGameSQL).
		WithArgs("Washington", int64(0), int64(27), date, "{}").
		WillReturnRows(sqlmock.NewRows([]string{}))

	err := repo.Create(context.Background(), game.Game{
		VisitorName:  "Washington",
		VisitorScore: 27,
		GameDate:     date,
	})
	if err != nil {
		t.Fatalf("create game: %v", err)
	}
	assertExpectations(t, mock)
}
