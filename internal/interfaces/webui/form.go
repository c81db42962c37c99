package webui

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-lab/internal/domain/color"
	"github.com/riskibarqy/football-lab/internal/domain/game"
	"github.com/riskibarqy/football-lab/internal/domain/player"
	"github.com/riskibarqy/football-lab/internal/usecase"
)

// selectPlayerSentinel is the roster picker's placeholder option.
const selectPlayerSentinel = "Select Player"

type colorForm struct {
	HexValue string `validate:"required,hexcolor"`
	Name     string `validate:"required,max=64"`
	Message  string `validate:"max=255"`
}

type playerForm struct {
	Name           string `validate:"required,max=128"`
	Year           string `validate:"max=32"`
	Major          string `validate:"max=128"`
	PassingYards   string `validate:"required,number"`
	RushingYards   string `validate:"required,number"`
	ReceivingYards string `validate:"required,number"`
}

type gameForm struct {
	VisitorName  string `validate:"required,max=128"`
	HomeScore    string `validate:"required,number"`
	VisitorScore string `validate:"required,number"`
	GameDate     string `validate:"required,datetime=2006-01-02"`
	Players      string `validate:"max=1024"`
}

func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.PostFormValue(key))
}

func (h *Handler) bindColorForm(r *http.Request) (color.FavoriteColor, error) {
	if err := r.ParseForm(); err != nil {
		return color.FavoriteColor{}, fmt.Errorf("%w: parse form: %v", usecase.ErrInvalidInput, err)
	}
	form := colorForm{
		HexValue: formValue(r, "color_hex"),
		Name:     formValue(r, "color_name"),
		Message:  formValue(r, "color_message"),
	}
	if err := h.validate(form); err != nil {
		return color.FavoriteColor{}, err
	}

	return color.FavoriteColor{
		HexValue: form.HexValue,
		Name:     form.Name,
		Message:  form.Message,
	}, nil
}

func (h *Handler) bindPlayerForm(r *http.Request) (player.Player, error) {
	if err := r.ParseForm(); err != nil {
		return player.Player{}, fmt.Errorf("%w: parse form: %v", usecase.ErrInvalidInput, err)
	}
	form := playerForm{
		Name:           formValue(r, "player_name"),
		Year:           formValue(r, "player_year"),
		Major:          formValue(r, "player_major"),
		PassingYards:   formValue(r, "player_passing_yards"),
		RushingYards:   formValue(r, "player_rushing_yards"),
		ReceivingYards: formValue(r, "player_receiving_yards"),
	}
	if err := h.validate(form); err != nil {
		return player.Player{}, err
	}

	passing, err := parseCount("player_passing_yards", form.PassingYards)
	if err != nil {
		return player.Player{}, err
	}
	rushing, err := parseCount("player_rushing_yards", form.RushingYards)
	if err != nil {
		return player.Player{}, err
	}
	receiving, err := parseCount("player_receiving_yards", form.ReceivingYards)
	if err != nil {
		return player.Player{}, err
	}

	return player.Player{
		Name:           form.Name,
		Year:           form.Year,
		Major:          form.Major,
		PassingYards:   passing,
		RushingYards:   rushing,
		ReceivingYards: receiving,
	}, nil
}

func (h *Handler) bindGameForm(r *http.Request) (game.Game, error) {
	if err := r.ParseForm(); err != nil {
		return game.Game{}, fmt.Errorf("%w: parse form: %v", usecase.ErrInvalidInput, err)
	}
	form := gameForm{
		VisitorName:  formValue(r, "visitor_name"),
		HomeScore:    formValue(r, "home_score"),
		VisitorScore: formValue(r, "visitor_score"),
		GameDate:     formValue(r, "game_date"),
		Players:      formValue(r, "players"),
	}
	if err := h.validate(form); err != nil {
		return game.Game{}, err
	}

	homeScore, err := parseCount("home_score", form.HomeScore)
	if err != nil {
		return game.Game{}, err
	}
	visitorScore, err := parseCount("visitor_score", form.VisitorScore)
	if err != nil {
		return game.Game{}, err
	}
	gameDate, err := time.Parse(time.DateOnly, form.GameDate)
	if err != nil {
		return game.Game{}, fmt.Errorf("%w: game_date: %v", usecase.ErrInvalidInput, err)
	}
	playerIDs, err := game.ParsePlayerIDs(form.Players)
	if err != nil {
		return game.Game{}, fmt.Errorf("%w: players: %v", usecase.ErrInvalidInput, err)
	}

	return game.Game{
		VisitorName:  form.VisitorName,
		HomeScore:    homeScore,
		VisitorScore: visitorScore,
		GameDate:     gameDate,
		PlayerIDs:    playerIDs,
	}, nil
}

func parsePlayerChoice(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: player_choice must be a player id, got %q", usecase.ErrInvalidInput, raw)
	}
	return id, nil
}

func parseCount(field, raw string) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", usecase.ErrInvalidInput, field, err)
	}
	return v, nil
}

func (h *Handler) validate(form any) error {
	if err := h.validator.Struct(form); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return fmt.Errorf("%w: %s failed %s", usecase.ErrInvalidInput, first.Field(), first.Tag())
		}
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func isInputError(err error) bool {
	return errors.Is(err, usecase.ErrInvalidInput)
}
