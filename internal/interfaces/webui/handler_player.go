package webui

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-lab/internal/domain/player"
	"github.com/riskibarqy/football-lab/internal/usecase"
)

func (h *Handler) PlayerInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "webui.Handler.PlayerInfo")
	defer span.End()

	if h.playerService == nil {
		h.renderDegraded(ctx, w, pagePlayerInfo, "player info unavailable", fmt.Errorf("%w: player service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	roster, err := h.playerService.Roster(ctx)
	if err != nil {
		h.renderDegraded(ctx, w, pagePlayerInfo, "list players failed", err)
		return
	}

	h.render(ctx, w, pagePlayerInfo, pageData{
		Title: titlePlayerInfo,
		Page:  newPlayerInfoView(player.Profile{Roster: roster}, false),
	})
}

func (h *Handler) PlayerProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "webui.Handler.PlayerProfile")
	defer span.End()

	choice := strings.TrimSpace(r.URL.Query().Get("player_choice"))
	if choice == selectPlayerSentinel {
		http.Redirect(w, r, "/player_info", http.StatusSeeOther)
		return
	}

	if h.playerService == nil {
		h.renderDegraded(ctx, w, pagePlayerInfo, "player profile unavailable", fmt.Errorf("%w: player service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	playerID, err := parsePlayerChoice(choice)
	if err != nil {
		h.renderDegraded(ctx, w, pagePlayerInfo, "bind player choice failed", err)
		return
	}

	profile, err := h.playerService.Profile(ctx, playerID)
	if errors.Is(err, usecase.ErrNotFound) {
		h.render(ctx, w, pagePlayerInfo, pageData{
			Title:  titlePlayerInfo,
			Notice: fmt.Sprintf("No player with id %d.", playerID),
			Page:   newPlayerInfoView(profile, false),
		})
		return
	}
	if err != nil {
		h.renderDegraded(ctx, w, pagePlayerInfo, "get player profile failed", err, "player_id", playerID)
		return
	}

	h.render(ctx, w, pagePlayerInfo, pageData{
		Title: titlePlayerInfo,
		Page:  newPlayerInfoView(profile, true),
	})
}

func (h *Handler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "webui.Handler.AddPlayer")
	defer span.End()

	if h.playerService == nil {
		h.renderDegraded(ctx, w, pagePlayerInfo, "add player unavailable", fmt.Errorf("%w: player service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	item, err := h.bindPlayerForm(r)
	if err != nil {
		h.renderDegraded(ctx, w, pagePlayerInfo, "bind player form failed", err)
		return
	}

	playerID, err := h.playerService.AddPlayer(ctx, item)
	if err != nil {
		h.renderDegraded(ctx, w, pagePlayerInfo, "add player failed", err, "player_name", item.Name)
		return
	}

	target := url.URL{
		Path:     "/player_info/player",
		RawQuery: url.Values{"player_choice": {strconv.FormatInt(playerID, 10)}}.Encode(),
	}
	http.Redirect(w, r, target.String(), http.StatusSeeOther)
}
