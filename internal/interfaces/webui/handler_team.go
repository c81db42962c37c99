package webui

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/football-lab/internal/usecase"
)

func (h *Handler) TeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "webui.Handler.TeamStats")
	defer span.End()

	if h.teamService == nil {
		h.renderDegraded(ctx, w, pageTeamStats, "team stats unavailable", fmt.Errorf("%w: team service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	season, err := h.teamService.Season(ctx)
	if err != nil {
		h.renderDegraded(ctx, w, pageTeamStats, "get team stats failed", err)
		return
	}

	h.render(ctx, w, pageTeamStats, pageData{
		Title: titleTeamStats,
		Page:  newTeamStatsView(season),
	})
}

func (h *Handler) AddGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "webui.Handler.AddGame")
	defer span.End()

	if h.teamService == nil {
		h.renderDegraded(ctx, w, pagePlayerInfo, "add game unavailable", fmt.Errorf("%w: team service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	item, err := h.bindGameForm(r)
	if err != nil {
		h.renderDegraded(ctx, w, pagePlayerInfo, "bind game form failed", err)
		return
	}

	if err := h.teamService.AddGame(ctx, item); err != nil {
		h.renderDegraded(ctx, w, pagePlayerInfo, "add game failed", err, "visitor_name", item.VisitorName)
		return
	}

	http.Redirect(w, r, "/team_stats", http.StatusSeeOther)
}
