package webui

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/riskibarqy/football-lab/internal/domain/color"
	"github.com/riskibarqy/football-lab/internal/usecase"
)

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "webui.Handler.Home")
	defer span.End()

	if h.colorService == nil {
		h.renderDegraded(ctx, w, pageHome, "home page unavailable", fmt.Errorf("%w: color service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	colors, err := h.colorService.List(ctx)
	if err != nil {
		h.renderDegraded(ctx, w, pageHome, "list favorite colors failed", err)
		return
	}

	h.render(ctx, w, pageHome, pageData{
		Title: titleHome,
		Page:  newHomeView(colors, color.FavoriteColor{}),
	})
}

func (h *Handler) PickColor(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "webui.Handler.PickColor")
	defer span.End()

	if h.colorService == nil {
		h.renderDegraded(ctx, w, pageHome, "pick color unavailable", fmt.Errorf("%w: color service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	hexValue := r.URL.Query().Get("color_selection")
	selection, err := h.colorService.Pick(ctx, hexValue)
	if errors.Is(err, usecase.ErrNotFound) {
		h.render(ctx, w, pageHome, pageData{
			Title:  titleHome,
			Notice: fmt.Sprintf("No color matches %s.", color.NormalizeHex(hexValue)),
			Page:   newHomeView(selection.Colors, color.FavoriteColor{}),
		})
		return
	}
	if err != nil {
		h.renderDegraded(ctx, w, pageHome, "pick favorite color failed", err, "color_selection", hexValue)
		return
	}

	h.render(ctx, w, pageHome, pageData{
		Title: titleHome,
		Page:  newHomeView(selection.Colors, selection.Selected),
	})
}

func (h *Handler) AddColor(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "webui.Handler.AddColor")
	defer span.End()

	if h.colorService == nil {
		h.renderDegraded(ctx, w, pageHome, "add color unavailable", fmt.Errorf("%w: color service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	item, err := h.bindColorForm(r)
	if err != nil {
		h.renderDegraded(ctx, w, pageHome, "bind color form failed", err)
		return
	}

	selection, err := h.colorService.Add(ctx, item)
	if err != nil {
		h.renderDegraded(ctx, w, pageHome, "add favorite color failed", err, "color_hex", item.HexValue)
		return
	}

	h.render(ctx, w, pageHome, pageData{
		Title: titleHome,
		Page:  newHomeView(selection.Colors, selection.Selected),
	})
}
