package webui

import "net/http"

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "webui.Handler.Login")
	defer span.End()

	h.render(ctx, w, pageLogin, pageData{Title: titleLogin})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "webui.Handler.Register")
	defer span.End()

	h.render(ctx, w, pageRegister, pageData{Title: titleRegister})
}
