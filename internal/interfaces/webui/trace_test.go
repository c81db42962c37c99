package webui

import "testing"

func TestShouldCreateWebUISpan(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "handler span", in: "webui.Handler.TeamStats", want: true},
		{name: "middleware span", in: "webui.RequestLogging", want: false},
		{name: "recover span", in: "webui.recoverPanic", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldCreateWebUISpan(tt.in)
			if got != tt.want {
				t.Fatalf("shouldCreateWebUISpan(%q)=%v want=%v", tt.in, got, tt.want)
			}
		})
	}
}

func TestShouldTraceRequest(t *testing.T) {
	skipped := []string{"/healthz", " /healthz ", "/readyz", "/resources/css/main.css"}
	for _, path := range skipped {
		if shouldTraceRequest(path) {
			t.Fatalf("expected no tracing for path %q", path)
		}
	}

	traced := []string{"/", "/home", "/team_stats", "/player_info/player"}
	for _, path := range traced {
		if !shouldTraceRequest(path) {
			t.Fatalf("expected tracing for path %q", path)
		}
	}
}
