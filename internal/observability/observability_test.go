package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/football-lab/internal/config"
	"github.com/riskibarqy/football-lab/internal/platform/logging"
)

func TestNewPprofServer(t *testing.T) {
	if srv := NewPprofServer(config.Config{PprofEnabled: false}, logging.NewNop()); srv != nil {
		t.Fatalf("expected no server when disabled")
	}

	srv := NewPprofServer(config.Config{PprofEnabled: true, PprofAddr: ":6060"}, logging.NewNop())
	if srv == nil {
		t.Fatalf("expected server when enabled")
	}
	if srv.Addr != ":6060" {
		t.Fatalf("unexpected addr: %q", srv.Addr)
	}

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected pprof index status: %d", rec.Code)
	}
}

func TestStopPprofServer_Nil(t *testing.T) {
	if err := StopPprofServer(nil, logging.NewNop(), time.Second); err != nil {
		t.Fatalf("stop nil server: %v", err)
	}
}

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{PyroscopeEnabled: false}, logging.NewNop())
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}
