package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/f1-telemetry-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. The admin routes are only
// mounted when admin is non-nil.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/races", handler.Races)
	mux.HandleFunc("/race", handler.Race)
	mux.HandleFunc("/race/select", handler.SelectRace)
	mux.HandleFunc("/teams", handler.Teams)
	mux.HandleFunc("/teams/select", handler.SelectTeam)
	mux.HandleFunc("/specs", handler.Specs)
	if admin != nil {
		mux.HandleFunc("/admin/refresh", admin.Refresh)
	}
	return mux
}
