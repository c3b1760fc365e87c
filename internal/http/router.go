package http

import (
	nethttp "net/http"

	"github.com/pbertain/wnbapuff/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. admin may be nil, in which
// case the admin endpoints are not mounted.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/api/v1/", handler.API)
	mux.HandleFunc("/curl/", handler.Curl)
	if admin != nil {
		mux.HandleFunc("/admin/seasons/reload", admin.ReloadSeasons)
	}
	return mux
}
