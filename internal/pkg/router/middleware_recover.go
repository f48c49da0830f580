package router

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/shandysiswandi/goident/internal/pkg/apperror"
	"github.com/shandysiswandi/goident/internal/pkg/clock"
	"github.com/shandysiswandi/goident/internal/pkg/stacktrace"
)

//nolint:errcheck,gosec,contextcheck // ignore error
func middlewareRecoverer(clk clock.Clocker) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					//nolint:err113,errorlint // this must compare directly
					if rvr == http.ErrAbortHandler {
						panic(rvr)
					}

					w.Header().Set("Content-Type", "application/json; charset=utf-8")

					if r.Header.Get("Connection") != "Upgrade" {
						w.WriteHeader(http.StatusInternalServerError)
					}

					paths := stacktrace.InternalPaths(debug.Stack())
					if len(paths) == 0 {
						slog.ErrorContext(r.Context(), "panic on the server trace debug", "because", rvr, "stack", string(debug.Stack()))
					} else {
						slog.ErrorContext(r.Context(), "panic on the server", "because", rvr, "stack", paths)
					}

					json.NewEncoder(w).Encode(apperror.Body{
						Status:    http.StatusInternalServerError,
						Message:   http.StatusText(http.StatusInternalServerError),
						Timestamp: clk.Now().Unix(),
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
