package router

import (
	"net/http"
	"strings"

	"github.com/shandysiswandi/goident/internal/pkg/instrument"
	"github.com/shandysiswandi/goident/internal/pkg/uid"
)

const (
	// HeaderCorrelationID tracks a request end-to-end; the response always
	// echoes the id that was used.
	HeaderCorrelationID = "X-Correlation-ID"
	// HeaderRequestID is the alternative name some proxies send.
	HeaderRequestID = "X-Request-ID"
)

// normalizeCID rejects ids that could split a log line or header and caps
// the length so a client cannot inflate every log record.
func normalizeCID(v string) string {
	if strings.ContainsAny(v, "\r\n") {
		return ""
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	const maxLen = 128
	if len(v) > maxLen {
		v = v[:maxLen]
	}
	return v
}

// middlewareCorrelationID adopts the caller's correlation id or mints one,
// stores it on the context for logging and spans, and echoes it back.
func middlewareCorrelationID(uid uid.StringID) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cid := normalizeCID(r.Header.Get(HeaderCorrelationID))
			if cid == "" {
				cid = normalizeCID(r.Header.Get(HeaderRequestID))
			}
			if cid == "" && uid != nil {
				cid = uid.Generate()
			}

			if cid != "" {
				w.Header().Set(HeaderCorrelationID, cid)
				r = r.WithContext(instrument.SetCorrelationID(r.Context(), cid))
			}

			next.ServeHTTP(w, r)
		})
	}
}
