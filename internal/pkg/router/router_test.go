package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/goident/internal/pkg/apperror"
	"github.com/shandysiswandi/goident/internal/pkg/clock"
	"github.com/shandysiswandi/goident/internal/pkg/config"
	"github.com/shandysiswandi/goident/internal/pkg/instrument"
)

type fixedID struct{ v string }

func (f fixedID) Generate() string { return f.v }

var testNow = time.Unix(1700000000, 0)

func newTestRouter(t *testing.T, yaml string) *Router {
	t.Helper()

	var cfg config.Config
	if yaml != "" {
		v, err := config.NewViperFromBytes("yaml", []byte(yaml))
		if err != nil {
			t.Fatalf("NewViperFromBytes() error = %v", err)
		}
		cfg = v
	}

	return NewRouter(Config{
		Config:     cfg,
		UUID:       fixedID{v: "generated-cid"},
		Clock:      clock.NewFake(testNow),
		Instrument: instrument.NewNoop(),
	})
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, rec.Body.String())
	}
	return body
}

func TestRouterSuccessEnvelope(t *testing.T) {
	r := newTestRouter(t, "")
	r.GET("/things", func(_ *Request) (any, error) {
		return map[string]string{"name": "thing-1"}, nil
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/things", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["message"] != "success" {
		t.Errorf("message = %v, want %q", body["message"], "success")
	}
	if body["timestamp"] != float64(testNow.Unix()) {
		t.Errorf("timestamp = %v, want %d", body["timestamp"], testNow.Unix())
	}

	data, ok := body["data"].(map[string]any)
	if !ok || data["name"] != "thing-1" {
		t.Errorf("data = %v, want payload under data key", body["data"])
	}
}

type createdResponse struct {
	ID string `json:"id"`
}

func (createdResponse) StatusCode() int { return http.StatusCreated }
func (createdResponse) Message() string { return "resource created" }

func TestRouterSuccessOverrides(t *testing.T) {
	r := newTestRouter(t, "")
	r.POST("/things", func(_ *Request) (any, error) {
		return createdResponse{ID: "42"}, nil
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/things", nil))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	if body := decodeBody(t, rec); body["message"] != "resource created" {
		t.Errorf("message = %v, want override", body["message"])
	}
}

func TestRouterNilResponseIsNoContent(t *testing.T) {
	r := newTestRouter(t, "")
	r.DELETE("/things/:id", func(_ *Request) (any, error) {
		return nil, nil
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/things/7", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}

func TestRouterClientErrorEnvelope(t *testing.T) {
	r := newTestRouter(t, "")
	r.POST("/things", func(_ *Request) (any, error) {
		return nil, apperror.New(apperror.KindUnprocessableContent, "user_name is required")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/things", nil))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["status"] != float64(http.StatusUnprocessableEntity) {
		t.Errorf("status field = %v, want 422", body["status"])
	}
	if body["message"] != "Unprocessable Entity" {
		t.Errorf("message = %v, want reason phrase", body["message"])
	}
	if body["detail"] != "user_name is required" {
		t.Errorf("detail = %v, want original detail", body["detail"])
	}
	if _, present := body["instance"]; present {
		t.Error("instance should never be serialized")
	}
	if body["timestamp"] != float64(testNow.Unix()) {
		t.Errorf("timestamp = %v, want %d", body["timestamp"], testNow.Unix())
	}
}

func TestRouterServerErrorIsRedacted(t *testing.T) {
	r := newTestRouter(t, "")
	r.GET("/broken", func(_ *Request) (any, error) {
		return nil, apperror.New(apperror.KindInternalServerError, "database error code 42P01: relation missing")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/broken", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	body := decodeBody(t, rec)
	if _, present := body["detail"]; present {
		t.Errorf("detail leaked on 5xx: %v", body["detail"])
	}
	if strings.Contains(rec.Body.String(), "42P01") {
		t.Errorf("response leaks internal detail: %s", rec.Body.String())
	}
}

func TestRouterUnknownErrorBecomesServerError(t *testing.T) {
	r := newTestRouter(t, "")
	r.GET("/weird", func(_ *Request) (any, error) {
		return nil, http.ErrBodyNotAllowed
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/weird", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestRouterNotFound(t *testing.T) {
	r := newTestRouter(t, "")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	if body := decodeBody(t, rec); body["detail"] != "endpoint not found" {
		t.Errorf("detail = %v, want endpoint not found", body["detail"])
	}
}

func TestRouterMethodNotAllowed(t *testing.T) {
	r := newTestRouter(t, "")
	r.GET("/things", func(_ *Request) (any, error) { return nil, nil })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/things", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}

	if body := decodeBody(t, rec); body["status"] != float64(http.StatusMethodNotAllowed) {
		t.Errorf("status field = %v, want 405", body["status"])
	}
}

func TestRouterRecoversFromPanic(t *testing.T) {
	r := newTestRouter(t, "")
	r.GET("/boom", func(_ *Request) (any, error) {
		panic("kaboom")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	if body := decodeBody(t, rec); body["message"] != "Internal Server Error" {
		t.Errorf("message = %v, want Internal Server Error", body["message"])
	}
}

func TestRouterCorrelationID(t *testing.T) {
	r := newTestRouter(t, "")
	r.GET("/things", func(_ *Request) (any, error) { return nil, nil })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/things", nil)
	req.Header.Set(HeaderCorrelationID, "inbound-cid")
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get(HeaderCorrelationID); got != "inbound-cid" {
		t.Errorf("correlation header = %q, want echoed value", got)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/things", nil))

	if got := rec.Header().Get(HeaderCorrelationID); got != "generated-cid" {
		t.Errorf("correlation header = %q, want generated value", got)
	}
}

func TestRouterMaintenance(t *testing.T) {
	r := newTestRouter(t, `
app:
  maintenance:
    endpoints: "/api/v1/account/register"
`)
	r.POST("/api/v1/account/register", func(_ *Request) (any, error) { return nil, nil })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/account/register", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}

	if body := decodeBody(t, rec); body["detail"] != "service is under maintenance" {
		t.Errorf("detail = %v, want maintenance detail", body["detail"])
	}
}
