package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/goident/internal/pkg/apperror"
)

type samplePayload struct {
	UserName string `json:"user_name"`
}

func newBodyRequest(body string) *Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	return &Request{Request: req}
}

func TestDecodeBody(t *testing.T) {
	var dst samplePayload
	if err := newBodyRequest(`{"user_name":"taro"}`).DecodeBody(&dst); err != nil {
		t.Fatalf("DecodeBody() error = %v, want nil", err)
	}
	if dst.UserName != "taro" {
		t.Errorf("UserName = %q, want %q", dst.UserName, "taro")
	}
}

func TestDecodeBodyRejectsUnknownFields(t *testing.T) {
	var dst samplePayload
	err := newBodyRequest(`{"user_name":"taro","role":"admin"}`).DecodeBody(&dst)
	if !apperror.Is(err, apperror.KindBadRequest) {
		t.Errorf("DecodeBody() error = %v, want bad request", err)
	}
}

func TestDecodeBodyRejectsTrailingContent(t *testing.T) {
	var dst samplePayload
	err := newBodyRequest(`{"user_name":"taro"}{"user_name":"jiro"}`).DecodeBody(&dst)
	if !apperror.Is(err, apperror.KindBadRequest) {
		t.Errorf("DecodeBody() error = %v, want bad request", err)
	}
}

func TestDecodeBodyRejectsMalformedJSON(t *testing.T) {
	var dst samplePayload
	err := newBodyRequest(`{"user_name":`).DecodeBody(&dst)
	if !apperror.Is(err, apperror.KindBadRequest) {
		t.Errorf("DecodeBody() error = %v, want bad request", err)
	}
}

func TestGetParamInt64(t *testing.T) {
	r := newTestRouter(t, "")

	var got int64
	var gotErr error
	r.GET("/accounts/:id/profile", func(req *Request) (any, error) {
		got, gotErr = req.GetParamInt64("id")
		return nil, gotErr
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/accounts/12345/profile", nil))

	if gotErr != nil {
		t.Fatalf("GetParamInt64() error = %v, want nil", gotErr)
	}
	if got != 12345 {
		t.Errorf("GetParamInt64() = %d, want 12345", got)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/accounts/abc/profile", nil))

	if !apperror.Is(gotErr, apperror.KindBadRequest) {
		t.Errorf("GetParamInt64(non-numeric) error = %v, want bad request", gotErr)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetQueryTrims(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?name=%20taro%20", nil)
	r := &Request{Request: req}

	if got := r.GetQuery("name"); got != "taro" {
		t.Errorf("GetQuery() = %q, want trimmed value", got)
	}

	if got := r.GetQuery("missing"); got != "" {
		t.Errorf("GetQuery(missing) = %q, want empty", got)
	}
}
