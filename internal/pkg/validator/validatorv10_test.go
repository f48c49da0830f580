package validator

import (
	"strings"
	"testing"
)

type registerPayload struct {
	UserName string `validate:"required"`
	Password string `validate:"required,password"`
	Email    string `validate:"omitempty,email"`
	Phone    string `validate:"omitempty,e164"`
}

func newTestValidator(t *testing.T) *V10Validator {
	t.Helper()

	v, err := NewV10Validator()
	if err != nil {
		t.Fatalf("NewV10Validator() error = %v", err)
	}

	return v
}

func TestValidateSuccess(t *testing.T) {
	v := newTestValidator(t)

	err := v.Validate(registerPayload{
		UserName: "yamada_taro",
		Password: "correct horse battery",
		Email:    "taro@example.com",
	})
	if err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidateCollectsAllFieldErrors(t *testing.T) {
	v := newTestValidator(t)

	err := v.Validate(registerPayload{Password: "short", Email: "not-an-email"})
	if err == nil {
		t.Fatal("Validate() error = nil, want field errors")
	}

	fieldErrs, ok := err.(V10ValidationError)
	if !ok {
		t.Fatalf("Validate() error type = %T, want V10ValidationError", err)
	}

	values := fieldErrs.Values()
	if len(values) != 3 {
		t.Fatalf("Values() = %v, want 3 entries", values)
	}

	if _, ok := values["user_name"]; !ok {
		t.Error("Values() missing snake_case key user_name")
	}

	if got := values["password"]; got != "Password must be 8-128 characters" {
		t.Errorf("Values()[password] = %q, want password rule message", got)
	}

	if _, ok := values["email"]; !ok {
		t.Error("Values() missing key email")
	}
}

func TestValidatePasswordRule(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "minimum length", password: strings.Repeat("a", 8), valid: true},
		{name: "maximum length", password: strings.Repeat("a", 128), valid: true},
		{name: "too short", password: strings.Repeat("a", 7), valid: false},
		{name: "too long", password: strings.Repeat("a", 129), valid: false},
		{name: "spaces allowed", password: "pass phrase ok", valid: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(registerPayload{UserName: "u", Password: tc.password})
			if tc.valid && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
			if !tc.valid && err == nil {
				t.Error("Validate() error = nil, want password rule violation")
			}
		})
	}
}

func TestValidatePhoneRule(t *testing.T) {
	v := newTestValidator(t)

	err := v.Validate(registerPayload{UserName: "u", Password: "correct horse", Phone: "0312345678"})
	if err == nil {
		t.Fatal("Validate() error = nil, want e164 violation for national format")
	}

	fieldErrs, ok := err.(V10ValidationError)
	if !ok {
		t.Fatalf("Validate() error type = %T, want V10ValidationError", err)
	}
	if got := fieldErrs.Values()["phone"]; got != "Phone must be a phone number in E.164 format" {
		t.Errorf("Values()[phone] = %q, want e164 rule message", got)
	}

	if err := v.Validate(registerPayload{UserName: "u", Password: "correct horse", Phone: "+81312345678"}); err != nil {
		t.Errorf("Validate() error = %v, want nil for international format", err)
	}
}

func TestValidationErrorString(t *testing.T) {
	if got := (V10ValidationError{}).Error(); got != "validation error" {
		t.Errorf("empty Error() = %q, want %q", got, "validation error")
	}

	got := V10ValidationError{"password": "Password must be 8-128 characters"}.Error()
	if !strings.Contains(got, `"password"`) {
		t.Errorf("Error() = %q, want JSON object with field key", got)
	}
}
