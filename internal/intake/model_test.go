package intake

import "testing"

func TestFormRequestValidate_Valid(t *testing.T) {
	f := FormRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Leak in attic",
		Consent: true,
	}
	if errs := f.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %q", errs.Message())
	}
}

func TestFormRequestValidate_PhoneOptional(t *testing.T) {
	f := FormRequest{Name: "Jane", Email: "jane@example.com", Message: "m", Consent: true}

	f.Phone = ""
	if errs := f.Validate(); errs.Has(ErrPhoneInvalid) {
		t.Error("absent phone must not be an error")
	}

	f.Phone = "(435) 216-8746"
	if errs := f.Validate(); errs.Has(ErrPhoneInvalid) {
		t.Error("ten digits must pass")
	}

	f.Phone = "216-8746"
	if errs := f.Validate(); !errs.Has(ErrPhoneInvalid) {
		t.Error("fewer than ten digits must fail")
	}
}

func TestFormRequestValidate_AccumulatesInOrder(t *testing.T) {
	f := FormRequest{Email: "bad"}
	errs := f.Validate()

	want := "Name is required, Please enter a valid email address, Project details are required, You must agree to be contacted"
	if errs.Message() != want {
		t.Errorf("unexpected joint message:\n got %q\nwant %q", errs.Message(), want)
	}
}

func TestFormRequestValidate_EmailRequiredBeforeFormat(t *testing.T) {
	f := FormRequest{Name: "Jane", Email: "", Message: "m", Consent: true}
	errs := f.Validate()
	if !errs.Has(ErrEmailRequired) {
		t.Error("empty email must report the required rule")
	}
	if errs.Has(ErrEmailInvalid) {
		t.Error("empty email must not also report the format rule")
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"on", true},
		{"true", true},
		{"1", true},
		{"yes", true},
		{"", false},
		{"false", false},
		{"0", false},
		{"off", false},
		{"  FALSE ", false},
	}
	for _, tt := range tests {
		if got := truthy(tt.in); got != tt.want {
			t.Errorf("truthy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
