package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func validForm() Form {
	return Form{
		GuestName:  "Jane Doe",
		GuestEmail: "jane@x.com",
		GuestPhone: "+1 (555) 123-4567",
		PartySize:  4,
		DateTime:   "2026-09-12T19:30",
	}
}

// ---------- Schema ----------

func TestFormValidate(t *testing.T) {
	if errs := validForm().Validate(); errs != nil {
		t.Errorf("Validate() = %v, want nil", errs)
	}

	tests := []struct {
		name   string
		mutate func(*Form)
		field  string
	}{
		{"one-char name", func(f *Form) { f.GuestName = "J" }, "guestName"},
		{"bad email", func(f *Form) { f.GuestEmail = "nope" }, "guestEmail"},
		{"short phone", func(f *Form) { f.GuestPhone = "555-1234" }, "guestPhone"},
		{"letters in phone", func(f *Form) { f.GuestPhone = "call me maybe" }, "guestPhone"},
		{"party too small", func(f *Form) { f.PartySize = 0 }, "partySize"},
		{"party too large", func(f *Form) { f.PartySize = 21 }, "partySize"},
		{"missing date", func(f *Form) { f.DateTime = "" }, "reservationDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			errs := form.Validate()
			if errs == nil {
				t.Fatal("Validate() = nil, want field errors")
			}
			if _, ok := errs[tt.field]; !ok {
				t.Errorf("Validate() = %v, missing field %q", errs, tt.field)
			}
		})
	}
}

func TestFormValidatePhoneShapes(t *testing.T) {
	// The client accepts digits, spaces, +, - and parentheses; the
	// server only checks length.
	for _, phone := range []string{"+15551234567", "555 123 4567", "(555) 123-4567", "5551234567"} {
		form := validForm()
		form.GuestPhone = phone
		if errs := form.Validate(); errs != nil {
			t.Errorf("Validate() phone=%q = %v, want nil", phone, errs)
		}
	}
}

func TestReservationInstantDefaultsTime(t *testing.T) {
	loc := time.UTC

	form := validForm()
	form.DateTime = "2026-09-12"

	when, err := form.ReservationInstant(loc)
	if err != nil {
		t.Fatalf("ReservationInstant() error = %v", err)
	}
	if when.Hour() != 19 || when.Minute() != 0 {
		t.Errorf("defaulted time = %02d:%02d, want 19:00", when.Hour(), when.Minute())
	}

	form.DateTime = "2026-09-12T20:30"
	when, err = form.ReservationInstant(loc)
	if err != nil {
		t.Fatalf("ReservationInstant() error = %v", err)
	}
	if when.Hour() != 20 || when.Minute() != 30 {
		t.Errorf("explicit time = %02d:%02d, want 20:30", when.Hour(), when.Minute())
	}
}

// ---------- Submit ----------

func TestSubmitPostsValidForm(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/reservations" {
			t.Errorf("path = %q, want /api/reservations", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Reservation created successfully!",
		})
	}))
	defer srv.Close()

	result, err := New(srv.URL).Submit(context.Background(), validForm())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if !result.Success || result.Message != "Reservation created successfully!" {
		t.Errorf("Submit() result = %+v", result)
	}
	if result.GuestName != "Jane Doe" {
		t.Errorf("result.GuestName = %q, want Jane Doe", result.GuestName)
	}
	if received["guestName"] != "Jane Doe" {
		t.Errorf("payload guestName = %v", received["guestName"])
	}
	if _, ok := received["status"]; ok {
		t.Error("payload must not carry a status field")
	}
}

func TestSubmitInvalidFormSkipsNetwork(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	form := validForm()
	form.GuestPhone = "123"

	_, err := New(srv.URL).Submit(context.Background(), form)

	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("Submit() error = %v, want FieldErrors", err)
	}
	if calls != 0 {
		t.Errorf("server received %d calls, want 0", calls)
	}
}

func TestSubmitServerFailureIsGeneric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error_code":"failed_to_create_reservation"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Submit(context.Background(), validForm())
	if err == nil {
		t.Fatal("Submit() error = nil, want generic failure")
	}
	if err.Error() != GenericFailureMessage {
		t.Errorf("Submit() error = %q, want %q", err.Error(), GenericFailureMessage)
	}
}
