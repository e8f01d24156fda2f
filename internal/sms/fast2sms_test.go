package sms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glofwatch/glof-alerts/internal/config"
)

func testConfig(url string) config.SMSConfig {
	return config.SMSConfig{
		APIKey:   "test-key",
		SenderID: "GLOF",
		Route:    "q",
		BaseURL:  url,
		Timeout:  5 * time.Second,
	}
}

func TestNormalizeNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+91 98765-43210", "9876543210"},
		{"+919876543210", "9876543210"},
		{"98765 43210", "9876543210"},
		{"9876543210", "9876543210"},
	}

	for _, tt := range tests {
		if got := NormalizeNumber(tt.in); got != tt.want {
			t.Errorf("NormalizeNumber(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSend_PayloadAndSuccess(t *testing.T) {
	var gotNumbers, gotAuth, gotRoute string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parsing form: %v", err)
		}
		gotNumbers = r.PostFormValue("numbers")
		gotRoute = r.PostFormValue("route")
		gotAuth = r.Header.Get("authorization")
		w.Write([]byte(`{"return": true, "message": ["SMS sent successfully."]}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	res := client.Send(context.Background(), []string{"+91 98765-43210"}, "test alert")

	if !res.OK {
		t.Fatalf("expected success, got detail %q", res.Detail)
	}
	if gotNumbers != "9876543210" {
		t.Errorf("numbers = %q, want normalized 9876543210", gotNumbers)
	}
	if gotAuth != "test-key" {
		t.Errorf("authorization header = %q", gotAuth)
	}
	if gotRoute != "q" {
		t.Errorf("route = %q", gotRoute)
	}
}

func TestSend_MultipleNumbersJoined(t *testing.T) {
	var gotNumbers string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotNumbers = r.PostFormValue("numbers")
		w.Write([]byte(`{"return": true}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	client.Send(context.Background(), []string{"+918956911720", "+919765743155"}, "msg")

	if gotNumbers != "8956911720,9765743155" {
		t.Errorf("numbers = %q, want comma-joined normalized list", gotNumbers)
	}
}

func TestSend_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"return": false, "message": "Invalid Authentication"}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	res := client.Send(context.Background(), []string{"9876543210"}, "msg")

	if res.OK {
		t.Error("provider-level error should report failure")
	}
}

func TestSend_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	res := client.Send(context.Background(), []string{"9876543210"}, "msg")

	if res.OK {
		t.Error("non-2xx status should report failure")
	}
}

func TestSend_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewClient(testConfig(srv.URL))
	res := client.Send(context.Background(), []string{"9876543210"}, "msg")

	if res.OK {
		t.Error("transport error should report failure")
	}
	if res.Detail == "" {
		t.Error("transport error should carry a detail string")
	}
}
