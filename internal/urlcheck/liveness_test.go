package urlcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	in := []string{" https://a.com ", "", "https://a.com", "https://b.com"}
	want := []string{"https://a.com", "https://b.com"}

	if got := Normalize(in); !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalizeCap(t *testing.T) {
	in := make([]string, 30)
	for i := range in {
		in[i] = "https://site.com/" + string(rune('a'+i))
	}

	if got := Normalize(in); len(got) != MaxURLsPerRequest {
		t.Errorf("Expected %d URLs, got %d", MaxURLsPerRequest, len(got))
	}
}

func TestValidateOneStatuses(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantOK     bool
		wantReason string
	}{
		{"ok", 200, true, ""},
		{"unauthorized is still valid", 401, true, ""},
		{"forbidden is still valid", 403, true, ""},
		{"not found", 404, false, ReasonNotFound},
		{"gone", 410, false, ReasonNotFound},
		{"server error", 500, false, ReasonServerError},
		{"teapot", 418, false, ReasonNotOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			v := NewValidator()
			out := v.validateOne(context.Background(), srv.URL)

			if out.OK != tt.wantOK {
				t.Errorf("OK = %v, want %v", out.OK, tt.wantOK)
			}
			if out.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", out.Reason, tt.wantReason)
			}
			if out.Status == nil || *out.Status != tt.status {
				t.Errorf("Status = %v, want %d", out.Status, tt.status)
			}
		})
	}
}

func TestValidateOneFallsBackToRangedGet(t *testing.T) {
	var sawRange string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		sawRange = r.Header.Get("Range")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	v := NewValidator()
	out := v.validateOne(context.Background(), srv.URL)

	if !out.OK {
		t.Errorf("Expected OK after ranged GET fallback, got %+v", out)
	}
	if sawRange != "bytes=0-2048" {
		t.Errorf("Expected ranged GET request, got Range=%q", sawRange)
	}
}

func TestValidateOneNonHTTP(t *testing.T) {
	v := NewValidator()

	out := v.validateOne(context.Background(), "ftp://files.example/path")
	if out.OK || out.Reason != ReasonNotHTTPURL {
		t.Errorf("Expected not_http_url, got %+v", out)
	}
	if out.Status != nil {
		t.Errorf("Expected nil status, got %v", out.Status)
	}
}

func TestValidateOneNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	v := NewValidator()
	out := v.validateOne(context.Background(), url)

	if out.OK || out.Reason != ReasonNetworkError {
		t.Errorf("Expected network_error for closed server, got %+v", out)
	}
}

func TestValidateAllAndPartition(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/dead" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	v := NewValidator()
	outcomes := v.ValidateAll(context.Background(), []string{srv.URL + "/live", srv.URL + "/dead"})

	if len(outcomes) != 2 {
		t.Fatalf("Expected 2 outcomes, got %d", len(outcomes))
	}

	valid, invalid := Partition(outcomes)
	if len(valid) != 1 || valid[0] != srv.URL+"/live" {
		t.Errorf("Unexpected valid set: %v", valid)
	}
	if len(invalid) != 1 || invalid[0] != srv.URL+"/dead" {
		t.Errorf("Unexpected invalid set: %v", invalid)
	}
}
