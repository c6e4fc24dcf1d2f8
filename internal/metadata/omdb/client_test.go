package omdb_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"reelsort/internal/metadata/omdb"
)

func fastClient(t *testing.T, baseURL string, opts ...omdb.Option) *omdb.Client {
	t.Helper()
	opts = append(opts, omdb.WithRetrySchedule(time.Millisecond, time.Millisecond))
	client, err := omdb.New("test-key", baseURL, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}

func TestLookupSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("t"); got != "Inception" {
			t.Errorf("title query = %q", got)
		}
		if got := r.URL.Query().Get("apikey"); got != "test-key" {
			t.Errorf("apikey query = %q", got)
		}
		w.Write([]byte(`{"Response":"True","Title":"Inception","Year":"2010","Genre":"Action, Sci-Fi","Poster":"http://img/i.jpg"}`))
	}))
	defer server.Close()

	details, err := fastClient(t, server.URL).Lookup(context.Background(), "Inception")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if details == nil || !details.Found() {
		t.Fatal("expected a match")
	}
	if details.Title() != "Inception" || details.Year() != "2010" {
		t.Fatalf("unexpected fields: %v %v", details.Title(), details.Year())
	}
	genres := details.Genres()
	if len(genres) != 2 || genres[0] != "Action" || genres[1] != "Sci-Fi" {
		t.Fatalf("genres = %v", genres)
	}
}

func TestLookupNotFoundExhaustsRetriesAndReturnsAbsent(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
	}))
	defer server.Close()

	details, err := fastClient(t, server.URL).Lookup(context.Background(), "Nope")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if details != nil {
		t.Fatalf("expected absent metadata, got %v", details)
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("provider called %d times, want exactly 3", got)
	}
}

func TestLookupServerErrorExhaustsRetries(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	details, err := fastClient(t, server.URL).Lookup(context.Background(), "Inception")
	if err != nil || details != nil {
		t.Fatalf("Lookup = %v, %v; want absent, nil", details, err)
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("provider called %d times, want 3", got)
	}
}

type failingTransport struct {
	calls atomic.Int64
}

func (f *failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	f.calls.Add(1)
	return nil, errors.New("connection refused")
}

func TestLookupTransportFailureBacksOffAndReturnsAbsent(t *testing.T) {
	transport := &failingTransport{}
	client := fastClient(t, "http://omdb.invalid", omdb.WithHTTPClient(&http.Client{Transport: transport}))

	details, err := client.Lookup(context.Background(), "Inception")
	if err != nil || details != nil {
		t.Fatalf("Lookup = %v, %v; want absent, nil", details, err)
	}
	if got := transport.calls.Load(); got != 3 {
		t.Fatalf("transport attempted %d times, want 3", got)
	}
}

func TestLookupHonorsCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Response":"False"}`))
	}))
	defer server.Close()

	client, err := omdb.New("k", server.URL, omdb.WithRetrySchedule(time.Minute, time.Minute))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := client.Lookup(ctx, "Inception"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}

func TestLookupRejectsEmptyTitle(t *testing.T) {
	client := fastClient(t, "http://omdb.invalid")
	if _, err := client.Lookup(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty title")
	}
}

func TestDetailsPosterSentinel(t *testing.T) {
	d := omdb.Details{"Poster": "N/A"}
	if d.Poster() != "" {
		t.Fatal("N/A poster should read as absent")
	}
}
