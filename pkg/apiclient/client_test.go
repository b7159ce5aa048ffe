package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

func TestBearerInjectionAndUnauthorizedReset(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "Invalid or expired token"})
	}))
	defer srv.Close()

	tokens := &MemoryTokens{}
	_ = tokens.Save(Tokens{Access: "acc", Refresh: "ref"})

	called := false
	c := New(srv.URL, WithTokenStore(tokens), WithUnauthorizedHandler(func() { called = true }))

	_, err := c.Me(context.Background())
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("err = %v", err)
	}
	if gotAuth != "Bearer acc" {
		t.Fatalf("authorization header = %q", gotAuth)
	}
	if !called {
		t.Fatal("unauthorized hook not called")
	}
	if left, _ := tokens.Load(); left != (Tokens{}) {
		t.Fatalf("tokens not cleared: %+v", left)
	}
}

func TestUnauthorizedPlainTextStillClearsTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	tokens := &MemoryTokens{}
	_ = tokens.Save(Tokens{Access: "acc", Refresh: "ref"})

	called := false
	c := New(srv.URL, WithTokenStore(tokens), WithUnauthorizedHandler(func() { called = true }))

	_, err := c.MyHouses(context.Background(), 1, 20)
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("err = %v", err)
	}
	if !called {
		t.Fatal("unauthorized hook not called")
	}
	if left, _ := tokens.Load(); left != (Tokens{}) {
		t.Fatalf("tokens not cleared: %+v", left)
	}
}

func TestErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"success":false,"error":"Email already registered"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, _, err := c.SignupTenant(context.Background(), SignupRequest{Email: "a@b.c"})

	apiErr, ok := err.(*Error)
	if !ok || apiErr.Status != http.StatusConflict || apiErr.Message != "Email already registered" {
		t.Fatalf("err = %#v", err)
	}
}

func TestNonJSONFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetHouse(context.Background(), "x")
	if !IsStatus(err, http.StatusBadGateway) {
		t.Fatalf("err = %v", err)
	}
}

func TestHouseQueryEncoding(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"success":true,"data":{"data":[],"page":2,"pageSize":5,"total":0,"totalPages":0}}`))
	}))
	defer srv.Close()

	floor := 1000.0
	p, err := New(srv.URL).ListHouses(context.Background(), HouseQuery{Page: 2, PageSize: 5, City: "Nairobi", MinPrice: &floor})
	if err != nil {
		t.Fatal(err)
	}
	if got != "city=Nairobi&minPrice=1000&page=2&pageSize=5" {
		t.Fatalf("query = %q", got)
	}
	if p.Page != 2 || p.Data == nil {
		t.Fatalf("page = %+v", p)
	}
}

func TestFileTokens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	s := NewFileTokens(path)

	if got, err := s.Load(); err != nil || got != (Tokens{}) {
		t.Fatalf("missing file: %+v %v", got, err)
	}

	want := Tokens{Access: "a", Refresh: "r"}
	if err := s.Save(want); err != nil {
		t.Fatal(err)
	}
	if got, _ := NewFileTokens(path).Load(); got != want {
		t.Fatalf("reloaded %+v", got)
	}

	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
	if got, _ := s.Load(); got != (Tokens{}) {
		t.Fatalf("after clear %+v", got)
	}
}
