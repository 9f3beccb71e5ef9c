package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MrRedFox1223/wdash/internal/api"
	"github.com/MrRedFox1223/wdash/internal/model"
)

// staticToken satisfies api.TokenSource.
type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestListDecodesRecords(t *testing.T) {
	want := []model.WeatherRecord{
		{ID: 1, CityName: "London", Date: "2024-01-15", Temperature: 8},
		{ID: 2, CityName: "Tokyo", Date: "2024-01-15", Temperature: 12},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/weather" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Error("list must not send authorization")
		}
		json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	cli := api.NewClient(srv.URL, staticToken("tok"))
	got, err := cli.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("List = %+v, want %+v", got, want)
	}
}

func TestListStatusErrorCarriesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"detail": "database unavailable"})
	}))
	defer srv.Close()

	cli := api.NewClient(srv.URL, nil)
	_, err := cli.List(context.Background())
	var se *api.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *StatusError", err)
	}
	if se.StatusCode != http.StatusInternalServerError || se.Message != "database unavailable" {
		t.Errorf("StatusError = %+v", se)
	}
}

func TestListMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	cli := api.NewClient(srv.URL, nil)
	if _, err := cli.List(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestListNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	cli := api.NewClient(srv.URL, nil)
	if _, err := cli.List(context.Background()); err == nil {
		t.Fatal("expected network error")
	}
}

func TestCreateSendsBearerAndDecodesID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/weather" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer tok-123")
		}
		var draft model.RecordDraft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			t.Errorf("decoding draft: %v", err)
		}
		json.NewEncoder(w).Encode(model.WeatherRecord{
			ID: 99, CityName: draft.CityName, Date: draft.Date, Temperature: draft.Temperature,
		})
	}))
	defer srv.Close()

	cli := api.NewClient(srv.URL, staticToken("tok-123"))
	created, err := cli.Create(context.Background(), model.RecordDraft{CityName: "Oslo", Date: "2024-03-01", Temperature: 2})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 99 || created.CityName != "Oslo" {
		t.Errorf("created = %+v", created)
	}
}

func TestWriteWithoutTokenProceedsUnauthenticated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("Authorization = %q, want empty", got)
		}
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "unauthorized"})
	}))
	defer srv.Close()

	cli := api.NewClient(srv.URL, staticToken(""))
	_, err := cli.Create(context.Background(), model.RecordDraft{CityName: "Oslo", Date: "2024-03-01", Temperature: 2})
	var se *api.StatusError
	if !errors.As(err, &se) || se.StatusCode != http.StatusUnauthorized {
		t.Fatalf("error = %v, want 401 StatusError", err)
	}
}

func TestUpdatePutsFullRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/weather" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var rec model.WeatherRecord
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			t.Errorf("decoding record: %v", err)
		}
		json.NewEncoder(w).Encode(rec)
	}))
	defer srv.Close()

	cli := api.NewClient(srv.URL, staticToken("tok"))
	rec := model.WeatherRecord{ID: 7, CityName: "Berlin", Date: "2024-01-20", Temperature: 3}
	updated, err := cli.Update(context.Background(), rec)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated != rec {
		t.Errorf("updated = %+v, want %+v", updated, rec)
	}
}

func TestDeleteTargetsRecordPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/weather/42" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	cli := api.NewClient(srv.URL, staticToken("tok"))
	if err := cli.Delete(context.Background(), 42); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestLoginDecodesSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		if body["username"] != "admin" || body["password"] != "secret" {
			t.Errorf("credentials = %v", body)
		}
		json.NewEncoder(w).Encode(model.Session{ID: 1, Username: "admin", Role: "admin", Token: "tok"})
	}))
	defer srv.Close()

	cli := api.NewClient(srv.URL, nil)
	sess, err := cli.Login(context.Background(), "admin", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !sess.IsAdmin() || sess.Token != "tok" {
		t.Errorf("session = %+v", sess)
	}
}

func TestChangePasswordEmptyBodyOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/change_password" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cli := api.NewClient(srv.URL, staticToken("tok"))
	if err := cli.ChangePassword(context.Background(), "old", "new"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
}
