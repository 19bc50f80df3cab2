package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFivemActionInjectsToken(t *testing.T) {
	var got struct {
		Action   string `json:"action"`
		PlayerID string `json:"player_id"`
		Token    string `json:"token"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/action" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode action body: %v", err)
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := &FivemClient{BaseURL: server.URL, Token: "shared-secret", Client: server.Client()}

	out, err := client.Action(ActionRequest{Action: "kick", PlayerID: "12"})
	if err != nil {
		t.Fatalf("Action returned error: %v", err)
	}
	if string(out) != `{"ok":true}` {
		t.Fatalf("unexpected response passthrough: %s", out)
	}
	if got.Token != "shared-secret" {
		t.Fatalf("shared-secret token not injected: %+v", got)
	}
	if got.Action != "kick" || got.PlayerID != "12" {
		t.Fatalf("action fields not relayed: %+v", got)
	}
}

func TestFivemPlayersPassthrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/players" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`[{"id":1,"name":"kane"}]`))
	}))
	defer server.Close()

	client := &FivemClient{BaseURL: server.URL, Client: server.Client()}

	out, err := client.Players()
	if err != nil {
		t.Fatalf("Players returned error: %v", err)
	}
	if string(out) != `[{"id":1,"name":"kane"}]` {
		t.Fatalf("unexpected response: %s", out)
	}
}

func TestFivemUnconfigured(t *testing.T) {
	client := &FivemClient{Client: http.DefaultClient}

	if _, err := client.Players(); err == nil {
		t.Fatal("expected error when FIVEM_API_URL is unset")
	}
	if _, err := client.Action(ActionRequest{Action: "kick"}); err == nil {
		t.Fatal("expected error when FIVEM_API_URL is unset")
	}
}

func TestFivemRemoteErrorSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := &FivemClient{BaseURL: server.URL, Client: server.Client()}

	if _, err := client.Data(); err == nil {
		t.Fatal("expected error for remote 500")
	}
}
