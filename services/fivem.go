package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// FivemClient is the pass-through client for the game server's HTTP
// API. The remote side owns player state and action execution; this
// client only attaches the shared-secret token and relays JSON. No
// retry, no circuit breaker: a dead game server surfaces as a soft
// error on the admin panel, never as a failed community mutation.
type FivemClient struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

// NewFivemClient builds a client from FIVEM_API_URL / FIVEM_API_TOKEN.
func NewFivemClient() *FivemClient {
	return &FivemClient{
		BaseURL: os.Getenv("FIVEM_API_URL"),
		Token:   os.Getenv("FIVEM_API_TOKEN"),
		Client:  http.DefaultClient,
	}
}

func (f *FivemClient) get(path string) (json.RawMessage, error) {
	if f.BaseURL == "" {
		return nil, fmt.Errorf("game server not configured")
	}

	resp, err := f.Client.Get(f.BaseURL + path)
	if err != nil {
		return nil, fmt.Errorf("game server unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("game server read failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("game server returned %d", resp.StatusCode)
	}
	return json.RawMessage(body), nil
}

// Players fetches the live player list.
func (f *FivemClient) Players() (json.RawMessage, error) {
	return f.get("/api/players")
}

// Data fetches server data (uptime, resources, counts).
func (f *FivemClient) Data() (json.RawMessage, error) {
	return f.get("/api/data")
}

// Item fetches metadata for one inventory item.
func (f *FivemClient) Item(name string) (json.RawMessage, error) {
	return f.get("/api/items/" + name)
}

// ActionRequest is a remote admin action against a live player.
type ActionRequest struct {
	Action   string `json:"action"`
	PlayerID string `json:"player_id,omitempty"`
	Value    string `json:"value,omitempty"`
}

// Action posts an admin action with the shared-secret token injected.
func (f *FivemClient) Action(req ActionRequest) (json.RawMessage, error) {
	if f.BaseURL == "" {
		return nil, fmt.Errorf("game server not configured")
	}

	payload := struct {
		ActionRequest
		Token string `json:"token"`
	}{ActionRequest: req, Token: f.Token}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	resp, err := f.Client.Post(f.BaseURL+"/api/action", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("game server unreachable: %w", err)
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("game server read failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("game server returned %d", resp.StatusCode)
	}
	return json.RawMessage(out), nil
}
