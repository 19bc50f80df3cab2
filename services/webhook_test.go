package services

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"rp-community-api/models"

	"gorm.io/datatypes"
)

type capturedWebhook struct {
	Content string `json:"content"`
	Embeds  []struct {
		Title  string `json:"title"`
		Fields []struct {
			Name  string `json:"name"`
			Value string `json:"value"`
		} `json:"fields"`
	} `json:"embeds"`
}

func captureServer(t *testing.T, hits *int64, last *capturedWebhook) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		body, _ := io.ReadAll(r.Body)
		if last != nil {
			json.Unmarshal(body, last)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestSendSkipsEmptyURL(t *testing.T) {
	var hits int64
	server := captureServer(t, &hits, nil)
	notifier := &Notifier{Client: server.Client()}

	notifier.Send("", "hi", Embed{Title: "ignored"})

	if hits != 0 {
		t.Fatalf("expected no delivery for empty URL, got %d", hits)
	}
}

func TestNotifySubmissionWithoutPendingWebhook(t *testing.T) {
	var hits int64
	server := captureServer(t, &hits, nil)
	notifier := &Notifier{Client: server.Client()}

	app := &models.Application{Status: models.StatusPending, User: models.User{DiscordID: "555", Username: "kane"}}
	appType := &models.ApplicationType{Name: "Police Department"} // webhook_pending unset

	notifier.NotifySubmission(app, appType)

	if hits != 0 {
		t.Fatalf("expected no outbound call when webhook_pending is unset, got %d", hits)
	}
}

func TestNotifySubmissionEmbedLayout(t *testing.T) {
	var hits int64
	var last capturedWebhook
	server := captureServer(t, &hits, &last)
	notifier := &Notifier{Client: server.Client()}

	url := server.URL
	app := &models.Application{
		Status:  models.StatusPending,
		Content: datatypes.JSON(`{"1":"Kane","2":"Yes"}`),
		User:    models.User{DiscordID: "555", Username: "kane", Discriminator: "0"},
	}
	appType := &models.ApplicationType{Name: "Police Department", WebhookPending: &url}

	notifier.NotifySubmission(app, appType)

	if hits != 1 {
		t.Fatalf("expected one delivery, got %d", hits)
	}
	if last.Content != "<@555>" {
		t.Fatalf("applicant not mentioned: %q", last.Content)
	}
	fields := last.Embeds[0].Fields
	if len(fields) != 3 ||
		fields[0].Name != "Applicant" || fields[0].Value != "kane" ||
		fields[1].Name != "Application Type" || fields[1].Value != "Police Department" ||
		fields[2].Name != "Questions Answered" || fields[2].Value != "2" {
		t.Fatalf("unexpected field layout: %+v", fields)
	}
}

func TestNotifyApplicantEmbedLayout(t *testing.T) {
	var hits int64
	var last capturedWebhook
	server := captureServer(t, &hits, &last)
	notifier := &Notifier{Client: server.Client()}

	url := server.URL
	notes := "Welcome aboard"
	app := &models.Application{
		Status: models.StatusAccepted,
		Notes:  &notes,
		User:   models.User{DiscordID: "555", Username: "kane", Discriminator: "0"},
	}
	appType := &models.ApplicationType{Name: "Police Department", WebhookAccepted: &url}

	notifier.NotifyApplicant(app, appType)

	if hits != 1 {
		t.Fatalf("expected one delivery, got %d", hits)
	}
	if last.Content != "<@555>" {
		t.Fatalf("applicant not mentioned: %q", last.Content)
	}
	fields := last.Embeds[0].Fields
	if len(fields) != 3 ||
		fields[0].Name != "Decision" || fields[0].Value != "Accepted" ||
		fields[1].Name != "Application Type" || fields[1].Value != "Police Department" ||
		fields[2].Name != "Staff Notes" || fields[2].Value != "Welcome aboard" {
		t.Fatalf("unexpected field layout: %+v", fields)
	}
}

func TestNotifyStaffLogEmbedLayout(t *testing.T) {
	var hits int64
	var last capturedWebhook
	server := captureServer(t, &hits, &last)
	notifier := &Notifier{Client: server.Client()}

	url := server.URL
	app := &models.Application{
		Status: models.StatusDeclined,
		User:   models.User{DiscordID: "555", Username: "kane", Discriminator: "1234"},
	}
	appType := &models.ApplicationType{Name: "Police Department", WebhookLog: &url}

	notifier.NotifyStaffLog(app, appType, "AdminPerson")

	if hits != 1 {
		t.Fatalf("expected one delivery, got %d", hits)
	}
	fields := last.Embeds[0].Fields
	if len(fields) != 4 ||
		fields[0].Name != "Staff Member" || fields[0].Value != "AdminPerson" ||
		fields[1].Name != "Action" || fields[1].Value != "Declined" ||
		fields[2].Name != "Applicant" || fields[2].Value != "kane#1234" ||
		fields[3].Name != "Notes" || fields[3].Value != "-" {
		t.Fatalf("unexpected field layout: %+v", fields)
	}
}

func TestSendSwallowsDeliveryFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	notifier := &Notifier{Client: server.Client()}
	notifier.Send(server.URL, "", Embed{Title: "doomed"})

	// A dead endpoint must also be silent.
	server.Close()
	notifier.Send(server.URL, "", Embed{Title: "unreachable"})
}
