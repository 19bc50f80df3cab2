package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"rp-community-api/models"
)

// Discord embed colors per status.
const (
	colorPending   = 0xF1C40F
	colorInterview = 0x3498DB
	colorAccepted  = 0x2ECC71
	colorDeclined  = 0xE74C3C
)

// Embed is a Discord webhook embed payload.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type webhookPayload struct {
	Content string  `json:"content,omitempty"`
	Embeds  []Embed `json:"embeds"`
}

// Notifier delivers Discord webhook messages best effort: no retry, no
// dead-letter, failure never reaches the caller. The lossiness is the
// contract, not an accident; delivery is purely informational.
type Notifier struct {
	Client *http.Client
}

// DefaultNotifier is used by the controllers; tests swap in their own.
var DefaultNotifier = &Notifier{Client: http.DefaultClient}

// Send posts content plus one embed to url. An empty url is a no-op.
// Errors are logged and discarded.
func (n *Notifier) Send(url, content string, embed Embed) {
	if url == "" {
		return
	}

	body, err := json.Marshal(webhookPayload{Content: content, Embeds: []Embed{embed}})
	if err != nil {
		log.Printf("webhook: marshal failed: %v", err)
		return
	}

	resp, err := n.Client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("webhook: delivery failed: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("webhook: delivery returned %d", resp.StatusCode)
	}
}

func statusColor(status string) int {
	switch status {
	case models.StatusInterview:
		return colorInterview
	case models.StatusAccepted:
		return colorAccepted
	case models.StatusDeclined:
		return colorDeclined
	default:
		return colorPending
	}
}

func statusLabel(status string) string {
	switch status {
	case models.StatusInterview:
		return "Interview"
	case models.StatusAccepted:
		return "Accepted"
	case models.StatusDeclined:
		return "Declined"
	default:
		return "Pending"
	}
}

// NotifyApplicant posts the applicant-facing decision embed to the
// status channel configured on the application type.
func (n *Notifier) NotifyApplicant(app *models.Application, appType *models.ApplicationType) {
	url := appType.WebhookForStatus(app.Status)
	if url == "" {
		return
	}

	notes := "-"
	if app.Notes != nil && *app.Notes != "" {
		notes = *app.Notes
	}

	embed := Embed{
		Title: fmt.Sprintf("%s Application Update", appType.Name),
		Color: statusColor(app.Status),
		Fields: []EmbedField{
			{Name: "Decision", Value: statusLabel(app.Status), Inline: true},
			{Name: "Application Type", Value: appType.Name, Inline: true},
			{Name: "Staff Notes", Value: notes},
		},
	}

	n.Send(url, fmt.Sprintf("<@%s>", app.User.DiscordID), embed)
}

// NotifyStaffLog posts the staff-audit embed to the type's log channel.
func (n *Notifier) NotifyStaffLog(app *models.Application, appType *models.ApplicationType, staffName string) {
	if appType.WebhookLog == nil || *appType.WebhookLog == "" {
		return
	}

	notes := "-"
	if app.Notes != nil && *app.Notes != "" {
		notes = *app.Notes
	}

	embed := Embed{
		Title: "Application Reviewed",
		Color: statusColor(app.Status),
		Fields: []EmbedField{
			{Name: "Staff Member", Value: staffName, Inline: true},
			{Name: "Action", Value: statusLabel(app.Status), Inline: true},
			{Name: "Applicant", Value: app.User.DisplayName()},
			{Name: "Notes", Value: notes},
		},
	}

	n.Send(*appType.WebhookLog, "", embed)
}

// NotifySubmission posts the new-submission embed to the pending
// channel, if one is configured.
func (n *Notifier) NotifySubmission(app *models.Application, appType *models.ApplicationType) {
	url := appType.WebhookForStatus(models.StatusPending)
	if url == "" {
		return
	}

	answered := "0"
	if answers, err := app.Answers(); err == nil {
		answered = strconv.Itoa(len(answers))
	}

	embed := Embed{
		Title: fmt.Sprintf("New %s Application", appType.Name),
		Color: colorPending,
		Fields: []EmbedField{
			{Name: "Applicant", Value: app.User.DisplayName(), Inline: true},
			{Name: "Application Type", Value: appType.Name, Inline: true},
			{Name: "Questions Answered", Value: answered, Inline: true},
		},
	}

	n.Send(url, fmt.Sprintf("<@%s>", app.User.DiscordID), embed)
}
