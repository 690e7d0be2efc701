package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/taskdeck-dev/taskdeck/internal/models"
)

type DiscordWebhookField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type DiscordEmbed struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Color       int                   `json:"color"`
	Fields      []DiscordWebhookField `json:"fields"`
	Footer      *DiscordFooter        `json:"footer,omitempty"`
	Timestamp   string                `json:"timestamp"`
}

type DiscordFooter struct {
	Text string `json:"text"`
}

type DiscordWebhookRequest struct {
	Username string         `json:"username"`
	Embeds   []DiscordEmbed `json:"embeds"`
}

type SlackField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

type SlackAttachment struct {
	Color     string       `json:"color"`
	Title     string       `json:"title"`
	Text      string       `json:"text"`
	Fields    []SlackField `json:"fields"`
	Footer    string       `json:"footer"`
	Timestamp int64        `json:"ts"`
}

type SlackWebhookRequest struct {
	Username    string            `json:"username"`
	IconEmoji   string            `json:"icon_emoji,omitempty"`
	Text        string            `json:"text"`
	Attachments []SlackAttachment `json:"attachments"`
}

const (
	ColorRed    = 16711680 // #FF0000 - task overdue
	ColorOrange = 16753920 // #FFA500 - task due soon

	webhookUsername = "Taskdeck Reminders"
)

// WebhookNotifier posts due-date reminders to the configured Discord
// and/or Slack webhooks. Either URL may be empty.
type WebhookNotifier struct {
	DiscordWebhook string
	SlackWebhook   string
}

func NewWebhookNotifier(discordWebhook, slackWebhook string) *WebhookNotifier {
	return &WebhookNotifier{DiscordWebhook: discordWebhook, SlackWebhook: slackWebhook}
}

func (n *WebhookNotifier) Enabled() bool {
	return n.DiscordWebhook != "" || n.SlackWebhook != ""
}

// SendTaskDueNotification announces a task whose due date has arrived or
// is inside the reminder window.
func (n *WebhookNotifier) SendTaskDueNotification(task models.Task) error {
	if n.DiscordWebhook != "" {
		if err := n.sendDiscordTaskDue(task); err != nil {
			return fmt.Errorf("discord: %w", err)
		}
	}

	if n.SlackWebhook != "" {
		if err := n.sendSlackTaskDue(task); err != nil {
			return fmt.Errorf("slack: %w", err)
		}
	}

	return nil
}

func taskOverdue(task models.Task) bool {
	return task.DueDate != nil && task.DueDate.Before(time.Now())
}

func (n *WebhookNotifier) sendDiscordTaskDue(task models.Task) error {
	dueAt := "Unknown"
	if task.DueDate != nil {
		dueAt = task.DueDate.Format("2006-01-02 15:04:05 UTC")
	}

	title := "⏰ **TASK DUE SOON**"
	color := ColorOrange
	description := fmt.Sprintf("**%s** is coming up on its due date.", task.Title)

	if taskOverdue(task) {
		title = "🚨 **TASK OVERDUE**"
		color = ColorRed
		description = fmt.Sprintf("**%s** is past its due date.", task.Title)
	}

	payload := DiscordWebhookRequest{
		Username: webhookUsername,
		Embeds: []DiscordEmbed{
			{
				Title:       title,
				Description: description,
				Color:       color,
				Fields: []DiscordWebhookField{
					{Name: "📝 Task", Value: task.Title, Inline: true},
					{Name: "🏷️ Status", Value: task.Status, Inline: true},
					{Name: "⏰ Due At", Value: dueAt, Inline: true},
					{Name: "👤 Owner", Value: task.Owner.Username, Inline: true},
				},
				Footer: &DiscordFooter{
					Text: "Taskdeck",
				},
				Timestamp: time.Now().Format(time.RFC3339),
			},
		},
	}

	return n.sendDiscordWebhook(payload)
}

func (n *WebhookNotifier) sendSlackTaskDue(task models.Task) error {
	dueAt := "Unknown"
	if task.DueDate != nil {
		dueAt = task.DueDate.Format("2006-01-02 15:04:05 UTC")
	}

	text := ":alarm_clock: *TASK DUE SOON*"
	color := "warning"

	if taskOverdue(task) {
		text = ":rotating_light: *TASK OVERDUE*"
		color = "danger"
	}

	payload := SlackWebhookRequest{
		Username:  webhookUsername,
		IconEmoji: ":alarm_clock:",
		Text:      text,
		Attachments: []SlackAttachment{
			{
				Color: color,
				Title: fmt.Sprintf("Task '%s' needs attention", task.Title),
				Text:  task.Description,
				Fields: []SlackField{
					{Title: "Task", Value: task.Title, Short: true},
					{Title: "Status", Value: task.Status, Short: true},
					{Title: "Due At", Value: dueAt, Short: true},
					{Title: "Owner", Value: task.Owner.Username, Short: true},
				},
				Footer:    "Taskdeck",
				Timestamp: time.Now().Unix(),
			},
		},
	}

	return n.sendSlackWebhook(payload)
}

func (n *WebhookNotifier) sendDiscordWebhook(payload DiscordWebhookRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal Discord payload: %w", err)
	}

	resp, err := http.Post(n.DiscordWebhook, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to send Discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("Discord webhook returned status %d", resp.StatusCode)
	}

	return nil
}

func (n *WebhookNotifier) sendSlackWebhook(payload SlackWebhookRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal Slack payload: %w", err)
	}

	resp, err := http.Post(n.SlackWebhook, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to send Slack webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("Slack webhook returned status %d", resp.StatusCode)
	}

	return nil
}
