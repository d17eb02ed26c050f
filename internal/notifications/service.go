package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"recetin/internal/config"
)

const userAgent = "Recetin/0.1.0"

// Event identifies a notification kind.
type Event string

const (
	EventRecipeSaved    Event = "recipe_saved"
	EventRecipeDeleted  Event = "recipe_deleted"
	EventRecipeImported Event = "recipe_imported"
	EventError          Event = "error"
	EventTest           Event = "test"
)

// Payload carries event-specific values. Known keys: title, id, source,
// context, error.
type Payload map[string]any

// Service publishes notification events.
type Service interface {
	Publish(ctx context.Context, event Event, payload Payload) error
}

// NewService builds a notification service backed by ntfy when configured.
// When no ntfy topic is configured, a noop implementation is returned.
func NewService(cfg *config.Config) Service {
	if cfg == nil {
		return noopService{}
	}
	topic := strings.TrimSpace(cfg.Notifications.NtfyTopic)
	if topic == "" {
		return noopService{}
	}

	timeout := time.Duration(cfg.Notifications.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &ntfyService{
		endpoint: topic,
		client:   &http.Client{Timeout: timeout},
		enabled: map[Event]bool{
			EventRecipeSaved:    cfg.Notifications.Saved,
			EventRecipeDeleted:  cfg.Notifications.Deleted,
			EventRecipeImported: cfg.Notifications.Imported,
			EventError:          cfg.Notifications.Errors,
			EventTest:           true,
		},
	}
}

type message struct {
	title    string
	body     string
	tags     []string
	priority string
}

type ntfyService struct {
	endpoint string
	client   *http.Client
	enabled  map[Event]bool
}

func (n *ntfyService) Publish(ctx context.Context, event Event, payload Payload) error {
	if !n.enabled[event] {
		return nil
	}
	msg, ok := format(event, payload)
	if !ok {
		return nil
	}
	return n.send(ctx, msg)
}

func format(event Event, payload Payload) (message, bool) {
	title := payloadString(payload, "title")
	switch event {
	case EventRecipeSaved:
		return message{
			title: "Recetin - Recipe Saved",
			body:  fmt.Sprintf("📝 Saved: %s", title),
			tags:  []string{"recetin", "recipe", "saved"},
		}, true
	case EventRecipeDeleted:
		return message{
			title: "Recetin - Recipe Deleted",
			body:  fmt.Sprintf("🗑️ Deleted: %s", title),
			tags:  []string{"recetin", "recipe", "deleted"},
		}, true
	case EventRecipeImported:
		body := fmt.Sprintf("📥 Imported: %s", title)
		if source := payloadString(payload, "source"); source != "" {
			body = fmt.Sprintf("%s\nFrom: %s", body, source)
		}
		return message{
			title: "Recetin - Recipe Imported",
			body:  body,
			tags:  []string{"recetin", "recipe", "imported"},
		}, true
	case EventError:
		var builder strings.Builder
		builder.WriteString("❌ Error")
		if label := payloadString(payload, "context"); label != "" {
			builder.WriteString(" with ")
			builder.WriteString(label)
		}
		builder.WriteString(": ")
		if errText := payloadString(payload, "error"); errText != "" {
			builder.WriteString(errText)
		} else {
			builder.WriteString("unknown")
		}
		return message{
			title:    "Recetin - Error",
			body:     builder.String(),
			tags:     []string{"recetin", "error", "alert"},
			priority: "high",
		}, true
	case EventTest:
		return message{
			title:    "Recetin - Test",
			body:     "🧪 Notification system test",
			tags:     []string{"recetin", "test"},
			priority: "low",
		}, true
	default:
		return message{}, false
	}
}

func payloadString(payload Payload, key string) string {
	if payload == nil {
		return ""
	}
	switch value := payload[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(value)
	case error:
		return strings.TrimSpace(value.Error())
	default:
		return strings.TrimSpace(fmt.Sprint(value))
	}
}

func (n *ntfyService) send(ctx context.Context, msg message) error {
	if n == nil || n.client == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(msg.body))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if msg.title != "" {
		req.Header.Set("Title", msg.title)
	}
	if len(msg.tags) > 0 {
		req.Header.Set("Tags", strings.Join(msg.tags, ","))
	}
	if msg.priority != "" {
		req.Header.Set("Priority", msg.priority)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopService struct{}

func (noopService) Publish(context.Context, Event, Payload) error { return nil }
