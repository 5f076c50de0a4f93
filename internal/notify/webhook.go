package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// WebhookNotifier posts nudge messages to the messaging transport's
// delivery endpoint. The transport owns actual user delivery; a non-2xx
// reply here counts as a delivery failure.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type webhookPayload struct {
	UserID int64  `json:"user_id"`
	Text   string `json:"text"`
}

func (n *WebhookNotifier) Send(userID int64, text string) error {
	body, err := json.Marshal(webhookPayload{UserID: userID, Text: text})
	if err != nil {
		return err
	}
	resp, err := n.client.Post(n.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notify webhook returned %d", resp.StatusCode)
	}
	return nil
}
