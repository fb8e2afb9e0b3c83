package utils

import (
	"finlit/config"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// XPEvent is pushed to the optional events webhook whenever the reconciler or
// the admin path changes a profile
type XPEvent struct {
	Event    string `json:"event"` // XP_CREDITED, XP_ADJUSTED, SCENARIO_SOLVED
	Username string `json:"username"`
	Scenario string `json:"scenario,omitempty"`
	Amount   int    `json:"amount,omitempty"`
	XPTotal  int    `json:"xp_total"`
}

// PushEvent posts the event to the configured webhook from a goroutine.
// Fire-and-forget: delivery failures are logged, never surfaced to the caller.
func PushEvent(event XPEvent) {
	url := config.AppConfig.EventsWebhookURL
	if url == "" {
		return
	}

	go func(e XPEvent) {
		client := resty.New().SetTimeout(10 * time.Second)

		resp, err := client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(e).
			Post(url)
		if err != nil {
			log.Printf("Error pushing %s event: %v", e.Event, err)
			return
		}

		if resp.StatusCode() >= 300 {
			log.Printf("Events webhook returned %d for %s event", resp.StatusCode(), e.Event)
		}
	}(event)
}
