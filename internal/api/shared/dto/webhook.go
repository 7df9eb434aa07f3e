package dto

import (
	"encoding/json"
	"time"

	"github.com/dright/marketplace/internal/store/schema"
)

// WebhookClientResponse represents a registered webhook client.
// The secret is only returned once, on creation.
type WebhookClientResponse struct {
	ClientID         string    `json:"client_id"`
	WebhookURL       string    `json:"webhook_url"`
	WebhookSecret    string    `json:"webhook_secret,omitempty"`
	EventFilters     []string  `json:"event_filters"`
	IsActive         bool      `json:"is_active"`
	RetryMaxAttempts int       `json:"retry_max_attempts"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// WebhookClientListResponse represents the registered webhook clients
type WebhookClientListResponse struct {
	Clients []WebhookClientResponse `json:"items"`
	Total   int                     `json:"total"`
}

// MapWebhookClientToDTO maps a schema.WebhookClient to WebhookClientResponse.
// includeSecret is only true for the creation response.
func MapWebhookClientToDTO(client *schema.WebhookClient, includeSecret bool) *WebhookClientResponse {
	if client == nil {
		return nil
	}

	var filters []string
	if len(client.EventFilters) > 0 {
		// Malformed rows surface as an empty filter list rather than an error
		_ = json.Unmarshal(client.EventFilters, &filters)
	}

	resp := &WebhookClientResponse{
		ClientID:         client.ClientID,
		WebhookURL:       client.WebhookURL,
		EventFilters:     filters,
		IsActive:         client.IsActive,
		RetryMaxAttempts: client.RetryMaxAttempts,
		CreatedAt:        client.CreatedAt,
		UpdatedAt:        client.UpdatedAt,
	}
	if includeSecret {
		resp.WebhookSecret = client.WebhookSecret
	}
	return resp
}

// MapWebhookClientsToDTO maps registered clients to a list response
func MapWebhookClientsToDTO(clients []*schema.WebhookClient) *WebhookClientListResponse {
	items := make([]WebhookClientResponse, 0, len(clients))
	for _, client := range clients {
		if mapped := MapWebhookClientToDTO(client, false); mapped != nil {
			items = append(items, *mapped)
		}
	}
	return &WebhookClientListResponse{
		Clients: items,
		Total:   len(items),
	}
}
