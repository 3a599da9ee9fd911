// Package whatsapp sends the order-status template message through the
// WhatsApp Cloud API. The template takes exactly three positional body
// parameters: customer name, order number, new status.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the Graph API root.
	DefaultBaseURL = "https://graph.facebook.com/v19.0"

	templateName = "actualizacion_estado_producto"
	templateLang = "es_MX"
)

type Client struct {
	accessToken   string
	phoneNumberID string
	baseURL       string
	httpClient    *http.Client
}

func NewClient(accessToken, phoneNumberID, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		accessToken:   accessToken,
		phoneNumberID: phoneNumberID,
		baseURL:       baseURL,
		httpClient:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) Configured() bool {
	return c.accessToken != "" && c.phoneNumberID != ""
}

type textParam struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type component struct {
	Type       string      `json:"type"`
	Parameters []textParam `json:"parameters"`
}

type templatePayload struct {
	Name       string      `json:"name"`
	Language   struct{ Code string `json:"code"` } `json:"language"`
	Components []component `json:"components"`
}

type messageRequest struct {
	MessagingProduct string          `json:"messaging_product"`
	To               string          `json:"to"`
	Type             string          `json:"type"`
	Template         templatePayload `json:"template"`
}

// SendStatusTemplate posts the template message to the recipient. params must
// hold exactly 3 entries.
func (c *Client) SendStatusTemplate(ctx context.Context, to string, params [3]string) error {
	if !c.Configured() {
		return fmt.Errorf("whatsapp: credentials not configured")
	}
	if to == "" {
		return fmt.Errorf("whatsapp: recipient number required")
	}

	body := []textParam{
		{Type: "text", Text: params[0]},
		{Type: "text", Text: params[1]},
		{Type: "text", Text: params[2]},
	}
	msg := messageRequest{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "template",
		Template: templatePayload{
			Name:       templateName,
			Components: []component{{Type: "body", Parameters: body}},
		},
	}
	msg.Template.Language.Code = templateLang

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("whatsapp: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("whatsapp: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp: request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		return fmt.Errorf("whatsapp: API status %d: %s", res.StatusCode, string(detail))
	}
	return nil
}
