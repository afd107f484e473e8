package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/djblanc360/portfolio-backend/config"
)

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

const resendEndpoint = "https://api.resend.com/emails"

// SendContactEmail forwards a contact-form submission to the site owner via
// the Resend API. Reply-To carries the visitor's address so replies go back
// to them, not to the sending identity.
//
// Requires in config:
//   - RESEND_API_KEY: the Resend API key
//   - RESEND_FROM_EMAIL: the verified sender (e.g. "Site <site@example.com>")
//   - CONTACT_RECIPIENT: where submissions land
func SendContactEmail(cfg map[string]string, name, email, message string) error {
	apiKey := config.GetString(cfg, "RESEND_API_KEY", "")
	if apiKey == "" {
		return fmt.Errorf("RESEND_API_KEY environment variable is required")
	}

	fromEmail := config.GetString(cfg, "RESEND_FROM_EMAIL", "")
	if fromEmail == "" {
		return fmt.Errorf("RESEND_FROM_EMAIL environment variable is required")
	}

	recipient := config.GetString(cfg, "CONTACT_RECIPIENT", "")
	if recipient == "" {
		return fmt.Errorf("CONTACT_RECIPIENT environment variable is required")
	}

	payload := ResendEmailRequest{
		From:    fromEmail,
		To:      []string{recipient},
		ReplyTo: email,
		Subject: fmt.Sprintf("Inquiry from %s", name),
		Html:    contactEmailBody(name, email, message),
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest("POST", resendEndpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		log.Info().Str("emailId", emailResponse.ID).Msg("Successfully sent contact email via Resend")
	}

	return nil
}

func contactEmailBody(name, email, message string) string {
	return fmt.Sprintf(
		"<p><strong>%s</strong> (%s) wrote:</p><p>%s</p>",
		html.EscapeString(name),
		html.EscapeString(email),
		html.EscapeString(message),
	)
}
