package mailer

import (
	"fmt"
	"strings"
)

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Either Template (rendered with Data) or Subject plus Text/HTML must be set.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "welcome_student"
	Data     map[string]any `json:"data,omitempty"`
}

// EnsureRecipient fills Data.Email and Data.RecipientEmail from To when the producer left them out.
func (j *EmailJob) EnsureRecipient() {
	if j.Data == nil {
		j.Data = map[string]any{}
	}
	for _, k := range []string{"Email", "RecipientEmail"} {
		if v, ok := j.Data[k]; !ok || strings.TrimSpace(fmt.Sprintf("%v", v)) == "" {
			j.Data[k] = j.To
		}
	}
}

// Validate reports whether the job can be delivered.
func (j *EmailJob) Validate() error {
	if strings.TrimSpace(j.To) == "" {
		return fmt.Errorf("email job: missing recipient")
	}
	if j.Template == "" && j.Subject == "" {
		return fmt.Errorf("email job: missing subject or template")
	}
	return nil
}
