package mailer

import (
	"context"
	"fmt"

	mailtpl "github.com/oksasatya/fitness-gen-api/pkg/mailer/templates"
)

// Deliver renders job when it names a template and hands the result to s.
func Deliver(ctx context.Context, s Sender, job EmailJob) error {
	if err := job.Validate(); err != nil {
		return err
	}
	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template != "" {
		job.EnsureRecipient()
		var err error
		subject, text, html, err = mailtpl.Render(job.Template, job.Data)
		if err != nil {
			return fmt.Errorf("render %s: %w", job.Template, err)
		}
	}
	return s.Send(ctx, job.To, subject, text, html)
}
