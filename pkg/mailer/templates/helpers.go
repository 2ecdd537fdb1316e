package templates

import "time"

// Brand holds the deployment-wide fields every email carries.
type Brand struct {
	AppName        string
	CompanyName    string
	CompanyAddress string
	LogoURL        string
	SupportURL     string
	PrivacyURL     string
	UnsubscribeURL string
}

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		utc := t.UTC()
		d.TimeAt = utc
		d.Time = utc.Format("02/01/2006 15:04")
	}
}

func WithCPF(cpf string) Option { return func(d *EmailData) { d.CPF = cpf } }

// NewBaseEmailData fills the common fields from b, then applies opts.
func NewBaseEmailData(b Brand, typ, name, email string, opts ...Option) EmailData {
	d := EmailData{
		Name:           name,
		Email:          email,
		RecipientEmail: email,
		Type:           typ,

		CompanyName:    b.CompanyName,
		CompanyAddress: b.CompanyAddress,
		AppName:        b.AppName,

		LogoURL:        b.LogoURL,
		SupportURL:     b.SupportURL,
		PrivacyURL:     b.PrivacyURL,
		UnsubscribeURL: b.UnsubscribeURL,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// NewWelcomeStudentData builds the job data for the email sent when a student is registered.
func NewWelcomeStudentData(b Brand, name, email, formattedCPF string, opts ...Option) map[string]any {
	opts = append([]Option{WithCPF(formattedCPF), WithTime(time.Now())}, opts...)
	return ToMap(NewBaseEmailData(b, WelcomeStudent, name, email, opts...))
}
