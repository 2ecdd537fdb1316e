package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mailtpl "github.com/oksasatya/fitness-gen-api/pkg/mailer/templates"
)

type recordedMail struct {
	to, subject, text, html string
}

type fakeSender struct {
	sent []recordedMail
	err  error
}

func (f *fakeSender) Send(_ context.Context, to, subject, text, html string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, recordedMail{to, subject, text, html})
	return nil
}

func TestDeliverRendersTemplate(t *testing.T) {
	s := &fakeSender{}
	job := EmailJob{
		To:       "ana@example.com",
		Template: mailtpl.WelcomeStudent,
		Data:     mailtpl.NewWelcomeStudentData(mailtpl.Brand{AppName: "Fitness Gen"}, "Ana", "ana@example.com", "123.456.789-09"),
	}

	require.NoError(t, Deliver(context.Background(), s, job))
	require.Len(t, s.sent, 1)
	assert.Equal(t, "ana@example.com", s.sent[0].to)
	assert.Equal(t, "Bem-vindo(a) ao Fitness Gen, Ana", s.sent[0].subject)
	assert.Contains(t, s.sent[0].html, "123.456.789-09")
}

func TestDeliverPlainMessage(t *testing.T) {
	s := &fakeSender{}
	require.NoError(t, Deliver(context.Background(), s, EmailJob{To: "a@b.c", Subject: "hi", Text: "hello"}))
	assert.Equal(t, recordedMail{"a@b.c", "hi", "hello", ""}, s.sent[0])
}

func TestDeliverErrors(t *testing.T) {
	assert.Error(t, Deliver(context.Background(), &fakeSender{}, EmailJob{To: "a@b.c", Template: "nope"}))
	assert.Error(t, Deliver(context.Background(), &fakeSender{}, EmailJob{Subject: "hi"}))

	boom := errors.New("boom")
	err := Deliver(context.Background(), &fakeSender{err: boom}, EmailJob{To: "a@b.c", Subject: "hi"})
	assert.ErrorIs(t, err, boom)
}
