package application

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/oksasatya/fitness-gen-api/internal/domain/entity"
)

var (
	ErrLookupKeyRequired    = errors.New("id or cpf is required")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrStorageNotConfigured = errors.New("object storage not configured")
	ErrEmptyUpload          = errors.New("empty upload")
	ErrNoEmail              = errors.New("student has no email")
)

// StudentIndex keeps a searchable copy of students. Writes to it are best effort.
type StudentIndex interface {
	Index(ctx context.Context, s *entity.Student) error
	Remove(ctx context.Context, id int64) error
	Search(ctx context.Context, q string, size int) ([]map[string]any, error)
}

// EmailQueue accepts email jobs for the worker. *helpers.RabbitPublisher satisfies it.
type EmailQueue interface {
	PublishJSON(ctx context.Context, body any) error
}

// PhotoStore uploads an object and returns its public URL.
type PhotoStore interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// SessionStore remembers the current session id of each authenticated subject.
type SessionStore interface {
	Save(ctx context.Context, subject, sid string, ttl time.Duration) error
	Get(ctx context.Context, subject string) (string, error)
	Delete(ctx context.Context, subject string) error
}
