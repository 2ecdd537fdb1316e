package repository

import (
	"context"

	"github.com/oksasatya/fitness-gen-api/internal/domain/entity"
)

// StudentRepository defines the store operations on students.
// Implementations report failures with the errs taxonomy.
type StudentRepository interface {
	Create(ctx context.Context, s *entity.Student) error
	GetByID(ctx context.Context, id int64) (*entity.Student, error)
	GetByCPF(ctx context.Context, cpf string) (*entity.Student, error)
	List(ctx context.Context) ([]entity.Student, error)
	Update(ctx context.Context, s *entity.Student) error
	Delete(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}
