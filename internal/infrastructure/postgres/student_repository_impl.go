package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/oksasatya/fitness-gen-api/internal/domain/entity"
	"github.com/oksasatya/fitness-gen-api/internal/domain/repository"
)

var studentColumns = []string{"id", "cpf", "name", "birth_date", "sex", "email", "phone", "created_at"}

type StudentRepository struct {
	db DBTX
}

func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{db: db}
}

func scanStudent(row rowScanner, s *entity.Student) error {
	return row.Scan(&s.ID, &s.CPF, &s.Name, &s.BirthDate, &s.Sex, &s.Email, &s.Phone, &s.CreatedAt)
}

func (r *StudentRepository) Create(ctx context.Context, s *entity.Student) error {
	q := psql.Insert("students").
		Columns("cpf", "name", "birth_date", "sex", "email", "phone").
		Values(s.CPF, s.Name, s.BirthDate, s.Sex, s.Email, s.Phone).
		Suffix("RETURNING id, created_at")

	return queryOne(ctx, r.db, q, func(row rowScanner) error {
		return row.Scan(&s.ID, &s.CreatedAt)
	})
}

func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*entity.Student, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *StudentRepository) GetByCPF(ctx context.Context, cpf string) (*entity.Student, error) {
	return r.getOne(ctx, sq.Eq{"cpf": cpf})
}

func (r *StudentRepository) getOne(ctx context.Context, where sq.Eq) (*entity.Student, error) {
	s := &entity.Student{}
	q := psql.Select(studentColumns...).From("students").Where(where)
	if err := queryOne(ctx, r.db, q, func(row rowScanner) error { return scanStudent(row, s) }); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *StudentRepository) List(ctx context.Context) ([]entity.Student, error) {
	q := psql.Select(studentColumns...).From("students").OrderBy("id DESC")

	out := make([]entity.Student, 0)
	err := queryAll(ctx, r.db, q, func(row rowScanner) error {
		var s entity.Student
		if err := scanStudent(row, &s); err != nil {
			return err
		}
		out = append(out, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update writes every mutable column of s in one statement and refreshes s from the stored row.
// The CPF column is never part of the statement.
func (r *StudentRepository) Update(ctx context.Context, s *entity.Student) error {
	q := psql.Update("students").
		Set("name", s.Name).
		Set("birth_date", s.BirthDate).
		Set("sex", s.Sex).
		Set("email", s.Email).
		Set("phone", s.Phone).
		Where(sq.Eq{"id": s.ID}).
		Suffix("RETURNING id, cpf, name, birth_date, sex, email, phone, created_at")

	return queryOne(ctx, r.db, q, func(row rowScanner) error { return scanStudent(row, s) })
}

// Delete removes the student; the schema cascades to measurements, assessments and plans.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	return execAffecting(ctx, r.db, psql.Delete("students").Where(sq.Eq{"id": id}))
}

func (r *StudentRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

var _ repository.StudentRepository = (*StudentRepository)(nil)
