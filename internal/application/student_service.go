package application

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/fitness-gen-api/internal/domain/entity"
	"github.com/oksasatya/fitness-gen-api/internal/domain/identity"
	"github.com/oksasatya/fitness-gen-api/internal/domain/optional"
	"github.com/oksasatya/fitness-gen-api/internal/domain/repository"
	"github.com/oksasatya/fitness-gen-api/pkg/mailer"
	mailtpl "github.com/oksasatya/fitness-gen-api/pkg/mailer/templates"
)

type StudentService struct {
	Repo   repository.StudentRepository
	Index  StudentIndex
	Emails EmailQueue
	Brand  mailtpl.Brand
	Logger *logrus.Logger
}

func NewStudentService(repo repository.StudentRepository, index StudentIndex, emails EmailQueue, brand mailtpl.Brand, logger *logrus.Logger) *StudentService {
	return &StudentService{Repo: repo, Index: index, Emails: emails, Brand: brand, Logger: logger}
}

type CreateStudentInput struct {
	CPF       string
	Name      string
	BirthDate time.Time
	Sex       *string
	Email     *string
	Phone     *string
}

// StudentKey selects a student by id or by CPF. ID wins when both are given.
type StudentKey struct {
	ID  *int64
	CPF *string
}

func (s *StudentService) Create(ctx context.Context, in CreateStudentInput) (*entity.Student, error) {
	cpf, err := identity.ValidateCPF(in.CPF)
	if err != nil {
		return nil, err
	}
	st := &entity.Student{
		CPF:       cpf,
		Name:      strings.TrimSpace(in.Name),
		BirthDate: in.BirthDate,
		Sex:       identity.NormalizeBlank(in.Sex),
		Email:     identity.NormalizeBlank(in.Email),
		Phone:     identity.NormalizeBlank(in.Phone),
	}
	if err := s.Repo.Create(ctx, st); err != nil {
		return nil, err
	}

	s.index(ctx, st)
	s.enqueueWelcome(ctx, st)
	return st, nil
}

func (s *StudentService) Get(ctx context.Context, id int64) (*entity.Student, error) {
	return s.Repo.GetByID(ctx, id)
}

// Lookup resolves a student by key. A CPF is validated and normalized before it reaches the store,
// so a malformed one fails with errs.ErrInvalidIdentity rather than ErrNotFound.
func (s *StudentService) Lookup(ctx context.Context, key StudentKey) (*entity.Student, error) {
	if key.ID != nil {
		return s.Repo.GetByID(ctx, *key.ID)
	}
	if key.CPF == nil || strings.TrimSpace(*key.CPF) == "" {
		return nil, ErrLookupKeyRequired
	}
	cpf, err := identity.ValidateCPF(*key.CPF)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByCPF(ctx, cpf)
}

func (s *StudentService) List(ctx context.Context) ([]entity.Student, error) {
	return s.Repo.List(ctx)
}

func (s *StudentService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.Index == nil {
		return []map[string]any{}, nil
	}
	return s.Index.Search(ctx, q, size)
}

// Update merges patch onto the student selected by key and stores the result. The CPF never changes.
func (s *StudentService) Update(ctx context.Context, key StudentKey, patch entity.StudentPatch) (*entity.Student, error) {
	cur, err := s.Lookup(ctx, key)
	if err != nil {
		return nil, err
	}

	patch.Name = optional.Map(patch.Name, strings.TrimSpace)
	patch.Sex = normalizeBlankField(patch.Sex)
	patch.Email = normalizeBlankField(patch.Email)
	patch.Phone = normalizeBlankField(patch.Phone)

	merged := entity.MergeStudent(*cur, patch)
	if err := s.Repo.Update(ctx, &merged); err != nil {
		return nil, err
	}
	s.index(ctx, &merged)
	return &merged, nil
}

// Delete removes the student selected by key together with everything it owns.
func (s *StudentService) Delete(ctx context.Context, key StudentKey) error {
	cur, err := s.Lookup(ctx, key)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, cur.ID); err != nil {
		return err
	}
	if s.Index != nil {
		if err := s.Index.Remove(ctx, cur.ID); err != nil {
			s.warn(err, cur.ID, "student index remove failed")
		}
	}
	return nil
}

// normalizeBlankField turns a present blank string into an explicit null.
func normalizeBlankField(f optional.Field[string]) optional.Field[string] {
	if !f.HasValue() {
		return f
	}
	return optional.FromPtr(identity.NormalizeBlank(&f.Value))
}

func (s *StudentService) index(ctx context.Context, st *entity.Student) {
	if s.Index == nil {
		return
	}
	if err := s.Index.Index(ctx, st); err != nil {
		s.warn(err, st.ID, "student index failed")
	}
}

// ResendWelcome queues the welcome email again. It reports false when email sending is disabled.
func (s *StudentService) ResendWelcome(ctx context.Context, id int64) (bool, error) {
	st, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if st.Email == nil {
		return false, ErrNoEmail
	}
	if s.Emails == nil {
		return false, nil
	}
	if err := s.Emails.PublishJSON(ctx, welcomeJob(s.Brand, st)); err != nil {
		return false, err
	}
	return true, nil
}

func (s *StudentService) enqueueWelcome(ctx context.Context, st *entity.Student) {
	if s.Emails == nil || st.Email == nil {
		return
	}
	if err := s.Emails.PublishJSON(ctx, welcomeJob(s.Brand, st)); err != nil {
		s.warn(err, st.ID, "enqueue welcome email failed")
	}
}

func welcomeJob(b mailtpl.Brand, st *entity.Student) mailer.EmailJob {
	return mailer.EmailJob{
		To:       *st.Email,
		Template: mailtpl.WelcomeStudent,
		Data:     mailtpl.NewWelcomeStudentData(b, st.Name, *st.Email, identity.FormatCPF(st.CPF)),
	}
}

func (s *StudentService) warn(err error, id int64, msg string) {
	if s.Logger != nil {
		s.Logger.WithError(err).WithField("student_id", id).Warn(msg)
	}
}
