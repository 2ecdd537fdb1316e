package application

import (
	"context"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/fitness-gen-api/internal/domain/entity"
	"github.com/oksasatya/fitness-gen-api/internal/domain/identity"
	"github.com/oksasatya/fitness-gen-api/internal/domain/repository"
)

// photosKey is the posture document key that lists uploaded posture photo URLs.
const photosKey = "photos"

type AssessmentService struct {
	Repo   repository.AssessmentRepository
	Photos PhotoStore
	Logger *logrus.Logger
}

func NewAssessmentService(repo repository.AssessmentRepository, photos PhotoStore, logger *logrus.Logger) *AssessmentService {
	return &AssessmentService{Repo: repo, Photos: photos, Logger: logger}
}

type CreateAssessmentInput struct {
	StudentID      int64
	MeasurementID  *int64
	Objectives     entity.Document
	Posture        entity.Document
	Injuries       entity.Document
	Restrictions   entity.Document
	History        entity.Document
	Equipment      entity.Document
	RedFlags       entity.Document
	Readiness      entity.Document
	Periodization  entity.Document
	Level          *string
	FreqPerWeek    *int
	SessionTimeMin *int
	CaseNotes      *string
	Status         *string
}

func (s *AssessmentService) Create(ctx context.Context, in CreateAssessmentInput) (*entity.Assessment, error) {
	a := &entity.Assessment{
		StudentID:      in.StudentID,
		MeasurementID:  in.MeasurementID,
		Objectives:     in.Objectives,
		Posture:        in.Posture,
		Injuries:       in.Injuries,
		Restrictions:   in.Restrictions,
		History:        in.History,
		Equipment:      in.Equipment,
		RedFlags:       in.RedFlags,
		Readiness:      in.Readiness,
		Periodization:  in.Periodization,
		Level:          identity.NormalizeBlank(in.Level),
		FreqPerWeek:    in.FreqPerWeek,
		SessionTimeMin: in.SessionTimeMin,
		CaseNotes:      identity.NormalizeBlank(in.CaseNotes),
		Status:         entity.DefaultAssessmentStatus,
	}
	if st := identity.NormalizeBlank(in.Status); st != nil {
		a.Status = *st
	}
	if err := s.Repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AssessmentService) Get(ctx context.Context, id int64) (*entity.Assessment, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *AssessmentService) ListByStudent(ctx context.Context, studentID int64) ([]entity.Assessment, error) {
	return s.Repo.ListByStudent(ctx, studentID)
}

func (s *AssessmentService) Update(ctx context.Context, id int64, patch entity.AssessmentPatch) (*entity.Assessment, error) {
	cur, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Level = normalizeBlankField(patch.Level)
	patch.CaseNotes = normalizeBlankField(patch.CaseNotes)

	merged := entity.MergeAssessment(*cur, patch)
	if err := s.Repo.Update(ctx, &merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

func (s *AssessmentService) Delete(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}

// UploadPhoto stores a posture photo and appends its URL to posture.photos of the assessment.
func (s *AssessmentService) UploadPhoto(ctx context.Context, id int64, r io.Reader, filename, contentType string) (*entity.Assessment, string, error) {
	if s.Photos == nil {
		return nil, "", ErrStorageNotConfigured
	}
	if r == nil {
		return nil, "", ErrEmptyUpload
	}
	a, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	ext := strings.ToLower(path.Ext(filename))
	objectPath := path.Join("assessments", strconv.FormatInt(a.StudentID, 10), strconv.FormatInt(a.ID, 10), uuid.NewString()+ext)
	url, err := s.Photos.Upload(ctx, objectPath, contentType, r)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("assessment_id", id).Error("posture photo upload failed")
		}
		return nil, "", err
	}

	a.Posture = appendPhoto(a.Posture, url)
	if err := s.Repo.Update(ctx, a); err != nil {
		return nil, "", err
	}
	return a, url, nil
}

// appendPhoto returns a copy of posture with url added to its photo list.
func appendPhoto(posture entity.Document, url string) entity.Document {
	out := make(entity.Document, len(posture)+1)
	for k, v := range posture {
		out[k] = v
	}
	var photos []any
	switch cur := out[photosKey].(type) {
	case []any:
		photos = append(photos, cur...)
	case []string:
		for _, p := range cur {
			photos = append(photos, p)
		}
	}
	out[photosKey] = append(photos, url)
	return out
}
