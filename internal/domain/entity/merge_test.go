package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/fitness-gen-api/internal/domain/optional"
)

func ptr[T any](v T) *T { return &v }

func sampleStudent() Student {
	return Student{
		ID:        7,
		CPF:       "12345678909",
		Name:      "Ana Souza",
		BirthDate: time.Date(1995, 3, 14, 0, 0, 0, 0, time.UTC),
		Sex:       ptr("F"),
		Email:     ptr("ana@example.com"),
		Phone:     ptr("+5511999990000"),
		CreatedAt: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
	}
}

func sampleMeasurement() Measurement {
	return Measurement{
		ID:         3,
		StudentID:  7,
		MeasuredAt: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
		HeightM:    ptr(1.80),
		WeightKg:   ptr(90.0),
		BMI:        ptr(27.78),
		Source:     ptr("bioimpedance"),
	}
}

func sampleAssessment() Assessment {
	return Assessment{
		ID:            11,
		StudentID:     7,
		MeasurementID: ptr(int64(3)),
		Objectives:    Document{"primary": "hypertrophy"},
		Posture:       Document{"kyphosis": true},
		Level:         ptr("beginner"),
		FreqPerWeek:   ptr(3),
		Status:        DefaultAssessmentStatus,
	}
}

func TestMergeStudent_EmptyPatchIsIdentity(t *testing.T) {
	cur := sampleStudent()
	assert.Equal(t, cur, MergeStudent(cur, StudentPatch{}))
}

func TestMergeStudent_OnlyPresentFieldsChange(t *testing.T) {
	cur := sampleStudent()
	got := MergeStudent(cur, StudentPatch{
		Name:  optional.Of("Ana S. Lima"),
		Email: optional.Nil[string](),
	})

	assert.Equal(t, "Ana S. Lima", got.Name)
	assert.Nil(t, got.Email)
	assert.Equal(t, cur.Phone, got.Phone)
	assert.Equal(t, cur.Sex, got.Sex)
	assert.Equal(t, cur.BirthDate, got.BirthDate)
}

func TestMergeStudent_CPFIsImmutable(t *testing.T) {
	cur := sampleStudent()
	got := MergeStudent(cur, StudentPatch{CPF: optional.Of("52998224725"), Name: optional.Of("X")})

	assert.Equal(t, "12345678909", got.CPF)
	assert.Equal(t, "X", got.Name)
}

func TestMergeStudent_NullOnRequiredFieldKeepsCurrent(t *testing.T) {
	cur := sampleStudent()
	got := MergeStudent(cur, StudentPatch{Name: optional.Nil[string](), BirthDate: optional.Nil[time.Time]()})
	assert.Equal(t, cur, got)
}

func TestMergeMeasurement_EmptyPatchIsIdentity(t *testing.T) {
	cur := sampleMeasurement()
	assert.Equal(t, cur, MergeMeasurement(cur, MeasurementPatch{}))
}

func TestMergeMeasurement_WeightRecomputesBMI(t *testing.T) {
	got := MergeMeasurement(sampleMeasurement(), MeasurementPatch{WeightKg: optional.Of(81.0)})

	require.NotNil(t, got.BMI)
	assert.Equal(t, 25.0, *got.BMI)
	assert.Equal(t, 1.80, *got.HeightM)
	assert.Equal(t, 81.0, *got.WeightKg)
}

func TestMergeMeasurement_HeightUsesExistingWeight(t *testing.T) {
	for _, h := range []float64{1.50, 1.65, 1.72, 1.91, 2.05} {
		got := MergeMeasurement(sampleMeasurement(), MeasurementPatch{HeightM: optional.Of(h)})
		require.NotNil(t, got.BMI)
		assert.Equal(t, *ComputeBMI(&h, ptr(90.0)), *got.BMI, "height %v", h)
	}
}

func TestMergeMeasurement_ClearingWeightDropsBMI(t *testing.T) {
	got := MergeMeasurement(sampleMeasurement(), MeasurementPatch{WeightKg: optional.Nil[float64]()})
	assert.Nil(t, got.WeightKg)
	assert.Nil(t, got.BMI)
}

func TestMergeMeasurement_OtherFieldsKeepStoredBMI(t *testing.T) {
	cur := sampleMeasurement()
	cur.BMI = ptr(99.99)
	got := MergeMeasurement(cur, MeasurementPatch{Notes: optional.Of("after holidays")})

	assert.Equal(t, 99.99, *got.BMI)
	assert.Equal(t, "after holidays", *got.Notes)
}

func TestMergeAssessment(t *testing.T) {
	cur := sampleAssessment()
	assert.Equal(t, cur, MergeAssessment(cur, AssessmentPatch{}))

	got := MergeAssessment(cur, AssessmentPatch{
		Posture:       optional.Nil[Document](),
		Injuries:      optional.Of(Document{"knee": map[string]any{"side": "left"}}),
		MeasurementID: optional.Nil[int64](),
		Status:        optional.Of("final"),
	})

	assert.Nil(t, got.Posture)
	assert.Equal(t, Document{"knee": map[string]any{"side": "left"}}, got.Injuries)
	assert.Nil(t, got.MeasurementID)
	assert.Equal(t, "final", got.Status)
	assert.Equal(t, cur.Objectives, got.Objectives)
	assert.Equal(t, cur.Level, got.Level)
}
