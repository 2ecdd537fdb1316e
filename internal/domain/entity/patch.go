package entity

import (
	"time"

	"github.com/oksasatya/fitness-gen-api/internal/domain/optional"
)

// StudentPatch is a sparse student update. CPF is accepted so that callers can pass the
// raw payload through, but it is never applied.
type StudentPatch struct {
	CPF       optional.Field[string]
	Name      optional.Field[string]
	BirthDate optional.Field[time.Time]
	Sex       optional.Field[string]
	Email     optional.Field[string]
	Phone     optional.Field[string]
}

type MeasurementPatch struct {
	MeasuredAt     optional.Field[time.Time]
	HeightM        optional.Field[float64]
	WeightKg       optional.Field[float64]
	BodyFatPercent optional.Field[float64]
	MuscleMassKg   optional.Field[float64]
	Source         optional.Field[string]
	Notes          optional.Field[string]
}

type AssessmentPatch struct {
	MeasurementID  optional.Field[int64]
	Objectives     optional.Field[Document]
	Posture        optional.Field[Document]
	Injuries       optional.Field[Document]
	Restrictions   optional.Field[Document]
	History        optional.Field[Document]
	Equipment      optional.Field[Document]
	RedFlags       optional.Field[Document]
	Readiness      optional.Field[Document]
	Periodization  optional.Field[Document]
	Level          optional.Field[string]
	FreqPerWeek    optional.Field[int]
	SessionTimeMin optional.Field[int]
	CaseNotes      optional.Field[string]
	Status         optional.Field[string]
}
