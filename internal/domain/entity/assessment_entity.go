package entity

import (
	"encoding/json"
	"time"
)

const DefaultAssessmentStatus = "draft"

// Document is an open string-keyed JSON object (objectives, posture, injuries, ...).
// Contents are not interpreted; they round-trip as sent.
type Document map[string]any

// DecodeDocument turns a raw JSONB column into a Document. NULL and empty input give nil.
func DecodeDocument(raw []byte) (Document, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var d Document
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return d, nil
}

// Assessment is the anamnesis dossier of a student, optionally pinned to a measurement snapshot.
type Assessment struct {
	ID             int64
	StudentID      int64
	MeasurementID  *int64
	Objectives     Document
	Posture        Document
	Injuries       Document
	Restrictions   Document
	History        Document
	Equipment      Document
	RedFlags       Document
	Readiness      Document
	Periodization  Document
	Level          *string
	FreqPerWeek    *int
	SessionTimeMin *int
	CaseNotes      *string
	Status         string
	CreatedAt      time.Time
}
