package entity

import "github.com/oksasatya/fitness-gen-api/internal/domain/optional"

// MergeStudent applies the present fields of p on top of cur. The CPF never changes here.
func MergeStudent(cur Student, p StudentPatch) Student {
	out := cur
	p.Name.ApplyTo(&out.Name)
	p.BirthDate.ApplyTo(&out.BirthDate)
	p.Sex.ApplyToPtr(&out.Sex)
	p.Email.ApplyToPtr(&out.Email)
	p.Phone.ApplyToPtr(&out.Phone)
	return out
}

// MergeMeasurement applies the present fields of p on top of cur. When height or weight is
// touched the BMI is recomputed from the merged values; otherwise the stored one is kept.
func MergeMeasurement(cur Measurement, p MeasurementPatch) Measurement {
	out := cur
	p.MeasuredAt.ApplyTo(&out.MeasuredAt)
	p.HeightM.ApplyToPtr(&out.HeightM)
	p.WeightKg.ApplyToPtr(&out.WeightKg)
	p.BodyFatPercent.ApplyToPtr(&out.BodyFatPercent)
	p.MuscleMassKg.ApplyToPtr(&out.MuscleMassKg)
	p.Source.ApplyToPtr(&out.Source)
	p.Notes.ApplyToPtr(&out.Notes)
	if p.HeightM.Set || p.WeightKg.Set {
		out.RecomputeBMI()
	}
	return out
}

// MergeAssessment applies the present fields of p on top of cur.
func MergeAssessment(cur Assessment, p AssessmentPatch) Assessment {
	out := cur
	p.MeasurementID.ApplyToPtr(&out.MeasurementID)
	applyDoc(p.Objectives, &out.Objectives)
	applyDoc(p.Posture, &out.Posture)
	applyDoc(p.Injuries, &out.Injuries)
	applyDoc(p.Restrictions, &out.Restrictions)
	applyDoc(p.History, &out.History)
	applyDoc(p.Equipment, &out.Equipment)
	applyDoc(p.RedFlags, &out.RedFlags)
	applyDoc(p.Readiness, &out.Readiness)
	applyDoc(p.Periodization, &out.Periodization)
	p.Level.ApplyToPtr(&out.Level)
	p.FreqPerWeek.ApplyToPtr(&out.FreqPerWeek)
	p.SessionTimeMin.ApplyToPtr(&out.SessionTimeMin)
	p.CaseNotes.ApplyToPtr(&out.CaseNotes)
	p.Status.ApplyTo(&out.Status)
	return out
}

// documents are reference types, so null maps straight to a nil Document
func applyDoc(f optional.Field[Document], dst *Document) {
	if !f.Set {
		return
	}
	if f.Null {
		*dst = nil
		return
	}
	*dst = f.Value
}
