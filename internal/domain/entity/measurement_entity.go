package entity

import (
	"math"
	"time"
)

// Measurement is one body-composition reading of a student. MeasuredAt is unique per student.
type Measurement struct {
	ID             int64
	StudentID      int64
	MeasuredAt     time.Time
	HeightM        *float64
	WeightKg       *float64
	BodyFatPercent *float64
	MuscleMassKg   *float64
	BMI            *float64
	Source         *string
	Notes          *string
	CreatedAt      time.Time
}

// ComputeBMI returns weight/height² rounded to 2 decimals, or nil when an input is missing
// or height is not positive.
func ComputeBMI(heightM, weightKg *float64) *float64 {
	if heightM == nil || weightKg == nil || *heightM <= 0 {
		return nil
	}
	bmi := math.Round(*weightKg/(*heightM**heightM)*100) / 100
	return &bmi
}

// RecomputeBMI refreshes the stored BMI from the current height and weight.
func (m *Measurement) RecomputeBMI() {
	m.BMI = ComputeBMI(m.HeightM, m.WeightKg)
}
