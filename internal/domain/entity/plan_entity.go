package entity

import "time"

// Exercise is one entry of a training plan.
type Exercise struct {
	Exercise    string `json:"exercise"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	Focus       string `json:"focus"`
	Explanation string `json:"explanation"`
}

// Plan is a generated training plan persisted for an assessment.
type Plan struct {
	ID           int64
	StudentID    int64
	AssessmentID int64
	Exercises    []Exercise
	CreatedAt    time.Time
}
