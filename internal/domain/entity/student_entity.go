package entity

import "time"

// Student is the aggregate root; measurements, assessments and plans are owned by it
// and go away with it.
//
// CPF always holds the 11 normalized digits.
type Student struct {
	ID        int64
	CPF       string
	Name      string
	BirthDate time.Time
	Sex       *string
	Email     *string
	Phone     *string
	CreatedAt time.Time
}

// Age is derived from the birth date at read time and never stored.
func (s Student) Age(now time.Time) int {
	by, bm, bd := s.BirthDate.Date()
	ny, nm, nd := now.Date()
	age := ny - by
	if nm < bm || (nm == bm && nd < bd) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
