package domain

import "time"

// DefaultDailyCapacityHours is assumed when a user has no stated capacity.
const DefaultDailyCapacityHours = 8.0

type User struct {
	ID                 string
	Name               string
	TeamID             string
	DailyCapacityHours float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CapacityHours returns the user's daily capacity, falling back to the
// default when unset.
func (u *User) CapacityHours() float64 {
	if u.DailyCapacityHours <= 0 {
		return DefaultDailyCapacityHours
	}
	return u.DailyCapacityHours
}
