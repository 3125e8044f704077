package domain

import "time"

// Player is a participant attached to a confirmed booking. A player scans
// twice on the booking date: first scan checks in, second checks out.
type Player struct {
	ID           string     `json:"id"`
	BookingID    string     `json:"booking"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone,omitempty"`
	CheckInCount int        `json:"check_in_count"`
	LastCheckIn  *time.Time `json:"last_check_in"`
	LastCheckOut *time.Time `json:"last_check_out"`
	CreatedAt    time.Time  `json:"created_at"`
}

type PlayerStatus string

const (
	PlayerNotCheckedIn PlayerStatus = "Not Checked In"
	PlayerCheckedIn    PlayerStatus = "Checked In"
	PlayerCheckedOut   PlayerStatus = "Checked Out"
)

func (p *Player) Status() PlayerStatus {
	switch p.CheckInCount {
	case 0:
		return PlayerNotCheckedIn
	case 1:
		return PlayerCheckedIn
	default:
		return PlayerCheckedOut
	}
}

type CheckAction string

const (
	CheckActionIn  CheckAction = "IN"
	CheckActionOut CheckAction = "OUT"
)

type CheckInLog struct {
	ID        string      `json:"id"`
	PlayerID  string      `json:"player"`
	Action    CheckAction `json:"action"`
	Location  string      `json:"location,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

type CreatePlayerInput struct {
	BookingID string
	Name      string
	Email     string
	Phone     string
}
