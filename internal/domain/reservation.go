package domain

import "time"

type ReservationStatus string

const (
	StatusReserved   ReservationStatus = "RE"
	StatusCheckedIn  ReservationStatus = "IN"
	StatusCheckedOut ReservationStatus = "OT"
)

// Reservation binds a room, a guest and a half-open stay interval
// [StartDate, StartDate+Nights). Price is frozen at creation time so
// later discount or rate changes never rewrite history.
type Reservation struct {
	ID             int64             `json:"id"`
	ReferenceCode  string            `json:"reference_code"`
	GuestID        int64             `json:"guest_id"`
	RoomNumber     int               `json:"room_number"`
	ReservedAt     time.Time         `json:"reserved_at"`
	StartDate      time.Time         `json:"start_date"`
	Nights         int               `json:"nights"`
	NumberOfGuests int               `json:"number_of_guests"`
	Price          float64           `json:"price"`
	AmountPaid     float64           `json:"amount_paid"`
	Status         ReservationStatus `json:"status"`
	DiscountCode   string            `json:"discount_code,omitempty"`
	Notes          string            `json:"notes,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`

	Guest *Guest `json:"guest,omitempty"`
	Room  *Room  `json:"room,omitempty"`
}

// EndDate is the check-out date: the first day NOT covered by the stay.
func (r Reservation) EndDate() time.Time {
	return r.StartDate.AddDate(0, 0, r.Nights)
}
