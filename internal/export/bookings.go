package export

import "github.com/example/turf-admin/internal/models"

// BookingRows maps bookings to the column layout the admin screen
// exports: serial number first, then turf, location, slot, sport,
// payment status and date.
func BookingRows(bookings []models.Booking) []Row {
	rows := make([]Row, 0, len(bookings))
	for i, b := range bookings {
		rows = append(rows, Row{
			{Name: "SNo", Value: i + 1},
			{Name: "TurfName", Value: b.TurfName},
			{Name: "Location", Value: b.TurfLocation},
			{Name: "TimeSlot", Value: b.TimeSlot},
			{Name: "Sports", Value: b.Sports},
			{Name: "Status", Value: b.PaymentStatus},
			{Name: "DateTime", Value: b.Date},
		})
	}
	return rows
}
