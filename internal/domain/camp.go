package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type CampStatus string

const (
	CampStatusUpcoming  CampStatus = "Upcoming"
	CampStatusCompleted CampStatus = "Completed"
)

// DonationCamp is an organized donation event. Slots is advisory capacity:
// it is displayed to donors but bookings are not capped against it.
type DonationCamp struct {
	ID           int32      `json:"id"`
	Name         string     `json:"name"`
	Location     string     `json:"location"`
	Date         string     `json:"date"`
	Time         string     `json:"time"` // display range, e.g. "9:00 AM - 5:00 PM"
	Organizer    string     `json:"organizer"`
	ContactPhone string     `json:"contact_phone"`
	Slots        int32      `json:"slots"`
	Status       CampStatus `json:"status"`
	Description  string     `json:"description"`
	CreatedOn    string     `json:"created_on"`
}

// TimeSlots expands the camp's display time range into half-hour booking
// labels. Parsing is hour-granular (minutes in the range are ignored) and the
// end hour is exclusive, so "9:00 AM - 5:00 PM" yields 9:00 AM through
// 4:30 PM.
func (c *DonationCamp) TimeSlots() ([]string, error) {
	parts := strings.Split(c.Time, " - ")
	if len(parts) != 2 {
		return nil, fmt.Errorf("malformed camp time range %q", c.Time)
	}

	start, err := rangeHour(parts[0])
	if err != nil {
		return nil, err
	}
	end, err := rangeHour(parts[1])
	if err != nil {
		return nil, err
	}

	var slots []string
	for hour := start; hour < end; hour++ {
		display := hour % 12
		if display == 0 {
			display = 12
		}
		period := "AM"
		if hour >= 12 {
			period = "PM"
		}
		slots = append(slots, fmt.Sprintf("%d:00 %s", display, period))
		slots = append(slots, fmt.Sprintf("%d:30 %s", display, period))
	}
	return slots, nil
}

// rangeHour converts one side of a "H:MM AM/PM" range to a 24h hour.
func rangeHour(label string) (int, error) {
	hourPart, _, ok := strings.Cut(label, ":")
	if !ok {
		return 0, fmt.Errorf("malformed time label %q", label)
	}
	hour, err := strconv.Atoi(strings.TrimSpace(hourPart))
	if err != nil {
		return 0, fmt.Errorf("malformed time label %q", label)
	}
	if strings.Contains(label, "PM") && hour != 12 {
		hour += 12
	}
	return hour, nil
}

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "Scheduled"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// Appointment is a donor's reserved slot at a camp. Donor and camp names are
// denormalized for display.
type Appointment struct {
	ID        int32             `json:"id"`
	DonorID   int32             `json:"donor_id"`
	DonorName string            `json:"donor_name"`
	CampID    int32             `json:"camp_id"`
	CampName  string            `json:"camp_name"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Status    AppointmentStatus `json:"status"`
	CreatedOn string            `json:"created_on"`
}
