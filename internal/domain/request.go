package domain

import "sort"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "Pending"
	RequestStatusApproved RequestStatus = "Approved"
	RequestStatusRejected RequestStatus = "Rejected"
)

// IsFinal reports whether the status is terminal. Approved and Rejected
// requests never transition again.
func (s RequestStatus) IsFinal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

type Urgency string

const (
	UrgencyLow      Urgency = "Low"
	UrgencyMedium   Urgency = "Medium"
	UrgencyHigh     Urgency = "High"
	UrgencyCritical Urgency = "Critical"
)

func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}

// urgencyRank orders urgencies most-urgent-first for triage listings.
var urgencyRank = map[Urgency]int{
	UrgencyCritical: 0,
	UrgencyHigh:     1,
	UrgencyMedium:   2,
	UrgencyLow:      3,
}

// BloodRequest is a receiver's claim on inventory, pending admin decision.
type BloodRequest struct {
	ID           int32         `json:"id"`
	Reference    string        `json:"reference"`
	ReceiverID   int32         `json:"receiver_id"`
	ReceiverName string        `json:"receiver_name"`
	BloodType    BloodType     `json:"blood_type"`
	Units        int32         `json:"units"`
	RequestDate  string        `json:"request_date"`
	Status       RequestStatus `json:"status"`
	Urgency      Urgency       `json:"urgency"`
	Hospital     string        `json:"hospital"`
	Reason       string        `json:"reason"`
	DecidedOn    *string       `json:"decided_on,omitempty"`
}

// SortForTriage orders requests for the admin queue: pending before finalized,
// pending ranked by urgency (Critical first), everything else newest first.
// Dates are ISO 2006-01-02 strings so lexical comparison is chronological.
func SortForTriage(requests []BloodRequest) {
	sort.SliceStable(requests, func(i, j int) bool {
		a, b := requests[i], requests[j]
		aPending := a.Status == RequestStatusPending
		bPending := b.Status == RequestStatusPending
		if aPending != bPending {
			return aPending
		}
		if aPending && bPending && a.Urgency != b.Urgency {
			return urgencyRank[a.Urgency] < urgencyRank[b.Urgency]
		}
		return a.RequestDate > b.RequestDate
	})
}
