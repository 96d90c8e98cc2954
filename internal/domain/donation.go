package domain

type DonationStatus string

const (
	DonationStatusSuccessful DonationStatus = "Successful"
	DonationStatusDeferred   DonationStatus = "Deferred"
)

// DonationRecord is one completed (or deferred) donation. History is
// append-only.
type DonationRecord struct {
	ID        int32          `json:"id"`
	DonorID   int32          `json:"donor_id"`
	DonorName string         `json:"donor_name"`
	BloodType BloodType      `json:"blood_type"`
	Amount    string         `json:"amount"`
	Date      string         `json:"date"`
	Center    string         `json:"center"`
	Status    DonationStatus `json:"status"`
}
