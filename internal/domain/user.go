package domain

type Role string

const (
	RoleDonor    Role = "donor"
	RoleReceiver Role = "receiver"
	RoleAdmin    Role = "admin"
)

// IsValid reports whether r is one of the three known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleDonor, RoleReceiver, RoleAdmin:
		return true
	}
	return false
}

// User is an authenticated identity. Role is fixed at registration.
// Donor-only and receiver-only fields stay zero for other roles.
type User struct {
	ID           int32  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	Age          int32  `json:"age,omitempty"`
	Gender       string `json:"gender,omitempty"`

	// Donor fields
	BloodType    BloodType `json:"blood_type,omitempty"`
	LastDonation string    `json:"last_donation,omitempty"`
	Donations    int32     `json:"donations,omitempty"`

	// Receiver fields
	Hospital         string `json:"hospital,omitempty"`
	MedicalCondition string `json:"medical_condition,omitempty"`

	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}
