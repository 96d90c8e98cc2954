package memory

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"bloodbank-backend/internal/domain"
)

// Seed loads the demo dataset: stocked inventory, a handful of donors and
// receivers, requests in every state, camps, appointments and donation
// history. Every seeded account uses the password "password".
func (s *Store) Seed(ctx context.Context) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	pw := string(hash)

	quantities := map[domain.BloodType]int32{
		domain.BloodTypeAPositive:  25,
		domain.BloodTypeANegative:  15,
		domain.BloodTypeBPositive:  30,
		domain.BloodTypeBNegative:  10,
		domain.BloodTypeABPositive: 12,
		domain.BloodTypeABNegative: 5,
		domain.BloodTypeOPositive:  45,
		domain.BloodTypeONegative:  20,
	}
	for bt, q := range quantities {
		if _, err := s.InventoryRepository.SetQuantity(ctx, bt, q); err != nil {
			return err
		}
	}

	users := []domain.User{
		{Name: "John Donor", Email: "donor@example.com", PasswordHash: pw, Role: domain.RoleDonor,
			BloodType: domain.BloodTypeOPositive, Age: 28, Gender: "Male",
			Phone: "123-456-7890", Address: "123 Main St, Anytown",
			LastDonation: "2023-11-15", Donations: 5},
		{Name: "Maria Garcia", Email: "maria@example.com", PasswordHash: pw, Role: domain.RoleDonor,
			BloodType: domain.BloodTypeAPositive, Age: 35, Gender: "Female",
			Phone: "234-567-8901", Address: "456 Oak Ave, Somewhere",
			LastDonation: "2023-12-20", Donations: 8},
		{Name: "Robert Smith", Email: "robert@example.com", PasswordHash: pw, Role: domain.RoleDonor,
			BloodType: domain.BloodTypeBNegative, Age: 42, Gender: "Male",
			Phone: "345-678-9012", Address: "789 Pine Rd, Elsewhere",
			LastDonation: "2024-01-05", Donations: 12},
		{Name: "Emily Johnson", Email: "emily@example.com", PasswordHash: pw, Role: domain.RoleDonor,
			BloodType: domain.BloodTypeABPositive, Age: 29, Gender: "Female",
			Phone: "456-789-0123", Address: "101 Elm St, Nowhere",
			LastDonation: "2024-02-18", Donations: 3},
		{Name: "Sarah Receiver", Email: "receiver@example.com", PasswordHash: pw, Role: domain.RoleReceiver,
			BloodType: domain.BloodTypeABNegative, Age: 32, Gender: "Female",
			Phone: "567-890-1234", Address: "202 Maple Dr, Anytown",
			MedicalCondition: "Surgery", Hospital: "General Hospital"},
		{Name: "James Wilson", Email: "james@example.com", PasswordHash: pw, Role: domain.RoleReceiver,
			BloodType: domain.BloodTypeONegative, Age: 45, Gender: "Male",
			Phone: "678-901-2345", Address: "303 Cedar Ln, Somewhere",
			MedicalCondition: "Anemia", Hospital: "City Medical Center"},
		{Name: "Linda Martinez", Email: "linda@example.com", PasswordHash: pw, Role: domain.RoleReceiver,
			BloodType: domain.BloodTypeANegative, Age: 38, Gender: "Female",
			Phone: "789-012-3456", Address: "404 Birch Blvd, Elsewhere",
			MedicalCondition: "Accident", Hospital: "Emergency Care Hospital"},
		{Name: "Admin User", Email: "admin@example.com", PasswordHash: pw, Role: domain.RoleAdmin},
	}
	ids := make(map[string]int32)
	for i := range users {
		if err := s.UserRepository.Create(ctx, &users[i]); err != nil {
			return err
		}
		ids[users[i].Email] = users[i].ID
	}

	decided := func(on string) *string { return &on }
	requests := []domain.BloodRequest{
		{Reference: "REQ-2024-0001", ReceiverID: ids["receiver@example.com"], ReceiverName: "Sarah Receiver",
			BloodType: domain.BloodTypeABNegative, Units: 2, RequestDate: "2024-03-01",
			Status: domain.RequestStatusApproved, Urgency: domain.UrgencyHigh,
			Hospital: "General Hospital", Reason: "Surgery scheduled for March 5th",
			DecidedOn: decided("2024-03-02")},
		{Reference: "REQ-2024-0002", ReceiverID: ids["james@example.com"], ReceiverName: "James Wilson",
			BloodType: domain.BloodTypeONegative, Units: 3, RequestDate: "2024-03-10",
			Status: domain.RequestStatusPending, Urgency: domain.UrgencyCritical,
			Hospital: "City Medical Center", Reason: "Severe anemia requiring immediate transfusion"},
		{Reference: "REQ-2024-0003", ReceiverID: ids["linda@example.com"], ReceiverName: "Linda Martinez",
			BloodType: domain.BloodTypeANegative, Units: 1, RequestDate: "2024-03-15",
			Status: domain.RequestStatusRejected, Urgency: domain.UrgencyMedium,
			Hospital: "Emergency Care Hospital", Reason: "Car accident victim",
			DecidedOn: decided("2024-03-16")},
		{Reference: "REQ-2024-0004", ReceiverID: ids["receiver@example.com"], ReceiverName: "Sarah Receiver",
			BloodType: domain.BloodTypeABNegative, Units: 1, RequestDate: "2024-03-20",
			Status: domain.RequestStatusApproved, Urgency: domain.UrgencyLow,
			Hospital: "General Hospital", Reason: "Follow-up treatment",
			DecidedOn: decided("2024-03-21")},
	}
	for i := range requests {
		if err := s.RequestRepository.Create(ctx, &requests[i]); err != nil {
			return err
		}
	}

	camps := []domain.DonationCamp{
		{Name: "City Community Center Drive", Location: "Community Center, 123 Main St",
			Date: "2024-04-15", Time: "9:00 AM - 5:00 PM", Organizer: "Red Cross",
			ContactPhone: "555-123-4567", Slots: 50, Status: domain.CampStatusUpcoming,
			Description: "Annual blood donation drive at the city community center. Walk-ins welcome, but appointments preferred."},
		{Name: "University Campus Drive", Location: "Student Union Building, State University",
			Date: "2024-04-22", Time: "10:00 AM - 6:00 PM", Organizer: "State University Medical School",
			ContactPhone: "555-234-5678", Slots: 100, Status: domain.CampStatusUpcoming,
			Description: "Blood donation drive targeting university students and staff. Free refreshments provided to all donors."},
		{Name: "Corporate Office Drive", Location: "Tech Plaza, 456 Business Ave",
			Date: "2024-05-05", Time: "8:00 AM - 2:00 PM", Organizer: "Blood Connect Foundation",
			ContactPhone: "555-345-6789", Slots: 40, Status: domain.CampStatusUpcoming,
			Description: "Blood donation drive for corporate employees. Special recognition for first-time donors."},
		{Name: "Downtown Health Fair", Location: "Central Park, Downtown",
			Date: "2024-03-10", Time: "9:00 AM - 4:00 PM", Organizer: "City Health Department",
			ContactPhone: "555-456-7890", Slots: 75, Status: domain.CampStatusCompleted,
			Description: "Part of the annual city health fair, featuring blood donation, health screenings, and family activities."},
	}
	for i := range camps {
		if err := s.CampRepository.Create(ctx, &camps[i]); err != nil {
			return err
		}
	}

	appts := []domain.Appointment{
		{DonorID: ids["donor@example.com"], DonorName: "John Donor", CampID: camps[0].ID,
			CampName: camps[0].Name, Date: "2024-04-15", Time: "10:30 AM",
			Status: domain.AppointmentStatusScheduled},
		{DonorID: ids["maria@example.com"], DonorName: "Maria Garcia", CampID: camps[1].ID,
			CampName: camps[1].Name, Date: "2024-04-22", Time: "1:15 PM",
			Status: domain.AppointmentStatusScheduled},
		{DonorID: ids["robert@example.com"], DonorName: "Robert Smith", CampID: camps[0].ID,
			CampName: camps[0].Name, Date: "2024-04-15", Time: "3:45 PM",
			Status: domain.AppointmentStatusScheduled},
		{DonorID: ids["emily@example.com"], DonorName: "Emily Johnson", CampID: camps[3].ID,
			CampName: camps[3].Name, Date: "2024-03-10", Time: "11:00 AM",
			Status: domain.AppointmentStatusCompleted},
	}
	for i := range appts {
		if err := s.AppointmentRepository.Create(ctx, &appts[i]); err != nil {
			return err
		}
	}

	history := []domain.DonationRecord{
		{DonorID: ids["donor@example.com"], DonorName: "John Donor", BloodType: domain.BloodTypeOPositive,
			Amount: "450ml", Date: "2023-11-15", Center: "Main Blood Bank", Status: domain.DonationStatusSuccessful},
		{DonorID: ids["maria@example.com"], DonorName: "Maria Garcia", BloodType: domain.BloodTypeAPositive,
			Amount: "450ml", Date: "2023-12-20", Center: "University Medical Center", Status: domain.DonationStatusSuccessful},
		{DonorID: ids["robert@example.com"], DonorName: "Robert Smith", BloodType: domain.BloodTypeBNegative,
			Amount: "450ml", Date: "2024-01-05", Center: "Community Blood Drive", Status: domain.DonationStatusSuccessful},
		{DonorID: ids["donor@example.com"], DonorName: "John Donor", BloodType: domain.BloodTypeOPositive,
			Amount: "450ml", Date: "2023-08-22", Center: "Mobile Blood Drive Unit", Status: domain.DonationStatusSuccessful},
		{DonorID: ids["emily@example.com"], DonorName: "Emily Johnson", BloodType: domain.BloodTypeABPositive,
			Amount: "450ml", Date: "2024-02-18", Center: "Downtown Health Fair", Status: domain.DonationStatusSuccessful},
	}
	for i := range history {
		if err := s.DonationRepository.Create(ctx, &history[i]); err != nil {
			return err
		}
	}

	return nil
}
