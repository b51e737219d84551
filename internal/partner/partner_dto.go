package partner

import "time"

type RegisterPartnerRequest struct {
	Name         string   `json:"name"`
	PhoneNumbers []string `json:"phoneNumbers"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	PinCode      string   `json:"pinCode"`
	Address      string   `json:"address"`
	Email        string   `json:"email"`
}

type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

type PartnerResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	PhoneNumbers []string `json:"phoneNumbers"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	PinCode      string   `json:"pinCode"`
	Address      string   `json:"address"`
	Email        string   `json:"email"`
	UniqueCode   string   `json:"uniqueCode"`
	AdminNotes   *string  `json:"adminNotes"`
	CreatedAt    string   `json:"createdAt"`
}

func mapToResponse(p Partner) PartnerResponse {
	phones := make([]string, len(p.PhoneNumbers))
	copy(phones, p.PhoneNumbers)

	return PartnerResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		PhoneNumbers: phones,
		City:         p.City,
		State:        p.State,
		PinCode:      p.PinCode,
		Address:      p.Address,
		Email:        p.Email,
		UniqueCode:   p.UniqueCode,
		AdminNotes:   p.AdminNotes,
		CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(partners []Partner) []PartnerResponse {
	res := make([]PartnerResponse, len(partners))
	for i, p := range partners {
		res[i] = mapToResponse(p)
	}
	return res
}
