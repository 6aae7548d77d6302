package response

import (
	"time"

	"event-checkout/internal/domain/checkout"
	"event-checkout/internal/usecase/queries"

	"github.com/google/uuid"
)

type PostalAddressResponse struct {
	PostalCode   string `json:"postal_code"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	Region       string `json:"region"`
}

func FromPostalAddress(a *queries.PostalAddress) PostalAddressResponse {
	return PostalAddressResponse{
		PostalCode:   a.PostalCode,
		Street:       a.Street,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		Region:       a.Region,
	}
}

type SavedProfileResponse struct {
	ID                 uuid.UUID        `json:"id"`
	Name               string           `json:"name"`
	Email              string           `json:"email"`
	Phone              string           `json:"phone"`
	Age                int              `json:"age"`
	CountryOfResidence string           `json:"country_of_residence"`
	Address            checkout.Address `json:"address"`
	CreatedAt          time.Time        `json:"created_at"`
}

func FromSavedProfiles(views []queries.SavedProfileView) []SavedProfileResponse {
	out := make([]SavedProfileResponse, len(views))
	for i, v := range views {
		p := v.Participant
		out[i] = SavedProfileResponse{
			ID:                 v.ID,
			Name:               p.Name,
			Email:              p.Email,
			Phone:              p.Phone,
			Age:                p.Age,
			CountryOfResidence: p.CountryOfResidence,
			Address:            p.Address,
			CreatedAt:          v.CreatedAt,
		}
	}
	return out
}
