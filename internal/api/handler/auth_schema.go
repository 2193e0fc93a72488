package handler

import "github.com/auditsafe/audit-insights/internal/core/domain"

// Request/response schema types for the account endpoints. Explicit structs
// per endpoint keep the JSON contract decoupled from domain types and give
// the validator a boundary to check.

type profileFields struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Profession  string `json:"profession"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Bio         string `json:"bio" validate:"max=500"`
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	profileFields
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// getProfilesRequest carries the session token in the body, per the SPA wire
// contract. The email field is accepted for compatibility but identity always
// comes from the verified token.
type getProfilesRequest struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

type editProfilesRequest struct {
	Token string `json:"token"`
	Email string `json:"email"`
	profileFields
}

type registerResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type profileResponse struct {
	Email string `json:"email"`
	profileFields
}

type editProfilesResponse struct {
	Message string          `json:"message"`
	Profile profileResponse `json:"profile"`
}

func (p *profileFields) toDomain() domain.Profile {
	return domain.Profile{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Profession:  p.Profession,
		PhoneNumber: p.PhoneNumber,
		Address:     p.Address,
		City:        p.City,
		Country:     p.Country,
		Company:     p.Company,
		Position:    p.Position,
		Bio:         p.Bio,
	}
}

func toProfileResponse(u *domain.User) profileResponse {
	return profileResponse{
		Email: u.Email,
		profileFields: profileFields{
			FirstName:   u.Profile.FirstName,
			LastName:    u.Profile.LastName,
			Profession:  u.Profile.Profession,
			PhoneNumber: u.Profile.PhoneNumber,
			Address:     u.Profile.Address,
			City:        u.Profile.City,
			Country:     u.Profile.Country,
			Company:     u.Profile.Company,
			Position:    u.Profile.Position,
			Bio:         u.Profile.Bio,
		},
	}
}
