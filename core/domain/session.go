// ABOUTME: Session and profile domain models for the authenticated client identity
// ABOUTME: Normalizes the legacy "admin" field and keeps token/profile coupled

package domain

import "encoding/json"

// Profile is the authenticated user's identity as reported by the server.
type Profile struct {
	// UserID is the server-side user identifier
	UserID int64 `json:"userId"`

	// Email is the account email address
	Email string `json:"email"`

	// FullName is the user's display name
	FullName string `json:"fullName"`

	// IsAdmin reports whether the account has admin privileges
	IsAdmin bool `json:"isAdmin"`
}

// AuthResponse is the body returned by the login and signup endpoints.
type AuthResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"userId"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Profile extracts the profile portion of an auth response.
func (a *AuthResponse) Profile() *Profile {
	return &Profile{
		UserID:   a.UserID,
		Email:    a.Email,
		FullName: a.FullName,
		IsAdmin:  a.IsAdmin,
	}
}

// UnmarshalJSON accepts the legacy "admin" field some backend builds emit
// in place of "isAdmin". When both are absent IsAdmin defaults to false.
func (p *Profile) UnmarshalJSON(data []byte) error {
	type alias Profile
	aux := struct {
		*alias
		ID          *int64 `json:"id"`
		LegacyAdmin *bool  `json:"admin"`
		IsAdmin     *bool  `json:"isAdmin"`
	}{alias: (*alias)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	// Some profile payloads use "id" instead of "userId"
	if aux.ID != nil && p.UserID == 0 {
		p.UserID = *aux.ID
	}

	switch {
	case aux.IsAdmin != nil:
		p.IsAdmin = *aux.IsAdmin
	case aux.LegacyAdmin != nil:
		p.IsAdmin = *aux.LegacyAdmin
	default:
		p.IsAdmin = false
	}
	return nil
}

// SignupRequest carries the fields accepted by the signup endpoint.
// Optional fields are omitted from the request body when empty.
type SignupRequest struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	FullName         string `json:"fullName"`
	Address          string `json:"address,omitempty"`
	PhoneNumber      string `json:"phoneNumber,omitempty"`
	AdminCode        string `json:"adminCode,omitempty"`
	SecurityQuestion string `json:"securityQuestion,omitempty"`
	SecurityAnswer   string `json:"securityAnswer,omitempty"`
}
