package models

import "time"

// CredentialPair is the access/refresh token pair for one person's upstream
// calendar account. The pair is always read and written as a whole.
type CredentialPair struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	Expiry       time.Time `json:"expiry,omitempty"`
}
