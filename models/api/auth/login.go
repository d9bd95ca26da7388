package authapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (r RegisterRequest) Validate() error {
	if !strings.Contains(r.Email, "@") {
		return errors.New("invalid email")
	}
	if len(r.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	if r.Name == "" {
		return errors.New("name is not specified")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Email == "" {
		return errors.New("email is not specified")
	}
	if r.Password == "" {
		return errors.New("password is not specified")
	}
	return nil
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	CandidateID string `json:"candidate_id,omitempty"`
}
