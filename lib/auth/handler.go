package auth

import (
	"github.com/pkg/errors"

	"fairhire-backend/db"
	candidatestore "fairhire-backend/lib/candidate/store"
	authutils "fairhire-backend/lib/utils/auth-utils"
	initchecker "fairhire-backend/lib/utils/init-checker"
	"fairhire-backend/models"
	authapimodels "fairhire-backend/models/api/auth"
	dbmodels "fairhire-backend/models/db"

	userstore "fairhire-backend/lib/auth/store"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Provider interface {
	Register(data authapimodels.RegisterRequest) (resp authapimodels.TokenResponse, err error)
	Login(data authapimodels.LoginRequest) (resp authapimodels.TokenResponse, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:          userstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"candidateStore", instance.candidateStore,
	)
	Instance = instance
}

type impl struct {
	store          userstore.Provider
	candidateStore candidatestore.Provider
}

// Register creates a candidate account together with an empty candidate
// profile and returns a signed token.
func (i impl) Register(data authapimodels.RegisterRequest) (authapimodels.TokenResponse, error) {
	resp := authapimodels.TokenResponse{}
	if err := data.Validate(); err != nil {
		return resp, err
	}
	existing, err := i.store.GetByEmail(data.Email)
	if err != nil {
		return resp, err
	}
	if existing != nil {
		return resp, errors.New("email is already registered")
	}
	user := dbmodels.User{
		Email:    data.Email,
		Password: authutils.GetMD5Hash(data.Password),
		Role:     models.UserRoleCandidate,
		IsActive: true,
	}
	userID, err := i.store.Create(user)
	if err != nil {
		return resp, err
	}
	candidateID, err := i.candidateStore.Create(dbmodels.Candidate{
		UserID: &userID,
		Name:   data.Name,
	})
	if err != nil {
		return resp, err
	}
	token, err := authutils.GetToken(userID, data.Name, candidateID, models.UserRoleCandidate)
	if err != nil {
		return resp, err
	}
	resp.AccessToken = token
	resp.CandidateID = candidateID
	return resp, nil
}

func (i impl) Login(data authapimodels.LoginRequest) (authapimodels.TokenResponse, error) {
	resp := authapimodels.TokenResponse{}
	if err := data.Validate(); err != nil {
		return resp, err
	}
	user, err := i.store.GetByEmail(data.Email)
	if err != nil {
		return resp, err
	}
	if user == nil || !user.IsActive {
		return resp, ErrInvalidCredentials
	}
	if user.Password != authutils.GetMD5Hash(data.Password) {
		return resp, ErrInvalidCredentials
	}
	candidateID := ""
	name := user.FirstName
	candidate, err := i.candidateStore.GetByUserID(user.ID)
	if err != nil {
		return resp, err
	}
	if candidate != nil {
		candidateID = candidate.ID
		name = candidate.Name
	}
	token, err := authutils.GetToken(user.ID, name, candidateID, user.Role)
	if err != nil {
		return resp, err
	}
	resp.AccessToken = token
	resp.CandidateID = candidateID
	return resp, nil
}
