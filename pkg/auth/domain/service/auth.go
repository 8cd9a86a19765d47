package service

import (
	"errors"
	"strings"
	"time"

	"github.com/Mouss-42/ReactSituPro-main/pkg/auth/domain/model"
	"github.com/Mouss-42/ReactSituPro-main/pkg/common/domain"
)

var ErrMissingCredentials = errors.New("username and password are required")

type AuthService interface {
	Register(username, plainTextPassword string, profile model.Profile) (*model.User, error)
	Login(username, plainTextPassword string) (string, *model.User, error)
	Session(token string) (model.Session, error)
}

func NewAuthService(repo model.UserRepository, passManager model.PasswordManager, tokens model.TokenIssuer, dispatcher domain.EventDispatcher) AuthService {
	return &authService{
		repo:        repo,
		passManager: passManager,
		tokens:      tokens,
		dispatcher:  dispatcher,
	}
}

type authService struct {
	repo        model.UserRepository
	passManager model.PasswordManager
	tokens      model.TokenIssuer
	dispatcher  domain.EventDispatcher
}

func (s *authService) Register(username, plainTextPassword string, profile model.Profile) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || plainTextPassword == "" {
		return nil, ErrMissingCredentials
	}

	if _, err := s.repo.FindByUsername(username); err == nil {
		return nil, model.ErrUsernameTaken
	} else if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	hashedPassword, err := s.passManager.Hash(plainTextPassword)
	if err != nil {
		return nil, err
	}

	userID, err := s.repo.NextID()
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:             userID,
		Username:       username,
		HashedPassword: hashedPassword,
		FirstName:      profile.FirstName,
		LastName:       profile.LastName,
		Email:          profile.Email,
		Phone:          profile.Phone,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Dispatch(model.UserRegistered{UserID: userID, Username: username})
	return user, nil
}

func (s *authService) Login(username, plainTextPassword string) (string, *model.User, error) {
	if username == "" || plainTextPassword == "" {
		return "", nil, ErrMissingCredentials
	}

	user, err := s.repo.FindByUsername(username)
	if errors.Is(err, model.ErrUserNotFound) {
		return "", nil, model.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	ok, err := s.passManager.Check(user.HashedPassword, plainTextPassword)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, model.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	_ = s.dispatcher.Dispatch(model.UserLoggedIn{UserID: user.ID})
	return token, user, nil
}

// Session resolves a bearer token. An empty token is an anonymous session,
// not an error.
func (s *authService) Session(token string) (model.Session, error) {
	if token == "" {
		return model.AnonymousSession(), nil
	}

	userID, err := s.tokens.Parse(token)
	if err != nil {
		return model.AnonymousSession(), model.ErrInvalidToken
	}

	user, err := s.repo.Find(userID)
	if err != nil {
		return model.AnonymousSession(), err
	}

	return model.Session{Authenticated: true, User: user.Profile()}, nil
}
