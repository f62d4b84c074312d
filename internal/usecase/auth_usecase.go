package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"
	"hospital-dashboard/internal/infrastructure/session"
	"hospital-dashboard/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidCredentials = errors.New("username and password are required")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

// mockEmailDomain completes the email of mock users whose username is not an address.
const mockEmailDomain = "hospital.com"

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context) error
	GetCurrentUser(ctx context.Context) *entity.User
	IsAuthenticated(ctx context.Context) bool
	GetProfile(ctx context.Context) (*entity.User, error)
	ChangePassword(ctx context.Context, req *dto.ChangePasswordRequest) error

	// Authenticate and CreateAccount issue a session like Login and Register
	// but leave the persisted session untouched.
	Authenticate(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	CreateAccount(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
}

type authUsecase struct {
	backend    *Backend
	log        *logrus.Logger
	session    *session.Session
	jwtService *jwt.JWTService
}

func NewAuthUsecase(
	backend *Backend,
	log *logrus.Logger,
	session *session.Session,
	jwtService *jwt.JWTService,
) AuthUsecase {
	return &authUsecase{
		backend:    backend,
		log:        log,
		session:    session,
		jwtService: jwtService,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	resp, err := u.Authenticate(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := u.persist(ctx, resp); err != nil {
		return nil, err
	}

	u.log.WithFields(logrus.Fields{"username": resp.User.Username, "role": resp.User.Role}).Info("User logged in")
	return resp, nil
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	resp, err := u.CreateAccount(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := u.persist(ctx, resp); err != nil {
		return nil, err
	}

	u.log.WithFields(logrus.Fields{"username": resp.User.Username, "role": resp.User.Role}).Info("User registered")
	return resp, nil
}

func (u *authUsecase) Authenticate(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if u.backend.live() {
		resp := new(dto.AuthResponse)
		if err := u.backend.Client.Post(ctx, "/auth/login", req, resp); err != nil {
			u.log.Warnf("Failed to login: %+v", err)
			return nil, err
		}
		return resp, nil
	}

	if err := u.backend.simulate(ctx, "auth.login"); err != nil {
		u.log.Warnf("Failed to login: %+v", err)
		return nil, err
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		u.log.Warnf("Failed to login: %+v", ErrInvalidCredentials)
		return nil, ErrInvalidCredentials
	}

	return u.issue(&entity.User{
		ID:       uuid.NewString(),
		Username: username,
		Role:     InferRole(username),
		Email:    mockEmail(username),
	})
}

func (u *authUsecase) CreateAccount(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if u.backend.live() {
		resp := new(dto.AuthResponse)
		if err := u.backend.Client.Post(ctx, "/auth/register", req, resp); err != nil {
			u.log.Warnf("Failed to register: %+v", err)
			return nil, err
		}
		return resp, nil
	}

	if err := u.backend.simulate(ctx, "auth.register"); err != nil {
		u.log.Warnf("Failed to register: %+v", err)
		return nil, err
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		u.log.Warnf("Failed to register: %+v", ErrInvalidCredentials)
		return nil, ErrInvalidCredentials
	}

	user := &entity.User{
		ID:       uuid.NewString(),
		Username: username,
		Name:     req.Name,
		Role:     req.Role,
		Email:    req.Email,
	}
	if user.Role == "" {
		user.Role = InferRole(username)
	}
	if user.Email == "" {
		user.Email = mockEmail(username)
	}

	return u.issue(user)
}

// Logout clears the persisted session. It never calls the backend and is
// safe to repeat.
func (u *authUsecase) Logout(ctx context.Context) error {
	if err := u.session.Clear(ctx); err != nil {
		u.log.Warnf("Failed to clear session: %+v", err)
		return err
	}
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context) *entity.User {
	return u.session.User(ctx)
}

func (u *authUsecase) IsAuthenticated(ctx context.Context) bool {
	return u.session.IsAuthenticated(ctx)
}

func (u *authUsecase) GetProfile(ctx context.Context) (*entity.User, error) {
	if u.backend.live() {
		user := new(entity.User)
		if err := u.backend.Client.Get(ctx, "/auth/profile", nil, user); err != nil {
			u.log.Warnf("Failed to fetch profile: %+v", err)
			return nil, err
		}
		return user, nil
	}

	if err := u.backend.simulate(ctx, "auth.profile"); err != nil {
		u.log.Warnf("Failed to fetch profile: %+v", err)
		return nil, err
	}

	user := u.session.User(ctx)
	if user == nil || !u.session.IsAuthenticated(ctx) {
		return nil, ErrNotAuthenticated
	}
	return user, nil
}

// ChangePassword is accepted as-is by the mock backend once a session exists.
func (u *authUsecase) ChangePassword(ctx context.Context, req *dto.ChangePasswordRequest) error {
	if u.backend.live() {
		if err := u.backend.Client.Post(ctx, "/auth/change-password", req, nil); err != nil {
			u.log.Warnf("Failed to change password: %+v", err)
			return err
		}
		return nil
	}

	if err := u.backend.simulate(ctx, "auth.change-password"); err != nil {
		u.log.Warnf("Failed to change password: %+v", err)
		return err
	}

	if !u.session.IsAuthenticated(ctx) {
		return ErrNotAuthenticated
	}
	return nil
}

func (u *authUsecase) issue(user *entity.User) (*dto.AuthResponse, error) {
	token, err := u.jwtService.GenerateSessionToken(user.ID, user.Username, user.Email, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate session token: %+v", err)
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: user}, nil
}

func (u *authUsecase) persist(ctx context.Context, resp *dto.AuthResponse) error {
	if err := u.session.Save(ctx, resp.Token, resp.User); err != nil {
		u.log.Warnf("Failed to save session: %+v", err)
		return err
	}
	return nil
}

// InferRole guesses a mock user's role from the username: names containing
// "doctor" or carrying a "dr" title ("drSmith", "dr.house", "Dr_Grey") are
// doctors, everyone else ("drew", "drake") is an admin.
func InferRole(username string) string {
	if strings.Contains(strings.ToLower(username), entity.RoleDoctor) || hasDoctorTitle(username) {
		return entity.RoleDoctor
	}
	return entity.RoleAdmin
}

func hasDoctorTitle(username string) bool {
	if len(username) < 3 || !strings.EqualFold(username[:2], "dr") {
		return false
	}
	next := rune(username[2])
	return next == '.' || next == '_' || next == '-' || unicode.IsUpper(next)
}

func mockEmail(username string) string {
	if strings.Contains(username, "@") {
		return username
	}
	return strings.ToLower(username) + "@" + mockEmailDomain
}
