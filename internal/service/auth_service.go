package service

import (
	"time"

	"github.com/google/uuid"

	"go-phone-store/internal/apperr"
	"go-phone-store/internal/model"
	"go-phone-store/internal/repository"
	"go-phone-store/internal/ws"
	"go-phone-store/pkg/jwt"
)

// Sessions are single-device: every login rotates the token version and
// a mismatch on later requests invalidates the older session.
const sessionIdleTimeout = 5 * time.Minute

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	ResetPassword(email, oldPassword, newPassword string) error
	ValidateToken(tokenString string) (*TokenValidationResponse, error)
	Heartbeat(userID uuid.UUID) error
}

type LoginResponse struct {
	Token      string             `json:"token"`
	User       model.UserResponse `json:"user"`
	Role       *model.Role        `json:"role"`
	Privileges []string           `json:"privileges"`
}

type TokenValidationResponse struct {
	User       model.UserResponse `json:"user"`
	Role       *model.Role        `json:"role"`
	Privileges []string           `json:"privileges"`
}

type authService struct {
	userRepo repository.UserRepository
	hub      *ws.Hub
}

func NewAuthService(userRepo repository.UserRepository, hub *ws.Hub) AuthService {
	return &authService{userRepo: userRepo, hub: hub}
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, apperr.New(apperr.KindValidation, "invalid email or password")
	}
	if !user.IsActive {
		return nil, apperr.New(apperr.KindValidation, "user account is inactive")
	}
	if !user.CheckPassword(password) {
		return nil, apperr.New(apperr.KindValidation, "invalid email or password")
	}

	roleCode := ""
	if user.Role != nil {
		roleCode = user.Role.Code
	}

	// Rotate the token version so any session on another device stops
	// validating, and stamp LastSeenAt so the new session does not hit
	// the idle timeout immediately.
	now := time.Now()
	user.TokenVersion = uuid.New().String()
	user.LastSeenAt = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "failed to update session", err)
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.FullName, roleCode, user.GetPrivilegeCodes(), user.TokenVersion)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnknown, "failed to generate token", err)
	}

	return &LoginResponse{
		Token:      token,
		User:       user.ToResponse(),
		Role:       user.Role,
		Privileges: user.GetPrivilegeCodes(),
	}, nil
}

func (s *authService) ResetPassword(email, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return apperr.New(apperr.KindNotFound, "user not found")
	}
	if !user.CheckPassword(oldPassword) {
		return apperr.New(apperr.KindValidation, "current password is incorrect")
	}
	if err := user.SetPassword(newPassword); err != nil {
		return apperr.Wrap(apperr.KindUnknown, "failed to hash new password", err)
	}
	if err := s.userRepo.Update(user); err != nil {
		return apperr.Wrap(apperr.KindPersistence, "failed to save password", err)
	}
	return nil
}

func (s *authService) ValidateToken(tokenString string) (*TokenValidationResponse, error) {
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "invalid token", err)
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, apperr.New(apperr.KindNotFound, "user not found")
	}
	if !user.IsActive {
		return nil, apperr.New(apperr.KindValidation, "user account is inactive")
	}
	if user.TokenVersion != claims.TokenVersion {
		return nil, apperr.New(apperr.KindValidation, "session expired (logged in on another device)")
	}
	// LastSeenAt nil means the session never heartbeated; treat as idle.
	if user.LastSeenAt == nil || time.Since(*user.LastSeenAt) > sessionIdleTimeout {
		return nil, apperr.New(apperr.KindValidation, "session expired due to inactivity")
	}

	return &TokenValidationResponse{
		User:       user.ToResponse(),
		Role:       user.Role,
		Privileges: user.GetPrivilegeCodes(),
	}, nil
}

func (s *authService) Heartbeat(userID uuid.UUID) error {
	if err := s.userRepo.UpdateLastSeen(userID); err != nil {
		return apperr.Wrap(apperr.KindPersistence, "failed to record heartbeat", err)
	}

	s.hub.Publish(map[string]interface{}{
		"type":         "user_status_update",
		"user_id":      userID.String(),
		"status":       "online",
		"last_seen_at": time.Now(),
	})
	return nil
}
