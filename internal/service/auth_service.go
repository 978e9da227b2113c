package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Michaux-Technology/Geco-SchoolPlan/config"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/dto"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/model"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/repository"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/apperrors"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/jwt"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/qrcrypto"
)

// ErrEmailTaken is returned when registering an email that already
// has an account.
var ErrEmailTaken = errors.New("cet email est déjà utilisé")

// AuthService handles web registration and login, the static mobile
// accounts, and the QR login payloads handed to the mobile client.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	CheckDatabase(ctx context.Context) (*dto.CheckDatabaseResponse, error)

	MobileLogin(ctx context.Context, req *dto.MobileLoginRequest) (*dto.MobileAuthResponse, error)
	QRLogin(ctx context.Context, encrypted string) (*dto.MobileAuthResponse, error)
	GenerateQRPayload(username string) (string, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	logger *zap.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(cfg *config.Config, repo *repository.Repository, jwtMgr *jwt.Manager, logger *zap.Logger) AuthService {
	return &authService{cfg: cfg, repo: repo, jwtMgr: jwtMgr, logger: logger}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.repo.User.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBadCredentials
		}
		s.logger.Error("échec de la lecture de l'utilisateur", zap.Error(err))
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, apperrors.ErrBadCredentials
	}

	token, err := s.jwtMgr.GenerateUserToken(user.UserID, user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: token,
		User:  dto.AuthUser{ID: user.UserID, Email: user.Email, Name: user.Name},
	}, nil
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.repo.User.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	name := req.Name
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}
	role := req.Role
	if role == "" {
		role = "student"
	}

	user := &model.User{
		Email:    email,
		Password: string(hash),
		Name:     name,
		Role:     role,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("échec de la création de l'utilisateur", zap.Error(err))
		return nil, err
	}

	token, err := s.jwtMgr.GenerateUserToken(user.UserID, user.Email)
	if err != nil {
		return nil, err
	}

	s.logger.Info("nouvel utilisateur enregistré", zap.String("email", user.Email))

	return &dto.AuthResponse{
		Token: token,
		User:  dto.AuthUser{ID: user.UserID, Email: user.Email, Name: user.Name},
	}, nil
}

func (s *authService) CheckDatabase(ctx context.Context) (*dto.CheckDatabaseResponse, error) {
	n, err := s.repo.User.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CheckDatabaseResponse{Status: "ok", HasUsers: n > 0}, nil
}

func (s *authService) MobileLogin(ctx context.Context, req *dto.MobileLoginRequest) (*dto.MobileAuthResponse, error) {
	account := s.findMobileUser(req.Username)
	if account == nil || account.Password != req.Password {
		return nil, apperrors.ErrBadCredentials
	}

	token, err := s.jwtMgr.GenerateMobileToken(account.Username, account.Role)
	if err != nil {
		return nil, err
	}

	return &dto.MobileAuthResponse{
		Token: token,
		User:  dto.MobileUser{Username: account.Username, Role: account.Role},
	}, nil
}

// QRLogin decrypts a scanned QR payload and logs in with the embedded
// credentials. The payload targets this backend; a mismatched Backend
// URL is tolerated since instances are often reachable under several
// names.
func (s *authService) QRLogin(ctx context.Context, encrypted string) (*dto.MobileAuthResponse, error) {
	payload, err := qrcrypto.Decrypt(encrypted)
	if err != nil {
		s.logger.Warn("QR code illisible", zap.Error(err))
		return nil, apperrors.ErrBadCredentials
	}

	return s.MobileLogin(ctx, &dto.MobileLoginRequest{
		Username: payload.Username,
		Password: payload.Password,
	})
}

// GenerateQRPayload builds the encrypted QR content for a static
// mobile account, embedding the backend URL so the mobile client can
// configure itself from a single scan.
func (s *authService) GenerateQRPayload(username string) (string, error) {
	account := s.findMobileUser(username)
	if account == nil {
		return "", apperrors.NewNotFound("compte mobile", username)
	}

	return qrcrypto.Encrypt(&qrcrypto.Payload{
		Backend:    s.cfg.Server.BaseURL,
		SchoolName: "Geco SchoolPlan",
		Username:   account.Username,
		Password:   account.Password,
		Role:       account.Role,
		Timestamp:  time.Now().UnixMilli(),
		Version:    "1.0",
	})
}

func (s *authService) findMobileUser(username string) *config.MobileUser {
	for i := range s.cfg.Mobile.Users {
		if s.cfg.Mobile.Users[i].Username == username {
			return &s.cfg.Mobile.Users[i]
		}
	}
	return nil
}
