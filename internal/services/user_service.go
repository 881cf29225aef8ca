package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ecogestao/erp-backend/internal/config"
	"github.com/ecogestao/erp-backend/internal/dtos"
	"github.com/ecogestao/erp-backend/internal/models"
	"github.com/ecogestao/erp-backend/internal/utils"
)

const resetTokenValidity = 2 * time.Hour

// UserService owns registration, login, email confirmation and password
// recovery. Registration is fully transactional: the identity user, its
// role grant, the linked Client record and the confirmation email either
// all happen or none do.
type UserService struct {
	db    *gorm.DB
	cfg   *config.Config
	email EmailSender
}

func NewUserService(db *gorm.DB, cfg *config.Config, email EmailSender) *UserService {
	return &UserService{db: db, cfg: cfg, email: email}
}

// Register creates the login account plus the Client record and sends the
// confirmation email. Domain-level failures come back as a non-success
// AuthResult; only infrastructure problems surface as errors.
func (s *UserService) Register(ctx context.Context, req *dtos.RegisterRequest) (*dtos.AuthResult, error) {
	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return failure("E-mail já cadastrado"), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:                uuid.NewString(),
		Email:             req.Email,
		PasswordHash:      hash,
		ConfirmationToken: uuid.NewString(),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var role models.Role
		if err := tx.Where("name = ?", models.RoleCliente).First(&role).Error; err != nil {
			return fmt.Errorf("role %s: %w", models.RoleCliente, err)
		}
		user.Roles = []models.Role{role}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		client := models.Client{
			Name:       req.Name,
			Contact:    req.Contact,
			CNPJ:       req.CNPJ,
			Address:    req.Address,
			PostalCode: req.PostalCode,
			UserID:     &user.ID,
		}
		if err := tx.Create(&client).Error; err != nil {
			return err
		}

		return s.email.SendAccountConfirmation(ctx, user.Email, s.confirmationLink(&user))
	})
	if err != nil {
		utils.Logger.WithError(err).Error("Registration transaction rolled back")
		return nil, err
	}

	return &dtos.AuthResult{
		Success: true,
		Message: "Cadastro realizado. Verifique seu e-mail para confirmar a conta.",
	}, nil
}

// Login verifies credentials and issues a signed token. Unconfirmed
// accounts are rejected with the same generic failure as bad credentials.
func (s *UserService) Login(ctx context.Context, req *dtos.LoginRequest) (*dtos.AuthResult, error) {
	var user models.User
	err := s.db.WithContext(ctx).Preload("Roles").Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return failure("Credenciais inválidas"), nil
	}
	if err != nil {
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return failure("Credenciais inválidas"), nil
	}
	if !user.EmailConfirmed {
		return failure("E-mail ainda não confirmado"), nil
	}

	token, expires, err := s.generateToken(&user)
	if err != nil {
		return nil, err
	}
	return &dtos.AuthResult{
		Success:    true,
		Message:    "Login realizado com sucesso",
		Token:      token,
		ExpireDate: &expires,
	}, nil
}

// ConfirmEmail redeems the one-time confirmation token issued at register.
func (s *UserService) ConfirmEmail(ctx context.Context, userID, token string) (*dtos.AuthResult, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return failure("Token de confirmação inválido"), nil
	}
	if err != nil {
		return nil, err
	}

	if user.EmailConfirmed {
		return &dtos.AuthResult{Success: true, Message: "E-mail já confirmado"}, nil
	}
	if token == "" || user.ConfirmationToken != token {
		return failure("Token de confirmação inválido"), nil
	}

	updates := map[string]any{
		"email_confirmed":    true,
		"confirmation_token": "",
	}
	if err := s.db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &dtos.AuthResult{Success: true, Message: "E-mail confirmado com sucesso"}, nil
}

// ForgotPassword issues a reset token by email. To avoid account
// enumeration the response is identical whether or not the email exists.
func (s *UserService) ForgotPassword(ctx context.Context, req *dtos.ForgotPasswordRequest) (*dtos.AuthResult, error) {
	ok := &dtos.AuthResult{
		Success: true,
		Message: "Se o e-mail estiver cadastrado, as instruções de redefinição foram enviadas.",
	}

	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ok, nil
	}
	if err != nil {
		return nil, err
	}

	token := uuid.NewString()
	expiry := time.Now().Add(resetTokenValidity)
	updates := map[string]any{
		"reset_token":        token,
		"reset_token_expiry": &expiry,
	}
	if err := s.db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := s.email.SendPasswordReset(ctx, user.Email, token); err != nil {
		return nil, err
	}
	return ok, nil
}

// ResetPassword redeems a reset token and stores the new password hash.
func (s *UserService) ResetPassword(ctx context.Context, req *dtos.ResetPasswordRequest) (*dtos.AuthResult, error) {
	if req.NewPassword != req.ConfirmPassword {
		return failure("As senhas não conferem"), nil
	}

	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return failure("Token de redefinição inválido ou expirado"), nil
	}
	if err != nil {
		return nil, err
	}

	if user.ResetToken == "" || user.ResetToken != req.Token {
		return failure("Token de redefinição inválido ou expirado"), nil
	}
	if user.ResetTokenExpiry == nil || time.Now().After(*user.ResetTokenExpiry) {
		return failure("Token de redefinição inválido ou expirado"), nil
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return nil, err
	}
	updates := map[string]any{
		"password_hash":      hash,
		"reset_token":        "",
		"reset_token_expiry": nil,
	}
	if err := s.db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &dtos.AuthResult{Success: true, Message: "Senha redefinida com sucesso"}, nil
}

func (s *UserService) generateToken(user *models.User) (string, time.Time, error) {
	now := time.Now()
	expires := now.Add(s.cfg.TokenValidity)

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"roles": user.RoleNames(),
		"iss":   s.cfg.JWTIssuer,
		"aud":   s.cfg.JWTAudience,
		"iat":   now.Unix(),
		"exp":   expires.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.cfg.JWTSigningKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

func (s *UserService) confirmationLink(user *models.User) string {
	return fmt.Sprintf(
		"%s/api/Auth/confirm-email?userId=%s&token=%s",
		s.cfg.AppUrl,
		url.QueryEscape(user.ID),
		url.QueryEscape(user.ConfirmationToken),
	)
}

func failure(msgs ...string) *dtos.AuthResult {
	res := &dtos.AuthResult{Success: false}
	if len(msgs) > 0 {
		res.Message = msgs[0]
		res.Errors = msgs
	}
	return res
}
