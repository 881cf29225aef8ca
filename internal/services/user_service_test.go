package services

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecogestao/erp-backend/internal/dtos"
	"github.com/ecogestao/erp-backend/internal/models"
)

func registerReq() *dtos.RegisterRequest {
	return &dtos.RegisterRequest{
		Email:           "dono@acme.com",
		Password:        "s3nha-forte",
		ConfirmPassword: "s3nha-forte",
		Name:            "acme",
		Contact:         "contato@acme.com",
		CNPJ:            "12.345.678/0001-90",
		Address:         "Rua das Flores, 100",
		PostalCode:      "01001-000",
	}
}

func TestRegisterCreatesUserClientAndRole(t *testing.T) {
	db := setupTestDB(t)
	sender := &fakeEmailSender{}
	svc := NewUserService(db, testConfig(), sender)

	res, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)
	require.True(t, res.Success)

	var user models.User
	require.NoError(t, db.Preload("Roles").Where("email = ?", "dono@acme.com").First(&user).Error)
	assert.True(t, user.HasRole(models.RoleCliente))
	assert.False(t, user.EmailConfirmed)
	assert.NotEmpty(t, user.ConfirmationToken)

	var client models.Client
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&client).Error)
	assert.Equal(t, "acme", client.Name)

	require.Len(t, sender.confirmations, 1)
	assert.Equal(t, "dono@acme.com", sender.confirmations[0])
}

func TestRegisterDuplicateEmailFails(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig(), &fakeEmailSender{})
	ctx := context.Background()

	res, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)
	require.True(t, res.Success)

	res, err = svc.Register(ctx, registerReq())
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Errors)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRegisterRollsBackWhenEmailFails(t *testing.T) {
	db := setupTestDB(t)
	sender := &fakeEmailSender{failNext: true}
	svc := NewUserService(db, testConfig(), sender)

	_, err := svc.Register(context.Background(), registerReq())
	require.Error(t, err)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count, "user row must not survive a failed registration")
	db.Model(&models.Client{}).Count(&count)
	assert.Zero(t, count, "client row must not survive a failed registration")
}

func TestLoginIssuesTokenWithClaims(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	svc := NewUserService(db, cfg, &fakeEmailSender{})
	ctx := context.Background()

	res, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)
	require.True(t, res.Success)

	require.NoError(t, db.Model(&models.User{}).
		Where("email = ?", "dono@acme.com").
		Update("email_confirmed", true).Error)

	login, err := svc.Login(ctx, &dtos.LoginRequest{Email: "dono@acme.com", Password: "s3nha-forte"})
	require.NoError(t, err)
	require.True(t, login.Success)
	require.NotEmpty(t, login.Token)
	require.NotNil(t, login.ExpireDate)

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(login.Token, claims, func(t *jwt.Token) (any, error) {
		return cfg.JWTSigningKey, nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, "dono@acme.com", claims["email"])
	assert.Equal(t, cfg.JWTIssuer, claims["iss"])
	roles, ok := claims["roles"].([]any)
	require.True(t, ok)
	assert.Contains(t, roles, models.RoleCliente)
}

func TestLoginRejectsWrongPasswordAndUnconfirmed(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig(), &fakeEmailSender{})
	ctx := context.Background()

	res, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)
	require.True(t, res.Success)

	// Unconfirmed account
	login, err := svc.Login(ctx, &dtos.LoginRequest{Email: "dono@acme.com", Password: "s3nha-forte"})
	require.NoError(t, err)
	assert.False(t, login.Success)
	assert.Empty(t, login.Token)

	require.NoError(t, db.Model(&models.User{}).
		Where("email = ?", "dono@acme.com").
		Update("email_confirmed", true).Error)

	// Wrong password
	login, err = svc.Login(ctx, &dtos.LoginRequest{Email: "dono@acme.com", Password: "errada"})
	require.NoError(t, err)
	assert.False(t, login.Success)

	// Unknown email
	login, err = svc.Login(ctx, &dtos.LoginRequest{Email: "ninguem@acme.com", Password: "s3nha-forte"})
	require.NoError(t, err)
	assert.False(t, login.Success)
}

func TestConfirmEmailFlow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig(), &fakeEmailSender{})
	ctx := context.Background()

	res, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)
	require.True(t, res.Success)

	var user models.User
	require.NoError(t, db.Where("email = ?", "dono@acme.com").First(&user).Error)

	bad, err := svc.ConfirmEmail(ctx, user.ID, "not-the-token")
	require.NoError(t, err)
	assert.False(t, bad.Success)

	good, err := svc.ConfirmEmail(ctx, user.ID, user.ConfirmationToken)
	require.NoError(t, err)
	assert.True(t, good.Success)

	require.NoError(t, db.First(&user, "id = ?", user.ID).Error)
	assert.True(t, user.EmailConfirmed)
	assert.Empty(t, user.ConfirmationToken)

	// Re-confirming is harmless.
	again, err := svc.ConfirmEmail(ctx, user.ID, "whatever")
	require.NoError(t, err)
	assert.True(t, again.Success)
}

func TestPasswordResetFlow(t *testing.T) {
	db := setupTestDB(t)
	sender := &fakeEmailSender{}
	svc := NewUserService(db, testConfig(), sender)
	ctx := context.Background()

	res, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)
	require.True(t, res.Success)
	require.NoError(t, db.Model(&models.User{}).
		Where("email = ?", "dono@acme.com").
		Update("email_confirmed", true).Error)

	forgot, err := svc.ForgotPassword(ctx, &dtos.ForgotPasswordRequest{Email: "dono@acme.com"})
	require.NoError(t, err)
	assert.True(t, forgot.Success)
	require.Len(t, sender.resets, 1)

	// Unknown address gets the same answer and no email.
	forgot, err = svc.ForgotPassword(ctx, &dtos.ForgotPasswordRequest{Email: "ninguem@acme.com"})
	require.NoError(t, err)
	assert.True(t, forgot.Success)
	assert.Len(t, sender.resets, 1)

	var user models.User
	require.NoError(t, db.Where("email = ?", "dono@acme.com").First(&user).Error)
	require.NotEmpty(t, user.ResetToken)

	mismatch, err := svc.ResetPassword(ctx, &dtos.ResetPasswordRequest{
		Email:           "dono@acme.com",
		Token:           user.ResetToken,
		NewPassword:     "nova-s3nha",
		ConfirmPassword: "diferente",
	})
	require.NoError(t, err)
	assert.False(t, mismatch.Success)

	bad, err := svc.ResetPassword(ctx, &dtos.ResetPasswordRequest{
		Email:           "dono@acme.com",
		Token:           "wrong",
		NewPassword:     "nova-s3nha",
		ConfirmPassword: "nova-s3nha",
	})
	require.NoError(t, err)
	assert.False(t, bad.Success)

	good, err := svc.ResetPassword(ctx, &dtos.ResetPasswordRequest{
		Email:           "dono@acme.com",
		Token:           user.ResetToken,
		NewPassword:     "nova-s3nha",
		ConfirmPassword: "nova-s3nha",
	})
	require.NoError(t, err)
	assert.True(t, good.Success)

	login, err := svc.Login(ctx, &dtos.LoginRequest{Email: "dono@acme.com", Password: "nova-s3nha"})
	require.NoError(t, err)
	assert.True(t, login.Success)

	login, err = svc.Login(ctx, &dtos.LoginRequest{Email: "dono@acme.com", Password: "s3nha-forte"})
	require.NoError(t, err)
	assert.False(t, login.Success)
}
