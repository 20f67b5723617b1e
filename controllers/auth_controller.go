package controllers

import (
	"net/http"
	"time"

	"BabyNest/middlewares"
	"BabyNest/models"
	"BabyNest/response"
	"BabyNest/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct {
	auth         AuthUseCase
	cookieTTL    time.Duration
	secureCookie bool
	log          *zap.Logger
}

func NewAuthController(auth AuthUseCase, cookieTTL time.Duration, secureCookie bool, log *zap.Logger) *AuthController {
	return &AuthController{auth: auth, cookieTTL: cookieTTL, secureCookie: secureCookie, log: log}
}

func (ctl *AuthController) Signup(c *gin.Context) {
	var input struct {
		Name     string            `json:"name" binding:"required"`
		Email    string            `json:"email" binding:"required,email"`
		Password string            `json:"password" binding:"required,min=8"`
		Type     models.ParentType `json:"type" binding:"required,oneof=FATHER MOTHER"`
	}
	if !response.Bind(c, &input) {
		return
	}

	result, err := ctl.auth.Signup(c.Request.Context(), services.SignupInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Type:     input.Type,
	})
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	if !result.Created {
		response.OK(c, "OTP sent to your email. Please verify your account", result.Parent)
		return
	}
	response.Created(c, "Account created. Please check your email for the OTP", result.Parent)
}

func (ctl *AuthController) VerifyOTP(c *gin.Context) {
	var input struct {
		Email string         `json:"email" binding:"required,email"`
		OTP   string         `json:"otp" binding:"required,len=6"`
		Type  models.OTPType `json:"type" binding:"required,oneof=SIGNUP PASSWORD_RESET"`
		Role  string         `json:"role"`
	}
	if !response.Bind(c, &input) {
		return
	}
	role, ok := queryRole(c, input.Role)
	if !ok {
		return
	}

	message, err := ctl.auth.VerifyOTP(c.Request.Context(), services.VerifyOTPInput{
		Email: input.Email,
		OTP:   input.OTP,
		Type:  input.Type,
		Role:  role,
	})
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, message, nil)
}

func (ctl *AuthController) ResendOTP(c *gin.Context) {
	var input struct {
		Email string         `json:"email" binding:"required,email"`
		Type  models.OTPType `json:"type" binding:"required,oneof=SIGNUP PASSWORD_RESET"`
		Role  string         `json:"role"`
	}
	if !response.Bind(c, &input) {
		return
	}
	role, ok := queryRole(c, input.Role)
	if !ok {
		return
	}
	if err := ctl.auth.ResendOTP(c.Request.Context(), input.Email, input.Type, role); err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "OTP sent successfully", nil)
}

func (ctl *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role"`
	}
	if !response.Bind(c, &input) {
		return
	}
	role, ok := queryRole(c, input.Role)
	if !ok {
		return
	}

	result, err := ctl.auth.Login(c.Request.Context(), input.Email, input.Password, role)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	ctl.setTokenCookie(c, result.Token)
	response.OK(c, "Login successful", result)
}

func (ctl *AuthController) GoogleLogin(c *gin.Context) {
	var input struct {
		IDToken string `json:"idToken" binding:"required"`
	}
	if !response.Bind(c, &input) {
		return
	}
	result, err := ctl.auth.GoogleLogin(c.Request.Context(), input.IDToken)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	ctl.setTokenCookie(c, result.Token)
	response.OK(c, "Login successful", result)
}

func (ctl *AuthController) ForgotPassword(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
		Role  string `json:"role"`
	}
	if !response.Bind(c, &input) {
		return
	}
	role, ok := queryRole(c, input.Role)
	if !ok {
		return
	}
	if err := ctl.auth.ForgotPassword(c.Request.Context(), input.Email, role); err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Password reset OTP sent to your email", nil)
}

func (ctl *AuthController) ChangePassword(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Role     string `json:"role"`
	}
	if !response.Bind(c, &input) {
		return
	}
	role, ok := queryRole(c, input.Role)
	if !ok {
		return
	}
	if err := ctl.auth.ChangePassword(c.Request.Context(), input.Email, input.Password, role); err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Password changed successfully", nil)
}

func (ctl *AuthController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.TokenCookie, "", -1, "/", "", ctl.secureCookie, true)
	response.OK(c, "Logged out successfully", nil)
}

func (ctl *AuthController) setTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.TokenCookie, token, int(ctl.cookieTTL.Seconds()), "/", "", ctl.secureCookie, true)
}
