package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/middleware"
	"github.com/BruksfildServices01/cesta-amigo/internal/usecase/auth"
)

type AuthHandler struct {
	signIn         *auth.SignIn
	signUp         *auth.SignUp
	createUser     *auth.CreateUser
	signOut        *auth.SignOut
	changePassword *auth.ChangePassword
}

func NewAuthHandler(
	signIn *auth.SignIn,
	signUp *auth.SignUp,
	createUser *auth.CreateUser,
	signOut *auth.SignOut,
	changePassword *auth.ChangePassword,
) *AuthHandler {
	return &AuthHandler{
		signIn:         signIn,
		signUp:         signUp,
		createUser:     createUser,
		signOut:        signOut,
		changePassword: changePassword,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserDataRequest struct {
	DisplayName    string `json:"display_name"`
	Role           string `json:"role"`
	Username       string `json:"username"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
	PostalCode     string `json:"postal_code"`
	DocumentNumber string `json:"document_number"`
}

// RegisterRequest serve ao auto-cadastro e ao POST /api/users.
type RegisterRequest struct {
	Email    string          `json:"email" binding:"required"`
	Password string          `json:"password" binding:"required"`
	UserData UserDataRequest `json:"userData"`
}

func (r RegisterRequest) input() auth.SignUpInput {
	return auth.SignUpInput{
		Email:    r.Email,
		Password: r.Password,
		UserData: auth.UserData{
			DisplayName:    r.UserData.DisplayName,
			Role:           r.UserData.Role,
			Username:       r.UserData.Username,
			Phone:          r.UserData.Phone,
			Address:        r.UserData.Address,
			City:           r.UserData.City,
			State:          r.UserData.State,
			PostalCode:     r.UserData.PostalCode,
			DocumentNumber: r.UserData.DocumentNumber,
		},
	}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe usuário e senha.")
		return
	}

	session, err := h.signIn.Execute(c.Request.Context(), auth.SignInInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	p, err := h.signUp.Execute(c.Request.Context(), req.input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"profile": p})
}

// CreateUser é o cadastro de usuários feito de dentro do painel.
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	res, err := h.createUser.Execute(c.Request.Context(), middleware.Actor(c), req.input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	jti, exp := middleware.Session(c)

	if err := h.signOut.Execute(c.Request.Context(), jti, exp); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Preencha todos os campos.")
		return
	}

	err := h.changePassword.Execute(c.Request.Context(), middleware.Actor(c).UserID, auth.ChangePasswordInput{
		Current: req.CurrentPassword,
		New:     req.NewPassword,
		Confirm: req.ConfirmPassword,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Senha alterada com sucesso!"})
}
