package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/mentor-scheduler/internal/config"
	"github.com/BruksfildServices01/mentor-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/mentor-scheduler/internal/dto"
	"github.com/BruksfildServices01/mentor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/mentor-scheduler/internal/models"
)

type AuthHandler struct {
	dir    directory.Repository
	config *config.Config

	// checkDomain é trocado nos testes (evita DNS)
	checkDomain func(email string) bool
}

func NewAuthHandler(dir directory.Repository, cfg *config.Config, checkDomain func(string) bool) *AuthHandler {
	return &AuthHandler{dir: dir, config: cfg, checkDomain: checkDomain}
}

// --------- Requests ---------

type RegisterRequest struct {
	Nombre   string `json:"nombre" binding:"required,max=120"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	Usuario dto.UsuarioDTO `json:"usuario"`
	Token   string         `json:"token"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	email := strings.TrimSpace(req.Email)

	if h.checkDomain != nil && !h.checkDomain(email) {
		httperr.BadRequest(c, "invalid_email_domain", "El dominio del correo no parece válido.")
		return
	}

	if _, err := h.dir.FindUsuarioByEmail(c.Request.Context(), email); err == nil {
		httperr.BadRequest(c, "email_taken", "Error: El email "+email+" ya está registrado.")
		return
	} else if !errors.Is(err, directory.ErrNotFound) {
		httperr.Respond(c, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	u := &models.Usuario{
		Nombre:       strings.TrimSpace(req.Nombre),
		Email:        email,
		Rol:          models.RolCliente,
		PasswordHash: string(hashed),
		Activo:       true,
	}

	if err := h.dir.CreateUsuario(c.Request.Context(), u); err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, "email_taken", "Error: El email "+email+" ya está registrado.")
			return
		}
		httperr.Respond(c, err)
		return
	}

	token, err := h.generateToken(u)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "No se pudo generar el token.")
		return
	}

	c.JSON(http.StatusCreated, authResponse{Usuario: dto.NewUsuarioDTO(u, nil), Token: token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	u, err := h.dir.FindUsuarioByEmail(c.Request.Context(), strings.TrimSpace(req.Email))
	if errors.Is(err, directory.ErrNotFound) {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciales inválidas.")
		return
	}
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if !u.Activo || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciales inválidas.")
		return
	}

	token, err := h.generateToken(u)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "No se pudo generar el token.")
		return
	}

	var programadorID *uuid.UUID
	if p, err := h.dir.GetProgramadorByUsuarioID(c.Request.Context(), u.ID); err == nil {
		programadorID = &p.ID
	}

	c.JSON(http.StatusOK, authResponse{Usuario: dto.NewUsuarioDTO(u, programadorID), Token: token})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(u *models.Usuario) (string, error) {
	claims := jwt.MapClaims{
		"sub":   u.ID.String(),
		"email": u.Email,
		"role":  u.Rol,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
