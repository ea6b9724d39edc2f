package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-tenant-user-api/internal/core/auth"
	"go-tenant-user-api/internal/domain"
	"go-tenant-user-api/pkg/utils"
)

// AuthHandler issues the JWT the GraphQL endpoint authenticates with.
type AuthHandler struct {
	users domain.UserRepository
	jwter *auth.JWTer
	log   *zap.Logger
}

func NewAuthHandler(users domain.UserRepository, jwter *auth.JWTer, log *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, jwter: jwter, log: log}
}

func (h *AuthHandler) Register(g *gin.RouterGroup) {
	g.POST("/auth/login", h.Login)
}

type loginIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginOut struct {
	Token string `json:"token"`
	User  gin.H  `json:"user"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "The given data was invalid."})
		return
	}

	u, err := h.users.FindByEmail(c.Request.Context(), in.Email)
	if err != nil {
		h.log.Error("login lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if u == nil || !utils.CheckPassword(in.Password, u.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials."})
		return
	}

	tok, err := h.jwter.Issue(u.ID)
	if err != nil {
		h.log.Error("issue token failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, loginOut{
		Token: tok,
		User:  gin.H{"id": u.ID, "name": u.Name, "email": u.Email},
	})
}
