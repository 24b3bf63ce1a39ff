package handler

import (
	"net/http"

	"tmsdash/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	deps *Deps
}

func NewAuthHandler(deps *Deps) *AuthHandler {
	return &AuthHandler{deps: deps}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/me", h.Me)
	}
}

type loginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates against the upstream API and establishes the session cookie
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  loginPayload  true  "Credentials"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	scope := h.deps.Scope(c)
	user, err := scope.Auth.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithMessage(http.StatusOK, user, "Login successful"))
}

// Logout destroys the session cookie and drops the session's cached data
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	scope := h.deps.Scope(c)
	if token, ok := scope.Store.Token(); ok {
		h.deps.Caches.Drop(token)
	}
	scope.Auth.Logout()

	c.JSON(http.StatusOK, response.SuccessWithMessage(http.StatusOK, nil, "Logged out"))
}

// Me returns the current user, or null while anonymous. Anonymous is a
// normal outcome here, not an error, so the status is 200 either way.
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	scope := h.deps.Scope(c)
	user := scope.Auth.CurrentUser(c.Request.Context())
	if user == nil {
		c.JSON(http.StatusOK, response.Success(http.StatusOK, response.NullData))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, user))
}
