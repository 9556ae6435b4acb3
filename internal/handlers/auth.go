package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// sessionCookieMaxAge matches the token TTL.
const sessionCookieMaxAge = int(7 * 24 * time.Hour / time.Second)

type registerRequest struct {
	Name     string `json:"name" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=5"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  registerRequest  true  "Registration payload"
// @Success      201   {object}  map[string]interface{}  "message, user"
// @Failure      400   {object}  map[string]interface{}
// @Router       /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(newValidationError(err))
		return
	}

	user, err := h.services.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "user created", "user": user})
}

// @Summary      Log in and receive a session cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Login payload"
// @Success      200   {object}  map[string]interface{}  "id, email, name"
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(newValidationError(err))
		return
	}

	user, token, err := h.services.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("login_failed", "email", req.Email, "err", err)
		}
		_ = c.Error(err)
		return
	}

	h.setSessionCookie(c, token, sessionCookieMaxAge)
	c.JSON(http.StatusOK, gin.H{"id": user.ID, "email": user.Email, "name": user.Name})
}

// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /auth/me [get]
func (h *Handler) me(c *gin.Context) {
	user, err := h.services.GetUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary      Log out and clear the session cookie
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}

// setSessionCookie writes the HTTP-only, lax same-site session cookie.
func (h *Handler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, token, maxAge, "/", "", false, true)
}
