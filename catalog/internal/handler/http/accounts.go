package http

import (
	"fmt"
	"moviecatalog/catalog/internal/controller/auth"
	"strings"

	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

// authenticate parses the bearer token when one is sent. With required set a
// request without a token is rejected; an invalid token is always rejected.
func (h *Handler) authenticate(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		token = strings.TrimSpace(token)
		if !found || token == "" {
			if required {
				h.fail(c, fmt.Errorf("%w: missing bearer token", auth.ErrUnauthorized))
				return
			}
			c.Next()
			return
		}
		claims, err := h.ctrl.Auth.ValidateToken(c.Request.Context(), token)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

func claimsOf(c *gin.Context) *auth.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}

// authUser returns the authenticated username, or "".
func authUser(c *gin.Context) string {
	if claims := claimsOf(c); claims != nil {
		return claims.Username
	}
	return ""
}

func (h *Handler) registerAccounts(r gin.IRouter) {
	g := r.Group("/auth")
	g.POST("/signup", h.instrument("signup"), h.signup)
	g.POST("/login", h.instrument("login"), h.login)
	g.PATCH("/profile", h.instrument("update_profile"), h.authenticate(true), h.updateProfile)
	g.POST("/forgot-password", h.instrument("forgot_password"), h.forgotPassword)
	g.POST("/reset-password", h.instrument("reset_password"), h.resetPassword)
}

func (h *Handler) signup(c *gin.Context) {
	var req auth.SignupRequest
	if err := bindJSON(c, &req); err != nil {
		h.fail(c, err)
		return
	}
	s, err := h.ctrl.Auth.Signup(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"token": s.Token, "user": s.User})
}

func (h *Handler) login(c *gin.Context) {
	var req auth.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		h.fail(c, err)
		return
	}
	s, err := h.ctrl.Auth.Login(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"token": s.Token, "user": s.User})
}

func (h *Handler) updateProfile(c *gin.Context) {
	var req auth.ProfileUpdate
	if err := bindJSON(c, &req); err != nil {
		h.fail(c, err)
		return
	}
	s, err := h.ctrl.Auth.UpdateProfile(c.Request.Context(), claimsOf(c).Subject, &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"token": s.Token, "user": s.User})
}

func (h *Handler) forgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := bindJSON(c, &req); err != nil {
		h.fail(c, err)
		return
	}
	token, err := h.ctrl.Auth.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		h.fail(c, err)
		return
	}
	res := gin.H{"message": "If the email is registered, a reset link has been issued"}
	if h.opts.ExposeResetToken && token != "" {
		res["resetToken"] = token
	}
	ok(c, res)
}

func (h *Handler) resetPassword(c *gin.Context) {
	var req struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := bindJSON(c, &req); err != nil {
		h.fail(c, err)
		return
	}
	if err := h.ctrl.Auth.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"message": "Password updated"})
}
