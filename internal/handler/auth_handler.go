package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studiofolio/internal/service"
)

const identityKey = "admin_identity"

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login 校验管理员密码并签发访问令牌
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req, "password is required") {
		return
	}

	token, err := a.auth.Login(req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			respondError(c, http.StatusUnauthorized, err.Error())
			return
		}
		a.internalError(c, err, "login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token.Token,
		"message":    "Login successful",
		"expires_at": token.ExpiresAt.UTC(),
	})
}

// AdminRequired 是后台接口的认证中间件，缺少有效凭据时直接拒绝
func (a *API) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := a.auth.Authenticate(bearerToken(c.GetHeader("Authorization")))
		if err != nil {
			message := service.ErrUnauthenticated.Error()
			if errors.Is(err, service.ErrMissingToken) {
				message = err.Error()
			}
			respondError(c, http.StatusUnauthorized, message)
			c.Abort()
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
