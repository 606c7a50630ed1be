package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/picbay/internal/interface/http"
	"github.com/oksasatya/picbay/internal/interface/middleware"
	"github.com/oksasatya/picbay/pkg/helpers"
)

// UserModule wires the identity endpoints.
// Public: POST /api/user, POST /api/user/auth, GET /api/user/settings/validate
// Protected: GET /api/me
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/user", m.Handler.Register)
	rg.POST("/user/auth", m.Handler.Login)
	// The verification link lands here from the email client, hence GET
	// with query parameters.
	rg.GET("/user/settings/validate", m.Handler.Validate)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/me", m.Handler.Me)
	}
}
