package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/picbay/internal/interface/http"
)

// PhotoModule wires the photo catalog endpoints.
// Public: GET /api/photos, GET /api/photos/random
type PhotoModule struct {
	Handler *handlers.PhotoHandler
}

func NewPhotoModule(h *handlers.PhotoHandler) *PhotoModule {
	return &PhotoModule{Handler: h}
}

func (m *PhotoModule) Register(rg *gin.RouterGroup) {
	rg.GET("/photos", m.Handler.List)
	rg.GET("/photos/random", m.Handler.Random)
}
