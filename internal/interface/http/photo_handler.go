package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	photoapp "github.com/oksasatya/picbay/internal/application"
	"github.com/oksasatya/picbay/pkg/response"
)

type PhotoHandler struct {
	Svc    *photoapp.PhotoService
	Logger *logrus.Logger
}

func NewPhotoHandler(svc *photoapp.PhotoService, logger *logrus.Logger) *PhotoHandler {
	return &PhotoHandler{Svc: svc, Logger: logger}
}

func queryInt(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// List GET /api/photos?page=1&per_page=10
func (h *PhotoHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1)
	perPage := queryInt(c, "per_page", 10)

	result, err := h.Svc.List(c.Request.Context(), page, perPage)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("photo list failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to load photos", nil)
		return
	}
	response.Success(c, http.StatusOK, result, "photos")
}

// Random GET /api/photos/random
func (h *PhotoHandler) Random(c *gin.Context) {
	p, err := h.Svc.Random(c.Request.Context())
	if err != nil {
		if errors.Is(err, photoapp.ErrPhotoNotFound) {
			response.Error[any](c, http.StatusNotFound, "image not found!", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("random photo failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to load photo", nil)
		return
	}
	response.Success(c, http.StatusOK, p, "photo")
}
