package handler

import (
	"net/http"

	"github.com/duccv/go-profile-guard/config"
	"github.com/duccv/go-profile-guard/internal/constant"
	"github.com/duccv/go-profile-guard/internal/middleware"
	"github.com/duccv/go-profile-guard/internal/validation"
	"github.com/duccv/go-profile-guard/pkg/logger"
	"github.com/duccv/go-profile-guard/pkg/metrics"
	"github.com/duccv/go-profile-guard/util"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileResponse is the caller's token payload after sanitizing. Absent
// fields are rendered as null.
type ProfileResponse struct {
	UserID *int64  `json:"userId"`
	Email  *string `json:"email"`
	Name   *string `json:"name"`
}

type SanitizeRequest struct {
	Value     *string `json:"value"`
	MaxLength *int    `json:"maxLength" validate:"omitempty,min=0"`
}

type SanitizeResponse struct {
	Value     *string `json:"value"`
	Truncated bool    `json:"truncated"`
}

type ProfileHandler struct {
	cfg config.SanitizerConfig
}

func NewProfileHandler(cfg config.SanitizerConfig) *ProfileHandler {
	return &ProfileHandler{cfg: cfg}
}

// RegisterRoutes mounts the handler under rg.
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup, auth *middleware.JWTAuthMiddleware) {
	rg.GET("/profile/me", auth.Authenticate(), h.Me)
	rg.POST("/sanitize", auth.OptionalAuth(), validation.Validate[SanitizeRequest, any, any](), h.Sanitize)
}

// Me godoc
//
//	@Summary		Current profile
//	@Description	Returns the fields of the caller's token with all markup stripped
//	@Tags			Profile
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	response.ResponseData{data=ProfileResponse}
//	@Success		304
//	@Failure		401	{object}	response.ResponseData
//	@Failure		419	{object}	response.ResponseData
//	@Router			/v1/profile/me [get]
func (h *ProfileHandler) Me(c *gin.Context) {
	payload, ok := middleware.GetTokenPayload(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, constant.UNAUTHORIZED)
		return
	}

	res := ProfileResponse{UserID: payload.UserID()}
	res.Email, _ = h.clean("email", payload.Email(), h.cfg.EmailMaxLength)
	res.Name, _ = h.clean("name", payload.Name(), h.cfg.NameMaxLength)

	etag := util.GenerateETag(res)
	c.Header("ETag", etag)
	if util.MatchETag(c.GetHeader("If-None-Match"), etag) {
		c.Status(http.StatusNotModified)
		return
	}

	c.JSON(http.StatusOK, constant.SUCCESS.WithData(res))
}

// Sanitize godoc
//
//	@Summary		Sanitize text
//	@Description	Strips all markup from value and truncates it to maxLength characters
//	@Tags			Sanitizer
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SanitizeRequest	true	"Value to sanitize"
//	@Success		200		{object}	response.ResponseData{data=SanitizeResponse}
//	@Failure		400		{object}	response.ResponseData
//	@Router			/v1/sanitize [post]
func (h *ProfileHandler) Sanitize(c *gin.Context) {
	req, ok := validation.Body[SanitizeRequest](c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, constant.INVALID_REQUEST)
		return
	}

	maxLength := h.cfg.ValueMaxLength
	if req.MaxLength != nil {
		maxLength = *req.MaxLength
	}

	var res SanitizeResponse
	res.Value, res.Truncated = h.clean("value", req.Value, maxLength)

	log := logger.WithComponent(logger.FromContext(c.Request.Context()), "sanitizer")
	if payload, ok := middleware.GetTokenPayload(c); ok && payload.UserID() != nil {
		log = log.With(zap.Int64("userId", *payload.UserID()))
	}
	log.Debug("Sanitized value", zap.Int("maxLength", maxLength), zap.Bool("truncated", res.Truncated))

	c.JSON(http.StatusOK, constant.SUCCESS.WithData(res))
}

// clean sanitizes value, cuts it to maxLength and counts the cut.
func (h *ProfileHandler) clean(field string, value *string, maxLength int) (*string, bool) {
	cleaned := util.SanitizeAndTruncate(value, maxLength)
	if cleaned == nil {
		return nil, false
	}

	truncated := *util.Sanitize(value) != *cleaned
	if truncated {
		metrics.IncTruncated(field)
	}
	return cleaned, truncated
}
