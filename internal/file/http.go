package file

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thecadors/fileshare/internal/identity"
	"github.com/thecadors/fileshare/internal/schema"
	"go.uber.org/zap"
)

const (
	authDeniedMessage    = "User not authorized to perform this action"
	internalErrorMessage = "Internal server error"
)

// Handler exposes the file operations over HTTP and owns the response
// contract: fixed CORS header set, per-kind status codes and body shapes.
type Handler struct {
	service   *Service
	resolver  identity.Resolver
	validator *schema.Validator
	log       *zap.Logger
}

// NewHandler constructs the HTTP boundary for the file service.
func NewHandler(service *Service, resolver identity.Resolver, validator *schema.Validator, log *zap.Logger) *Handler {
	return &Handler{
		service:   service,
		resolver:  resolver,
		validator: validator,
		log:       log,
	}
}

// RegisterRoutes mounts the four operations plus their OPTIONS preflights.
func RegisterRoutes(router *gin.Engine, h *Handler) {
	router.POST("/users/:user_id/files", h.uploadFile)
	router.GET("/users/:user_id/files", h.listFiles)
	router.DELETE("/users/:user_id/files/:file_id", h.deleteFile)
	router.POST("/users/:user_id/files/:file_id/share", h.shareFile)

	router.OPTIONS("/users/:user_id/files", preflight("POST, GET, OPTIONS"))
	router.OPTIONS("/users/:user_id/files/:file_id", preflight("DELETE, OPTIONS"))
	router.OPTIONS("/users/:user_id/files/:file_id/share", preflight("POST, OPTIONS"))
}

func (h *Handler) uploadFile(c *gin.Context) {
	applyCORS(c, "POST, OPTIONS")

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		h.internalError(c, err)
		return
	}
	if err := h.validator.ValidateNewFile(body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	caller, err := h.resolver.Resolve(c.Request.Context(), c.GetHeader("Authorization"))
	if err != nil {
		h.internalError(c, err)
		return
	}

	result, err := h.service.Upload(c.Request.Context(), caller.UserID, UploadRequest{
		RemoteFileName: stringField(body, "remote_file_name"),
		FileData:       stringField(body, "file_data"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *Handler) listFiles(c *gin.Context) {
	applyCORS(c, "GET, OPTIONS")

	caller, err := h.resolver.Resolve(c.Request.Context(), c.GetHeader("Authorization"))
	if err != nil {
		h.internalError(c, err)
		return
	}

	files, err := h.service.List(c.Request.Context(), caller.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": caller.UserID, "user_files": files})
}

func (h *Handler) deleteFile(c *gin.Context) {
	applyCORS(c, "DELETE, OPTIONS")

	caller, err := h.resolver.Resolve(c.Request.Context(), c.GetHeader("Authorization"))
	if err != nil {
		h.internalError(c, err)
		return
	}

	result, err := h.service.Delete(c.Request.Context(), caller.UserID, c.Param("user_id"), c.Param("file_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) shareFile(c *gin.Context) {
	applyCORS(c, "POST, OPTIONS")

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		h.internalError(c, err)
		return
	}
	if err := h.validator.ValidateShareFile(body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	caller, err := h.resolver.Resolve(c.Request.Context(), c.GetHeader("Authorization"))
	if err != nil {
		h.internalError(c, err)
		return
	}

	result, err := h.service.Share(c.Request.Context(), caller, c.Param("user_id"), c.Param("file_id"), ShareRequest{
		ShareWith: stringSlice(body, "share_with"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// respondError maps service error kinds onto the response contract.
// Internal failures stay in the 400 class; the source never used 5xx.
func (h *Handler) respondError(c *gin.Context, err error) {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": validationErr.Message})
	case errors.Is(err, ErrNotAuthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": authDeniedMessage})
	default:
		h.internalError(c, err)
	}
}

func (h *Handler) internalError(c *gin.Context, err error) {
	h.log.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(http.StatusBadRequest, gin.H{"error_message": internalErrorMessage})
}

func applyCORS(c *gin.Context, methods string) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Allow", methods)
	c.Header("Access-Control-Allow-Methods", methods)
	c.Header("Access-Control-Allow-Headers", "*")
}

func preflight(methods string) gin.HandlerFunc {
	return func(c *gin.Context) {
		applyCORS(c, methods)
		c.Status(http.StatusNoContent)
	}
}

func stringField(body map[string]any, key string) string {
	val, _ := body[key].(string)
	return val
}

func stringSlice(body map[string]any, key string) []string {
	raw, _ := body[key].([]any)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
