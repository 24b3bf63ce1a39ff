package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"tmsdash/internal/guard"
	"tmsdash/internal/resource"
	"tmsdash/internal/upstream"
	"tmsdash/pkg/pagination"
	"tmsdash/pkg/response"

	"github.com/gin-gonic/gin"
)

// resourceClient is what the generic handler needs from a resource client.
// Both resource.Client and the loads client with its degraded mode satisfy it.
type resourceClient[T any] interface {
	List(ctx context.Context, page, limit int) (resource.Page[T], error)
	Get(ctx context.Context, id int) (T, error)
	Create(ctx context.Context, payload any) (T, error)
	Update(ctx context.Context, id int, payload any) (T, error)
	Delete(ctx context.Context, id int) error
}

// ResourceHandler mounts the uniform CRUD surface for one resource type.
// Body payloads pass through to the upstream untouched; the upstream owns
// validation and its field errors come back decoded for display.
type ResourceHandler[T any] struct {
	deps   *Deps
	name   string // plural route segment, e.g. "drivers"
	view   string // permission required for reads
	manage string // permission required for writes
	pick   func(*resource.Registry) resourceClient[T]
}

func NewResourceHandler[T any](deps *Deps, name, view, manage string, pick func(*resource.Registry) resourceClient[T]) *ResourceHandler[T] {
	return &ResourceHandler[T]{deps: deps, name: name, view: view, manage: manage, pick: pick}
}

func (h *ResourceHandler[T]) RegisterRoutes(router *gin.RouterGroup, g *guard.Guard) {
	grp := router.Group("/" + h.name)
	{
		grp.GET("", g.Require(h.view), h.List)
		grp.GET("/:id", g.Require(h.view), h.Get)
		grp.POST("", g.Require(h.manage), h.Create)
		grp.PUT("/:id", g.Require(h.manage), h.Update)
		grp.DELETE("/:id", g.Require(h.manage), h.Delete)
	}
}

// List returns one page of the resource
// @Summary      List a resource collection
// @Tags         resources
// @Produce      json
// @Param        page   query  int  false  "Page number (default: 1)"
// @Param        limit  query  int  false  "Items per page (default: 10)"
// @Success      200  {object}  response.Response
// @Router       /api/v1/{resource} [get]
func (h *ResourceHandler[T]) List(c *gin.Context) {
	params := pagination.Parse(c)
	scope := h.deps.Scope(c)

	page, err := h.pick(scope.Resources).List(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		status := statusFor(err, http.StatusBadGateway)
		c.JSON(status, response.Error(status, "Failed to load "+h.name))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, page))
}

// Get returns a single entity by id
func (h *ResourceHandler[T]) Get(c *gin.Context) {
	id, ok := h.entityID(c)
	if !ok {
		return
	}
	scope := h.deps.Scope(c)

	entity, err := h.pick(scope.Resources).Get(c.Request.Context(), id)
	if err != nil {
		status := statusFor(err, http.StatusBadGateway)
		c.JSON(status, response.Error(status, "Failed to load "+h.name))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, entity))
}

// Create forwards a new entity to the upstream
func (h *ResourceHandler[T]) Create(c *gin.Context) {
	payload, ok := h.rawPayload(c)
	if !ok {
		return
	}
	scope := h.deps.Scope(c)

	entity, err := h.pick(scope.Resources).Create(c.Request.Context(), payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.SuccessWithMessage(http.StatusCreated, entity, scope.Notify.Last()))
}

// Update forwards entity changes to the upstream
func (h *ResourceHandler[T]) Update(c *gin.Context) {
	id, ok := h.entityID(c)
	if !ok {
		return
	}
	payload, ok := h.rawPayload(c)
	if !ok {
		return
	}
	scope := h.deps.Scope(c)

	entity, err := h.pick(scope.Resources).Update(c.Request.Context(), id, payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithMessage(http.StatusOK, entity, scope.Notify.Last()))
}

// Delete removes an entity
func (h *ResourceHandler[T]) Delete(c *gin.Context) {
	id, ok := h.entityID(c)
	if !ok {
		return
	}
	scope := h.deps.Scope(c)

	if err := h.pick(scope.Resources).Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithMessage(http.StatusOK, nil, scope.Notify.Last()))
}

func (h *ResourceHandler[T]) entityID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid id"))
		return 0, false
	}
	return id, true
}

func (h *ResourceHandler[T]) rawPayload(c *gin.Context) (json.RawMessage, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 || !json.Valid(body) {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return nil, false
	}
	return json.RawMessage(body), true
}

// statusFor passes an upstream status through, or uses fallback for
// transport failures
func statusFor(err error, fallback int) int {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return fallback
}
