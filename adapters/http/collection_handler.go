package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio-api/internal/application/usecase/collection"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type CollectionOptions struct {
	// RequireProfileID rejects list requests without ?profile_id.
	RequireProfileID bool
	// SingleCreate answers a create with the row itself instead of an array.
	SingleCreate bool
}

// CollectionHandler serves list/create/update/delete for one table.
type CollectionHandler struct {
	useCase *collection.CollectionUseCase
	opts    CollectionOptions
	logger  logger.Logger
}

func NewCollectionHandler(uc *collection.CollectionUseCase, opts CollectionOptions, log logger.Logger) *CollectionHandler {
	return &CollectionHandler{useCase: uc, opts: opts, logger: log}
}

func (h *CollectionHandler) List(c *gin.Context) {
	var input collection.ListInput
	if h.opts.RequireProfileID {
		var q OwnedListQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			c.Error(apperror.NewInvalidInput("profile_id query parameter is required", err))
			return
		}
		input.ProfileID = q.ProfileID
	} else {
		var q ListQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			c.Error(apperror.NewInvalidInput("invalid query parameters", err))
			return
		}
		input.ProfileID = q.ProfileID
	}

	rows, err := h.useCase.List(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, h.useCase.Schema().EncodeAll(rows))
}

func (h *CollectionHandler) Create(c *gin.Context) {
	payload, ok := bindPayload(c, h.useCase.Schema().Table)
	if !ok {
		return
	}

	rows, err := h.useCase.Create(c.Request.Context(), payload)
	if err != nil {
		c.Error(err)
		return
	}

	if h.opts.SingleCreate {
		if len(rows) == 0 {
			c.Error(apperror.NewInternal("insert returned no row", nil))
			return
		}
		c.JSON(http.StatusOK, h.useCase.Schema().Encode(rows[0]))
		return
	}
	c.JSON(http.StatusOK, h.useCase.Schema().EncodeAll(rows))
}

func (h *CollectionHandler) Update(c *gin.Context) {
	payload, ok := bindPayload(c, h.useCase.Schema().Table)
	if !ok {
		return
	}

	row, err := h.useCase.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, h.useCase.Schema().Encode(row))
}

func (h *CollectionHandler) Delete(c *gin.Context) {
	rows, err := h.useCase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, h.useCase.Schema().EncodeAll(rows))
}

// GetBy returns a handler looking up one row by column, taking the value
// from the named path parameter.
func (h *CollectionHandler) GetBy(column, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		row, err := h.useCase.FindBy(c.Request.Context(), column, c.Param(param))
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, h.useCase.Schema().Encode(row))
	}
}
