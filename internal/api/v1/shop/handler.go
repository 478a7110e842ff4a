package shop

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tetteam4/swimming-project/internal/models"
	"github.com/tetteam4/swimming-project/internal/services"
	"github.com/tetteam4/swimming-project/internal/utils"
)

func currentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return models.User{}, false
	}
	return value.(models.User), true
}

func shopIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid shop ID"))
		return 0, false
	}
	return uint(id), true
}

func writeShopError(c *gin.Context, err error) {
	var priceErr *services.InvalidPriceError
	switch {
	case errors.As(err, &priceErr):
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, priceErr.Error()))
	case errors.Is(err, services.ErrPoolNotFound):
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Pool not found"))
	case errors.Is(err, services.ErrShopNotFound):
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Shop not found"))
	default:
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
	}
}

// ListShops godoc
// @Summary List the caller's shops
// @Tags shops
// @Produce json
// @Security Bearer
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 10)"
// @Param pool_customer query int false "Pool ID"
// @Param is_calculated query bool false "Calculated flag"
// @Success 200 {object} utils.Response{data=ShopListResponse}
// @Failure 500 {object} utils.Response
// @Router /shops/ [get]
func ListShops(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	filter := services.ShopFilter{Page: page, Limit: pageSize}
	if poolStr := c.Query("pool_customer"); poolStr != "" {
		if poolID, err := strconv.Atoi(poolStr); err == nil {
			id := uint(poolID)
			filter.PoolCustomerID = &id
		}
	}
	if calcStr := c.Query("is_calculated"); calcStr != "" {
		if calculated, err := strconv.ParseBool(calcStr); err == nil {
			filter.IsCalculated = &calculated
		}
	}

	shops, total, err := services.FindShops(user.ID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	items := make([]ShopResponse, 0, len(shops))
	for i := range shops {
		items = append(items, NewShopResponse(&shops[i]))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Shops retrieved successfully", ShopListResponse{
		Total: total,
		Items: items,
	}))
}

// CreateShop godoc
// @Summary Create a shop record
// @Description Create a purchase record under one of the caller's pools; the total is derived from the item list
// @Tags shops
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateShopInput true "Shop creation request"
// @Success 201 {object} utils.Response{data=ShopResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /shops/ [post]
func CreateShop(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input CreateShopInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	s, err := services.CreateShop(user.ID, input.PoolCustomer, input.List, input.IsCalculated)
	if err != nil {
		writeShopError(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Shop created successfully", NewShopResponse(s)))
}

// GetShopDetail godoc
// @Summary Get one of the caller's shops
// @Tags shops
// @Produce json
// @Security Bearer
// @Param id path int true "Shop ID"
// @Success 200 {object} utils.Response{data=ShopResponse}
// @Failure 404 {object} utils.Response
// @Router /shops/{id}/ [get]
func GetShopDetail(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := shopIDParam(c)
	if !ok {
		return
	}

	s, err := services.GetShopByID(user.ID, id)
	if err != nil {
		writeShopError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Shop retrieved successfully", NewShopResponse(&s)))
}

// UpdateShop godoc
// @Summary Update one of the caller's shops
// @Description Partial update; the total is recomputed from the effective item list on every save
// @Tags shops
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Shop ID"
// @Param request body UpdateShopInput true "Shop update request"
// @Success 200 {object} utils.Response{data=ShopResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /shops/{id}/ [patch]
func UpdateShop(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := shopIDParam(c)
	if !ok {
		return
	}

	var input UpdateShopInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	s, err := services.UpdateShop(user.ID, id, services.ShopUpdateInput{
		PoolCustomerID: input.PoolCustomer,
		List:           input.List,
		IsCalculated:   input.IsCalculated,
	})
	if err != nil {
		writeShopError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Shop updated successfully", NewShopResponse(s)))
}

// DeleteShop godoc
// @Summary Delete one of the caller's shops
// @Tags shops
// @Produce json
// @Security Bearer
// @Param id path int true "Shop ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /shops/{id}/ [delete]
func DeleteShop(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := shopIDParam(c)
	if !ok {
		return
	}

	if err := services.DeleteShop(user.ID, id); err != nil {
		writeShopError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Shop deleted successfully", nil))
}
