package pool

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

func poolIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid pool ID"))
		return 0, false
	}
	return uint(id), true
}

func writePoolError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrPoolNotFound) {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Pool not found"))
		return
	}
	c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
}

// ListPools godoc
// @Summary List the caller's pools
// @Tags pools
// @Produce json
// @Security Bearer
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 10)"
// @Param name query string false "Pool name"
// @Param num_people query int false "Number of people"
// @Param cabinet_number query int false "Cabinet number"
// @Param is_calculated query bool false "Calculated flag"
// @Success 200 {object} utils.Response{data=PoolListResponse}
// @Failure 500 {object} utils.Response
// @Router /pools/ [get]
func ListPools(c *gin.Context) {
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

	filter := services.PoolFilter{Page: page, Limit: pageSize}
	if name := c.Query("name"); name != "" {
		filter.Name = &name
	}
	if peopleStr := c.Query("num_people"); peopleStr != "" {
		if people, err := strconv.ParseUint(peopleStr, 10, 64); err == nil {
			filter.NumPeople = &people
		}
	}
	if cabinetStr := c.Query("cabinet_number"); cabinetStr != "" {
		if cabinet, err := strconv.ParseUint(cabinetStr, 10, 16); err == nil {
			number := uint16(cabinet)
			filter.CabinetNumber = &number
		}
	}
	if calcStr := c.Query("is_calculated"); calcStr != "" {
		if calculated, err := strconv.ParseBool(calcStr); err == nil {
			filter.IsCalculated = &calculated
		}
	}

	pools, total, err := services.FindPools(user.ID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	items := make([]PoolResponse, 0, len(pools))
	for i := range pools {
		items = append(items, NewPoolResponse(&pools[i]))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Pools retrieved successfully", PoolListResponse{
		Total: total,
		Items: items,
	}))
}

// CreatePool godoc
// @Summary Create a pool
// @Tags pools
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreatePoolInput true "Pool creation request"
// @Success 201 {object} utils.Response{data=PoolResponse}
// @Failure 400 {object} utils.Response
// @Router /pools/ [post]
func CreatePool(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input CreatePoolInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	p, err := services.CreatePool(user.ID, services.PoolCreateInput{
		Name:          input.Name,
		NumPeople:     input.NumPeople,
		CabinetNumber: input.CabinetNumber,
		TotalPay:      input.TotalPay,
		IsCalculated:  input.IsCalculated,
		Rent:          input.Rent,
		Tools:         input.Tools,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Pool created successfully", NewPoolResponse(p)))
}

// GetPoolDetail godoc
// @Summary Get one of the caller's pools
// @Tags pools
// @Produce json
// @Security Bearer
// @Param id path int true "Pool ID"
// @Success 200 {object} utils.Response{data=PoolResponse}
// @Failure 404 {object} utils.Response
// @Router /pools/{id}/ [get]
func GetPoolDetail(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := poolIDParam(c)
	if !ok {
		return
	}

	p, err := services.GetPoolByID(user.ID, id)
	if err != nil {
		writePoolError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Pool retrieved successfully", NewPoolResponse(&p)))
}

// UpdatePool godoc
// @Summary Update one of the caller's pools
// @Tags pools
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Pool ID"
// @Param request body UpdatePoolInput true "Pool update request"
// @Success 200 {object} utils.Response{data=PoolResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /pools/{id}/ [patch]
func UpdatePool(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := poolIDParam(c)
	if !ok {
		return
	}

	var input UpdatePoolInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	p, err := services.UpdatePool(user.ID, id, services.PoolUpdateInput{
		Name:          input.Name,
		NumPeople:     input.NumPeople,
		CabinetNumber: input.CabinetNumber,
		TotalPay:      input.TotalPay,
		IsCalculated:  input.IsCalculated,
		Rent:          input.Rent,
		Tools:         input.Tools,
	})
	if err != nil {
		writePoolError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Pool updated successfully", NewPoolResponse(p)))
}

// DeletePool godoc
// @Summary Delete one of the caller's pools
// @Tags pools
// @Produce json
// @Security Bearer
// @Param id path int true "Pool ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /pools/{id}/ [delete]
func DeletePool(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := poolIDParam(c)
	if !ok {
		return
	}

	if err := services.DeletePool(user.ID, id); err != nil {
		writePoolError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Pool deleted successfully", nil))
}
