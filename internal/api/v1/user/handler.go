package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tetteam4/swimming-project/internal/api/v1/auth"
	"github.com/tetteam4/swimming-project/internal/database"
	"github.com/tetteam4/swimming-project/internal/models"
	"github.com/tetteam4/swimming-project/internal/utils"
)

// CurrentUser godoc
// @Summary Get current user
// @Description Get current user's information
// @Tags user
// @Produce  json
// @Security Bearer
// @Success 200 {object} utils.Response{data=auth.UserResponse}
// @Failure 401 {object} utils.Response
// @Router /auth/user/ [get]
func CurrentUser(c *gin.Context) {
	value, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	u := value.(models.User)

	// Reload to bypass the middleware cache and reflect the latest state.
	var latest models.User
	if err := database.DB.First(&latest, u.ID).Error; err == nil {
		u = latest
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User information retrieved successfully", auth.NewUserResponse(&u)))
}
