package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-registry-api/internal/application/ports"
	"user-registry-api/internal/infrastructure/jwt"
	"user-registry-api/internal/interface/api/rest/dto/user"
	"user-registry-api/internal/interface/api/rest/middleware"
	"user-registry-api/internal/interface/api/rest/validator"
)

const msgDeleted = "Successfully deleted user"

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

// NewUserController registers the user routes. With a nil jwtService the
// mutating routes are open.
func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	auth := middleware.AuthMiddleware(jwtService)

	r.GET(RouteUsers, uc.GetUsersHandler)
	r.GET(RouteUsersPeriod, uc.GetUsersByPeriodHandler)
	r.GET(RouteUser, uc.GetUserHandler)
	r.POST(RouteUsers, auth, uc.CreateUserHandler)
	r.PUT(RouteUser, auth, uc.UpdateUserHandler)
	r.PATCH(RouteUser, auth, uc.PatchUserHandler)
	r.DELETE(RouteUser, auth, uc.DeleteUserHandler)

	return uc
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
	users, err := uc.userService.FindUsers(c.Request.Context())
	if err != nil {
		writeError(c, uc.logger, "FindUsers", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUsers(users))
}

func (uc *UserController) GetUsersByPeriodHandler(c *gin.Context) {
	period, err := validator.ParseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		writeError(c, uc.logger, "ParseDateRange", err)
		return
	}

	users, err := uc.userService.FindUsersByBirthDateRange(c.Request.Context(), period)
	if err != nil {
		writeError(c, uc.logger, "FindUsersByBirthDateRange", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUsers(users))
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("user_id"))
	if !ok {
		badRequest(c, msgInvalidID)
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), uuid)
	if err != nil {
		writeError(c, uc.logger, "FindUserByID", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) CreateUserHandler(c *gin.Context) {
	var req user.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, msgInvalidBody)
		return
	}

	uDomain, err := user.ToDomainUser(req)
	if err != nil {
		writeError(c, uc.logger, "ToDomainUser", err)
		return
	}

	u, err := uc.userService.CreateUser(c.Request.Context(), &uDomain)
	if err != nil {
		writeError(c, uc.logger, "CreateUser", err)
		return
	}

	c.JSON(http.StatusCreated, user.ToResponseUser(*u))
}

func (uc *UserController) UpdateUserHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("user_id"))
	if !ok {
		badRequest(c, msgInvalidID)
		return
	}

	var req user.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, msgInvalidBody)
		return
	}

	uDomain, err := user.ToDomainUser(req)
	if err != nil {
		writeError(c, uc.logger, "ToDomainUser", err)
		return
	}

	u, err := uc.userService.UpdateUser(c.Request.Context(), uuid, &uDomain)
	if err != nil {
		writeError(c, uc.logger, "UpdateUser", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) PatchUserHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("user_id"))
	if !ok {
		badRequest(c, msgInvalidID)
		return
	}

	var req user.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, msgInvalidBody)
		return
	}

	patch, err := user.ToDomainPatch(req)
	if err != nil {
		writeError(c, uc.logger, "ToDomainPatch", err)
		return
	}

	u, err := uc.userService.PatchUser(c.Request.Context(), uuid, &patch)
	if err != nil {
		writeError(c, uc.logger, "PatchUser", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("user_id"))
	if !ok {
		badRequest(c, msgInvalidID)
		return
	}

	if err := uc.userService.DeleteUser(c.Request.Context(), uuid); err != nil {
		writeError(c, uc.logger, "DeleteUser", err)
		return
	}

	c.String(http.StatusOK, msgDeleted)
}
