package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/bistro-boss-api/internal/middleware"
	"github.com/franciscosanchezn/bistro-boss-api/internal/models"
	"github.com/franciscosanchezn/bistro-boss-api/internal/services"
)

// UserExistsMessage is replied when registering an email that already exists
const UserExistsMessage = "user already exists"

// UserController handles HTTP requests related to users
type UserController interface {
	// ListUsers returns every user
	ListUsers(c *gin.Context)
	// Register creates the user unless the email is taken
	Register(c *gin.Context)
	// CheckAdmin reports whether the caller is an admin
	CheckAdmin(c *gin.Context)
	// PromoteToAdmin grants the admin role
	PromoteToAdmin(c *gin.Context)
}

type userController struct {
	service services.UserService
}

// NewUserController creates a new instance of UserController
func NewUserController(service services.UserService) UserController {
	return &userController{service: service}
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Security BearerAuth
// @Router /users [get]
func (uc *userController) ListUsers(ctx *gin.Context) {
	users, err := uc.service.ListUsers(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// Register godoc
// @Summary Register a user
// @Description Inserts the user on first sign-in. An existing email is not an error.
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.User true "User"
// @Success 200 {object} models.InsertResult
// @Failure 400 {object} models.APIError
// @Router /users [post]
func (uc *userController) Register(ctx *gin.Context) {
	var user models.User
	if err := ctx.ShouldBindJSON(&user); err != nil {
		respondBadBody(ctx, err)
		return
	}

	res, created, err := uc.service.Register(ctx.Request.Context(), &user)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if !created {
		ctx.JSON(http.StatusOK, gin.H{"message": UserExistsMessage, "insertedId": nil})
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// CheckAdmin godoc
// @Summary Check admin role
// @Description Reports whether the caller holds the admin role. Asking about another email yields false.
// @Tags users
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} models.APIError
// @Security BearerAuth
// @Router /users/admin/{email} [get]
func (uc *userController) CheckAdmin(ctx *gin.Context) {
	email := ctx.Param("email")
	if email != middleware.EmailFrom(ctx) {
		ctx.JSON(http.StatusOK, gin.H{"admin": false})
		return
	}

	admin, err := uc.service.IsAdmin(ctx.Request.Context(), email)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"admin": admin})
}

// PromoteToAdmin godoc
// @Summary Promote a user to admin
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.UpdateResult
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Security BearerAuth
// @Router /users/admin/{id} [patch]
func (uc *userController) PromoteToAdmin(ctx *gin.Context) {
	res, err := uc.service.PromoteToAdmin(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}
