package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/bistro-boss-api/internal/auth"
	"github.com/franciscosanchezn/bistro-boss-api/internal/models"
)

// TokenResponse is returned by POST /jwt
type TokenResponse struct {
	Token string `json:"token"`
}

type AuthController struct {
	tokens *auth.TokenService
}

func NewAuthController(tokens *auth.TokenService) *AuthController {
	return &AuthController{tokens: tokens}
}

// IssueToken godoc
// @Summary Issue an access token
// @Description Signs the posted user object into a bearer token. The object must carry an email.
// @Tags auth
// @Accept json
// @Produce json
// @Param user body map[string]interface{} true "User claims, at least {\"email\": \"...\"}"
// @Success 200 {object} controllers.TokenResponse
// @Failure 400 {object} models.APIError
// @Router /jwt [post]
func (ac *AuthController) IssueToken(c *gin.Context) {
	var claims map[string]interface{}
	if err := c.ShouldBindJSON(&claims); err != nil {
		respondBadBody(c, err)
		return
	}

	token, err := ac.tokens.Issue(claims)
	if errors.Is(err, auth.ErrMissingEmail) {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrCodeBadRequest, err.Error()))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, TokenResponse{Token: token})
}
