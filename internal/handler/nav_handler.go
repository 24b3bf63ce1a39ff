package handler

import (
	"net/http"

	"tmsdash/internal/guard"
	"tmsdash/internal/nav"
	"tmsdash/pkg/response"

	"github.com/gin-gonic/gin"
)

type NavHandler struct{}

func NewNavHandler() *NavHandler {
	return &NavHandler{}
}

func (h *NavHandler) RegisterRoutes(router *gin.RouterGroup, g *guard.Guard) {
	router.GET("/nav", g.Require(), h.Nav)
}

// Nav returns the navigation entries visible to the current user
// @Summary      Navigation entries
// @Tags         shell
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/v1/nav [get]
func (h *NavHandler) Nav(c *gin.Context) {
	user := guard.CurrentUser(c)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, nav.Visible(user)))
}
