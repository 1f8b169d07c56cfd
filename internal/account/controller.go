package account

import (
	"fmt"
	"strconv"

	"github.com/Kanahcian/kanahcian-backend/internal/response"

	"github.com/gin-gonic/gin"
)

type AccountController struct {
	AccountService *AccountService
}

func (ac *AccountController) GetAccountByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid account id")
		return
	}

	a, err := ac.AccountService.GetAccountByID(id)
	if err != nil {
		response.Internal(c)
		return
	}
	if a == nil {
		response.NotFound(c, fmt.Sprintf("account %d not found", id))
		return
	}
	response.Success(c, toResponse(*a))
}
