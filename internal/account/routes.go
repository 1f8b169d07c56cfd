package account

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, accountService *AccountService) {
	accountController := &AccountController{AccountService: accountService}

	accountGroup := r.Group("/api")
	{
		accountGroup.GET("/accounts/:id", accountController.GetAccountByID)
	}
}
