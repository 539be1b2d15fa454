package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"github.com/kakeibo-dev/kakeibo/handlers"
	"github.com/kakeibo-dev/kakeibo/services"
)

// SetupTransactionRoutes wires the transaction CRUD surface.
func SetupTransactionRoutes(rg *gin.RouterGroup, db *sql.DB) {
	service := services.NewTransactionService(db)
	h := &handlers.TransactionHandler{Service: service}

	rg.GET("/transactions", h.GetTransactions)
	rg.POST("/transactions", h.PostTransaction)
	rg.PUT("/transactions/:id", h.PutTransaction)
	rg.DELETE("/transactions/:id", h.DeleteTransaction)
}
