package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kakeibo-dev/kakeibo/models"
	"github.com/kakeibo-dev/kakeibo/services"
)

type TransactionHandler struct {
	Service *services.TransactionService
}

// GetTransactions lists every stored transaction.
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	records, err := h.Service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}
	if records == nil {
		records = []models.TransactionRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// PostTransaction stores one canonical transaction and returns its id.
func (h *TransactionHandler) PostTransaction(c *gin.Context) {
	var tx models.Transaction
	if err := c.ShouldBindJSON(&tx); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Service.Create(&tx)
	if err != nil {
		if errors.Is(err, services.ErrUnknownCategory) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Transaction could not be added"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// PutTransaction updates a stored transaction.
func (h *TransactionHandler) PutTransaction(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction id"})
		return
	}

	var tx models.Transaction
	if err := c.ShouldBindJSON(&tx); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.Update(id, &tx); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		case errors.Is(err, services.ErrUnknownCategory):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Transaction could not be updated"})
		}
		return
	}

	record, err := h.Service.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load updated transaction"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// DeleteTransaction removes a stored transaction.
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction id"})
		return
	}

	if err := h.Service.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
