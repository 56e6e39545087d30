package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/afaq832/GHSS117-Backend/internal/seed"
	"github.com/afaq832/GHSS117-Backend/internal/store"
	"github.com/afaq832/GHSS117-Backend/internal/utils"
)

type SetupHandler struct {
	store store.Store
}

func NewSetupHandler(s store.Store) *SetupHandler {
	return &SetupHandler{store: s}
}

// Run seeds the fixed admin and teacher accounts. Calling it again once
// the admin exists creates nothing and returns the accounts on record.
func (h *SetupHandler) Run(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	created, accounts, err := seed.Run(ctx, h.store)
	if err != nil {
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	status := 200
	message := "Setup already completed"
	if created {
		status = 201
		message = "Default accounts created, passwords are managed by the identity provider"
	}

	utils.SuccessResponse(c, status, gin.H{
		"message":  message,
		"accounts": accounts,
	})
}
