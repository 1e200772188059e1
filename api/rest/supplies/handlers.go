package supplies

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/auth"
	apierrors "github.com/jsb2092/fashion-coordinator-sub000/internal/errors"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/supplies"
)

// CreateSupplyHandler adds a care supply to the person's shelf
func CreateSupplyHandler(supplyRepo *supplies.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		personID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		var req supplies.CreateSupplyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		supply, err := supplyRepo.Create(c.Request.Context(), personID, req)
		if err != nil {
			apierrors.InternalError(c, "failed to create supply", err)
			return
		}

		c.JSON(http.StatusCreated, supply)
	}
}

// ListSuppliesHandler lists the person's care supplies
func ListSuppliesHandler(supplyRepo *supplies.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		personID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		shelf, err := supplyRepo.List(c.Request.Context(), personID)
		if err != nil {
			apierrors.InternalError(c, "failed to list supplies", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"supplies": shelf})
	}
}

// UpdateSupplyHandler updates a care supply
func UpdateSupplyHandler(supplyRepo *supplies.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		personID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		supplyID, ok := apierrors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		var req supplies.UpdateSupplyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		supply, err := supplyRepo.Update(c.Request.Context(), supplyID, personID, req)
		if err != nil {
			apierrors.NotFound(c, "supply")
			return
		}

		c.JSON(http.StatusOK, supply)
	}
}

// DeleteSupplyHandler removes a supply from the shelf
func DeleteSupplyHandler(supplyRepo *supplies.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		personID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		supplyID, ok := apierrors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		if err := supplyRepo.Delete(c.Request.Context(), supplyID, personID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				apierrors.NotFound(c, "supply")
				return
			}

			apierrors.InternalError(c, "failed to delete supply", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "supply deleted"})
	}
}
