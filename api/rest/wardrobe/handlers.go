package wardrobe

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/auth"
	apierrors "github.com/jsb2092/fashion-coordinator-sub000/internal/errors"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/wardrobe"
)

// CreateItemHandler creates a wardrobe item for the authenticated person
func CreateItemHandler(itemRepo *wardrobe.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		personID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		var req wardrobe.CreateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		item, err := itemRepo.Create(c.Request.Context(), personID, req)
		if err != nil {
			apierrors.InternalError(c, "failed to create item", err)
			return
		}

		c.JSON(http.StatusCreated, item)
	}
}

// ListItemsHandler lists every wardrobe item the person owns
func ListItemsHandler(itemRepo *wardrobe.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		personID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		items, err := itemRepo.List(c.Request.Context(), personID)
		if err != nil {
			apierrors.InternalError(c, "failed to list items", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// GetItemHandler gets a single wardrobe item by ID
func GetItemHandler(itemRepo *wardrobe.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		personID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		itemID, ok := apierrors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		item, err := itemRepo.Get(c.Request.Context(), itemID, personID)
		if err != nil {
			apierrors.NotFound(c, "item")
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// UpdateItemHandler updates a wardrobe item
func UpdateItemHandler(itemRepo *wardrobe.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		personID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		itemID, ok := apierrors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		var req wardrobe.UpdateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		item, err := itemRepo.Update(c.Request.Context(), itemID, personID, req)
		if err != nil {
			apierrors.NotFound(c, "item")
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// DeleteItemHandler deletes a wardrobe item
func DeleteItemHandler(itemRepo *wardrobe.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		personID, exists := auth.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		itemID, ok := apierrors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		if err := itemRepo.Delete(c.Request.Context(), itemID, personID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				apierrors.NotFound(c, "item")
				return
			}

			apierrors.InternalError(c, "failed to delete item", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
	}
}
