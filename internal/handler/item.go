package handler

import (
	"net/http"
	"strings"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
	"github.com/dhairyapractice/Solo-leveling/internal/shop"
)

// CreateItemRequest defines the request for creating a shop or reward item
type CreateItemRequest struct {
	ItemType      string  `json:"item_type" validate:"required,itemtype"`
	Name          string  `json:"name" validate:"required,max=200,excludesall=<>"`
	Price         int     `json:"price" validate:"gte=0"`
	RequiredLevel int     `json:"required_level" validate:"gte=0"`
	ImageURL      *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

// UpdateItemRequest defines the request for editing an item
type UpdateItemRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,max=200,excludesall=<>"`
	Price         *int    `json:"price,omitempty" validate:"omitempty,gte=0"`
	RequiredLevel *int    `json:"required_level,omitempty" validate:"omitempty,gte=0"`
	ImageURL      *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

// HandleCreateItem creates a shop or reward item
// @Summary Create item
// @Description Shop items cost gold and are one-time; reward items cost hp and are repeatable
// @Tags items
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param request body CreateItemRequest true "Item details"
// @Success 201 {object} domain.ShopItem
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/items [post]
func HandleCreateItem(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}

		var req CreateItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create item"); err != nil {
			return
		}

		item, err := svc.CreateItem(r.Context(), shop.CreateItemInput{
			UserID:        userID,
			ItemType:      domain.ItemType(strings.ToLower(req.ItemType)),
			Name:          req.Name,
			Price:         req.Price,
			RequiredLevel: req.RequiredLevel,
			ImageURL:      req.ImageURL,
		})
		if err != nil {
			respondServiceError(w, r, "Create item", err)
			return
		}

		respondJSON(w, http.StatusCreated, item)
	}
}

// HandleListItems lists items of one economy, cheapest first
// @Summary List items
// @Tags items
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param type query string true "Item type (shop or reward)"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/items [get]
func HandleListItems(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		itemType, ok := GetQueryParam(r, w, "type")
		if !ok {
			return
		}

		items, err := svc.ListItems(r.Context(), userID, domain.ItemType(strings.ToLower(itemType)))
		if err != nil {
			respondServiceError(w, r, "List items", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: items})
	}
}

// HandleGetItem returns a single item
// @Summary Get item
// @Tags items
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param itemID path string true "Item ID"
// @Success 200 {object} domain.ShopItem
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{itemID} [get]
func HandleGetItem(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		itemID, ok := GetPathParam(r, w, "itemID")
		if !ok {
			return
		}

		item, err := svc.GetItem(r.Context(), userID, itemID)
		if err != nil {
			respondServiceError(w, r, "Get item", err)
			return
		}

		respondJSON(w, http.StatusOK, item)
	}
}

// HandleUpdateItem edits item metadata
// @Summary Update item
// @Tags items
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param itemID path string true "Item ID"
// @Param request body UpdateItemRequest true "Fields to update"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{itemID} [patch]
func HandleUpdateItem(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		itemID, ok := GetPathParam(r, w, "itemID")
		if !ok {
			return
		}

		var req UpdateItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update item"); err != nil {
			return
		}

		update := domain.ShopItemUpdate{
			Name:          req.Name,
			Price:         req.Price,
			RequiredLevel: req.RequiredLevel,
			ImageURL:      req.ImageURL,
		}

		if err := svc.UpdateItem(r.Context(), userID, itemID, update); err != nil {
			respondServiceError(w, r, "Update item", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemUpdated})
	}
}

// HandleDeleteItem removes an item
// @Summary Delete item
// @Tags items
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param itemID path string true "Item ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{itemID} [delete]
func HandleDeleteItem(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		itemID, ok := GetPathParam(r, w, "itemID")
		if !ok {
			return
		}

		if err := svc.DeleteItem(r.Context(), userID, itemID); err != nil {
			respondServiceError(w, r, "Delete item", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemDeleted})
	}
}

// HandlePurchaseItem buys a shop item with gold
// @Summary Purchase shop item
// @Description Spends gold on a one-time shop item. Fails if already purchased, under-leveled or short on gold.
// @Tags items
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param itemID path string true "Item ID"
// @Success 200 {object} shop.SpendResult
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/items/{itemID}/purchase [post]
func HandlePurchaseItem(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		itemID, ok := GetPathParam(r, w, "itemID")
		if !ok {
			return
		}

		result, err := svc.PurchaseItem(r.Context(), userID, itemID)
		if err != nil {
			respondServiceError(w, r, "Purchase item", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleRedeemReward redeems a reward item with hp
// @Summary Redeem reward item
// @Description Spends hp on a reward item. Rewards are repeatable while hp covers the price.
// @Tags items
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param itemID path string true "Item ID"
// @Success 200 {object} shop.SpendResult
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/items/{itemID}/redeem [post]
func HandleRedeemReward(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		itemID, ok := GetPathParam(r, w, "itemID")
		if !ok {
			return
		}

		result, err := svc.RedeemReward(r.Context(), userID, itemID)
		if err != nil {
			respondServiceError(w, r, "Redeem reward", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
