package handler

import (
	"net/http"

	"github.com/dhairyapractice/Solo-leveling/internal/hunter"
)

// CreateCategoryRequest defines the request for creating a status category
type CreateCategoryRequest struct {
	Name  string  `json:"name" validate:"required,max=100,excludesall=<>"`
	Color *string `json:"color,omitempty" validate:"omitempty,max=20"`
	Icon  *string `json:"icon,omitempty" validate:"omitempty,max=100"`
}

// HandleCreateCategory creates a status category
// @Summary Create status category
// @Description Creates a life-area category with its own level and exp track
// @Tags categories
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param request body CreateCategoryRequest true "Category details"
// @Success 201 {object} domain.StatusCategory
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/categories [post]
func HandleCreateCategory(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}

		var req CreateCategoryRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create category"); err != nil {
			return
		}

		category, err := svc.CreateCategory(r.Context(), hunter.CreateCategoryInput{
			UserID: userID,
			Name:   req.Name,
			Color:  req.Color,
			Icon:   req.Icon,
		})
		if err != nil {
			respondServiceError(w, r, "Create category", err)
			return
		}

		respondJSON(w, http.StatusCreated, category)
	}
}

// HandleListCategories lists the user's status categories
// @Summary List status categories
// @Tags categories
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} DataResponse
// @Router /api/v1/categories [get]
func HandleListCategories(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}

		categories, err := svc.ListCategories(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "List categories", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: categories})
	}
}

// HandleGetCategory returns a single status category
// @Summary Get status category
// @Tags categories
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param categoryID path string true "Category ID"
// @Success 200 {object} domain.StatusCategory
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/categories/{categoryID} [get]
func HandleGetCategory(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		categoryID, ok := GetPathParam(r, w, "categoryID")
		if !ok {
			return
		}

		category, err := svc.GetCategory(r.Context(), userID, categoryID)
		if err != nil {
			respondServiceError(w, r, "Get category", err)
			return
		}

		respondJSON(w, http.StatusOK, category)
	}
}

// HandleDeleteCategory removes a status category
// @Summary Delete status category
// @Description Goals under the category are removed with it; quests keep running uncategorized
// @Tags categories
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param categoryID path string true "Category ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/categories/{categoryID} [delete]
func HandleDeleteCategory(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		categoryID, ok := GetPathParam(r, w, "categoryID")
		if !ok {
			return
		}

		if err := svc.DeleteCategory(r.Context(), userID, categoryID); err != nil {
			respondServiceError(w, r, "Delete category", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCategoryDeleted})
	}
}
