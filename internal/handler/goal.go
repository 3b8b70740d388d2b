package handler

import (
	"net/http"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
	"github.com/dhairyapractice/Solo-leveling/internal/hunter"
)

// CreateGoalRequest defines the request for creating a goal
type CreateGoalRequest struct {
	CategoryID  string `json:"category_id" validate:"required,uuid"`
	Title       string `json:"title" validate:"required,max=200,excludesall=<>"`
	Description string `json:"description" validate:"max=2000"`
	ExpReward   *int   `json:"exp_reward,omitempty" validate:"omitempty,gte=0"`
}

// UpdateGoalRequest defines the request for editing a goal
type UpdateGoalRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=200,excludesall=<>"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	ExpReward   *int    `json:"exp_reward,omitempty" validate:"omitempty,gte=0"`
}

// HandleCreateGoal creates a goal tied to a status category
// @Summary Create goal
// @Description Creates a goal. Goals grant exp only and always belong to a category.
// @Tags goals
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param request body CreateGoalRequest true "Goal details"
// @Success 201 {object} domain.Goal
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/goals [post]
func HandleCreateGoal(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}

		var req CreateGoalRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create goal"); err != nil {
			return
		}

		goal, err := svc.CreateGoal(r.Context(), hunter.CreateGoalInput{
			UserID:      userID,
			CategoryID:  req.CategoryID,
			Title:       req.Title,
			Description: req.Description,
			ExpOverride: req.ExpReward,
		})
		if err != nil {
			respondServiceError(w, r, "Create goal", err)
			return
		}

		respondJSON(w, http.StatusCreated, goal)
	}
}

// HandleListGoals lists the user's goals
// @Summary List goals
// @Tags goals
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} DataResponse
// @Router /api/v1/goals [get]
func HandleListGoals(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}

		goals, err := svc.ListGoals(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "List goals", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: goals})
	}
}

// HandleGetGoal returns a single goal
// @Summary Get goal
// @Tags goals
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param goalID path string true "Goal ID"
// @Success 200 {object} domain.Goal
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/goals/{goalID} [get]
func HandleGetGoal(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		goalID, ok := GetPathParam(r, w, "goalID")
		if !ok {
			return
		}

		goal, err := svc.GetGoal(r.Context(), userID, goalID)
		if err != nil {
			respondServiceError(w, r, "Get goal", err)
			return
		}

		respondJSON(w, http.StatusOK, goal)
	}
}

// HandleUpdateGoal edits goal metadata
// @Summary Update goal
// @Tags goals
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param goalID path string true "Goal ID"
// @Param request body UpdateGoalRequest true "Fields to update"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/goals/{goalID} [patch]
func HandleUpdateGoal(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		goalID, ok := GetPathParam(r, w, "goalID")
		if !ok {
			return
		}

		var req UpdateGoalRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update goal"); err != nil {
			return
		}

		update := domain.GoalUpdate{
			Title:       req.Title,
			Description: req.Description,
			ExpReward:   req.ExpReward,
		}

		if err := svc.UpdateGoal(r.Context(), userID, goalID, update); err != nil {
			respondServiceError(w, r, "Update goal", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgGoalUpdated})
	}
}

// HandleDeleteGoal removes a goal
// @Summary Delete goal
// @Tags goals
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param goalID path string true "Goal ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/goals/{goalID} [delete]
func HandleDeleteGoal(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		goalID, ok := GetPathParam(r, w, "goalID")
		if !ok {
			return
		}

		if err := svc.DeleteGoal(r.Context(), userID, goalID); err != nil {
			respondServiceError(w, r, "Delete goal", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgGoalDeleted})
	}
}

// HandleCompleteGoal applies a goal completion
// @Summary Complete goal
// @Description Awards exp to the profile and the goal's category
// @Tags goals
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param goalID path string true "Goal ID"
// @Success 200 {object} hunter.ApplyResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/goals/{goalID}/complete [post]
func HandleCompleteGoal(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		goalID, ok := GetPathParam(r, w, "goalID")
		if !ok {
			return
		}

		result, err := svc.CompleteGoal(r.Context(), userID, goalID)
		if err != nil {
			respondServiceError(w, r, "Complete goal", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleUncompleteGoal reverses a goal completion
// @Summary Uncomplete goal
// @Tags goals
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param goalID path string true "Goal ID"
// @Success 200 {object} hunter.ApplyResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/goals/{goalID}/uncomplete [post]
func HandleUncompleteGoal(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		goalID, ok := GetPathParam(r, w, "goalID")
		if !ok {
			return
		}

		result, err := svc.UncompleteGoal(r.Context(), userID, goalID)
		if err != nil {
			respondServiceError(w, r, "Uncomplete goal", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
