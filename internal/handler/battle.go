package handler

import (
	"net/http"
	"time"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
	"github.com/dhairyapractice/Solo-leveling/internal/hunter"
)

// CreateBattleRequest defines the request for creating a boss battle
type CreateBattleRequest struct {
	Name             string     `json:"name" validate:"required,max=200,excludesall=<>"`
	Difficulty       string     `json:"difficulty" validate:"required,difficulty"`
	Gold             int        `json:"gold" validate:"gte=0"`
	BattleDate       *time.Time `json:"battle_date,omitempty"`
	StatusCategoryID *string    `json:"status_category_id,omitempty" validate:"omitempty,uuid"`
}

// UpdateBattleRequest defines the request for editing a boss battle
type UpdateBattleRequest struct {
	Name             *string `json:"name,omitempty" validate:"omitempty,max=200,excludesall=<>"`
	Difficulty       *string `json:"difficulty,omitempty" validate:"omitempty,difficulty"`
	Gold             *int    `json:"gold,omitempty" validate:"omitempty,gte=0"`
	StatusCategoryID *string `json:"status_category_id,omitempty" validate:"omitempty,uuid"`
	ClearCategory    bool    `json:"clear_category,omitempty"`
}

// HandleCreateBattle creates a boss battle
// @Summary Create boss battle
// @Description Creates a battle with a per-battle gold payout
// @Tags battles
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param request body CreateBattleRequest true "Battle details"
// @Success 201 {object} domain.BossBattle
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/battles [post]
func HandleCreateBattle(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}

		var req CreateBattleRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create battle"); err != nil {
			return
		}

		battle, err := svc.CreateBattle(r.Context(), hunter.CreateBattleInput{
			UserID:           userID,
			Name:             req.Name,
			Difficulty:       domain.Difficulty(req.Difficulty),
			Gold:             req.Gold,
			BattleDate:       req.BattleDate,
			StatusCategoryID: req.StatusCategoryID,
		})
		if err != nil {
			respondServiceError(w, r, "Create battle", err)
			return
		}

		respondJSON(w, http.StatusCreated, battle)
	}
}

// HandleListBattles lists the user's boss battles
// @Summary List boss battles
// @Tags battles
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} DataResponse
// @Router /api/v1/battles [get]
func HandleListBattles(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}

		battles, err := svc.ListBattles(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "List battles", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: battles})
	}
}

// HandleGetBattle returns a single boss battle
// @Summary Get boss battle
// @Tags battles
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param battleID path string true "Battle ID"
// @Success 200 {object} domain.BossBattle
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/battles/{battleID} [get]
func HandleGetBattle(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		battleID, ok := GetPathParam(r, w, "battleID")
		if !ok {
			return
		}

		battle, err := svc.GetBattle(r.Context(), userID, battleID)
		if err != nil {
			respondServiceError(w, r, "Get battle", err)
			return
		}

		respondJSON(w, http.StatusOK, battle)
	}
}

// HandleUpdateBattle edits battle metadata
// @Summary Update boss battle
// @Tags battles
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param battleID path string true "Battle ID"
// @Param request body UpdateBattleRequest true "Fields to update"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/battles/{battleID} [patch]
func HandleUpdateBattle(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		battleID, ok := GetPathParam(r, w, "battleID")
		if !ok {
			return
		}

		var req UpdateBattleRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update battle"); err != nil {
			return
		}

		update := domain.BattleUpdate{
			Name:             req.Name,
			Gold:             req.Gold,
			StatusCategoryID: req.StatusCategoryID,
			ClearCategory:    req.ClearCategory,
		}
		if req.Difficulty != nil {
			d := domain.Difficulty(*req.Difficulty)
			update.Difficulty = &d
		}

		if err := svc.UpdateBattle(r.Context(), userID, battleID, update); err != nil {
			respondServiceError(w, r, "Update battle", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgBattleUpdated})
	}
}

// HandleDeleteBattle removes a boss battle
// @Summary Delete boss battle
// @Tags battles
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param battleID path string true "Battle ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/battles/{battleID} [delete]
func HandleDeleteBattle(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		battleID, ok := GetPathParam(r, w, "battleID")
		if !ok {
			return
		}

		if err := svc.DeleteBattle(r.Context(), userID, battleID); err != nil {
			respondServiceError(w, r, "Delete battle", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgBattleDeleted})
	}
}

// HandleCompleteBattle applies a battle victory
// @Summary Complete boss battle
// @Description Credits the battle's gold payout. Battles move gold only, never exp or hp.
// @Tags battles
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param battleID path string true "Battle ID"
// @Success 200 {object} hunter.ApplyResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/battles/{battleID}/complete [post]
func HandleCompleteBattle(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		battleID, ok := GetPathParam(r, w, "battleID")
		if !ok {
			return
		}

		result, err := svc.CompleteBattle(r.Context(), userID, battleID)
		if err != nil {
			respondServiceError(w, r, "Complete battle", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleUncompleteBattle reverses a battle victory
// @Summary Uncomplete boss battle
// @Description Removes the credited gold, even if the balance goes negative
// @Tags battles
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param battleID path string true "Battle ID"
// @Success 200 {object} hunter.ApplyResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/battles/{battleID}/uncomplete [post]
func HandleUncompleteBattle(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		battleID, ok := GetPathParam(r, w, "battleID")
		if !ok {
			return
		}

		result, err := svc.UncompleteBattle(r.Context(), userID, battleID)
		if err != nil {
			respondServiceError(w, r, "Uncomplete battle", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
