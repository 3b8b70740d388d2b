package handler

import (
	"net/http"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
	"github.com/dhairyapractice/Solo-leveling/internal/hunter"
)

// CreateQuestRequest defines the request for creating a quest
type CreateQuestRequest struct {
	Title            string  `json:"title" validate:"required,max=200,excludesall=<>"`
	Description      string  `json:"description" validate:"max=2000"`
	Difficulty       string  `json:"difficulty" validate:"required,difficulty"`
	QuestType        string  `json:"quest_type" validate:"required,questtype"`
	ExpReward        *int    `json:"exp_reward,omitempty" validate:"omitempty,gte=0"`
	HPReward         *int    `json:"hp_reward,omitempty" validate:"omitempty,gte=0"`
	StatusCategoryID *string `json:"status_category_id,omitempty" validate:"omitempty,uuid"`
}

// UpdateQuestRequest defines the request for editing a quest
type UpdateQuestRequest struct {
	Title            *string `json:"title,omitempty" validate:"omitempty,max=200,excludesall=<>"`
	Description      *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Difficulty       *string `json:"difficulty,omitempty" validate:"omitempty,difficulty"`
	QuestType        *string `json:"quest_type,omitempty" validate:"omitempty,questtype"`
	ExpReward        *int    `json:"exp_reward,omitempty" validate:"omitempty,gte=0"`
	HPReward         *int    `json:"hp_reward,omitempty" validate:"omitempty,gte=0"`
	StatusCategoryID *string `json:"status_category_id,omitempty" validate:"omitempty,uuid"`
	ClearCategory    bool    `json:"clear_category,omitempty"`
}

// HandleCreateQuest creates a new quest
// @Summary Create quest
// @Description Creates a quest. Omitted rewards default from the difficulty rank.
// @Tags quests
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param request body CreateQuestRequest true "Quest details"
// @Success 201 {object} domain.Quest
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/quests [post]
func HandleCreateQuest(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}

		var req CreateQuestRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create quest"); err != nil {
			return
		}

		quest, err := svc.CreateQuest(r.Context(), hunter.CreateQuestInput{
			UserID:           userID,
			Title:            req.Title,
			Description:      req.Description,
			Difficulty:       domain.Difficulty(req.Difficulty),
			QuestType:        req.QuestType,
			ExpOverride:      req.ExpReward,
			HPOverride:       req.HPReward,
			StatusCategoryID: req.StatusCategoryID,
		})
		if err != nil {
			respondServiceError(w, r, "Create quest", err)
			return
		}

		respondJSON(w, http.StatusCreated, quest)
	}
}

// HandleListQuests lists the user's quests, newest first
// @Summary List quests
// @Tags quests
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} DataResponse
// @Router /api/v1/quests [get]
func HandleListQuests(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}

		quests, err := svc.ListQuests(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "List quests", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: quests})
	}
}

// HandleGetQuest returns a single quest
// @Summary Get quest
// @Tags quests
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param questID path string true "Quest ID"
// @Success 200 {object} domain.Quest
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/quests/{questID} [get]
func HandleGetQuest(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		questID, ok := GetPathParam(r, w, "questID")
		if !ok {
			return
		}

		quest, err := svc.GetQuest(r.Context(), userID, questID)
		if err != nil {
			respondServiceError(w, r, "Get quest", err)
			return
		}

		respondJSON(w, http.StatusOK, quest)
	}
}

// HandleUpdateQuest edits quest metadata
// @Summary Update quest
// @Tags quests
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param questID path string true "Quest ID"
// @Param request body UpdateQuestRequest true "Fields to update"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/quests/{questID} [patch]
func HandleUpdateQuest(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		questID, ok := GetPathParam(r, w, "questID")
		if !ok {
			return
		}

		var req UpdateQuestRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update quest"); err != nil {
			return
		}

		update := domain.QuestUpdate{
			Title:            req.Title,
			Description:      req.Description,
			QuestType:        req.QuestType,
			ExpReward:        req.ExpReward,
			HPReward:         req.HPReward,
			StatusCategoryID: req.StatusCategoryID,
			ClearCategory:    req.ClearCategory,
		}
		if req.Difficulty != nil {
			d := domain.Difficulty(*req.Difficulty)
			update.Difficulty = &d
		}

		if err := svc.UpdateQuest(r.Context(), userID, questID, update); err != nil {
			respondServiceError(w, r, "Update quest", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgQuestUpdated})
	}
}

// HandleDeleteQuest removes a quest
// @Summary Delete quest
// @Tags quests
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param questID path string true "Quest ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/quests/{questID} [delete]
func HandleDeleteQuest(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		questID, ok := GetPathParam(r, w, "questID")
		if !ok {
			return
		}

		if err := svc.DeleteQuest(r.Context(), userID, questID); err != nil {
			respondServiceError(w, r, "Delete quest", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgQuestDeleted})
	}
}

// HandleCompleteQuest applies a quest completion event
// @Summary Complete quest
// @Description Awards exp and hp, advances level and category, and ticks the streak for daily quests
// @Tags quests
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param questID path string true "Quest ID"
// @Success 200 {object} hunter.ApplyResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/quests/{questID}/complete [post]
func HandleCompleteQuest(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		questID, ok := GetPathParam(r, w, "questID")
		if !ok {
			return
		}

		result, err := svc.CompleteQuest(r.Context(), userID, questID)
		if err != nil {
			respondServiceError(w, r, "Complete quest", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleUncompleteQuest reverses a quest completion
// @Summary Uncomplete quest
// @Description Removes the earned exp and hp. The level never drops below where it was.
// @Tags quests
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param questID path string true "Quest ID"
// @Success 200 {object} hunter.ApplyResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/quests/{questID}/uncomplete [post]
func HandleUncompleteQuest(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		questID, ok := GetPathParam(r, w, "questID")
		if !ok {
			return
		}

		result, err := svc.UncompleteQuest(r.Context(), userID, questID)
		if err != nil {
			respondServiceError(w, r, "Uncomplete quest", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleFailQuest applies the miss penalty for a daily or weekly quest
// @Summary Fail quest
// @Description Deducts the difficulty penalty from exp. Monthly quests carry no penalty.
// @Tags quests
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param questID path string true "Quest ID"
// @Success 200 {object} hunter.ApplyResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/quests/{questID}/fail [post]
func HandleFailQuest(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		questID, ok := GetPathParam(r, w, "questID")
		if !ok {
			return
		}

		result, err := svc.FailQuest(r.Context(), userID, questID)
		if err != nil {
			respondServiceError(w, r, "Fail quest", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
