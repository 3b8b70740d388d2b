package handler

import (
	"net/http"

	"github.com/dhairyapractice/Solo-leveling/internal/badge"
	"github.com/dhairyapractice/Solo-leveling/internal/domain"
)

// BadgeCriteriaRequest defines an automatic badge rule
type BadgeCriteriaRequest struct {
	Type  string `json:"type" validate:"required,oneof=level exp gold quests battles"`
	Value int    `json:"value" validate:"required,min=1"`
}

// CreateBadgeRequest defines the request for creating a badge
type CreateBadgeRequest struct {
	Name        string                `json:"name" validate:"required,max=100,excludesall=<>"`
	Description string                `json:"description" validate:"max=500"`
	Criteria    *BadgeCriteriaRequest `json:"criteria,omitempty"`
	ImageURL    *string               `json:"image_url,omitempty" validate:"omitempty,url"`
}

// UpdateBadgeRequest defines the request for editing a badge
type UpdateBadgeRequest struct {
	Name          *string               `json:"name,omitempty" validate:"omitempty,max=100,excludesall=<>"`
	Description   *string               `json:"description,omitempty" validate:"omitempty,max=500"`
	Criteria      *BadgeCriteriaRequest `json:"criteria,omitempty"`
	ClearCriteria bool                  `json:"clear_criteria,omitempty"`
	ImageURL      *string               `json:"image_url,omitempty" validate:"omitempty,url"`
}

func criteriaFromRequest(req *BadgeCriteriaRequest) *domain.BadgeCriteria {
	if req == nil {
		return nil
	}
	return &domain.BadgeCriteria{
		Type:  domain.CriteriaType(req.Type),
		Value: req.Value,
	}
}

// HandleCreateBadge creates a badge definition
// @Summary Create badge
// @Description Creates a badge. Without criteria the badge can only be awarded manually.
// @Tags badges
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param request body CreateBadgeRequest true "Badge details"
// @Success 201 {object} domain.Badge
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/badges [post]
func HandleCreateBadge(svc badge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}

		var req CreateBadgeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create badge"); err != nil {
			return
		}

		created, err := svc.CreateBadge(r.Context(), badge.CreateBadgeInput{
			UserID:      userID,
			Name:        req.Name,
			Description: req.Description,
			Criteria:    criteriaFromRequest(req.Criteria),
			ImageURL:    req.ImageURL,
		})
		if err != nil {
			respondServiceError(w, r, "Create badge", err)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleListBadges lists the user's badge definitions
// @Summary List badges
// @Tags badges
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} DataResponse
// @Router /api/v1/badges [get]
func HandleListBadges(svc badge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}

		badges, err := svc.ListBadges(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "List badges", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: badges})
	}
}

// HandleGetBadge returns a single badge definition
// @Summary Get badge
// @Tags badges
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param badgeID path string true "Badge ID"
// @Success 200 {object} domain.Badge
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/badges/{badgeID} [get]
func HandleGetBadge(svc badge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		badgeID, ok := GetPathParam(r, w, "badgeID")
		if !ok {
			return
		}

		found, err := svc.GetBadge(r.Context(), userID, badgeID)
		if err != nil {
			respondServiceError(w, r, "Get badge", err)
			return
		}

		respondJSON(w, http.StatusOK, found)
	}
}

// HandleUpdateBadge edits a badge definition
// @Summary Update badge
// @Tags badges
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param badgeID path string true "Badge ID"
// @Param request body UpdateBadgeRequest true "Fields to update"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/badges/{badgeID} [patch]
func HandleUpdateBadge(svc badge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		badgeID, ok := GetPathParam(r, w, "badgeID")
		if !ok {
			return
		}

		var req UpdateBadgeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update badge"); err != nil {
			return
		}

		update := domain.BadgeUpdate{
			Name:          req.Name,
			Description:   req.Description,
			Criteria:      criteriaFromRequest(req.Criteria),
			ClearCriteria: req.ClearCriteria,
			ImageURL:      req.ImageURL,
		}

		if err := svc.UpdateBadge(r.Context(), userID, badgeID, update); err != nil {
			respondServiceError(w, r, "Update badge", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgBadgeUpdated})
	}
}

// HandleDeleteBadge removes a badge definition
// @Summary Delete badge
// @Tags badges
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param badgeID path string true "Badge ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/badges/{badgeID} [delete]
func HandleDeleteBadge(svc badge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		badgeID, ok := GetPathParam(r, w, "badgeID")
		if !ok {
			return
		}

		if err := svc.DeleteBadge(r.Context(), userID, badgeID); err != nil {
			respondServiceError(w, r, "Delete badge", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgBadgeDeleted})
	}
}

// HandleListEarnedBadges lists the badges the user has earned
// @Summary List earned badges
// @Tags badges
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} DataResponse
// @Router /api/v1/badges/earned [get]
func HandleListEarnedBadges(svc badge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}

		earned, err := svc.ListEarned(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "List earned badges", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: earned})
	}
}

// HandleAwardBadge manually awards a badge
// @Summary Award badge
// @Description Awards the badge to the user. Awarding an already-held badge is a no-op.
// @Tags badges
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param badgeID path string true "Badge ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/badges/{badgeID}/award [post]
func HandleAwardBadge(svc badge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		badgeID, ok := GetPathParam(r, w, "badgeID")
		if !ok {
			return
		}

		awarded, err := svc.Award(r.Context(), userID, badgeID)
		if err != nil {
			respondServiceError(w, r, "Award badge", err)
			return
		}

		message := MsgBadgeAwarded
		if !awarded {
			message = MsgBadgeAlreadyHeld
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: message})
	}
}

// HandleEvaluateBadges re-checks automatic badges against the current ledger
// @Summary Evaluate badges
// @Description Returns the badges newly earned by this evaluation pass
// @Tags badges
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} DataResponse
// @Router /api/v1/badges/evaluate [post]
func HandleEvaluateBadges(svc badge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}

		newBadges, err := svc.Evaluate(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Evaluate badges", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: newBadges})
	}
}
