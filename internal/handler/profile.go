package handler

import (
	"net/http"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
	"github.com/dhairyapractice/Solo-leveling/internal/hunter"
)

// EnsureProfileRequest defines the request for creating or fetching a profile
type EnsureProfileRequest struct {
	Name string `json:"name" validate:"required,max=100,excludesall=<>"`
}

// UpdateProfileRequest defines the request for editing profile display fields
type UpdateProfileRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,max=100,excludesall=<>"`
	CurrentPfpURL *string `json:"current_pfp_url,omitempty" validate:"omitempty,url"`
	Pfp1URL       *string `json:"pfp1_url,omitempty" validate:"omitempty,url"`
	Pfp2URL       *string `json:"pfp2_url,omitempty" validate:"omitempty,url"`
	Pfp3URL       *string `json:"pfp3_url,omitempty" validate:"omitempty,url"`
}

// CreatePfpMilestoneRequest defines the request for registering a pfp swap level
type CreatePfpMilestoneRequest struct {
	LevelThreshold int    `json:"level_threshold" validate:"required,min=1"`
	PfpURL         string `json:"pfp_url" validate:"required,url"`
}

// HandleGetProfile returns the hunter profile for the requesting user
// @Summary Get hunter profile
// @Description Returns the profile ledger: level, exp, hp, gold and streak
// @Tags profile
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} domain.HunterProfile
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profile [get]
func HandleGetProfile(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}

		profile, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get profile", err)
			return
		}

		respondJSON(w, http.StatusOK, profile)
	}
}

// HandleEnsureProfile creates the hunter profile if it does not exist yet
// @Summary Ensure hunter profile
// @Description Creates a fresh level 1 profile for the user, or returns the existing one
// @Tags profile
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param request body EnsureProfileRequest true "Profile details"
// @Success 200 {object} domain.HunterProfile
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profile [post]
func HandleEnsureProfile(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}

		var req EnsureProfileRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Ensure profile"); err != nil {
			return
		}

		profile, err := svc.EnsureProfile(r.Context(), userID, req.Name)
		if err != nil {
			respondServiceError(w, r, "Ensure profile", err)
			return
		}

		respondJSON(w, http.StatusOK, profile)
	}
}

// HandleUpdateProfile edits display fields on the hunter profile
// @Summary Update hunter profile
// @Description Updates name and avatar URLs. Level, exp, hp and gold are engine-owned.
// @Tags profile
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param request body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profile [patch]
func HandleUpdateProfile(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}

		var req UpdateProfileRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update profile"); err != nil {
			return
		}

		update := domain.ProfileUpdate{
			Name:          req.Name,
			CurrentPfpURL: req.CurrentPfpURL,
			Pfp1URL:       req.Pfp1URL,
			Pfp2URL:       req.Pfp2URL,
			Pfp3URL:       req.Pfp3URL,
		}

		if err := svc.UpdateProfile(r.Context(), userID, update); err != nil {
			respondServiceError(w, r, "Update profile", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgProfileUpdated})
	}
}

// HandleGetSnapshot returns the full dashboard read model
// @Summary Get dashboard snapshot
// @Description Returns the profile plus categories, quests, battles and goals in one call
// @Tags profile
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} hunter.Snapshot
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/snapshot [get]
func HandleGetSnapshot(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}

		snapshot, err := svc.GetSnapshot(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get snapshot", err)
			return
		}

		respondJSON(w, http.StatusOK, snapshot)
	}
}

// HandleListPfpMilestones lists the configured avatar swap levels
// @Summary List pfp milestones
// @Tags profile
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} DataResponse
// @Router /api/v1/profile/milestones [get]
func HandleListPfpMilestones(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}

		milestones, err := svc.ListPfpMilestones(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "List pfp milestones", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: milestones})
	}
}

// HandleCreatePfpMilestone registers an avatar swap at a level threshold
// @Summary Create pfp milestone
// @Description When the hunter reaches the threshold, the avatar swaps to the given URL
// @Tags profile
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param request body CreatePfpMilestoneRequest true "Milestone details"
// @Success 201 {object} domain.PfpMilestone
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profile/milestones [post]
func HandleCreatePfpMilestone(svc hunter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}

		var req CreatePfpMilestoneRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create pfp milestone"); err != nil {
			return
		}

		milestone, err := svc.CreatePfpMilestone(r.Context(), userID, req.LevelThreshold, req.PfpURL)
		if err != nil {
			respondServiceError(w, r, "Create pfp milestone", err)
			return
		}

		respondJSON(w, http.StatusCreated, milestone)
	}
}
