// Package badge manages badge definitions and runs threshold evaluation
// after applied events. Earning is idempotent: the store enforces at most
// one award per (user, badge).
package badge

import (
	"context"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
	"github.com/dhairyapractice/Solo-leveling/internal/logger"
	"github.com/dhairyapractice/Solo-leveling/internal/metrics"
	"github.com/dhairyapractice/Solo-leveling/internal/repository"
)

type Service interface {
	// Definition management
	CreateBadge(ctx context.Context, input CreateBadgeInput) (*domain.Badge, error)
	GetBadge(ctx context.Context, userID, badgeID string) (*domain.Badge, error)
	ListBadges(ctx context.Context, userID string) ([]domain.Badge, error)
	UpdateBadge(ctx context.Context, userID, badgeID string, update domain.BadgeUpdate) error
	DeleteBadge(ctx context.Context, userID, badgeID string) error

	// Awards
	ListEarned(ctx context.Context, userID string) ([]domain.UserBadge, error)
	Award(ctx context.Context, userID, badgeID string) (bool, error)

	// Evaluate re-checks every automatic badge against the current ledger
	// and returns the newly earned ones.
	Evaluate(ctx context.Context, userID string) ([]domain.Badge, error)
}

// ProfileReader is the slice of the hunter store evaluation needs.
type ProfileReader interface {
	GetProfile(ctx context.Context, userID string) (*domain.HunterProfile, error)
}

// CreateBadgeInput carries badge creation fields. A nil Criteria makes the
// badge manual-award only.
type CreateBadgeInput struct {
	UserID      string
	Name        string
	Description string
	Criteria    *domain.BadgeCriteria
	ImageURL    *string
}

type service struct {
	repo     repository.Badge
	profiles ProfileReader
	cache    *lru.Cache[string, []domain.Badge]
}

// NewService creates the badge service. Definitions are cached per user and
// invalidated on any definition write.
func NewService(repo repository.Badge, profiles ProfileReader) (Service, error) {
	cache, err := lru.New[string, []domain.Badge](BadgeCacheSize)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateCacheFailed, err)
	}
	return &service{repo: repo, profiles: profiles, cache: cache}, nil
}

func (s *service) CreateBadge(ctx context.Context, input CreateBadgeInput) (*domain.Badge, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if input.Criteria != nil {
		if !input.Criteria.Type.Valid() {
			return nil, fmt.Errorf("%w: unknown criteria type %q", domain.ErrInvalidInput, input.Criteria.Type)
		}
		if input.Criteria.Value < 0 {
			return nil, fmt.Errorf("%w: criteria value must be non-negative", domain.ErrInvalidInput)
		}
	}

	badge := &domain.Badge{
		UserID:      input.UserID,
		Name:        input.Name,
		Description: input.Description,
		Criteria:    input.Criteria,
		ImageURL:    input.ImageURL,
	}
	created, err := s.repo.CreateBadge(ctx, badge)
	if err != nil {
		return nil, err
	}

	s.cache.Remove(input.UserID)
	return created, nil
}

func (s *service) GetBadge(ctx context.Context, userID, badgeID string) (*domain.Badge, error) {
	return s.repo.GetBadge(ctx, userID, badgeID)
}

// ListBadges serves definitions from the cache when it can.
func (s *service) ListBadges(ctx context.Context, userID string) ([]domain.Badge, error) {
	if badges, ok := s.cache.Get(userID); ok {
		return badges, nil
	}

	badges, err := s.repo.ListBadges(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListBadgesFailed, err)
	}

	s.cache.Add(userID, badges)
	return badges, nil
}

func (s *service) UpdateBadge(ctx context.Context, userID, badgeID string, update domain.BadgeUpdate) error {
	if update.Criteria != nil && !update.Criteria.Type.Valid() {
		return fmt.Errorf("%w: unknown criteria type %q", domain.ErrInvalidInput, update.Criteria.Type)
	}

	if err := s.repo.UpdateBadge(ctx, userID, badgeID, update); err != nil {
		return err
	}

	s.cache.Remove(userID)
	return nil
}

func (s *service) DeleteBadge(ctx context.Context, userID, badgeID string) error {
	if err := s.repo.DeleteBadge(ctx, userID, badgeID); err != nil {
		return err
	}

	s.cache.Remove(userID)
	return nil
}

func (s *service) ListEarned(ctx context.Context, userID string) ([]domain.UserBadge, error) {
	return s.repo.ListUserBadges(ctx, userID)
}

// Award grants a badge manually. Returns false when it was already earned.
func (s *service) Award(ctx context.Context, userID, badgeID string) (bool, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgAwardBadgeCalled, "userID", userID, "badgeID", badgeID)

	if _, err := s.repo.GetBadge(ctx, userID, badgeID); err != nil {
		return false, err
	}

	awarded, err := s.repo.AwardBadge(ctx, userID, badgeID)
	if err != nil {
		return false, fmt.Errorf(ErrMsgAwardFailed, err)
	}
	if !awarded {
		return false, nil
	}

	s.recordAward(ctx, userID, badgeID, "manual")
	metrics.BadgesAwarded.WithLabelValues("manual").Inc()
	log.Info(LogMsgBadgeAwarded, "userID", userID, "badgeID", badgeID, "source", "manual")
	return true, nil
}

// Evaluate checks every automatic badge the user has not yet earned against
// the current ledger and awards the ones whose threshold is met.
func (s *service) Evaluate(ctx context.Context, userID string) ([]domain.Badge, error) {
	log := logger.FromContext(ctx)

	badges, err := s.ListBadges(ctx, userID)
	if err != nil {
		return nil, err
	}

	earned, err := s.repo.ListUserBadges(ctx, userID)
	if err != nil {
		return nil, err
	}
	earnedSet := make(map[string]struct{}, len(earned))
	for _, ub := range earned {
		earnedSet[ub.BadgeID] = struct{}{}
	}

	var (
		profile    *domain.HunterProfile
		newBadges  []domain.Badge
		questCount = -1
		fightCount = -1
	)

	for _, b := range badges {
		if b.Criteria == nil {
			continue
		}
		if _, ok := earnedSet[b.ID]; ok {
			continue
		}

		if profile == nil {
			profile, err = s.profiles.GetProfile(ctx, userID)
			if err != nil {
				return nil, fmt.Errorf(ErrMsgGetProfileFailed, err)
			}
		}

		var metric int
		switch b.Criteria.Type {
		case domain.CriteriaLevel:
			metric = profile.Level
		case domain.CriteriaExp:
			metric = profile.Exp
		case domain.CriteriaGold:
			metric = profile.Gold()
		case domain.CriteriaQuests:
			if questCount < 0 {
				questCount, err = s.repo.CountCompletedQuests(ctx, userID)
				if err != nil {
					return nil, fmt.Errorf(ErrMsgCountFailed, err)
				}
			}
			metric = questCount
		case domain.CriteriaBattles:
			if fightCount < 0 {
				fightCount, err = s.repo.CountCompletedBattles(ctx, userID)
				if err != nil {
					return nil, fmt.Errorf(ErrMsgCountFailed, err)
				}
			}
			metric = fightCount
		default:
			continue
		}

		if metric < b.Criteria.Value {
			continue
		}

		awarded, err := s.repo.AwardBadge(ctx, userID, b.ID)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgAwardFailed, err)
		}
		if !awarded {
			continue
		}

		s.recordAward(ctx, userID, b.ID, string(b.Criteria.Type))
		metrics.BadgesAwarded.WithLabelValues(string(b.Criteria.Type)).Inc()
		newBadges = append(newBadges, b)
		log.Info(LogMsgBadgeAwarded, "userID", userID, "badgeID", b.ID,
			"source", b.Criteria.Type, "threshold", b.Criteria.Value)
	}

	return newBadges, nil
}

// recordAward appends the award to the audit log. Best-effort: the award
// itself already committed.
func (s *service) recordAward(ctx context.Context, userID, badgeID, source string) {
	err := s.repo.RecordEvent(ctx, &domain.HunterEvent{
		UserID:   userID,
		Type:     domain.EventBadgeAwarded,
		EntityID: badgeID,
		Payload:  map[string]any{"source": source},
	})
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventSkipped, "userID", userID, "badgeID", badgeID, "error", err)
	}
}
