package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
	"github.com/dhairyapractice/Solo-leveling/internal/repository"
)

// HunterRepository implements the hunter record store on PostgreSQL.
type HunterRepository struct {
	db *pgxpool.Pool
}

// NewHunterRepository creates a new HunterRepository
func NewHunterRepository(db *pgxpool.Pool) *HunterRepository {
	return &HunterRepository{db: db}
}

// HunterTx implements repository.HunterTx
type HunterTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *HunterRepository) BeginTx(ctx context.Context) (repository.HunterTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &HunterTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *HunterTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *HunterTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

const profileColumns = `profile_id, user_id, name, level, exp, hp, gold_earned, gold_spent,
	streak, progress_percentage, last_active_date, exp_history,
	current_pfp_url, pfp1_url, pfp2_url, pfp3_url, created_at, updated_at`

func scanProfile(row pgx.Row) (*domain.HunterProfile, error) {
	var (
		p              domain.HunterProfile
		lastActive     pgtype.Date
		historyJSON    []byte
		currentPfp     pgtype.Text
		pfp1, pfp2, p3 pgtype.Text
	)

	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Level, &p.Exp, &p.HP,
		&p.GoldEarned, &p.GoldSpent, &p.Streak, &p.ProgressPercentage,
		&lastActive, &historyJSON, &currentPfp, &pfp1, &pfp2, &p3,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	p.LastActiveDate = dateToKey(lastActive)
	p.ExpHistory = map[string]int{}
	if len(historyJSON) > 0 {
		if err := json.Unmarshal(historyJSON, &p.ExpHistory); err != nil {
			return nil, fmt.Errorf("failed to decode exp history: %w", err)
		}
	}
	p.CurrentPfpURL = textToPtr(currentPfp)
	p.Pfp1URL = textToPtr(pfp1)
	p.Pfp2URL = textToPtr(pfp2)
	p.Pfp3URL = textToPtr(p3)
	return &p, nil
}

// GetProfile returns the hunter profile owned by userID.
func (r *HunterRepository) GetProfile(ctx context.Context, userID string) (*domain.HunterProfile, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM hunter_profiles WHERE user_id = $1`, userUUID)

	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// CreateProfile inserts a fresh profile at level 1 with full HP.
func (r *HunterRepository) CreateProfile(ctx context.Context, userID, name string) (*domain.HunterProfile, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO hunter_profiles (user_id, name)
		 VALUES ($1, $2)
		 RETURNING `+profileColumns, userUUID, name)

	profile, err := scanProfile(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile applies a partial display-field update. Omitted fields keep
// their current value.
func (r *HunterRepository) UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE hunter_profiles
		 SET name            = COALESCE($2, name),
		     current_pfp_url = COALESCE($3, current_pfp_url),
		     pfp1_url        = COALESCE($4, pfp1_url),
		     pfp2_url        = COALESCE($5, pfp2_url),
		     pfp3_url        = COALESCE($6, pfp3_url),
		     updated_at      = NOW()
		 WHERE user_id = $1`,
		userUUID, ptrToText(update.Name), ptrToText(update.CurrentPfpURL),
		ptrToText(update.Pfp1URL), ptrToText(update.Pfp2URL), ptrToText(update.Pfp3URL))
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

// ListPfpMilestones returns milestones ordered by threshold ascending.
func (r *HunterRepository) ListPfpMilestones(ctx context.Context, userID string) ([]domain.PfpMilestone, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT milestone_id, user_id, level_threshold, pfp_url, created_at
		 FROM pfp_milestones WHERE user_id = $1 ORDER BY level_threshold`, userUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pfp milestones: %w", err)
	}
	defer rows.Close()

	var milestones []domain.PfpMilestone
	for rows.Next() {
		var m domain.PfpMilestone
		if err := rows.Scan(&m.ID, &m.UserID, &m.LevelThreshold, &m.PfpURL, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pfp milestone: %w", err)
		}
		milestones = append(milestones, m)
	}
	return milestones, rows.Err()
}

// CreatePfpMilestone inserts a level-threshold profile picture swap.
func (r *HunterRepository) CreatePfpMilestone(ctx context.Context, milestone *domain.PfpMilestone) (*domain.PfpMilestone, error) {
	userUUID, err := parseUserUUID(milestone.UserID)
	if err != nil {
		return nil, err
	}

	var out domain.PfpMilestone
	err = r.db.QueryRow(ctx,
		`INSERT INTO pfp_milestones (user_id, level_threshold, pfp_url)
		 VALUES ($1, $2, $3)
		 RETURNING milestone_id, user_id, level_threshold, pfp_url, created_at`,
		userUUID, milestone.LevelThreshold, milestone.PfpURL).
		Scan(&out.ID, &out.UserID, &out.LevelThreshold, &out.PfpURL, &out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create pfp milestone: %w", err)
	}
	return &out, nil
}

// ---- Transactional profile operations ----

// GetProfileForUpdate row-locks and returns the profile.
func (t *HunterTx) GetProfileForUpdate(ctx context.Context, userID string) (*domain.HunterProfile, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	row := t.tx.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM hunter_profiles WHERE user_id = $1 FOR UPDATE`, userUUID)

	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to lock profile: %w", err)
	}
	return profile, nil
}

// UpdateProfileProgress writes the leveling result back to the ledger.
func (t *HunterTx) UpdateProfileProgress(ctx context.Context, userID string, level, exp, hp int) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}

	tag, err := t.tx.Exec(ctx,
		`UPDATE hunter_profiles SET level = $2, exp = $3, hp = $4, updated_at = NOW()
		 WHERE user_id = $1`, userUUID, level, exp, hp)
	if err != nil {
		return fmt.Errorf("failed to update profile progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

// AddGoldEarned credits the monotonic earned counter.
func (t *HunterTx) AddGoldEarned(ctx context.Context, userID string, gold int) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}

	tag, err := t.tx.Exec(ctx,
		`UPDATE hunter_profiles SET gold_earned = gold_earned + $2, updated_at = NOW()
		 WHERE user_id = $1`, userUUID, gold)
	if err != nil {
		return fmt.Errorf("failed to add gold: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

// UpdateStreak writes a streak tick result.
func (t *HunterTx) UpdateStreak(ctx context.Context, userID string, streakCount int, progress float64, lastActive string, history map[string]int) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}

	lastActiveDate, err := keyToDate(lastActive)
	if err != nil {
		return err
	}

	historyJSON, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to encode exp history: %w", err)
	}

	tag, err := t.tx.Exec(ctx,
		`UPDATE hunter_profiles
		 SET streak = $2, progress_percentage = $3, last_active_date = $4,
		     exp_history = $5, updated_at = NOW()
		 WHERE user_id = $1`,
		userUUID, streakCount, progress, lastActiveDate, historyJSON)
	if err != nil {
		return fmt.Errorf("failed to update streak: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

// SetCurrentPfp switches the active profile picture.
func (t *HunterTx) SetCurrentPfp(ctx context.Context, userID, url string) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}

	_, err = t.tx.Exec(ctx,
		`UPDATE hunter_profiles SET current_pfp_url = $2, updated_at = NOW()
		 WHERE user_id = $1`, userUUID, url)
	if err != nil {
		return fmt.Errorf("failed to set profile picture: %w", err)
	}
	return nil
}

// RecordEvent appends to the audit log inside the transaction.
func (t *HunterTx) RecordEvent(ctx context.Context, event *domain.HunterEvent) error {
	return recordEvent(ctx, t.tx, event)
}

// execer covers both a pool and an open transaction for audit-log inserts.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func recordEvent(ctx context.Context, db execer, event *domain.HunterEvent) error {
	userUUID, err := parseUserUUID(event.UserID)
	if err != nil {
		return err
	}

	var payload []byte
	if event.Payload != nil {
		payload, err = json.Marshal(event.Payload)
		if err != nil {
			return fmt.Errorf("failed to encode event payload: %w", err)
		}
	}

	_, err = db.Exec(ctx,
		`INSERT INTO hunter_events (user_id, event_type, entity_id, payload)
		 VALUES ($1, $2, $3, $4)`,
		userUUID, string(event.Type), event.EntityID, payload)
	if err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}
	return nil
}
