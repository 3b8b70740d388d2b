package domain

// Partial-update structs. A nil field means "leave unchanged"; pointers carry
// the new value. Clearing a nullable reference is an explicit flag, never an
// implication of omission.

// QuestUpdate edits quest metadata. Changing the difficulty does not
// re-resolve frozen rewards; callers pass new reward values explicitly.
type QuestUpdate struct {
	Title            *string
	Description      *string
	Difficulty       *Difficulty
	QuestType        *string
	ExpReward        *int
	HPReward         *int
	StatusCategoryID *string
	ClearCategory    bool
}

// BattleUpdate edits boss battle metadata.
type BattleUpdate struct {
	Name             *string
	Difficulty       *Difficulty
	Gold             *int
	StatusCategoryID *string
	ClearCategory    bool
}

// GoalUpdate edits goal metadata.
type GoalUpdate struct {
	Title       *string
	Description *string
	ExpReward   *int
}

// ShopItemUpdate edits item metadata. The purchased flag is not editable
// through this path.
type ShopItemUpdate struct {
	Name          *string
	Price         *int
	RequiredLevel *int
	ImageURL      *string
}

// BadgeUpdate edits badge metadata. Setting Criteria to a non-nil value
// replaces the rule; ClearCriteria turns the badge manual-only.
type BadgeUpdate struct {
	Name          *string
	Description   *string
	Criteria      *BadgeCriteria
	ClearCriteria bool
	ImageURL      *string
}

// ProfileUpdate edits display fields on the hunter profile. Resource fields
// (level, exp, hp, gold) are engine-owned and not reachable here.
type ProfileUpdate struct {
	Name          *string
	CurrentPfpURL *string
	Pfp1URL       *string
	Pfp2URL       *string
	Pfp3URL       *string
}
