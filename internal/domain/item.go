package domain

import "time"

// ItemType separates the two economies: shop items cost gold and are
// one-time, reward items cost HP and are repeatable.
type ItemType string

const (
	ItemTypeShop   ItemType = "shop"
	ItemTypeReward ItemType = "reward"
)

// Valid reports whether t is a known item type.
func (t ItemType) Valid() bool {
	return t == ItemTypeShop || t == ItemTypeReward
}

// ShopItem is a purchasable entry in either economy. Purchased/PurchasedAt
// only carry meaning for the shop type; a purchased shop item is never
// un-purchased by the engine.
type ShopItem struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	ItemType      ItemType   `json:"item_type"`
	Name          string     `json:"name"`
	Price         int        `json:"price"`
	RequiredLevel int        `json:"required_level"`
	Purchased     bool       `json:"purchased"`
	PurchasedAt   *time.Time `json:"purchased_at,omitempty"`
	ImageURL      *string    `json:"image_url,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
