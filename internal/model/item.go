package model

type Item struct {
	BaseModel
	CategoryID int64  `json:"category_id"`
	Label      string `json:"label"`
	Value      string `json:"value"`
	SortOrder  int64  `json:"sort_order"`
}

// ItemWithCategory is an item joined with its parent category, as shown by
// the overlay.
type ItemWithCategory struct {
	ID                int64  `json:"id"`
	CategoryID        int64  `json:"category_id"`
	Label             string `json:"label"`
	Value             string `json:"value"`
	SortOrder         int64  `json:"sort_order"`
	CategoryName      string `json:"category_name"`
	CategorySortOrder int64  `json:"category_sort_order"`
}
