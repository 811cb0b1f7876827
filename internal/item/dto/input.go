package dto

type CreateItemInput struct {
	CategoryID int64
	Label      string
	Value      *string // nil stores ""
}

// UpdateItemInput changes only the non-nil fields. The parent category is
// fixed at creation.
type UpdateItemInput struct {
	ID        int64
	Label     *string
	Value     *string
	SortOrder *int64
}
