package dto

type CreateCategoryInput struct {
	Name string
}

// UpdateCategoryInput changes only the non-nil fields.
type UpdateCategoryInput struct {
	ID        int64
	Name      *string
	SortOrder *int64
}
