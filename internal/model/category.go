package model

type Category struct {
	BaseModel
	Name      string `json:"name"`
	SortOrder int64  `json:"sort_order"`
}
