package dtos

// ListRequest carries the shared pagination and filter arguments of every
// list query. Filter is matched case-insensitively against the entity's
// text columns.
type ListRequest struct {
	Filter string `json:"filter" validate:"omitempty,max=200"`
	Limit  int    `json:"limit" validate:"min=1,max=100"`
	Offset int    `json:"offset" validate:"min=0"`
}

// DeleteRequest carries the id plus the version the caller read. A stale
// version is rejected instead of silently overwriting.
type DeleteRequest struct {
	ID      string `json:"id" validate:"required,uuid"`
	Version int64  `json:"version" validate:"required,min=1"`
}
