package domain

// CategoryType distinguishes expense from income categories.
type CategoryType string

const (
	CategoryExpense CategoryType = "expense"
	CategoryIncome  CategoryType = "income"
)

// Valid reports whether t is a known category type.
func (t CategoryType) Valid() bool {
	return t == CategoryExpense || t == CategoryIncome
}

// Category is a shared family spending or income bucket. Categories may
// nest one level via ParentID.
type Category struct {
	ID        string       `json:"id"`
	ParentID  *string      `json:"parentId,omitempty"`
	Name      string       `json:"name"`
	Type      CategoryType `json:"type"`
	Icon      string       `json:"icon,omitempty"`
	SortOrder int          `json:"sortOrder"`
}

// CreateCategoryRequest adds a new category.
type CreateCategoryRequest struct {
	ParentID  *string      `json:"parentId,omitempty"`
	Name      string       `json:"name"`
	Type      CategoryType `json:"type"`
	Icon      string       `json:"icon,omitempty"`
	SortOrder int          `json:"sortOrder"`
}

// Validate checks the creation payload.
func (r CreateCategoryRequest) Validate() error {
	if len(r.Name) < 2 {
		return ErrValidation("category name must be at least 2 characters")
	}
	if !r.Type.Valid() {
		return ErrValidation("unknown category type %q", r.Type)
	}
	return nil
}

// UpdateCategoryRequest carries optional category field updates.
type UpdateCategoryRequest struct {
	Name      *string `json:"name,omitempty"`
	Icon      *string `json:"icon,omitempty"`
	SortOrder *int    `json:"sortOrder,omitempty"`
}
