package models

import "github.com/shopspring/decimal"

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type CreatePostRequest struct {
	Title           string  `json:"title" validate:"required,max=255"`
	Content         string  `json:"content" validate:"required"`
	Excerpt         *string `json:"excerpt"`
	MetaDescription *string `json:"meta_description" validate:"omitempty,max=160"`
	Keywords        *string `json:"keywords"`
	Author          *string `json:"author" validate:"omitempty,max=100"`
	FeaturedImage   *string `json:"featured_image" validate:"omitempty,max=500"`
	Status          string  `json:"status" validate:"omitempty,oneof=draft published"`
}

// UpdatePostRequest is a partial update; nil fields are left untouched.
type UpdatePostRequest struct {
	Title           *string `json:"title" validate:"omitempty,min=1,max=255"`
	Content         *string `json:"content"`
	Excerpt         *string `json:"excerpt"`
	MetaDescription *string `json:"meta_description" validate:"omitempty,max=160"`
	Keywords        *string `json:"keywords"`
	FeaturedImage   *string `json:"featured_image" validate:"omitempty,max=500"`
	Status          *string `json:"status" validate:"omitempty,oneof=draft published"`
}

// CreateCommentRequest accepts the author as author_name or name.
type CreateCommentRequest struct {
	AuthorName string `json:"author_name" validate:"max=100"`
	Name       string `json:"name" validate:"max=100"`
	Content    string `json:"content" validate:"required,max=5000"`
}

// AddManualCostRequest takes month as YYYY-MM or YYYY-MM-DD; empty means
// the current month.
type AddManualCostRequest struct {
	CostType string           `json:"cost_type" validate:"required,oneof=marketing personnel ads legal other"`
	Amount   *decimal.Decimal `json:"amount" validate:"required"`
	Month    string           `json:"month"`
	Notes    *string          `json:"notes" validate:"omitempty,max=1000"`
}

type ProcessDeletionRequest struct {
	PatientCode string `json:"patient_code" validate:"required"`
}
