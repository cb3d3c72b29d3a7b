package models

// RoleType defines the account role
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleAdmin   RoleType = "admin"
)

// IsValid reports whether the role is one of the known roles.
func (r RoleType) IsValid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// ApplicationStatus defines the review state of an application
type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "pending"
	StatusUnderReview ApplicationStatus = "under-review"
	StatusApproved    ApplicationStatus = "approved"
	StatusRejected    ApplicationStatus = "rejected"
)

// IsValid reports whether the status is one of the known states.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsDecision reports whether the status is a final admin decision.
// Admin notes are only attached alongside a decision.
func (s ApplicationStatus) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

// Category is a closed enumeration of scholarship categories with an
// explicit escape hatch for anything that does not fit the known three.
type Category string

const (
	CategoryMerit         Category = "Merit-based"
	CategoryNeed          Category = "Need-based"
	CategoryFieldSpecific Category = "Field-specific"
	CategoryOther         Category = "Other"
)

// Categories lists every known category in display order.
func Categories() []Category {
	return []Category{CategoryMerit, CategoryNeed, CategoryFieldSpecific, CategoryOther}
}

// IsValid reports whether the category is one of the known values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryMerit, CategoryNeed, CategoryFieldSpecific, CategoryOther:
		return true
	}
	return false
}
