package directory

import (
	"math"
	"strings"
	"time"

	"github.com/spec-kit/admin-console/internal/domain"
	apperrors "github.com/spec-kit/admin-console/pkg/util/errorutil"
)

// DefaultLimit is used when a page request carries no usable limit.
const DefaultLimit = 10

// timestampLayout is fixed width so byte order equals chronological order.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

// SortField names a sortable user attribute.
type SortField string

const (
	SortByName       SortField = "name"
	SortByEmail      SortField = "email"
	SortByRole       SortField = "role"
	SortByStatus     SortField = "status"
	SortByDepartment SortField = "department"
	SortByLastLogin  SortField = "lastLogin"
	SortByCreatedAt  SortField = "createdAt"
)

var sortAccessors = map[SortField]func(domain.User) string{
	SortByName:       func(u domain.User) string { return u.Name },
	SortByEmail:      func(u domain.User) string { return u.Email },
	SortByRole:       func(u domain.User) string { return string(u.Role) },
	SortByStatus:     func(u domain.User) string { return string(u.Status) },
	SortByDepartment: func(u domain.User) string { return u.DepartmentName() },
	SortByLastLogin: func(u domain.User) string {
		if u.LastLogin == nil {
			return ""
		}
		return FormatTimestamp(*u.LastLogin)
	},
	SortByCreatedAt: func(u domain.User) string { return FormatTimestamp(u.CreatedAt) },
}

// SortFields lists every accepted sort field.
func SortFields() []SortField {
	return []SortField{SortByName, SortByEmail, SortByRole, SortByStatus, SortByDepartment, SortByLastLogin, SortByCreatedAt}
}

func (f SortField) accessor() func(domain.User) string {
	if fn, ok := sortAccessors[f]; ok {
		return fn
	}
	return sortAccessors[SortByName]
}

// ParseSortField validates a field name. Empty input selects name.
func ParseSortField(raw string) (SortField, error) {
	if raw == "" {
		return SortByName, nil
	}
	for _, f := range SortFields() {
		if strings.EqualFold(raw, string(f)) {
			return f, nil
		}
	}
	switch strings.ToLower(raw) {
	case "last_login":
		return SortByLastLogin, nil
	case "created_at":
		return SortByCreatedAt, nil
	}
	return "", apperrors.NewValidationError("unsupported sort field", map[string]any{"sort_by": raw})
}

// SortDirection is ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection validates a direction. Empty input selects ascending.
func ParseSortDirection(raw string) (SortDirection, error) {
	switch strings.ToLower(raw) {
	case "", "asc":
		return SortAsc, nil
	case "desc":
		return SortDesc, nil
	}
	return "", apperrors.NewValidationError("unsupported sort order", map[string]any{"sort_order": raw})
}

// Sort selects the ordering of a query.
type Sort struct {
	Field     SortField
	Direction SortDirection
}

// DefaultSort orders by name ascending.
func DefaultSort() Sort {
	return Sort{Field: SortByName, Direction: SortAsc}
}

func (s Sort) normalize() Sort {
	if _, ok := sortAccessors[s.Field]; !ok {
		s.Field = SortByName
	}
	if s.Direction != SortDesc {
		s.Direction = SortAsc
	}
	return s
}

// PageRequest is a 1-based page number and a page size.
type PageRequest struct {
	Page  int
	Limit int
}

func (p PageRequest) normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	return p
}

// Offset returns the index of the first record of the page, saturating at
// math.MaxInt.
func (p PageRequest) Offset() int {
	p = p.normalize()
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// ParseRoleFilter maps "", "all" and "any" to no constraint.
func ParseRoleFilter(raw string) (domain.Role, error) {
	switch strings.ToLower(raw) {
	case "", "all", "any":
		return "", nil
	}
	role := domain.Role(strings.ToLower(raw))
	if !role.Valid() {
		return "", apperrors.NewValidationError("unsupported role", map[string]any{"role": raw})
	}
	return role, nil
}

// ParseStatusFilter maps "", "all" and "any" to no constraint.
func ParseStatusFilter(raw string) (domain.UserStatus, error) {
	switch strings.ToLower(raw) {
	case "", "all", "any":
		return "", nil
	}
	status := domain.UserStatus(strings.ToLower(raw))
	if !status.Valid() {
		return "", apperrors.NewValidationError("unsupported status", map[string]any{"status": raw})
	}
	return status, nil
}

// FormatTimestamp renders t in the comparable layout used for sorting.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timestampLayout)
}
