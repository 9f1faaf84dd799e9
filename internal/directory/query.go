// Package directory implements the read side of the user directory: it
// filters, orders and pages a snapshot of users without touching the store.
package directory

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/spec-kit/admin-console/internal/domain"
)

// Filter holds the conjunctive predicates applied before sorting. Zero values
// impose no constraint.
type Filter struct {
	Search     string
	Role       domain.Role
	Status     domain.UserStatus
	Department string
}

// Active reports whether any predicate is set.
func (f Filter) Active() bool {
	return f.Search != "" || f.Role != "" || f.Status != "" || f.Department != ""
}

// Matches reports whether u satisfies every active predicate.
func (f Filter) Matches(u domain.User) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(u.Name), needle) &&
			!strings.Contains(strings.ToLower(u.Email), needle) &&
			(u.Department == nil || !strings.Contains(strings.ToLower(*u.Department), needle)) {
			return false
		}
	}
	if f.Role != "" && u.Role != f.Role {
		return false
	}
	if f.Status != "" && u.Status != f.Status {
		return false
	}
	if f.Department != "" && u.DepartmentName() != f.Department {
		return false
	}
	return true
}

// PageResult is one page of matching users plus the pre-pagination total.
type PageResult struct {
	Users []domain.User
	Total int
	Page  int
	Limit int
}

// TotalPages returns ceil(Total / Limit).
func (r PageResult) TotalPages() int {
	if r.Limit <= 0 || r.Total <= 0 {
		return 0
	}
	return (r.Total-1)/r.Limit + 1
}

// Query runs filter, then a stable locale-aware sort, then pagination over
// records. records is never modified and the returned users are copies.
func Query(records []domain.User, filter Filter, order Sort, page PageRequest) PageResult {
	order = order.normalize()
	page = page.normalize()

	var matched []domain.User
	if filter.Active() {
		matched = make([]domain.User, 0, len(records))
		for _, u := range records {
			if filter.Matches(u) {
				matched = append(matched, u)
			}
		}
	} else {
		matched = slices.Clone(records)
	}

	col := collate.New(language.English)
	key := order.Field.accessor()
	slices.SortStableFunc(matched, func(a, b domain.User) int {
		cmp := col.CompareString(key(a), key(b))
		if order.Direction == SortDesc {
			return -cmp
		}
		return cmp
	})

	total := len(matched)
	result := PageResult{Users: []domain.User{}, Total: total, Page: page.Page, Limit: page.Limit}

	// Decided by division so huge page numbers cannot overflow the offset.
	if total == 0 || page.Page-1 > (total-1)/page.Limit {
		return result
	}
	start := page.Offset()
	end := start + min(page.Limit, total-start)

	result.Users = make([]domain.User, 0, end-start)
	for _, u := range matched[start:end] {
		result.Users = append(result.Users, u.Clone())
	}
	return result
}

// Departments lists distinct non-empty departments in first-seen order.
func Departments(records []domain.User) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, u := range records {
		dept := u.DepartmentName()
		if dept == "" {
			continue
		}
		if _, ok := seen[dept]; ok {
			continue
		}
		seen[dept] = struct{}{}
		out = append(out, dept)
	}
	return out
}
