package directory

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/admin-console/internal/domain"
	apperrors "github.com/spec-kit/admin-console/pkg/util/errorutil"
)

func TestParseSortField(t *testing.T) {
	cases := map[string]SortField{
		"":           SortByName,
		"name":       SortByName,
		"EMAIL":      SortByEmail,
		"lastLogin":  SortByLastLogin,
		"last_login": SortByLastLogin,
		"created_at": SortByCreatedAt,
		"department": SortByDepartment,
	}
	for raw, want := range cases {
		got, err := ParseSortField(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseSortField("password")
	assert.True(t, apperrors.IsValidation(err))
}

func TestParseSortDirection(t *testing.T) {
	dir, err := ParseSortDirection("")
	require.NoError(t, err)
	assert.Equal(t, SortAsc, dir)

	dir, err = ParseSortDirection("DESC")
	require.NoError(t, err)
	assert.Equal(t, SortDesc, dir)

	_, err = ParseSortDirection("sideways")
	assert.True(t, apperrors.IsValidation(err))
}

func TestParseRoleAndStatusFilters(t *testing.T) {
	for _, raw := range []string{"", "all", "ANY"} {
		role, err := ParseRoleFilter(raw)
		require.NoError(t, err)
		assert.Empty(t, role)

		status, err := ParseStatusFilter(raw)
		require.NoError(t, err)
		assert.Empty(t, status)
	}

	role, err := ParseRoleFilter("Admin")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, role)

	status, err := ParseStatusFilter("inactive")
	require.NoError(t, err)
	assert.Equal(t, domain.UserStatusInactive, status)

	_, err = ParseRoleFilter("owner")
	assert.True(t, apperrors.IsValidation(err))
	_, err = ParseStatusFilter("banned")
	assert.True(t, apperrors.IsValidation(err))
}

func TestPageRequestOffset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, PageRequest{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, 0, PageRequest{Page: -2, Limit: 5}.Offset())
	assert.Equal(t, math.MaxInt, PageRequest{Page: math.MaxInt64/10 + 2, Limit: 10}.Offset())
}

func TestFormatTimestampIsFixedWidthUTC(t *testing.T) {
	a := FormatTimestamp(time.Date(2024, 3, 1, 9, 5, 0, 0, time.UTC))
	b := FormatTimestamp(time.Date(2024, 3, 1, 9, 5, 0, 120, time.UTC))
	assert.Equal(t, len(a), len(b))
	assert.Less(t, a, b)
	assert.Equal(t, "", FormatTimestamp(time.Time{}))
}
