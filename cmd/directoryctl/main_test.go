package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/admin-console/internal/repository"
	apperrors "github.com/spec-kit/admin-console/pkg/util/errorutil"
)

func seededDirectory(context.Context) (repository.UserRepository, func(), error) {
	return repository.NewMemoryUserRepository(repository.SeedUsers()), func() {}, nil
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(seededDirectory)
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestUsersListByDepartment(t *testing.T) {
	out, err := execute(t, "users", "list", "--department", "Engineering")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "David Brown")
	assert.Contains(t, lines[2], "John Doe")
	assert.Equal(t, "page 1/1, 2 matching", lines[3])
}

func TestUsersListDescendingByCreatedAt(t *testing.T) {
	out, err := execute(t, "users", "list", "--sort", "created_at", "--order", "desc", "--limit", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "Sarah Wilson")
	assert.Contains(t, lines[2], "David Brown")
	assert.Equal(t, "page 1/3, 5 matching", lines[3])
}

func TestUsersListHugeLimit(t *testing.T) {
	out, err := execute(t, "users", "list", "--page", "3", "--limit", "9223372036854775807")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "page 3/1, 5 matching", lines[1])
}

func TestUsersListRejectsUnknownSort(t *testing.T) {
	_, err := execute(t, "users", "list", "--sort", "password")
	assert.True(t, apperrors.IsValidation(err))
}

func TestUsersDepartments(t *testing.T) {
	out, err := execute(t, "users", "departments")
	require.NoError(t, err)
	assert.Equal(t, "Engineering\nMarketing\nSales\nDesign\n", out)
}
