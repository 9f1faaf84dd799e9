package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-console/internal/api/dto"
	"github.com/spec-kit/admin-console/internal/auth"
	"github.com/spec-kit/admin-console/internal/directory"
	"github.com/spec-kit/admin-console/internal/observability"
	"github.com/spec-kit/admin-console/internal/service"
	apperrors "github.com/spec-kit/admin-console/pkg/util/errorutil"
)

// UsersHandler exposes the user directory.
type UsersHandler struct {
	service     *service.DirectoryService
	metrics     *observability.Metrics
	maxPageSize int
}

// NewUsersHandler constructs handler. maxPageSize caps the limit parameter;
// zero disables the cap.
func NewUsersHandler(directoryService *service.DirectoryService, metrics *observability.Metrics, maxPageSize int) *UsersHandler {
	return &UsersHandler{service: directoryService, metrics: metrics, maxPageSize: maxPageSize}
}

// ListUsers GET /users.
func (h *UsersHandler) ListUsers(c *fiber.Ctx) error {
	query, err := h.parseListQuery(c)
	if err != nil {
		return err
	}
	res, err := h.service.ListUsers(c.UserContext(), query)
	if err != nil {
		return err
	}
	h.metrics.RecordDirectoryQuery(string(query.Sort.Field), res.Total)
	return c.JSON(dto.NewUserListResponse(res))
}

// Departments GET /users/departments.
func (h *UsersHandler) Departments(c *fiber.Ctx) error {
	depts, err := h.service.Departments(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": depts})
}

// GetUser GET /users/:id.
func (h *UsersHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.service.GetUser(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(*user)})
}

// CreateUser POST /users.
func (h *UsersHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	user, err := h.service.CreateUser(c.UserContext(), actorID(c), service.UserInput{
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Status:     req.Status,
		Department: req.Department,
		Avatar:     req.Avatar,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewUserResponse(*user)})
}

// UpdateUser PATCH /users/:id.
func (h *UsersHandler) UpdateUser(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	user, err := h.service.UpdateUser(c.UserContext(), actorID(c), c.Params("id"), service.UserPatch{
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Status:     req.Status,
		Department: req.Department,
		Avatar:     req.Avatar,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(*user)})
}

// DeleteUser DELETE /users/:id.
func (h *UsersHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.service.DeleteUser(c.UserContext(), actorID(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *UsersHandler) parseListQuery(c *fiber.Ctx) (service.ListUsersQuery, error) {
	role, err := directory.ParseRoleFilter(c.Query("role"))
	if err != nil {
		return service.ListUsersQuery{}, err
	}
	status, err := directory.ParseStatusFilter(c.Query("status"))
	if err != nil {
		return service.ListUsersQuery{}, err
	}
	field, err := directory.ParseSortField(c.Query("sort_by"))
	if err != nil {
		return service.ListUsersQuery{}, err
	}
	direction, err := directory.ParseSortDirection(c.Query("sort_order"))
	if err != nil {
		return service.ListUsersQuery{}, err
	}

	limit := parseInt(c.Query("limit"))
	if h.maxPageSize > 0 && limit > h.maxPageSize {
		limit = h.maxPageSize
	}

	return service.ListUsersQuery{
		Filter: directory.Filter{
			Search:     c.Query("search"),
			Role:       role,
			Status:     status,
			Department: c.Query("department"),
		},
		Sort: directory.Sort{Field: field, Direction: direction},
		Page: directory.PageRequest{Page: parseInt(c.Query("page")), Limit: limit},
	}, nil
}

// parseInt returns zero for missing or malformed input so the page request
// falls back to its defaults.
func parseInt(val string) int {
	if val == "" {
		return 0
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return parsed
}

func actorID(c *fiber.Ctx) string {
	if principal, ok := auth.PrincipalFromContext(c); ok {
		return principal.Account.ID
	}
	return ""
}
