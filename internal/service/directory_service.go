package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/admin-console/internal/config"
	"github.com/spec-kit/admin-console/internal/directory"
	"github.com/spec-kit/admin-console/internal/domain"
	"github.com/spec-kit/admin-console/internal/events"
	"github.com/spec-kit/admin-console/internal/repository"
	apperrors "github.com/spec-kit/admin-console/pkg/util/errorutil"
)

// DirectoryService manages directory members and answers listing queries.
type DirectoryService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	latency    time.Duration
	now        func() time.Time
}

// DirectoryDependencies encapsulates collaborators of the directory service.
type DirectoryDependencies struct {
	Users      repository.UserRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewDirectoryService builds the service.
func NewDirectoryService(cfg config.DirectoryConfig, deps DirectoryDependencies) *DirectoryService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirectoryService{
		users:      deps.Users,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		latency:    cfg.Latency(),
		now:        time.Now,
	}
}

// ListUsersQuery bundles the filter, ordering and page of a listing.
type ListUsersQuery struct {
	Filter directory.Filter
	Sort   directory.Sort
	Page   directory.PageRequest
}

// UserInput carries the fields of a new directory member.
type UserInput struct {
	Name       string
	Email      string
	Role       domain.Role
	Status     domain.UserStatus
	Department *string
	Avatar     *string
	LastLogin  *time.Time
}

// UserPatch carries a partial update; nil fields are left untouched. An
// empty Department or Avatar clears the value.
type UserPatch struct {
	Name       *string
	Email      *string
	Role       *domain.Role
	Status     *domain.UserStatus
	Department *string
	Avatar     *string
	LastLogin  *time.Time
}

// ListUsers runs the directory query over a consistent snapshot.
func (s *DirectoryService) ListUsers(ctx context.Context, q ListUsersQuery) (directory.PageResult, error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return directory.PageResult{}, err
	}
	snapshot, err := s.users.List(ctx)
	if err != nil {
		return directory.PageResult{}, err
	}
	return directory.Query(snapshot, q.Filter, q.Sort, q.Page), nil
}

// GetUser returns a single member.
func (s *DirectoryService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, mapUserError(err, id)
	}
	return user, nil
}

// Departments lists the departments currently in use.
func (s *DirectoryService) Departments(ctx context.Context) ([]string, error) {
	snapshot, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	return directory.Departments(snapshot), nil
}

// CreateUser validates and stores a new member.
func (s *DirectoryService) CreateUser(ctx context.Context, actorID string, input UserInput) (*domain.User, error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:       strings.TrimSpace(input.Name),
		Email:      strings.TrimSpace(input.Email),
		Role:       input.Role,
		Status:     input.Status,
		Department: normalizeOptional(input.Department),
		Avatar:     normalizeOptional(input.Avatar),
		LastLogin:  input.LastLogin,
	}
	if user.Status == "" {
		user.Status = domain.UserStatusActive
	}
	if err := validateUser(user); err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, mapUserError(err, "")
	}

	s.publish(ctx, events.EventUserCreated, user.ID, actorID, events.UserCreatedPayload{
		Email:  user.Email,
		Role:   user.Role,
		Status: user.Status,
	})
	return user, nil
}

// UpdateUser applies patch to the member identified by id. A rejected patch
// leaves the stored member unchanged.
func (s *DirectoryService) UpdateUser(ctx context.Context, actorID, id string, patch UserPatch) (*domain.User, error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, mapUserError(err, id)
	}

	changed := applyPatch(user, patch)
	if err := validateUser(user); err != nil {
		return nil, err
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, mapUserError(err, id)
	}

	s.publish(ctx, events.EventUserUpdated, user.ID, actorID, events.UserUpdatedPayload{Fields: changed})
	return user, nil
}

// DeleteUser removes the member identified by id.
func (s *DirectoryService) DeleteUser(ctx context.Context, actorID, id string) error {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return mapUserError(err, id)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return mapUserError(err, id)
	}

	s.publish(ctx, events.EventUserDeleted, id, actorID, events.UserDeletedPayload{Email: user.Email})
	return nil
}

func (s *DirectoryService) publish(ctx context.Context, eventType events.EventType, subjectID, actorID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		ActorID:   actorID,
		Timestamp: s.now().UTC(),
		Payload:   payload,
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event_type", string(eventType)), zap.Error(err))
	}
}

func applyPatch(user *domain.User, patch UserPatch) []string {
	var changed []string
	if patch.Name != nil {
		user.Name = strings.TrimSpace(*patch.Name)
		changed = append(changed, "name")
	}
	if patch.Email != nil {
		user.Email = strings.TrimSpace(*patch.Email)
		changed = append(changed, "email")
	}
	if patch.Role != nil {
		user.Role = *patch.Role
		changed = append(changed, "role")
	}
	if patch.Status != nil {
		user.Status = *patch.Status
		changed = append(changed, "status")
	}
	if patch.Department != nil {
		user.Department = normalizeOptional(patch.Department)
		changed = append(changed, "department")
	}
	if patch.Avatar != nil {
		user.Avatar = normalizeOptional(patch.Avatar)
		changed = append(changed, "avatar")
	}
	if patch.LastLogin != nil {
		last := patch.LastLogin.UTC()
		user.LastLogin = &last
		changed = append(changed, "lastLogin")
	}
	return changed
}

func validateUser(user *domain.User) error {
	details := map[string]any{}
	if user.Name == "" {
		details["name"] = "required"
	}
	if user.Email == "" {
		details["email"] = "required"
	} else if !validEmail(user.Email) {
		details["email"] = "invalid email address"
	}
	if !user.Role.Valid() {
		details["role"] = "must be admin or user"
	}
	if !user.Status.Valid() {
		details["status"] = "must be active or inactive"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid user", details)
	}
	return nil
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func normalizeOptional(val *string) *string {
	if val == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*val)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func mapUserError(err error, id string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		details := map[string]any{}
		if id != "" {
			details["id"] = id
		}
		return apperrors.NewNotFound("user", details)
	case errors.Is(err, repository.ErrDuplicateEmail):
		return apperrors.NewConflict("email already in use", nil)
	}
	return err
}
