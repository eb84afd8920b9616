package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"los/internal/cache"
	"los/internal/errors"
	"los/internal/model"
	"los/internal/repository"
	"los/internal/storage"
)

const (
	userCacheTTL       = 5 * time.Minute
	invalidateAttempts = 3
)

// DocumentKind identifies one of the KYC uploads a user can attach.
// Its value is the stored file name prefix.
type DocumentKind string

const (
	DocumentAadhar      DocumentKind = "aadhar"
	DocumentPAN         DocumentKind = "pan"
	DocumentIncomeProof DocumentKind = "income_proof"
)

// Upload is a file attached to a create request.
type Upload struct {
	Kind     DocumentKind
	Filename string
	Content  io.Reader
}

// UserService exposes domain operations.
type UserService interface {
	CreateUser(ctx context.Context, user *model.User, uploads []Upload) (*model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id uint, patch *model.UserPatch) (*model.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type userService struct {
	repo     repository.UserRepository
	sink     storage.Sink
	cache    *cache.Client
	validate *validator.Validate
	log      *zap.Logger
}

// NewUserService builds a UserService with repository, file sink and cache.
// cache may be nil.
func NewUserService(repo repository.UserRepository, sink storage.Sink, cache *cache.Client, log *zap.Logger) UserService {
	if log == nil {
		log = zap.NewNop()
	}
	return &userService{
		repo:     repo,
		sink:     sink,
		cache:    cache,
		validate: validator.New(),
		log:      log,
	}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) versionKey(id uint) string {
	return fmt.Sprintf("user:%d:version", id)
}

// invalidate drops the cached user and bumps its version. Failures are
// retried, then logged; the write that triggered it has already committed.
func (s *userService) invalidate(ctx context.Context, id uint) {
	var err error
	for attempt := 1; attempt <= invalidateAttempts; attempt++ {
		if err = s.cache.Invalidate(ctx, s.cacheKey(id), s.versionKey(id)); err == nil {
			return
		}
		s.log.Warn("cache invalidation attempt failed",
			zap.Uint("user_id", id), zap.Int("attempt", attempt), zap.Error(err))
	}
	s.log.Error("cache invalidation failed", zap.Uint("user_id", id), zap.Error(err))
}

// CreateUser checks required fields, stores the uploads and persists the user.
// Nothing is written when a required field is missing.
func (s *userService) CreateUser(ctx context.Context, user *model.User, uploads []Upload) (*model.User, error) {
	if err := s.validateRequired(user); err != nil {
		return nil, err
	}

	for _, up := range uploads {
		if up.Content == nil || up.Filename == "" {
			continue
		}
		path, err := s.sink.Save(ctx, up.Content, storage.GenerateName(string(up.Kind), up.Filename))
		if err != nil {
			s.log.Error("store upload failed", zap.String("kind", string(up.Kind)), zap.Error(err))
			return nil, fmt.Errorf("store %s document: %w", up.Kind, err)
		}
		switch up.Kind {
		case DocumentAadhar:
			user.AadharUploadDoc = &path
		case DocumentPAN:
			user.PANUploadDoc = &path
		case DocumentIncomeProof:
			user.IncomeProofDoc = &path
		default:
			return nil, fmt.Errorf("unknown document kind %q", up.Kind)
		}
	}

	user.UserID = 0
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.invalidate(ctx, user.UserID)

	s.log.Info("user created", zap.Uint("user_id", user.UserID))
	return user, nil
}

func (s *userService) validateRequired(user *model.User) error {
	err := s.validate.Struct(user)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return fmt.Errorf("validate user: %w", err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return errors.NewMissingFieldsError(fields...)
}

// GetUser reads through the cache. The version is sampled before the row so
// an update or delete that lands in between turns the store into a no-op.
func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	key, versionKey := s.cacheKey(id), s.versionKey(id)

	var cached model.User
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}
	version, versionErr := s.cache.Version(ctx, versionKey)

	user, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if versionErr == nil {
		if _, err := s.cache.SetJSONIfVersion(ctx, key, versionKey, version, user, userCacheTTL); err != nil {
			s.log.Debug("cache store skipped", zap.Uint("user_id", id), zap.Error(err))
		}
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// UpdateUser applies patch to the stored user. Values are written as given.
func (s *userService) UpdateUser(ctx context.Context, id uint, patch *model.UserPatch) (*model.User, error) {
	user, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch != nil {
		patch.Apply(user)
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	s.invalidate(ctx, id)
	return user, nil
}

// DeleteUser removes the user permanently. Uploaded documents stay on disk.
func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	user, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, user); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	s.invalidate(ctx, id)

	s.log.Info("user deleted", zap.Uint("user_id", id))
	return nil
}

func (s *userService) find(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return user, nil
}
