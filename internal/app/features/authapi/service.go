// internal/app/features/authapi/service.go
package authapi

import (
	"context"
	"errors"
	"time"

	activitystore "github.com/toolgate/toolgate/internal/app/store/activity"
	userstore "github.com/toolgate/toolgate/internal/app/store/users"
	"github.com/toolgate/toolgate/internal/app/system/authutil"
	"github.com/toolgate/toolgate/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	// ErrDuplicateEmail is returned by Register when the email is taken.
	ErrDuplicateEmail = errors.New("an account with this email already exists")

	// ErrAccountNotFound is returned when no account matches the email.
	// Login and forgot-password surface it to the client, which reveals
	// whether an email is registered. That matches the product behavior:
	// users are told to register first rather than guessing.
	ErrAccountNotFound = errors.New("no account with this email")

	// ErrInvalidCredentials is returned by Login when the account exists
	// but the password does not match.
	ErrInvalidCredentials = errors.New("incorrect password")
)

// Service implements registration, login/logout, and password recovery
// over the account and activity stores.
type Service struct {
	users    *userstore.Store
	activity *activitystore.Store
	logger   *zap.Logger
}

func NewService(users *userstore.Store, activity *activitystore.Store, logger *zap.Logger) *Service {
	return &Service{
		users:    users,
		activity: activity,
		logger:   logger,
	}
}

// Register validates the password, hashes it, and creates the account.
// Returns *authutil.WeakPasswordError or ErrDuplicateEmail on rejection.
func (s *Service) Register(ctx context.Context, email, fullName, password string) (models.Account, error) {
	if err := authutil.ValidatePassword(password); err != nil {
		return models.Account{}, err
	}

	hash, err := authutil.HashPassword(password)
	if err != nil {
		return models.Account{}, err
	}

	account, err := s.users.Create(ctx, models.Account{
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			return models.Account{}, ErrDuplicateEmail
		}
		return models.Account{}, err
	}

	s.logger.Info("account registered",
		zap.String("account_id", account.ID.Hex()),
		zap.String("email", account.Email))
	return account, nil
}

// Login verifies the credentials and opens an activity record. The
// returned activity ID goes into the session cookie so logout can close
// exactly the record this login opened.
//
// An unknown email returns ErrAccountNotFound; a wrong password returns
// ErrInvalidCredentials. The two cases are deliberately distinguishable.
func (s *Service) Login(ctx context.Context, email, password, ip string) (models.Account, primitive.ObjectID, error) {
	account, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Account{}, primitive.NilObjectID, ErrAccountNotFound
		}
		return models.Account{}, primitive.NilObjectID, err
	}

	if !authutil.CheckPassword(password, account.PasswordHash) {
		return models.Account{}, primitive.NilObjectID, ErrInvalidCredentials
	}

	activityID, err := s.activity.Open(ctx, account.ID, ip)
	if err != nil {
		return models.Account{}, primitive.NilObjectID, err
	}

	s.logger.Info("login",
		zap.String("account_id", account.ID.Hex()),
		zap.String("activity_id", activityID.Hex()),
		zap.String("ip", ip))
	return *account, activityID, nil
}

// Logout closes the activity record the session points at. A record that
// is already closed (or missing) is logged and ignored; logout always
// succeeds from the caller's point of view.
func (s *Service) Logout(ctx context.Context, activityID primitive.ObjectID) error {
	if activityID.IsZero() {
		return nil
	}
	if err := s.activity.Close(ctx, activityID, time.Now()); err != nil {
		if errors.Is(err, activitystore.ErrNotOpen) {
			s.logger.Info("logout for already-closed activity record",
				zap.String("activity_id", activityID.Hex()))
			return nil
		}
		return err
	}
	return nil
}

// ForgotPassword checks that an account exists for the email. The reset
// flow is a two-step form: this step confirms the account before the
// client shows the new-password form.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	_, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrAccountNotFound
	}
	return err
}

// ResetPassword validates and stores a new password for the account.
// Existing sessions stay valid; the cookie proves a past login, not the
// current password.
func (s *Service) ResetPassword(ctx context.Context, email, newPassword string) error {
	account, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrAccountNotFound
		}
		return err
	}

	if err := authutil.ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := authutil.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.users.UpdateHash(ctx, account.ID, hash); err != nil {
		return err
	}

	s.logger.Info("password reset",
		zap.String("account_id", account.ID.Hex()))
	return nil
}
