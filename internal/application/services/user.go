package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"user-registry-api/internal/application/ports"
	"user-registry-api/internal/application/validation"
	"user-registry-api/internal/domain/errs"
	domain "user-registry-api/internal/domain/user"
	"user-registry-api/internal/infrastructure/metrics"
	"user-registry-api/internal/infrastructure/mq"
	"user-registry-api/internal/interface/api/rest/dto/user"
)

type UserService struct {
	userRepository domain.Repository
	validator      *validation.UserValidator
	events         ports.EventPublisher
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	validator *validation.UserValidator,
	events ports.EventPublisher,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		validator:      validator,
		events:         events,
		mCounter:       mCounter,
	}
}

func (us *UserService) FindUserByID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, notFound(uuid)
	}

	return u, nil
}

func (us *UserService) FindUsers(ctx context.Context) (domain.Users, error) {
	users, err := us.userRepository.FetchUsers(ctx)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (us *UserService) FindUsersByBirthDateRange(ctx context.Context, r *domain.DateRange) (domain.Users, error) {
	if err := validation.ValidateDateRange(r); err != nil {
		return nil, err
	}

	users, err := us.userRepository.FetchUsersByBirthDate(ctx, *r.From, *r.To)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (us *UserService) CreateUser(ctx context.Context, u *domain.User) (*domain.User, error) {
	if err := us.validator.Full(u); err != nil {
		return nil, err
	}

	exists, err := us.userRepository.ExistsByEmail(ctx, u.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		us.mCounter.WithLabelValues(metrics.UserConflict).Inc()
		return nil, errs.Duplicate(fmt.Sprintf("User with email %s already exists", u.Email))
	}

	uRet, err := us.userRepository.CreateUser(ctx, *u)
	if err != nil {
		return nil, us.storeError(err, fmt.Sprintf("User with email %s already exists", u.Email))
	}

	us.publish(ctx, http.MethodPost, uRet)
	us.mCounter.WithLabelValues(metrics.UserCreated).Inc()

	return uRet, nil
}

// UpdateUser replaces the mandatory fields of the stored user. Address and
// phone are only replaced when supplied.
func (us *UserService) UpdateUser(ctx context.Context, uuid domain.UUID, u *domain.User) (*domain.User, error) {
	if err := us.validator.Full(u); err != nil {
		return nil, err
	}

	existing, err := us.FindUserByID(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if err = us.checkEmailChange(ctx, existing.Email, u.Email); err != nil {
		return nil, err
	}

	existing.Email = u.Email
	existing.FirstName = u.FirstName
	existing.LastName = u.LastName
	existing.BirthDate = u.BirthDate
	if u.Address != nil {
		existing.Address = u.Address
	}
	if u.Phone != nil {
		existing.Phone = u.Phone
	}

	uRet, err := us.save(ctx, *existing)
	if err != nil {
		return nil, err
	}

	us.publish(ctx, http.MethodPut, uRet)
	us.mCounter.WithLabelValues(metrics.UserUpdated).Inc()

	return uRet, nil
}

func (us *UserService) PatchUser(ctx context.Context, uuid domain.UUID, p *domain.Patch) (*domain.User, error) {
	if err := us.validator.Partial(p); err != nil {
		return nil, err
	}

	existing, err := us.FindUserByID(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if p.Email != nil {
		if err = us.checkEmailChange(ctx, existing.Email, *p.Email); err != nil {
			return nil, err
		}
	}

	existing.Apply(*p)

	uRet, err := us.save(ctx, *existing)
	if err != nil {
		return nil, err
	}

	us.publish(ctx, http.MethodPatch, uRet)
	us.mCounter.WithLabelValues(metrics.UserPatched).Inc()

	return uRet, nil
}

func (us *UserService) DeleteUser(ctx context.Context, uuid domain.UUID) error {
	if _, err := us.FindUserByID(ctx, uuid); err != nil {
		return err
	}

	u, err := us.userRepository.DeleteUser(ctx, uuid)
	if err != nil {
		return err
	}
	if u == nil {
		// deleted by someone else between the lookup and the delete
		return notFound(uuid)
	}

	us.publish(ctx, http.MethodDelete, u)
	us.mCounter.WithLabelValues(metrics.UserDeleted).Inc()

	return nil
}

// checkEmailChange fails with Duplicate when the email changes to one already in use.
func (us *UserService) checkEmailChange(ctx context.Context, current, next string) error {
	if current == next {
		return nil
	}

	exists, err := us.userRepository.ExistsByEmail(ctx, next)
	if err != nil {
		return err
	}
	if exists {
		us.mCounter.WithLabelValues(metrics.UserConflict).Inc()
		return errs.Duplicate(fmt.Sprintf("Email %s already occupied", next))
	}

	return nil
}

func (us *UserService) save(ctx context.Context, u domain.User) (*domain.User, error) {
	uRet, err := us.userRepository.UpdateUser(ctx, u)
	if err != nil {
		return nil, us.storeError(err, fmt.Sprintf("Email %s already occupied", u.Email))
	}
	if uRet == nil {
		return nil, notFound(u.UUID)
	}

	return uRet, nil
}

// storeError turns a unique violation that slipped past ExistsByEmail into Duplicate.
func (us *UserService) storeError(err error, msg string) error {
	if errors.Is(err, domain.ErrEmailAlreadyExists) {
		us.mCounter.WithLabelValues(metrics.UserConflict).Inc()
		return errs.Duplicate(msg)
	}
	return err
}

func (us *UserService) publish(ctx context.Context, method string, u *domain.User) {
	us.events.Publish(ctx, mq.NewEvent(method, user.ToResponseUser(*u)))
}

func notFound(uuid domain.UUID) error {
	return errs.NotFound(fmt.Sprintf("User with id %s not found", uuid))
}
