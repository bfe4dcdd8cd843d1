// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "travelhub/internal/delivery/context"
	"travelhub/internal/domain/entity"
	domainerrors "travelhub/internal/domain/errors"
	"travelhub/internal/domain/repository"
	"travelhub/internal/domain/service"
	"travelhub/internal/errors"
	"travelhub/internal/usecase"

	"go.uber.org/fx"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	txManager    repository.TransactionManager
	customerRepo repository.Repository[entity.Customer]
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CustomerRepo repository.Repository[entity.Customer]
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		txManager:    params.TxManager,
		customerRepo: params.CustomerRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a customer account when the email is not yet taken.
// The lookup and the insert share one transaction; a concurrent registration
// that slips past the lookup is caught by the unique email index.
func (srv *customerService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	var output *usecase.RegisterOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		existing, err := customerRepo.Find(ctx, repository.Eq("email", input.Email))
		if err != nil {
			return errors.Wrap(err, "failed to look up customer by email")
		}
		if len(existing) > 0 {
			output = emailTakenOutput()

			return nil
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}

		customer := &entity.Customer{
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: hash,
			CreatedAt:    srv.now(),
		}
		if err := customerRepo.Add(ctx, customer); err != nil {
			return errors.Wrap(err, "failed to add customer")
		}

		srv.log(ctx).Debug("Customer created", slog.Int64("customerID", customer.ID))
		output = &usecase.RegisterOutput{Success: true, Message: usecase.MessageRegistrationSuccessful}

		return nil
	})

	if errors.Is(err, domainerrors.ErrDuplicateEntry) {
		srv.log(ctx).Info("Registration rejected by unique email index", slog.String("email", input.Email))

		return emailTakenOutput(), nil
	}
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute customer registration transaction")
	}

	return output, nil
}

// Authenticate verifies the credentials and issues an identity token.
// An unknown email and a wrong password produce the same result.
func (srv *customerService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	customers, err := srv.customerRepo.Find(ctx, repository.Eq("email", input.Email))
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up customer by email")
	}

	if len(customers) == 0 || !srv.hasher.Check(input.Password, customers[0].PasswordHash) {
		srv.log(ctx).Info("Authentication failed", slog.String("email", input.Email))

		return &usecase.AuthenticateOutput{Message: usecase.MessageInvalidCredentials}, nil
	}

	customer := customers[0]
	token, err := srv.tokenService.IssueToken(customer.ID, customer.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Int64("customerID", customer.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.AuthenticateOutput{
		Success: true,
		Message: usecase.MessageAuthenticationSuccessful,
		Token:   token,
	}, nil
}

func emailTakenOutput() *usecase.RegisterOutput {
	return &usecase.RegisterOutput{Message: usecase.MessageEmailAlreadyExists}
}
