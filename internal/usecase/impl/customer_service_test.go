package impl

import (
	"context"
	"testing"
	"time"

	"travelhub/internal/domain/entity"
	domainerrors "travelhub/internal/domain/errors"
	"travelhub/internal/domain/repository"
	mockRepo "travelhub/internal/mocks/repository"
	mockSvc "travelhub/internal/mocks/service"
	"travelhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// customerServiceFixtures holds all test dependencies for customer service tests.
type customerServiceFixtures struct {
	service      usecase.CustomerUsecase
	txManager    *mockRepo.MockTransactionManager
	customerRepo *mockRepo.MockRepository[entity.Customer]
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestCustomerService(t *testing.T) customerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	customerRepo := mockRepo.NewMockRepository[entity.Customer](t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	srv := NewCustomerService(CustomerServiceParams{
		TxManager:    txManager,
		CustomerRepo: customerRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	}).(*customerService)
	srv.now = func() time.Time { return fixedNow }

	return customerServiceFixtures{
		service:      srv,
		txManager:    txManager,
		customerRepo: customerRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// expectRegistrationTx wires a transaction whose factory serves txCustomerRepo.
func expectRegistrationTx(t *testing.T, fx customerServiceFixtures, ctx context.Context) *mockRepo.MockRepository[entity.Customer] {
	txCustomerRepo := mockRepo.NewMockRepository[entity.Customer](t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CustomerRepo().Return(txCustomerRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(runInTx(factory))

	return txCustomerRepo
}

func TestCustomerService_Register_Success(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{Name: "Ann", Email: "ann@x.io", Password: "pw1"}

	txRepo := expectRegistrationTx(t, fx, ctx)
	txRepo.EXPECT().Find(ctx, repository.Eq("email", input.Email)).Return(nil, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_pw1", nil)
	txRepo.EXPECT().
		Add(ctx, mock.MatchedBy(func(c *entity.Customer) bool {
			return c.Name == "Ann" && c.Email == "ann@x.io" && c.PasswordHash == "hashed_pw1" && c.CreatedAt.Equal(fixedNow)
		})).
		Run(func(_ context.Context, c *entity.Customer) { c.ID = 1 }).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, &usecase.RegisterOutput{Success: true, Message: "Registration successful"}, output)
}

func TestCustomerService_Register_EmailAlreadyExists(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{Name: "Bob", Email: "ann@x.io", Password: "other"}

	txRepo := expectRegistrationTx(t, fx, ctx)
	txRepo.EXPECT().
		Find(ctx, repository.Eq("email", input.Email)).
		Return([]*entity.Customer{{ID: 1, Email: "ann@x.io"}}, nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.False(t, output.Success)
	assert.Equal(t, "Email already exists", output.Message)
}

func TestCustomerService_Register_UniqueIndexViolation(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{Name: "Ann", Email: "ann@x.io", Password: "pw1"}

	txRepo := expectRegistrationTx(t, fx, ctx)
	txRepo.EXPECT().Find(ctx, repository.Eq("email", input.Email)).Return(nil, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_pw1", nil)
	txRepo.EXPECT().
		Add(ctx, mock.AnythingOfType("*entity.Customer")).
		Return(domainerrors.ErrDuplicateEntry.WrapMessage("insert customer"))

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, &usecase.RegisterOutput{Success: false, Message: "Email already exists"}, output)
}

func TestCustomerService_Register_HashFailure(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{Name: "Ann", Email: "ann@x.io", Password: "pw1"}

	txRepo := expectRegistrationTx(t, fx, ctx)
	txRepo.EXPECT().Find(ctx, repository.Eq("email", input.Email)).Return(nil, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("entropy exhausted"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestCustomerService_Register_LookupFailure(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{Name: "Ann", Email: "ann@x.io", Password: "pw1"}
	dbErr := errors.New("connection reset")

	txRepo := expectRegistrationTx(t, fx, ctx)
	txRepo.EXPECT().Find(ctx, repository.Eq("email", input.Email)).Return(nil, dbErr)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, dbErr)
}

func TestCustomerService_Authenticate_Success(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()
	customer := &entity.Customer{ID: 7, Email: "ann@x.io", PasswordHash: "hashed_pw1"}

	fx.customerRepo.EXPECT().Find(ctx, repository.Eq("email", "ann@x.io")).Return([]*entity.Customer{customer}, nil)
	fx.hasher.EXPECT().Check("pw1", "hashed_pw1").Return(true)
	fx.tokenService.EXPECT().IssueToken(int64(7), "ann@x.io").Return("signed.jwt.token", nil)

	output, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{Email: "ann@x.io", Password: "pw1"})

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.Equal(t, "Authentication successful", output.Message)
	assert.Equal(t, "signed.jwt.token", output.Token)
}

func TestCustomerService_Authenticate_FailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()

	unknown := createTestCustomerService(t)
	unknown.customerRepo.EXPECT().Find(ctx, repository.Eq("email", "nobody@x.io")).Return([]*entity.Customer{}, nil)

	unknownOutput, err := unknown.service.Authenticate(ctx, &usecase.AuthenticateInput{Email: "nobody@x.io", Password: "pw1"})
	require.NoError(t, err)

	wrongPassword := createTestCustomerService(t)
	wrongPassword.customerRepo.EXPECT().
		Find(ctx, repository.Eq("email", "ann@x.io")).
		Return([]*entity.Customer{{ID: 7, Email: "ann@x.io", PasswordHash: "hashed_pw1"}}, nil)
	wrongPassword.hasher.EXPECT().Check("nope", "hashed_pw1").Return(false)

	wrongOutput, err := wrongPassword.service.Authenticate(ctx, &usecase.AuthenticateInput{Email: "ann@x.io", Password: "nope"})
	require.NoError(t, err)

	assert.Equal(t, &usecase.AuthenticateOutput{Success: false, Message: "Invalid email or password"}, unknownOutput)
	assert.Equal(t, unknownOutput, wrongOutput)
}

func TestCustomerService_Authenticate_TokenIssuanceFailure(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()

	fx.customerRepo.EXPECT().
		Find(ctx, repository.Eq("email", "ann@x.io")).
		Return([]*entity.Customer{{ID: 7, Email: "ann@x.io", PasswordHash: "hashed_pw1"}}, nil)
	fx.hasher.EXPECT().Check("pw1", "hashed_pw1").Return(true)
	fx.tokenService.EXPECT().
		IssueToken(int64(7), "ann@x.io").
		Return("", domainerrors.ErrConfiguration.WrapMessage("jwt secret key is empty"))

	output, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{Email: "ann@x.io", Password: "pw1"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrConfiguration)
}
