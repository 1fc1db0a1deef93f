package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"sensorhub/internal/domain/entity"
	domainerrors "sensorhub/internal/domain/errors"
	"sensorhub/internal/domain/repository"
	mockRepo "sensorhub/internal/mocks/repository"
	mockService "sensorhub/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authenticatorFixtures holds all test dependencies for authenticator tests.
type authenticatorFixtures struct {
	service    *authenticatorService
	deviceRepo *mockRepo.MockDeviceRepository
	hasher     *mockService.MockSecretHasher
	now        time.Time
}

func createTestAuthenticator(t *testing.T) authenticatorFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	hasher := mockService.NewMockSecretHasher(t)
	hasher.EXPECT().Hash(dummySecret).Return("dummy-hash", nil).Once()

	srv, err := NewAuthenticatorService(AuthenticatorServiceParams{
		DeviceRepo: deviceRepo,
		Hasher:     hasher,
		Logger:     slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)

	now := time.Date(2025, 12, 5, 19, 15, 54, 0, time.UTC)
	impl := srv.(*authenticatorService)
	impl.now = func() time.Time { return now }

	return authenticatorFixtures{
		service:    impl,
		deviceRepo: deviceRepo,
		hasher:     hasher,
		now:        now,
	}
}

func TestAuthenticator_Accepts(t *testing.T) {
	fx := createTestAuthenticator(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindByID(ctx, "jetson-lab-01").
		Return(&entity.Device{DeviceID: "jetson-lab-01", SecretHash: "hash-1"}, nil)
	fx.hasher.EXPECT().Check("secret-token-1", "hash-1").Return(true)
	fx.deviceRepo.EXPECT().TouchLastSeen(ctx, "jetson-lab-01", fx.now).Return(nil)

	device, err := fx.service.Authenticate(ctx, "jetson-lab-01", "secret-token-1")
	require.NoError(t, err)
	require.NotNil(t, device.LastSeenAt)
	assert.Equal(t, fx.now, *device.LastSeenAt)
}

func TestAuthenticator_UnknownDeviceStillComparesHash(t *testing.T) {
	fx := createTestAuthenticator(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrDeviceNotFound)
	fx.hasher.EXPECT().Check("secret-token-1", "dummy-hash").Return(false).Once()

	device, err := fx.service.Authenticate(ctx, "ghost", "secret-token-1")
	assert.Nil(t, device)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownDevice)
}

func TestAuthenticator_BadCredential(t *testing.T) {
	fx := createTestAuthenticator(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindByID(ctx, "jetson-lab-01").
		Return(&entity.Device{DeviceID: "jetson-lab-01", SecretHash: "hash-1"}, nil)
	fx.hasher.EXPECT().Check("wrong", "hash-1").Return(false)

	device, err := fx.service.Authenticate(ctx, "jetson-lab-01", "wrong")
	assert.Nil(t, device)
	assert.ErrorIs(t, err, domainerrors.ErrBadCredential)
	fx.deviceRepo.AssertNotCalled(t, "TouchLastSeen", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthenticator_FailuresLookIdentical(t *testing.T) {
	fx := createTestAuthenticator(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrDeviceNotFound)
	fx.deviceRepo.EXPECT().
		FindByID(ctx, "jetson-lab-01").
		Return(&entity.Device{DeviceID: "jetson-lab-01", SecretHash: "hash-1"}, nil)
	fx.hasher.EXPECT().Check(mock.Anything, mock.Anything).Return(false)

	_, unknownErr := fx.service.Authenticate(ctx, "ghost", "x")
	_, badErr := fx.service.Authenticate(ctx, "jetson-lab-01", "x")

	var unknown, bad domainerrors.AppError
	require.True(t, errors.As(unknownErr, &unknown))
	require.True(t, errors.As(badErr, &bad))
	assert.Equal(t, unknown.HTTPCode(), bad.HTTPCode())
	assert.Equal(t, unknown.ErrorCode(), bad.ErrorCode())
	assert.Equal(t, unknown.Message(), bad.Message())
	assert.Equal(t, unknown.Error(), bad.Error())
}

func TestAuthenticator_LastSeenFailureDoesNotReject(t *testing.T) {
	fx := createTestAuthenticator(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindByID(ctx, "jetson-lab-01").
		Return(&entity.Device{DeviceID: "jetson-lab-01", SecretHash: "hash-1"}, nil)
	fx.hasher.EXPECT().Check("secret-token-1", "hash-1").Return(true)
	fx.deviceRepo.EXPECT().
		TouchLastSeen(ctx, "jetson-lab-01", fx.now).
		Return(domainerrors.NewStoreUnavailableError(errors.New("disk full"), "touch"))

	device, err := fx.service.Authenticate(ctx, "jetson-lab-01", "secret-token-1")
	require.NoError(t, err)
	assert.Nil(t, device.LastSeenAt)
}

func TestAuthenticator_StoreFailureIsNotACredentialError(t *testing.T) {
	fx := createTestAuthenticator(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindByID(ctx, "jetson-lab-01").
		Return(nil, domainerrors.NewStoreUnavailableError(errors.New("connection refused"), "find"))

	_, err := fx.service.Authenticate(ctx, "jetson-lab-01", "secret-token-1")
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, domainerrors.ErrUnknownDevice)
}

func TestNewAuthenticatorService_HashFailure(t *testing.T) {
	hasher := mockService.NewMockSecretHasher(t)
	hasher.EXPECT().Hash(dummySecret).Return("", errors.New("bad cost"))

	_, err := NewAuthenticatorService(AuthenticatorServiceParams{
		DeviceRepo: mockRepo.NewMockDeviceRepository(t),
		Hasher:     hasher,
		Logger:     slog.New(slog.DiscardHandler),
	})
	assert.ErrorContains(t, err, "dummy credential")
}
