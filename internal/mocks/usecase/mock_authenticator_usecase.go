package mocks

import (
	context "context"

	entity "sensorhub/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockAuthenticatorUsecase is a testify mock of AuthenticatorUsecase
type MockAuthenticatorUsecase struct {
	mock.Mock
}

type MockAuthenticatorUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAuthenticatorUsecase) EXPECT() *MockAuthenticatorUsecase_Expecter {
	return &MockAuthenticatorUsecase_Expecter{mock: &_m.Mock}
}

// Authenticate provides a mock function with given fields: ctx, deviceID, secret
func (_m *MockAuthenticatorUsecase) Authenticate(ctx context.Context, deviceID string, secret string) (*entity.Device, error) {
	ret := _m.Called(ctx, deviceID, secret)

	if len(ret) == 0 {
		panic("no return value specified for Authenticate")
	}

	var r0 *entity.Device
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (*entity.Device, error)); ok {
		return rf(ctx, deviceID, secret)
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, string) *entity.Device); ok {
		r0 = rf(ctx, deviceID, secret)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Device)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, deviceID, secret)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAuthenticatorUsecase_Authenticate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Authenticate'
type MockAuthenticatorUsecase_Authenticate_Call struct {
	*mock.Call
}

// Authenticate is a helper method to define mock.On call
//   - ctx context.Context
//   - deviceID string
//   - secret string
func (_e *MockAuthenticatorUsecase_Expecter) Authenticate(ctx interface{}, deviceID interface{}, secret interface{}) *MockAuthenticatorUsecase_Authenticate_Call {
	return &MockAuthenticatorUsecase_Authenticate_Call{Call: _e.mock.On("Authenticate", ctx, deviceID, secret)}
}

func (_c *MockAuthenticatorUsecase_Authenticate_Call) Run(run func(ctx context.Context, deviceID string, secret string)) *MockAuthenticatorUsecase_Authenticate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockAuthenticatorUsecase_Authenticate_Call) Return(_a0 *entity.Device, _a1 error) *MockAuthenticatorUsecase_Authenticate_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAuthenticatorUsecase_Authenticate_Call) RunAndReturn(run func(context.Context, string, string) (*entity.Device, error)) *MockAuthenticatorUsecase_Authenticate_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockAuthenticatorUsecase creates a new instance of MockAuthenticatorUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAuthenticatorUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthenticatorUsecase {
	mock := &MockAuthenticatorUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
