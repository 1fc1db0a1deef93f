package mocks

import (
	context "context"

	entity "sensorhub/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"

	usecase "sensorhub/internal/usecase"
)

// MockDeviceUsecase is a testify mock of DeviceUsecase
type MockDeviceUsecase struct {
	mock.Mock
}

type MockDeviceUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockDeviceUsecase) EXPECT() *MockDeviceUsecase_Expecter {
	return &MockDeviceUsecase_Expecter{mock: &_m.Mock}
}

// List provides a mock function with given fields: ctx
func (_m *MockDeviceUsecase) List(ctx context.Context) ([]*entity.Device, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []*entity.Device
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.Device, error)); ok {
		return rf(ctx)
	}

	if rf, ok := ret.Get(0).(func(context.Context) []*entity.Device); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Device)
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockDeviceUsecase_List_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'List'
type MockDeviceUsecase_List_Call struct {
	*mock.Call
}

// List is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockDeviceUsecase_Expecter) List(ctx interface{}) *MockDeviceUsecase_List_Call {
	return &MockDeviceUsecase_List_Call{Call: _e.mock.On("List", ctx)}
}

func (_c *MockDeviceUsecase_List_Call) Run(run func(ctx context.Context)) *MockDeviceUsecase_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockDeviceUsecase_List_Call) Return(_a0 []*entity.Device, _a1 error) *MockDeviceUsecase_List_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockDeviceUsecase_List_Call) RunAndReturn(run func(context.Context) ([]*entity.Device, error)) *MockDeviceUsecase_List_Call {
	_c.Call.Return(run)
	return _c
}

// Provision provides a mock function with given fields: ctx, credential
func (_m *MockDeviceUsecase) Provision(ctx context.Context, credential *usecase.DeviceCredential) (*entity.Device, bool, error) {
	ret := _m.Called(ctx, credential)

	if len(ret) == 0 {
		panic("no return value specified for Provision")
	}

	var r0 *entity.Device
	var r1 bool
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.DeviceCredential) (*entity.Device, bool, error)); ok {
		return rf(ctx, credential)
	}

	if rf, ok := ret.Get(0).(func(context.Context, *usecase.DeviceCredential) *entity.Device); ok {
		r0 = rf(ctx, credential)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Device)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *usecase.DeviceCredential) bool); ok {
		r1 = rf(ctx, credential)
	} else {
		r1 = ret.Get(1).(bool)
	}

	if rf, ok := ret.Get(2).(func(context.Context, *usecase.DeviceCredential) error); ok {
		r2 = rf(ctx, credential)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MockDeviceUsecase_Provision_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Provision'
type MockDeviceUsecase_Provision_Call struct {
	*mock.Call
}

// Provision is a helper method to define mock.On call
//   - ctx context.Context
//   - credential *usecase.DeviceCredential
func (_e *MockDeviceUsecase_Expecter) Provision(ctx interface{}, credential interface{}) *MockDeviceUsecase_Provision_Call {
	return &MockDeviceUsecase_Provision_Call{Call: _e.mock.On("Provision", ctx, credential)}
}

func (_c *MockDeviceUsecase_Provision_Call) Run(run func(ctx context.Context, credential *usecase.DeviceCredential)) *MockDeviceUsecase_Provision_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.DeviceCredential))
	})
	return _c
}

func (_c *MockDeviceUsecase_Provision_Call) Return(_a0 *entity.Device, _a1 bool, _a2 error) *MockDeviceUsecase_Provision_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockDeviceUsecase_Provision_Call) RunAndReturn(run func(context.Context, *usecase.DeviceCredential) (*entity.Device, bool, error)) *MockDeviceUsecase_Provision_Call {
	_c.Call.Return(run)
	return _c
}

// Seed provides a mock function with given fields: ctx, credentials
func (_m *MockDeviceUsecase) Seed(ctx context.Context, credentials []usecase.DeviceCredential) error {
	ret := _m.Called(ctx, credentials)

	if len(ret) == 0 {
		panic("no return value specified for Seed")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []usecase.DeviceCredential) error); ok {
		r0 = rf(ctx, credentials)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockDeviceUsecase_Seed_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Seed'
type MockDeviceUsecase_Seed_Call struct {
	*mock.Call
}

// Seed is a helper method to define mock.On call
//   - ctx context.Context
//   - credentials []usecase.DeviceCredential
func (_e *MockDeviceUsecase_Expecter) Seed(ctx interface{}, credentials interface{}) *MockDeviceUsecase_Seed_Call {
	return &MockDeviceUsecase_Seed_Call{Call: _e.mock.On("Seed", ctx, credentials)}
}

func (_c *MockDeviceUsecase_Seed_Call) Run(run func(ctx context.Context, credentials []usecase.DeviceCredential)) *MockDeviceUsecase_Seed_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]usecase.DeviceCredential))
	})
	return _c
}

func (_c *MockDeviceUsecase_Seed_Call) Return(_a0 error) *MockDeviceUsecase_Seed_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockDeviceUsecase_Seed_Call) RunAndReturn(run func(context.Context, []usecase.DeviceCredential) error) *MockDeviceUsecase_Seed_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockDeviceUsecase creates a new instance of MockDeviceUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockDeviceUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDeviceUsecase {
	mock := &MockDeviceUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
