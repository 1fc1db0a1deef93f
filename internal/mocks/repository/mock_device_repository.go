package mocks

import (
	context "context"

	entity "sensorhub/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"

	time "time"
)

// MockDeviceRepository is a testify mock of DeviceRepository
type MockDeviceRepository struct {
	mock.Mock
}

type MockDeviceRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockDeviceRepository) EXPECT() *MockDeviceRepository_Expecter {
	return &MockDeviceRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, device
func (_m *MockDeviceRepository) Create(ctx context.Context, device *entity.Device) error {
	ret := _m.Called(ctx, device)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Device) error); ok {
		r0 = rf(ctx, device)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockDeviceRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockDeviceRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - device *entity.Device
func (_e *MockDeviceRepository_Expecter) Create(ctx interface{}, device interface{}) *MockDeviceRepository_Create_Call {
	return &MockDeviceRepository_Create_Call{Call: _e.mock.On("Create", ctx, device)}
}

func (_c *MockDeviceRepository_Create_Call) Run(run func(ctx context.Context, device *entity.Device)) *MockDeviceRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Device))
	})
	return _c
}

func (_c *MockDeviceRepository_Create_Call) Return(_a0 error) *MockDeviceRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockDeviceRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Device) error) *MockDeviceRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// FindByID provides a mock function with given fields: ctx, deviceID
func (_m *MockDeviceRepository) FindByID(ctx context.Context, deviceID string) (*entity.Device, error) {
	ret := _m.Called(ctx, deviceID)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *entity.Device
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.Device, error)); ok {
		return rf(ctx, deviceID)
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.Device); ok {
		r0 = rf(ctx, deviceID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Device)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, deviceID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockDeviceRepository_FindByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByID'
type MockDeviceRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID is a helper method to define mock.On call
//   - ctx context.Context
//   - deviceID string
func (_e *MockDeviceRepository_Expecter) FindByID(ctx interface{}, deviceID interface{}) *MockDeviceRepository_FindByID_Call {
	return &MockDeviceRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, deviceID)}
}

func (_c *MockDeviceRepository_FindByID_Call) Run(run func(ctx context.Context, deviceID string)) *MockDeviceRepository_FindByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockDeviceRepository_FindByID_Call) Return(_a0 *entity.Device, _a1 error) *MockDeviceRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockDeviceRepository_FindByID_Call) RunAndReturn(run func(context.Context, string) (*entity.Device, error)) *MockDeviceRepository_FindByID_Call {
	_c.Call.Return(run)
	return _c
}

// List provides a mock function with given fields: ctx
func (_m *MockDeviceRepository) List(ctx context.Context) ([]*entity.Device, error) {
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

// MockDeviceRepository_List_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'List'
type MockDeviceRepository_List_Call struct {
	*mock.Call
}

// List is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockDeviceRepository_Expecter) List(ctx interface{}) *MockDeviceRepository_List_Call {
	return &MockDeviceRepository_List_Call{Call: _e.mock.On("List", ctx)}
}

func (_c *MockDeviceRepository_List_Call) Run(run func(ctx context.Context)) *MockDeviceRepository_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockDeviceRepository_List_Call) Return(_a0 []*entity.Device, _a1 error) *MockDeviceRepository_List_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockDeviceRepository_List_Call) RunAndReturn(run func(context.Context) ([]*entity.Device, error)) *MockDeviceRepository_List_Call {
	_c.Call.Return(run)
	return _c
}

// TouchLastSeen provides a mock function with given fields: ctx, deviceID, at
func (_m *MockDeviceRepository) TouchLastSeen(ctx context.Context, deviceID string, at time.Time) error {
	ret := _m.Called(ctx, deviceID, at)

	if len(ret) == 0 {
		panic("no return value specified for TouchLastSeen")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, time.Time) error); ok {
		r0 = rf(ctx, deviceID, at)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockDeviceRepository_TouchLastSeen_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'TouchLastSeen'
type MockDeviceRepository_TouchLastSeen_Call struct {
	*mock.Call
}

// TouchLastSeen is a helper method to define mock.On call
//   - ctx context.Context
//   - deviceID string
//   - at time.Time
func (_e *MockDeviceRepository_Expecter) TouchLastSeen(ctx interface{}, deviceID interface{}, at interface{}) *MockDeviceRepository_TouchLastSeen_Call {
	return &MockDeviceRepository_TouchLastSeen_Call{Call: _e.mock.On("TouchLastSeen", ctx, deviceID, at)}
}

func (_c *MockDeviceRepository_TouchLastSeen_Call) Run(run func(ctx context.Context, deviceID string, at time.Time)) *MockDeviceRepository_TouchLastSeen_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(time.Time))
	})
	return _c
}

func (_c *MockDeviceRepository_TouchLastSeen_Call) Return(_a0 error) *MockDeviceRepository_TouchLastSeen_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockDeviceRepository_TouchLastSeen_Call) RunAndReturn(run func(context.Context, string, time.Time) error) *MockDeviceRepository_TouchLastSeen_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateSecret provides a mock function with given fields: ctx, deviceID, secretHash
func (_m *MockDeviceRepository) UpdateSecret(ctx context.Context, deviceID string, secretHash string) error {
	ret := _m.Called(ctx, deviceID, secretHash)

	if len(ret) == 0 {
		panic("no return value specified for UpdateSecret")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) error); ok {
		r0 = rf(ctx, deviceID, secretHash)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockDeviceRepository_UpdateSecret_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateSecret'
type MockDeviceRepository_UpdateSecret_Call struct {
	*mock.Call
}

// UpdateSecret is a helper method to define mock.On call
//   - ctx context.Context
//   - deviceID string
//   - secretHash string
func (_e *MockDeviceRepository_Expecter) UpdateSecret(ctx interface{}, deviceID interface{}, secretHash interface{}) *MockDeviceRepository_UpdateSecret_Call {
	return &MockDeviceRepository_UpdateSecret_Call{Call: _e.mock.On("UpdateSecret", ctx, deviceID, secretHash)}
}

func (_c *MockDeviceRepository_UpdateSecret_Call) Run(run func(ctx context.Context, deviceID string, secretHash string)) *MockDeviceRepository_UpdateSecret_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockDeviceRepository_UpdateSecret_Call) Return(_a0 error) *MockDeviceRepository_UpdateSecret_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockDeviceRepository_UpdateSecret_Call) RunAndReturn(run func(context.Context, string, string) error) *MockDeviceRepository_UpdateSecret_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockDeviceRepository creates a new instance of MockDeviceRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockDeviceRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDeviceRepository {
	mock := &MockDeviceRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
