package mocks

import (
	context "context"

	entity "sensorhub/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"

	usecase "sensorhub/internal/usecase"
)

// MockQueryUsecase is a testify mock of QueryUsecase
type MockQueryUsecase struct {
	mock.Mock
}

type MockQueryUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQueryUsecase) EXPECT() *MockQueryUsecase_Expecter {
	return &MockQueryUsecase_Expecter{mock: &_m.Mock}
}

// Latest provides a mock function with given fields: ctx, deviceID
func (_m *MockQueryUsecase) Latest(ctx context.Context, deviceID string) (*entity.Reading, error) {
	ret := _m.Called(ctx, deviceID)

	if len(ret) == 0 {
		panic("no return value specified for Latest")
	}

	var r0 *entity.Reading
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.Reading, error)); ok {
		return rf(ctx, deviceID)
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.Reading); ok {
		r0 = rf(ctx, deviceID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Reading)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, deviceID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockQueryUsecase_Latest_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Latest'
type MockQueryUsecase_Latest_Call struct {
	*mock.Call
}

// Latest is a helper method to define mock.On call
//   - ctx context.Context
//   - deviceID string
func (_e *MockQueryUsecase_Expecter) Latest(ctx interface{}, deviceID interface{}) *MockQueryUsecase_Latest_Call {
	return &MockQueryUsecase_Latest_Call{Call: _e.mock.On("Latest", ctx, deviceID)}
}

func (_c *MockQueryUsecase_Latest_Call) Run(run func(ctx context.Context, deviceID string)) *MockQueryUsecase_Latest_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockQueryUsecase_Latest_Call) Return(_a0 *entity.Reading, _a1 error) *MockQueryUsecase_Latest_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockQueryUsecase_Latest_Call) RunAndReturn(run func(context.Context, string) (*entity.Reading, error)) *MockQueryUsecase_Latest_Call {
	_c.Call.Return(run)
	return _c
}

// ListDevices provides a mock function with given fields: ctx
func (_m *MockQueryUsecase) ListDevices(ctx context.Context) ([]string, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListDevices")
	}

	var r0 []string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]string, error)); ok {
		return rf(ctx)
	}

	if rf, ok := ret.Get(0).(func(context.Context) []string); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockQueryUsecase_ListDevices_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListDevices'
type MockQueryUsecase_ListDevices_Call struct {
	*mock.Call
}

// ListDevices is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockQueryUsecase_Expecter) ListDevices(ctx interface{}) *MockQueryUsecase_ListDevices_Call {
	return &MockQueryUsecase_ListDevices_Call{Call: _e.mock.On("ListDevices", ctx)}
}

func (_c *MockQueryUsecase_ListDevices_Call) Run(run func(ctx context.Context)) *MockQueryUsecase_ListDevices_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockQueryUsecase_ListDevices_Call) Return(_a0 []string, _a1 error) *MockQueryUsecase_ListDevices_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockQueryUsecase_ListDevices_Call) RunAndReturn(run func(context.Context) ([]string, error)) *MockQueryUsecase_ListDevices_Call {
	_c.Call.Return(run)
	return _c
}

// Range provides a mock function with given fields: ctx, input
func (_m *MockQueryUsecase) Range(ctx context.Context, input *usecase.RangeInput) ([]*entity.Reading, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for Range")
	}

	var r0 []*entity.Reading
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.RangeInput) ([]*entity.Reading, error)); ok {
		return rf(ctx, input)
	}

	if rf, ok := ret.Get(0).(func(context.Context, *usecase.RangeInput) []*entity.Reading); ok {
		r0 = rf(ctx, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Reading)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *usecase.RangeInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockQueryUsecase_Range_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Range'
type MockQueryUsecase_Range_Call struct {
	*mock.Call
}

// Range is a helper method to define mock.On call
//   - ctx context.Context
//   - input *usecase.RangeInput
func (_e *MockQueryUsecase_Expecter) Range(ctx interface{}, input interface{}) *MockQueryUsecase_Range_Call {
	return &MockQueryUsecase_Range_Call{Call: _e.mock.On("Range", ctx, input)}
}

func (_c *MockQueryUsecase_Range_Call) Run(run func(ctx context.Context, input *usecase.RangeInput)) *MockQueryUsecase_Range_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.RangeInput))
	})
	return _c
}

func (_c *MockQueryUsecase_Range_Call) Return(_a0 []*entity.Reading, _a1 error) *MockQueryUsecase_Range_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockQueryUsecase_Range_Call) RunAndReturn(run func(context.Context, *usecase.RangeInput) ([]*entity.Reading, error)) *MockQueryUsecase_Range_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockQueryUsecase creates a new instance of MockQueryUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockQueryUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQueryUsecase {
	mock := &MockQueryUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
