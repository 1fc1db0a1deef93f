package mocks

import (
	context "context"

	entity "sensorhub/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"

	repository "sensorhub/internal/domain/repository"
)

// MockReadingRepository is a testify mock of ReadingRepository
type MockReadingRepository struct {
	mock.Mock
}

type MockReadingRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockReadingRepository) EXPECT() *MockReadingRepository_Expecter {
	return &MockReadingRepository_Expecter{mock: &_m.Mock}
}

// Append provides a mock function with given fields: ctx, reading
func (_m *MockReadingRepository) Append(ctx context.Context, reading *entity.Reading) (uint64, error) {
	ret := _m.Called(ctx, reading)

	if len(ret) == 0 {
		panic("no return value specified for Append")
	}

	var r0 uint64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Reading) (uint64, error)); ok {
		return rf(ctx, reading)
	}

	if rf, ok := ret.Get(0).(func(context.Context, *entity.Reading) uint64); ok {
		r0 = rf(ctx, reading)
	} else {
		r0 = ret.Get(0).(uint64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *entity.Reading) error); ok {
		r1 = rf(ctx, reading)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockReadingRepository_Append_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Append'
type MockReadingRepository_Append_Call struct {
	*mock.Call
}

// Append is a helper method to define mock.On call
//   - ctx context.Context
//   - reading *entity.Reading
func (_e *MockReadingRepository_Expecter) Append(ctx interface{}, reading interface{}) *MockReadingRepository_Append_Call {
	return &MockReadingRepository_Append_Call{Call: _e.mock.On("Append", ctx, reading)}
}

func (_c *MockReadingRepository_Append_Call) Run(run func(ctx context.Context, reading *entity.Reading)) *MockReadingRepository_Append_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Reading))
	})
	return _c
}

func (_c *MockReadingRepository_Append_Call) Return(_a0 uint64, _a1 error) *MockReadingRepository_Append_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockReadingRepository_Append_Call) RunAndReturn(run func(context.Context, *entity.Reading) (uint64, error)) *MockReadingRepository_Append_Call {
	_c.Call.Return(run)
	return _c
}

// Each provides a mock function with given fields: ctx, query, fn
func (_m *MockReadingRepository) Each(ctx context.Context, query repository.RangeQuery, fn func(*entity.Reading) error) error {
	ret := _m.Called(ctx, query, fn)

	if len(ret) == 0 {
		panic("no return value specified for Each")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, repository.RangeQuery, func(*entity.Reading) error) error); ok {
		r0 = rf(ctx, query, fn)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockReadingRepository_Each_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Each'
type MockReadingRepository_Each_Call struct {
	*mock.Call
}

// Each is a helper method to define mock.On call
//   - ctx context.Context
//   - query repository.RangeQuery
//   - fn func(*entity.Reading) error
func (_e *MockReadingRepository_Expecter) Each(ctx interface{}, query interface{}, fn interface{}) *MockReadingRepository_Each_Call {
	return &MockReadingRepository_Each_Call{Call: _e.mock.On("Each", ctx, query, fn)}
}

func (_c *MockReadingRepository_Each_Call) Run(run func(ctx context.Context, query repository.RangeQuery, fn func(*entity.Reading) error)) *MockReadingRepository_Each_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(repository.RangeQuery), args[2].(func(*entity.Reading) error))
	})
	return _c
}

func (_c *MockReadingRepository_Each_Call) Return(_a0 error) *MockReadingRepository_Each_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockReadingRepository_Each_Call) RunAndReturn(run func(context.Context, repository.RangeQuery, func(*entity.Reading) error) error) *MockReadingRepository_Each_Call {
	_c.Call.Return(run)
	return _c
}

// HasReadings provides a mock function with given fields: ctx, deviceID
func (_m *MockReadingRepository) HasReadings(ctx context.Context, deviceID string) (bool, error) {
	ret := _m.Called(ctx, deviceID)

	if len(ret) == 0 {
		panic("no return value specified for HasReadings")
	}

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (bool, error)); ok {
		return rf(ctx, deviceID)
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) bool); ok {
		r0 = rf(ctx, deviceID)
	} else {
		r0 = ret.Get(0).(bool)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, deviceID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockReadingRepository_HasReadings_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'HasReadings'
type MockReadingRepository_HasReadings_Call struct {
	*mock.Call
}

// HasReadings is a helper method to define mock.On call
//   - ctx context.Context
//   - deviceID string
func (_e *MockReadingRepository_Expecter) HasReadings(ctx interface{}, deviceID interface{}) *MockReadingRepository_HasReadings_Call {
	return &MockReadingRepository_HasReadings_Call{Call: _e.mock.On("HasReadings", ctx, deviceID)}
}

func (_c *MockReadingRepository_HasReadings_Call) Run(run func(ctx context.Context, deviceID string)) *MockReadingRepository_HasReadings_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockReadingRepository_HasReadings_Call) Return(_a0 bool, _a1 error) *MockReadingRepository_HasReadings_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockReadingRepository_HasReadings_Call) RunAndReturn(run func(context.Context, string) (bool, error)) *MockReadingRepository_HasReadings_Call {
	_c.Call.Return(run)
	return _c
}

// Latest provides a mock function with given fields: ctx, deviceID
func (_m *MockReadingRepository) Latest(ctx context.Context, deviceID string) (*entity.Reading, error) {
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

// MockReadingRepository_Latest_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Latest'
type MockReadingRepository_Latest_Call struct {
	*mock.Call
}

// Latest is a helper method to define mock.On call
//   - ctx context.Context
//   - deviceID string
func (_e *MockReadingRepository_Expecter) Latest(ctx interface{}, deviceID interface{}) *MockReadingRepository_Latest_Call {
	return &MockReadingRepository_Latest_Call{Call: _e.mock.On("Latest", ctx, deviceID)}
}

func (_c *MockReadingRepository_Latest_Call) Run(run func(ctx context.Context, deviceID string)) *MockReadingRepository_Latest_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockReadingRepository_Latest_Call) Return(_a0 *entity.Reading, _a1 error) *MockReadingRepository_Latest_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockReadingRepository_Latest_Call) RunAndReturn(run func(context.Context, string) (*entity.Reading, error)) *MockReadingRepository_Latest_Call {
	_c.Call.Return(run)
	return _c
}

// ListDevices provides a mock function with given fields: ctx
func (_m *MockReadingRepository) ListDevices(ctx context.Context) ([]string, error) {
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

// MockReadingRepository_ListDevices_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListDevices'
type MockReadingRepository_ListDevices_Call struct {
	*mock.Call
}

// ListDevices is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockReadingRepository_Expecter) ListDevices(ctx interface{}) *MockReadingRepository_ListDevices_Call {
	return &MockReadingRepository_ListDevices_Call{Call: _e.mock.On("ListDevices", ctx)}
}

func (_c *MockReadingRepository_ListDevices_Call) Run(run func(ctx context.Context)) *MockReadingRepository_ListDevices_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockReadingRepository_ListDevices_Call) Return(_a0 []string, _a1 error) *MockReadingRepository_ListDevices_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockReadingRepository_ListDevices_Call) RunAndReturn(run func(context.Context) ([]string, error)) *MockReadingRepository_ListDevices_Call {
	_c.Call.Return(run)
	return _c
}

// Range provides a mock function with given fields: ctx, query
func (_m *MockReadingRepository) Range(ctx context.Context, query repository.RangeQuery) ([]*entity.Reading, error) {
	ret := _m.Called(ctx, query)

	if len(ret) == 0 {
		panic("no return value specified for Range")
	}

	var r0 []*entity.Reading
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, repository.RangeQuery) ([]*entity.Reading, error)); ok {
		return rf(ctx, query)
	}

	if rf, ok := ret.Get(0).(func(context.Context, repository.RangeQuery) []*entity.Reading); ok {
		r0 = rf(ctx, query)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Reading)
	}

	if rf, ok := ret.Get(1).(func(context.Context, repository.RangeQuery) error); ok {
		r1 = rf(ctx, query)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockReadingRepository_Range_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Range'
type MockReadingRepository_Range_Call struct {
	*mock.Call
}

// Range is a helper method to define mock.On call
//   - ctx context.Context
//   - query repository.RangeQuery
func (_e *MockReadingRepository_Expecter) Range(ctx interface{}, query interface{}) *MockReadingRepository_Range_Call {
	return &MockReadingRepository_Range_Call{Call: _e.mock.On("Range", ctx, query)}
}

func (_c *MockReadingRepository_Range_Call) Run(run func(ctx context.Context, query repository.RangeQuery)) *MockReadingRepository_Range_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(repository.RangeQuery))
	})
	return _c
}

func (_c *MockReadingRepository_Range_Call) Return(_a0 []*entity.Reading, _a1 error) *MockReadingRepository_Range_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockReadingRepository_Range_Call) RunAndReturn(run func(context.Context, repository.RangeQuery) ([]*entity.Reading, error)) *MockReadingRepository_Range_Call {
	_c.Call.Return(run)
	return _c
}

// Snapshot provides a mock function with given fields: ctx, fn
func (_m *MockReadingRepository) Snapshot(ctx context.Context, fn func(repository.ReadingReader) error) error {
	ret := _m.Called(ctx, fn)

	if len(ret) == 0 {
		panic("no return value specified for Snapshot")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, func(repository.ReadingReader) error) error); ok {
		r0 = rf(ctx, fn)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockReadingRepository_Snapshot_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Snapshot'
type MockReadingRepository_Snapshot_Call struct {
	*mock.Call
}

// Snapshot is a helper method to define mock.On call
//   - ctx context.Context
//   - fn func(repository.ReadingReader) error
func (_e *MockReadingRepository_Expecter) Snapshot(ctx interface{}, fn interface{}) *MockReadingRepository_Snapshot_Call {
	return &MockReadingRepository_Snapshot_Call{Call: _e.mock.On("Snapshot", ctx, fn)}
}

func (_c *MockReadingRepository_Snapshot_Call) Run(run func(ctx context.Context, fn func(repository.ReadingReader) error)) *MockReadingRepository_Snapshot_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(func(repository.ReadingReader) error))
	})
	return _c
}

func (_c *MockReadingRepository_Snapshot_Call) Return(_a0 error) *MockReadingRepository_Snapshot_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockReadingRepository_Snapshot_Call) RunAndReturn(run func(context.Context, func(repository.ReadingReader) error) error) *MockReadingRepository_Snapshot_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockReadingRepository creates a new instance of MockReadingRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockReadingRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReadingRepository {
	mock := &MockReadingRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
