package mocks

import (
	context "context"

	io "io"

	mock "github.com/stretchr/testify/mock"

	usecase "sensorhub/internal/usecase"
)

// MockExportUsecase is a testify mock of ExportUsecase
type MockExportUsecase struct {
	mock.Mock
}

type MockExportUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockExportUsecase) EXPECT() *MockExportUsecase_Expecter {
	return &MockExportUsecase_Expecter{mock: &_m.Mock}
}

// ExportCSV provides a mock function with given fields: ctx, deviceID, day, open
func (_m *MockExportUsecase) ExportCSV(ctx context.Context, deviceID string, day string, open func(string) io.Writer) (*usecase.ExportResult, error) {
	ret := _m.Called(ctx, deviceID, day, open)

	if len(ret) == 0 {
		panic("no return value specified for ExportCSV")
	}

	var r0 *usecase.ExportResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, func(string) io.Writer) (*usecase.ExportResult, error)); ok {
		return rf(ctx, deviceID, day, open)
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, string, func(string) io.Writer) *usecase.ExportResult); ok {
		r0 = rf(ctx, deviceID, day, open)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.ExportResult)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, func(string) io.Writer) error); ok {
		r1 = rf(ctx, deviceID, day, open)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockExportUsecase_ExportCSV_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ExportCSV'
type MockExportUsecase_ExportCSV_Call struct {
	*mock.Call
}

// ExportCSV is a helper method to define mock.On call
//   - ctx context.Context
//   - deviceID string
//   - day string
//   - open func(string) io.Writer
func (_e *MockExportUsecase_Expecter) ExportCSV(ctx interface{}, deviceID interface{}, day interface{}, open interface{}) *MockExportUsecase_ExportCSV_Call {
	return &MockExportUsecase_ExportCSV_Call{Call: _e.mock.On("ExportCSV", ctx, deviceID, day, open)}
}

func (_c *MockExportUsecase_ExportCSV_Call) Run(run func(ctx context.Context, deviceID string, day string, open func(string) io.Writer)) *MockExportUsecase_ExportCSV_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(func(string) io.Writer))
	})
	return _c
}

func (_c *MockExportUsecase_ExportCSV_Call) Return(_a0 *usecase.ExportResult, _a1 error) *MockExportUsecase_ExportCSV_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockExportUsecase_ExportCSV_Call) RunAndReturn(run func(context.Context, string, string, func(string) io.Writer) (*usecase.ExportResult, error)) *MockExportUsecase_ExportCSV_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockExportUsecase creates a new instance of MockExportUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockExportUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockExportUsecase {
	mock := &MockExportUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
