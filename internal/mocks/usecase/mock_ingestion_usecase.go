package mocks

import (
	context "context"

	entity "sensorhub/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"

	usecase "sensorhub/internal/usecase"
)

// MockIngestionUsecase is a testify mock of IngestionUsecase
type MockIngestionUsecase struct {
	mock.Mock
}

type MockIngestionUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockIngestionUsecase) EXPECT() *MockIngestionUsecase_Expecter {
	return &MockIngestionUsecase_Expecter{mock: &_m.Mock}
}

// Ingest provides a mock function with given fields: ctx, req
func (_m *MockIngestionUsecase) Ingest(ctx context.Context, req *usecase.IngestRequest) (*entity.Reading, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Ingest")
	}

	var r0 *entity.Reading
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.IngestRequest) (*entity.Reading, error)); ok {
		return rf(ctx, req)
	}

	if rf, ok := ret.Get(0).(func(context.Context, *usecase.IngestRequest) *entity.Reading); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Reading)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *usecase.IngestRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockIngestionUsecase_Ingest_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Ingest'
type MockIngestionUsecase_Ingest_Call struct {
	*mock.Call
}

// Ingest is a helper method to define mock.On call
//   - ctx context.Context
//   - req *usecase.IngestRequest
func (_e *MockIngestionUsecase_Expecter) Ingest(ctx interface{}, req interface{}) *MockIngestionUsecase_Ingest_Call {
	return &MockIngestionUsecase_Ingest_Call{Call: _e.mock.On("Ingest", ctx, req)}
}

func (_c *MockIngestionUsecase_Ingest_Call) Run(run func(ctx context.Context, req *usecase.IngestRequest)) *MockIngestionUsecase_Ingest_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.IngestRequest))
	})
	return _c
}

func (_c *MockIngestionUsecase_Ingest_Call) Return(_a0 *entity.Reading, _a1 error) *MockIngestionUsecase_Ingest_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockIngestionUsecase_Ingest_Call) RunAndReturn(run func(context.Context, *usecase.IngestRequest) (*entity.Reading, error)) *MockIngestionUsecase_Ingest_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockIngestionUsecase creates a new instance of MockIngestionUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockIngestionUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIngestionUsecase {
	mock := &MockIngestionUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
