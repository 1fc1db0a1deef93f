package mocks

import (
	entity "sensorhub/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockReadingPublisher is a testify mock of ReadingPublisher
type MockReadingPublisher struct {
	mock.Mock
}

type MockReadingPublisher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockReadingPublisher) EXPECT() *MockReadingPublisher_Expecter {
	return &MockReadingPublisher_Expecter{mock: &_m.Mock}
}

// Publish provides a mock function with given fields: reading
func (_m *MockReadingPublisher) Publish(reading *entity.Reading) {
	_m.Called(reading)
}

// MockReadingPublisher_Publish_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Publish'
type MockReadingPublisher_Publish_Call struct {
	*mock.Call
}

// Publish is a helper method to define mock.On call
//   - reading *entity.Reading
func (_e *MockReadingPublisher_Expecter) Publish(reading interface{}) *MockReadingPublisher_Publish_Call {
	return &MockReadingPublisher_Publish_Call{Call: _e.mock.On("Publish", reading)}
}

func (_c *MockReadingPublisher_Publish_Call) Run(run func(reading *entity.Reading)) *MockReadingPublisher_Publish_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(*entity.Reading))
	})
	return _c
}

func (_c *MockReadingPublisher_Publish_Call) Return() *MockReadingPublisher_Publish_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockReadingPublisher_Publish_Call) RunAndReturn(run func(*entity.Reading)) *MockReadingPublisher_Publish_Call {
	_c.Run(run)
	return _c
}

// NewMockReadingPublisher creates a new instance of MockReadingPublisher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockReadingPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReadingPublisher {
	mock := &MockReadingPublisher{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
