package mocks

import (
	mock "github.com/stretchr/testify/mock"
)

// MockSecretHasher is a testify mock of SecretHasher
type MockSecretHasher struct {
	mock.Mock
}

type MockSecretHasher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSecretHasher) EXPECT() *MockSecretHasher_Expecter {
	return &MockSecretHasher_Expecter{mock: &_m.Mock}
}

// Check provides a mock function with given fields: secret, hash
func (_m *MockSecretHasher) Check(secret string, hash string) bool {
	ret := _m.Called(secret, hash)

	if len(ret) == 0 {
		panic("no return value specified for Check")
	}

	var r0 bool
	if rf, ok := ret.Get(0).(func(string, string) bool); ok {
		r0 = rf(secret, hash)
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

// MockSecretHasher_Check_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Check'
type MockSecretHasher_Check_Call struct {
	*mock.Call
}

// Check is a helper method to define mock.On call
//   - secret string
//   - hash string
func (_e *MockSecretHasher_Expecter) Check(secret interface{}, hash interface{}) *MockSecretHasher_Check_Call {
	return &MockSecretHasher_Check_Call{Call: _e.mock.On("Check", secret, hash)}
}

func (_c *MockSecretHasher_Check_Call) Run(run func(secret string, hash string)) *MockSecretHasher_Check_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].(string))
	})
	return _c
}

func (_c *MockSecretHasher_Check_Call) Return(_a0 bool) *MockSecretHasher_Check_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockSecretHasher_Check_Call) RunAndReturn(run func(string, string) bool) *MockSecretHasher_Check_Call {
	_c.Call.Return(run)
	return _c
}

// Hash provides a mock function with given fields: secret
func (_m *MockSecretHasher) Hash(secret string) (string, error) {
	ret := _m.Called(secret)

	if len(ret) == 0 {
		panic("no return value specified for Hash")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (string, error)); ok {
		return rf(secret)
	}

	if rf, ok := ret.Get(0).(func(string) string); ok {
		r0 = rf(secret)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(secret)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockSecretHasher_Hash_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Hash'
type MockSecretHasher_Hash_Call struct {
	*mock.Call
}

// Hash is a helper method to define mock.On call
//   - secret string
func (_e *MockSecretHasher_Expecter) Hash(secret interface{}) *MockSecretHasher_Hash_Call {
	return &MockSecretHasher_Hash_Call{Call: _e.mock.On("Hash", secret)}
}

func (_c *MockSecretHasher_Hash_Call) Run(run func(secret string)) *MockSecretHasher_Hash_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockSecretHasher_Hash_Call) Return(_a0 string, _a1 error) *MockSecretHasher_Hash_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockSecretHasher_Hash_Call) RunAndReturn(run func(string) (string, error)) *MockSecretHasher_Hash_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockSecretHasher creates a new instance of MockSecretHasher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockSecretHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSecretHasher {
	mock := &MockSecretHasher{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
