package mocks

import (
	jwt "github.com/golang-jwt/jwt/v5"

	mock "github.com/stretchr/testify/mock"

	time "time"
)

// MockTokenService is a testify mock of TokenService
type MockTokenService struct {
	mock.Mock
}

type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

// GenerateToken provides a mock function with given fields: subject, roles, ttl, secret
func (_m *MockTokenService) GenerateToken(subject string, roles []string, ttl time.Duration, secret string) (string, error) {
	ret := _m.Called(subject, roles, ttl, secret)

	if len(ret) == 0 {
		panic("no return value specified for GenerateToken")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(string, []string, time.Duration, string) (string, error)); ok {
		return rf(subject, roles, ttl, secret)
	}

	if rf, ok := ret.Get(0).(func(string, []string, time.Duration, string) string); ok {
		r0 = rf(subject, roles, ttl, secret)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(string, []string, time.Duration, string) error); ok {
		r1 = rf(subject, roles, ttl, secret)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenService_GenerateToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GenerateToken'
type MockTokenService_GenerateToken_Call struct {
	*mock.Call
}

// GenerateToken is a helper method to define mock.On call
//   - subject string
//   - roles []string
//   - ttl time.Duration
//   - secret string
func (_e *MockTokenService_Expecter) GenerateToken(subject interface{}, roles interface{}, ttl interface{}, secret interface{}) *MockTokenService_GenerateToken_Call {
	return &MockTokenService_GenerateToken_Call{Call: _e.mock.On("GenerateToken", subject, roles, ttl, secret)}
}

func (_c *MockTokenService_GenerateToken_Call) Run(run func(subject string, roles []string, ttl time.Duration, secret string)) *MockTokenService_GenerateToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].([]string), args[2].(time.Duration), args[3].(string))
	})
	return _c
}

func (_c *MockTokenService_GenerateToken_Call) Return(_a0 string, _a1 error) *MockTokenService_GenerateToken_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTokenService_GenerateToken_Call) RunAndReturn(run func(string, []string, time.Duration, string) (string, error)) *MockTokenService_GenerateToken_Call {
	_c.Call.Return(run)
	return _c
}

// ValidateToken provides a mock function with given fields: tokenString, secret
func (_m *MockTokenService) ValidateToken(tokenString string, secret string) (*jwt.Token, error) {
	ret := _m.Called(tokenString, secret)

	if len(ret) == 0 {
		panic("no return value specified for ValidateToken")
	}

	var r0 *jwt.Token
	var r1 error
	if rf, ok := ret.Get(0).(func(string, string) (*jwt.Token, error)); ok {
		return rf(tokenString, secret)
	}

	if rf, ok := ret.Get(0).(func(string, string) *jwt.Token); ok {
		r0 = rf(tokenString, secret)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*jwt.Token)
	}

	if rf, ok := ret.Get(1).(func(string, string) error); ok {
		r1 = rf(tokenString, secret)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenService_ValidateToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ValidateToken'
type MockTokenService_ValidateToken_Call struct {
	*mock.Call
}

// ValidateToken is a helper method to define mock.On call
//   - tokenString string
//   - secret string
func (_e *MockTokenService_Expecter) ValidateToken(tokenString interface{}, secret interface{}) *MockTokenService_ValidateToken_Call {
	return &MockTokenService_ValidateToken_Call{Call: _e.mock.On("ValidateToken", tokenString, secret)}
}

func (_c *MockTokenService_ValidateToken_Call) Run(run func(tokenString string, secret string)) *MockTokenService_ValidateToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].(string))
	})
	return _c
}

func (_c *MockTokenService_ValidateToken_Call) Return(_a0 *jwt.Token, _a1 error) *MockTokenService_ValidateToken_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTokenService_ValidateToken_Call) RunAndReturn(run func(string, string) (*jwt.Token, error)) *MockTokenService_ValidateToken_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTokenService creates a new instance of MockTokenService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	mock := &MockTokenService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
