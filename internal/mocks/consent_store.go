package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/rewards-server/internal/model"
)

// ConsentStore is a mock type for the ConsentStore type
type ConsentStore struct {
	mock.Mock
}

// Get provides a mock function with given fields: ctx, userID
func (_m *ConsentStore) Get(ctx context.Context, userID model.UserID) (model.ConsentRecord, error) {
	ret := _m.Called(ctx, userID)

	if rf, ok := ret.Get(0).(func(context.Context, model.UserID) (model.ConsentRecord, error)); ok {
		return rf(ctx, userID)
	}

	return ret.Get(0).(model.ConsentRecord), ret.Error(1)
}

// Save provides a mock function with given fields: ctx, record
func (_m *ConsentStore) Save(ctx context.Context, record model.ConsentRecord) error {
	ret := _m.Called(ctx, record)

	if rf, ok := ret.Get(0).(func(context.Context, model.ConsentRecord) error); ok {
		return rf(ctx, record)
	}

	return ret.Error(0)
}

// AddPoints provides a mock function with given fields: ctx, userID, delta
func (_m *ConsentStore) AddPoints(ctx context.Context, userID model.UserID, delta int64) (int64, error) {
	ret := _m.Called(ctx, userID, delta)

	if rf, ok := ret.Get(0).(func(context.Context, model.UserID, int64) (int64, error)); ok {
		return rf(ctx, userID, delta)
	}

	return ret.Get(0).(int64), ret.Error(1)
}

// NewConsentStore creates a new instance of ConsentStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewConsentStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *ConsentStore {
	m := &ConsentStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
