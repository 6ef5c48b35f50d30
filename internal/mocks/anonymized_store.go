package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/rewards-server/internal/model"
)

// AnonymizedStore is a mock type for the AnonymizedStore type
type AnonymizedStore struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, record
func (_m *AnonymizedStore) Create(ctx context.Context, record model.AnonymizedRecord) (model.AnonymizedRecord, error) {
	ret := _m.Called(ctx, record)

	if rf, ok := ret.Get(0).(func(context.Context, model.AnonymizedRecord) (model.AnonymizedRecord, error)); ok {
		return rf(ctx, record)
	}

	return ret.Get(0).(model.AnonymizedRecord), ret.Error(1)
}

// DeleteByHashedUserID provides a mock function with given fields: ctx, hashedUserID
func (_m *AnonymizedStore) DeleteByHashedUserID(ctx context.Context, hashedUserID string) (int64, error) {
	ret := _m.Called(ctx, hashedUserID)

	return ret.Get(0).(int64), ret.Error(1)
}

// CountByHashedUserID provides a mock function with given fields: ctx, hashedUserID
func (_m *AnonymizedStore) CountByHashedUserID(ctx context.Context, hashedUserID string) (int64, error) {
	ret := _m.Called(ctx, hashedUserID)

	return ret.Get(0).(int64), ret.Error(1)
}

// ListByMonth provides a mock function with given fields: ctx, month
func (_m *AnonymizedStore) ListByMonth(ctx context.Context, month string) ([]model.AnonymizedRecord, error) {
	ret := _m.Called(ctx, month)

	var r0 []model.AnonymizedRecord
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.AnonymizedRecord)
	}

	return r0, ret.Error(1)
}

// NewAnonymizedStore creates a new instance of AnonymizedStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewAnonymizedStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *AnonymizedStore {
	m := &AnonymizedStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
