package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/rewards-server/internal/model"
)

// Transactor is a mock type for the Transactor type.
// Set UnitOfWork to have WithUserLock invoke the callback with it.
type Transactor struct {
	mock.Mock
	UnitOfWork model.UnitOfWork
}

// WithUserLock provides a mock function with given fields: ctx, userID, fn
func (_m *Transactor) WithUserLock(ctx context.Context, userID model.UserID, fn func(context.Context, model.UnitOfWork) error) error {
	ret := _m.Called(ctx, userID, fn)

	if err := ret.Error(0); err != nil {
		return err
	}
	if _m.UnitOfWork != nil {
		return fn(ctx, _m.UnitOfWork)
	}

	return nil
}

// NewTransactor creates a new instance of Transactor bound to uow.
func NewTransactor(t interface {
	mock.TestingT
	Cleanup(func())
}, uow model.UnitOfWork) *Transactor {
	m := &Transactor{UnitOfWork: uow}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// UnitOfWork is a fixed pair of stores.
type UnitOfWork struct {
	ConsentStore    model.ConsentStore
	AnonymizedStore model.AnonymizedStore
}

func (u *UnitOfWork) Consents() model.ConsentStore {
	return u.ConsentStore
}

func (u *UnitOfWork) Anonymized() model.AnonymizedStore {
	return u.AnonymizedStore
}
