package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/rewards-server/internal/model"
)

func handleError(err error) error {
	switch {
	case errors.Is(err, model.ErrMalformedInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, model.ErrUnauthenticated.Error())
	case errors.Is(err, model.ErrRateLimited):
		return status.Error(codes.ResourceExhausted, model.ErrRateLimited.Error())
	case errors.Is(err, model.ErrStorageUnavailable):
		return status.Error(codes.Unavailable, "storage unavailable, retry later")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
