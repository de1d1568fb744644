package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mbalakin/seizurelog/internal/common"
	"github.com/mbalakin/seizurelog/internal/server/feed"
)

// StreamProfile pushes the caller's profile changes until the client goes
// away or the upstream feed is lost.
func (s *GRPCServer) StreamProfile(req *StreamProfileRequest, stream SeizureLog_StreamProfileServer) error {

	ctx := stream.Context()
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "missing access token")
	}

	sub := s.profileFeed.Open(ctx, userID, nil)
	defer sub.Close()

	s.logger.Info(ctx, "Profile stream opened", "user_id", userID)

	for ev := range sub.Events() {
		msg := &ProfileChangeEvent{Change: ev.Change.String(), Profile: ev.Record}
		if err := stream.Send(msg); err != nil {
			return err
		}
	}

	return s.streamEnd(sub.Err())
}

// StreamSeizures pushes the caller's seizure changes, optionally narrowed to
// an inclusive duration range evaluated per event.
func (s *GRPCServer) StreamSeizures(req *StreamSeizuresRequest, stream SeizureLog_StreamSeizuresServer) error {

	ctx := stream.Context()
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "missing access token")
	}

	var bounds *feed.Bounds
	if req.DurationFrom != nil || req.DurationTill != nil {
		bounds = &feed.Bounds{From: req.DurationFrom, Till: req.DurationTill}
	}

	sub := s.seizureFeed.Open(ctx, userID, bounds)
	defer sub.Close()

	s.logger.Info(ctx, "Seizure stream opened", "user_id", userID)

	for ev := range sub.Events() {
		msg := &SeizureChangeEvent{Change: ev.Change.String(), Seizure: ev.Record}
		if err := stream.Send(msg); err != nil {
			return err
		}
	}

	return s.streamEnd(sub.Err())
}

// streamEnd maps a subscription's terminal condition to a stream result.
// Client-initiated ends (cancellation, explicit close) are not errors.
func (s *GRPCServer) streamEnd(err error) error {
	if errors.Is(err, common.ErrUpstreamLost) {
		return status.Error(codes.Unavailable, "change feed unavailable")
	}
	return nil
}
