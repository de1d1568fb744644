package grpc

import (
	"context"
	"errors"
	"math"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mbalakin/seizurelog/internal/common"
)

func (s *GRPCServer) SignUp(ctx context.Context, req *SignUpRequest) (*TokenPairResponse, error) {

	s.logger.Info(ctx, "Sign-up request")

	if req.Email == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "email and password are required")
	}

	pair, err := s.users.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorEmailTaken) {
			return nil, status.Error(codes.AlreadyExists, "email already taken")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Signed up", "email", req.Email)
	return &TokenPairResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

func (s *GRPCServer) SignIn(ctx context.Context, req *SignInRequest) (*TokenPairResponse, error) {

	pair, err := s.users.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &TokenPairResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

func (s *GRPCServer) RefreshAccessToken(ctx context.Context, req *RefreshAccessTokenRequest) (*RefreshAccessTokenResponse, error) {

	accessToken, err := s.sessions.Refresh(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, common.ErrInvalidRefreshToken) {
			return nil, status.Error(codes.Unauthenticated, "invalid refresh token")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &RefreshAccessTokenResponse{AccessToken: accessToken}, nil
}

func (s *GRPCServer) SignOut(ctx context.Context, req *SignOutRequest) (*SignOutResponse, error) {

	if err := s.sessions.SignOut(ctx, req.RefreshToken); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &SignOutResponse{}, nil
}

func (s *GRPCServer) CreateProfile(ctx context.Context, req *CreateProfileRequest) (*CreateProfileResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing access token")
	}

	if err := s.profiles.Create(ctx, userID, req.Name); err != nil {
		switch {
		case errors.Is(err, common.ErrorProfileExists):
			return nil, status.Error(codes.AlreadyExists, "profile already exists")
		case errors.Is(err, common.ErrorProfileData):
			return nil, status.Error(codes.InvalidArgument, "name is required")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &CreateProfileResponse{}, nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *UpdateProfileRequest) (*UpdateProfileResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing access token")
	}

	if err := s.profiles.Update(ctx, userID, req.Name); err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			return nil, status.Error(codes.NotFound, "profile not found")
		case errors.Is(err, common.ErrorProfileData):
			return nil, status.Error(codes.InvalidArgument, "name is required")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &UpdateProfileResponse{}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, req *GetProfileRequest) (*GetProfileResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing access token")
	}

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.NotFound, "profile not found")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &GetProfileResponse{Profile: profile}, nil
}

func (s *GRPCServer) CreateSeizure(ctx context.Context, req *CreateSeizureRequest) (*CreateSeizureResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing access token")
	}

	seizure, err := s.seizures.Create(ctx, userID, req.Type, req.DurationSeconds)
	if err != nil {
		if errors.Is(err, common.ErrorSeizureData) {
			return nil, status.Error(codes.InvalidArgument, "unknown seizure type or negative duration")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &CreateSeizureResponse{Seizure: seizure}, nil
}

func (s *GRPCServer) DeleteSeizure(ctx context.Context, req *DeleteSeizureRequest) (*DeleteSeizureResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing access token")
	}

	if err := s.seizures.Delete(ctx, userID, req.SeizureID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.NotFound, "seizure not found")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &DeleteSeizureResponse{}, nil
}

func (s *GRPCServer) ListSeizures(ctx context.Context, req *ListSeizuresRequest) (*ListSeizuresResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing access token")
	}

	durationFrom := 0.0
	if req.DurationFrom != nil {
		durationFrom = *req.DurationFrom
	}
	durationTill := math.MaxFloat64
	if req.DurationTill != nil {
		durationTill = *req.DurationTill
	}

	seizures, err := s.seizures.List(ctx, userID, durationFrom, durationTill)
	if err != nil {
		if errors.Is(err, common.ErrorSeizureData) {
			return nil, status.Error(codes.InvalidArgument, "inverted duration range")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &ListSeizuresResponse{Seizures: seizures}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *PingRequest) (*PingResponse, error) {

	return &PingResponse{Status: "OK"}, nil

}
