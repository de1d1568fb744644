// Package grpc exposes the server's operations over gRPC with a JSON wire
// codec: unary calls for accounts, sessions, profiles and seizures, plus
// server-streaming endpoints fed by the change fan-out engine.
package grpc

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"

	"github.com/mbalakin/seizurelog/internal/logging"
	"github.com/mbalakin/seizurelog/internal/server/config"
	"github.com/mbalakin/seizurelog/internal/server/feed"
	"github.com/mbalakin/seizurelog/internal/server/models"
	"github.com/mbalakin/seizurelog/internal/server/services"
)

// UserService is the account surface the transport depends on.
type UserService interface {
	SignUp(ctx context.Context, email string, password string) (*services.TokenPair, error)
	SignIn(ctx context.Context, email string, password string) (*services.TokenPair, error)
}

// SessionService is the refresh-session surface the transport depends on.
type SessionService interface {
	Refresh(ctx context.Context, refreshToken string) (string, error)
	SignOut(ctx context.Context, refreshToken string) error
}

// ProfileService is the profile surface the transport depends on.
type ProfileService interface {
	Create(ctx context.Context, userID string, name string) error
	Update(ctx context.Context, userID string, name string) error
	Get(ctx context.Context, userID string) (*models.Profile, error)
}

// SeizureService is the seizure-diary surface the transport depends on.
type SeizureService interface {
	Create(ctx context.Context, userID string, seizureType models.SeizureType, durationSeconds float64) (*models.Seizure, error)
	Delete(ctx context.Context, userID string, seizureID string) error
	List(ctx context.Context, userID string, durationFrom, durationTill float64) ([]*models.Seizure, error)
}

type GRPCServer struct {
	address     string
	logger      logging.Logger
	users       UserService
	sessions    SessionService
	profiles    ProfileService
	seizures    SeizureService
	profileFeed *feed.Manager[models.Profile]
	seizureFeed *feed.Manager[models.Seizure]
	jwtSecret   []byte
	idleTimeout time.Duration
}

func NewGRPCServer(cfg *config.Config, l logging.Logger,
	users UserService, sessions SessionService, profiles ProfileService, seizures SeizureService,
	profileFeed *feed.Manager[models.Profile], seizureFeed *feed.Manager[models.Seizure]) *GRPCServer {
	return &GRPCServer{
		address:     cfg.EndpointAddrGRPC,
		logger:      l.With("module", "grpc_server"),
		users:       users,
		sessions:    sessions,
		profiles:    profiles,
		seizures:    seizures,
		profileFeed: profileFeed,
		seizureFeed: seizureFeed,
		jwtSecret:   []byte(cfg.SecretKey),
		idleTimeout: cfg.IdleSubscriptionTimeout,
	}
}

// Run serves until ctx is cancelled, then stops gracefully. Open change
// streams end via their own contexts when the server drains.
func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(
		grpc.ForceServerCodec(jsonCodec{}),
		grpc.ChainUnaryInterceptor(s.accessTokenInterceptor),
		grpc.ChainStreamInterceptor(s.accessTokenStreamInterceptor),
		grpc.KeepaliveParams(keepalive.ServerParameters{Time: s.idleTimeout}),
	)

	RegisterSeizureLogServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
