package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	rewardsv1 "github.com/dtroode/rewards-server/api/rewards/v1"
	"github.com/dtroode/rewards-server/internal/api/grpc/handler"
	"github.com/dtroode/rewards-server/internal/api/grpc/middleware"
	"github.com/dtroode/rewards-server/internal/logger"
	"github.com/dtroode/rewards-server/internal/model"
)

// Router wires the rewards service and its interceptors into a gRPC server.
type Router struct {
	consentService    handler.ConsentService
	submissionService handler.SubmissionService
	tokenManager      model.TokenManager
	contextManager    model.ContextManager
	logger            *logger.Logger
	health            *health.Server
}

// New creates a router. Call Register to build the server.
func New(
	consentService handler.ConsentService,
	submissionService handler.SubmissionService,
	tokenManager model.TokenManager,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		consentService:    consentService,
		submissionService: submissionService,
		tokenManager:      tokenManager,
		contextManager:    contextManager,
		logger:            logger,
		health:            health.NewServer(),
	}
}

// requiresAuth selects every rewards method. Health and reflection stay open.
func requiresAuth(_ context.Context, c interceptors.CallMeta) bool {
	return strings.HasPrefix(c.FullMethod(), "/"+rewardsv1.Rewards_ServiceDesc.ServiceName+"/")
}

// Register builds the server. Interceptors run logging, then recovery, then auth.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenManager, r.contextManager, r.logger)
	recoveryOpt := recovery.WithRecoveryHandlerContext(middleware.RecoveryHandler(r.logger))

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			recovery.UnaryServerInterceptor(recoveryOpt),
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
		),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recoveryOpt),
			selector.StreamServerInterceptor(
				auth.StreamServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
		),
	)
	r.registerRewardsRoutes(s)
	r.registerHealthRoutes(s)
	reflection.Register(s)

	return s
}

// SetServing flips the health status reported for the rewards service.
func (r *Router) SetServing(serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	r.health.SetServingStatus(rewardsv1.Rewards_ServiceDesc.ServiceName, st)
	r.health.SetServingStatus("", st)
}

func (r *Router) registerRewardsRoutes(server *grpc.Server) {
	rewardsHandler := handler.NewRewards(r.consentService, r.submissionService, r.contextManager, r.logger)
	rewardsv1.RegisterRewardsServer(server, rewardsHandler)
}

func (r *Router) registerHealthRoutes(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, r.health)
	r.SetServing(true)
}
