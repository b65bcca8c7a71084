package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/athena"
	"github.com/greenmarket/agridash/internal/api"
	"github.com/greenmarket/agridash/internal/pkg/config"
	"github.com/greenmarket/agridash/internal/pkg/constants"
	"github.com/greenmarket/agridash/internal/pkg/gateway"
	"github.com/greenmarket/agridash/internal/pkg/geo"
	"github.com/greenmarket/agridash/internal/pkg/logger"
	"github.com/greenmarket/agridash/internal/pkg/store"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zl, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	logger.Init(zl)
	defer func() { _ = zl.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, err)
	}

	gw, closeGateway, err := newGateway(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer closeGateway()

	svc, err := api.NewAPIService(store.NewStore(gw), geo.NewLoader(cfg.GeoJSONPath))
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(cfg.ListenAddr)
	logger.Infof(ctx, "listening on %s, backend %s", cfg.ListenAddr, cfg.DBConnection)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "shutdown: %s", err.Error())
	}
}

func newGateway(ctx context.Context, cfg *config.Config) (gateway.Gateway, func(), error) {
	switch cfg.DBConnection {
	case constants.BackendAthena:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return nil, nil, err
		}
		gw := gateway.NewAthenaGateway(athena.NewFromConfig(awsCfg),
			cfg.AthenaDatabase, cfg.AthenaWorkgroup, cfg.AthenaOutputLocation, cfg.QueryTimeout)
		return gw, func() {}, nil
	case constants.BackendRDS:
		gw := gateway.NewPostgresGateway(cfg.PostgresDSN(), cfg.RDSDB, cfg.RDSUser)
		return gw, gw.Close, nil
	default:
		return nil, nil, constants.ErrBackendUnavailable
	}
}
