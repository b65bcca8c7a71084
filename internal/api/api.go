package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/greenmarket/agridash/internal/api/controller"
	"github.com/greenmarket/agridash/internal/pkg/geo"
	"github.com/greenmarket/agridash/internal/pkg/logger"
	"github.com/greenmarket/agridash/internal/pkg/store"
	"github.com/greenmarket/agridash/internal/service/channel"
	"github.com/greenmarket/agridash/internal/service/eco"
	"github.com/greenmarket/agridash/internal/service/meta"
	"github.com/greenmarket/agridash/internal/service/price"
	"github.com/greenmarket/agridash/internal/service/season"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type APIService struct {
	router *echo.Echo

	priceService   *price.Service
	channelService *channel.Service
	seasonService  *season.Service
	ecoService     *eco.Service
	metaService    *meta.Service
}

// Serve blocks until the listener closes. Shutdown makes Start return
// http.ErrServerClosed while connections drain; that is a clean exit,
// not a fatal one.
func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(store store.Store, loader *geo.Loader) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = sonicSerializer{}
	svc.router.Use(middleware.Logger())
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))
	svc.router.Use(svc.RequestIDMiddleware)

	svc.priceService = price.NewPriceService(store)
	svc.channelService = channel.NewChannelService(store)
	svc.seasonService = season.NewSeasonService(store, loader)
	svc.ecoService = eco.NewEcoService(store)
	svc.metaService = meta.NewMetaService(store)

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(
		svc.priceService, svc.channelService, svc.seasonService, svc.ecoService, svc.metaService)

	regions := api.Group("/regions")
	regions.GET("/list", cntrl.GetRegions)

	prices := api.Group("/prices")
	prices.GET("/drop", cntrl.GetPriceDrops)
	prices.GET("/rise", cntrl.GetPriceRises)
	prices.GET("/rate", cntrl.GetPriceRate)
	prices.GET("/overview", cntrl.GetPriceOverview)

	channels := api.Group("/channels")
	channels.GET("/comparison", cntrl.GetChannelComparison)
	channels.GET("/stats", cntrl.GetChannelStats)
	channels.GET("/item-map", cntrl.GetSelectedItemMap)

	seasons := api.Group("/seasons")
	seasons.GET("/current", cntrl.GetCurrentSeason)
	seasons.GET("/items", cntrl.GetSeasonItems)
	seasons.GET("/map", cntrl.GetSeasonMap)
	seasons.GET("/regions/:region/comparison", cntrl.GetRegionComparison)
	seasons.GET("/regions/:region/items", cntrl.GetRegionAllItems)

	ecoGroup := api.Group("/eco")
	ecoGroup.GET("/latest", cntrl.GetEcoLatest)

	metaGroup := api.Group("/meta")
	metaGroup.GET("/status", cntrl.GetUpdateStatus)

	return svc, nil
}
