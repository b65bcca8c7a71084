package controller

import (
	"github.com/greenmarket/agridash/internal/service/channel"
	"github.com/greenmarket/agridash/internal/service/eco"
	"github.com/greenmarket/agridash/internal/service/meta"
	"github.com/greenmarket/agridash/internal/service/price"
	"github.com/greenmarket/agridash/internal/service/season"
)

type Controller struct {
	priceService   *price.Service
	channelService *channel.Service
	seasonService  *season.Service
	ecoService     *eco.Service
	metaService    *meta.Service
}

func NewController(
	priceService *price.Service,
	channelService *channel.Service,
	seasonService *season.Service,
	ecoService *eco.Service,
	metaService *meta.Service,
) *Controller {
	return &Controller{
		priceService:   priceService,
		channelService: channelService,
		seasonService:  seasonService,
		ecoService:     ecoService,
		metaService:    metaService,
	}
}
