package coverimpl

import (
	"github.com/orgball2608/album-cover-service/internal/access"
	"github.com/orgball2608/album-cover-service/internal/cover"
	"github.com/orgball2608/album-cover-service/internal/repositories/photo"
	"github.com/orgball2608/album-cover-service/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	PhotoRepo photo.Repository
	Policy    access.Policy
	Logger    logger.Logger
}

type CoverImpl struct {
	PhotoRepo photo.Repository
	Policy    access.Policy
	Logger    logger.Logger
}

func New(opts Opts) *CoverImpl {
	return &CoverImpl{
		PhotoRepo: opts.PhotoRepo,
		Policy:    opts.Policy,
		Logger:    opts.Logger.WithComponent("CoverResolver"),
	}
}

var _ cover.Client = (*CoverImpl)(nil)
