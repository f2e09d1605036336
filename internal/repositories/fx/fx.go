package fx

import (
	"github.com/orgball2608/album-cover-service/internal/repositories/album"
	"github.com/orgball2608/album-cover-service/internal/repositories/photo"
	"go.uber.org/fx"
)

var Module = fx.Options(
	album.Module,
	photo.Module,
)
