package quotation

import (
	"github.com/turingco/quotation/internal/quotation/service"
	"github.com/turingco/quotation/internal/render"
	"github.com/turingco/quotation/internal/sequence"
	"go.uber.org/fx"
)

var Module = fx.Module("quotation.service",
	sequence.Module,
	render.Module,
	fx.Provide(service.NewService),
)
