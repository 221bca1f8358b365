package controllers_fx

import (
	"go.uber.org/fx"

	"travelplanner/internal/api/controllers"
	"travelplanner/internal/form"
)

var Module = fx.Options(
	fx.Provide(fx.Annotate(form.NewLocalClient, fx.As(new(form.Client)))),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewFormController))
