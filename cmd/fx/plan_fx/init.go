package plan_fx

import (
	"go.uber.org/fx"
	"voyago/internal/api/controllers"
	"voyago/internal/repositories"
	"voyago/internal/services"
)

var Module = fx.Provide(
	repositories.NewPlanRepository,
	repositories.NewFixedPointRepository,
	services.NewPlanService,
	services.NewFixedPointService,
	controllers.NewPlanController,
	controllers.NewFixedPointController)
