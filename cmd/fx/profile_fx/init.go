package profile_fx

import (
	"go.uber.org/fx"
	"voyago/internal/api/controllers"
	"voyago/internal/repositories"
	"voyago/internal/services"
)

var Module = fx.Provide(
	repositories.NewProfileRepository,
	services.NewProfileService,
	controllers.NewProfileController)
