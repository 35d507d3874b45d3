package archive_fx

import (
	"context"

	"go.uber.org/fx"
	"voyago/internal/services"
)

var Module = fx.Options(
	fx.Provide(services.NewArchiveService),
	fx.Invoke(registerSweep))

func registerSweep(lc fx.Lifecycle, archive services.ArchiveServiceInterface) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return archive.Start()
		},
		OnStop: func(ctx context.Context) error {
			archive.Stop()
			return nil
		},
	})
}
