package export_fx

import (
	"go.uber.org/fx"
	"wanderlust/internal/api/controllers"
)

var Module = fx.Provide(controllers.NewExportController)
