package bootstrap

import (
	"reservatenis/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule wires everything below the HTTP layer. The seed command runs
// on this alone so it never needs a gin engine.
var CoreModule = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.RepositoryModule,
	components.UseCaseModule,
)

var Module = fx.Options(
	CoreModule,
	components.HandlerModule,
)
