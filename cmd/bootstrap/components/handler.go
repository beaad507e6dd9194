package components

import (
	"smartlocker/internal/handler"
	"smartlocker/internal/handler/api"
	"smartlocker/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewLockerHandler,
		api.NewStreamHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
