package components

import (
	"auction-sync/internal/handler"
	"auction-sync/internal/handler/api"
	"auction-sync/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewViewHandler,
		api.NewActionHandler,
		api.NewJournalHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
