package main

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/http"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/cart"
	"storefront/internal/domain/service"
	"storefront/internal/infra/auth"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/payment"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/remote"
	"storefront/internal/infra/storage"
	"storefront/internal/infra/validation"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			restoreSession,
			watchCart,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		storage.NewBucket,
		remote.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			storage.NewCartCountStore,
			storage.NewCredentialRepository,
			cart.NewStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			remote.NewAuthAPI,
			remote.NewCartAPI,
			remote.NewMenuAPI,
			remote.NewAdminCatalogAPI,
			remote.NewOrderAPI,
			remote.NewProfileAPI,
			auth.NewJWTInspector,
			qrcode.NewQRCodeService,
			newPaymentWidget,
			fx.Annotate(
				validation.New,
				fx.As(new(service.FormValidator)),
			),
			asPaymentWidget,
		),
	)
}

// newPaymentWidget creates the payment widget bridge and drops any open
// payments on shutdown
func newPaymentWidget(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) *payment.Widget {
	widget := payment.NewWidget(cfg, logger)
	lc.Append(fx.StopHook(widget.Close))

	return widget
}

func asPaymentWidget(w *payment.Widget) service.PaymentWidget {
	return w
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewCatalogService,
			impl.NewMenuService,
			impl.NewProfileService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewGuardMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewMenuHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewProfileHandler,
			handler.NewCatalogHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// restoreSession verifies the stored credential in the background so routes
// answer "loading" instead of blocking startup.
func restoreSession(lc fx.Lifecycle, session usecase.SessionUsecase, carts usecase.CartUsecase, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				restored := session.Restore(ctx)
				logger.Info("Session restored",
					slog.Bool("authenticated", restored.IsAuthenticated()),
					slog.Int("cart_count", carts.Snapshot().Count),
				)
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})
}

// watchCart logs every change of the cart badge count.
func watchCart(lc fx.Lifecycle, store *cart.Store, logger *slog.Logger) {
	var count atomic.Int64
	count.Store(int64(store.Snapshot().Count))

	unsubscribe := store.Subscribe(func(action cart.Action, state cart.State) {
		if prev := count.Swap(int64(state.Count)); prev != int64(state.Count) {
			logger.Info("Cart count changed",
				slog.String("action", cart.ActionName(action)),
				slog.Int64("previous", prev),
				slog.Int("count", state.Count),
			)
		}
	})
	lc.Append(fx.StopHook(unsubscribe))
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
