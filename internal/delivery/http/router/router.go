// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler  *handler.SessionHandler
	MenuHandler     *handler.MenuHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	ProfileHandler  *handler.ProfileHandler
	CatalogHandler  *handler.CatalogHandler
	GuardMiddleware *middleware.GuardMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	session  *handler.SessionHandler
	menu     *handler.MenuHandler
	cart     *handler.CartHandler
	checkout *handler.CheckoutHandler
	profile  *handler.ProfileHandler
	catalog  *handler.CatalogHandler
	guard    *middleware.GuardMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		session:  params.SessionHandler,
		menu:     params.MenuHandler,
		cart:     params.CartHandler,
		checkout: params.CheckoutHandler,
		profile:  params.ProfileHandler,
		catalog:  params.CatalogHandler,
		guard:    params.GuardMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	sessionGroup := e.Group("/session")
	{
		sessionGroup.GET("", r.session.GetSession)
		sessionGroup.POST("/login", r.session.Login)
		sessionGroup.POST("/register", r.session.Register)
		sessionGroup.POST("/logout", r.session.Logout)
		sessionGroup.PUT("/credential", r.session.SetCredential)
		sessionGroup.GET("/guard", r.session.Guard)
	}

	menuGroup := e.Group("/menu")
	{
		menuGroup.GET("", r.menu.Browse)
		menuGroup.GET("/popular", r.menu.Popular)
		menuGroup.GET("/items/:id", r.menu.Item)
	}

	// Customer pages; admins are sent to /admin
	cartGroup := e.Group("/cart", r.guard.Customer())
	{
		cartGroup.GET("", r.cart.GetCart)
		cartGroup.POST("/refresh", r.cart.Refresh)
		cartGroup.POST("/items", r.cart.AddItem)
		cartGroup.PATCH("/items/:itemId", r.cart.UpdateQuantity)
		cartGroup.DELETE("/items/:itemId", r.cart.DeleteItem)
		cartGroup.DELETE("", r.cart.Clear)
	}

	checkoutGroup := e.Group("/checkout", r.guard.Customer())
	{
		checkoutGroup.POST("", r.checkout.Start)
		checkoutGroup.GET("/:id", r.checkout.Get)
		checkoutGroup.PUT("/:id/details", r.checkout.CollectDetails)
		checkoutGroup.POST("/:id/order", r.checkout.CreateOrder)
		checkoutGroup.POST("/:id/payment", r.checkout.RequestPayment)
		checkoutGroup.GET("/:id/payment", r.checkout.PendingPayment)
		checkoutGroup.POST("/:id/payment/success", r.checkout.PaymentSucceeded)
		checkoutGroup.POST("/:id/payment/dismiss", r.checkout.PaymentDismissed)
	}

	e.POST("/orders/:orderId/retry-payment", r.checkout.RetryPayment, r.guard.Customer())

	profileGroup := e.Group("/profile", r.guard.Customer())
	{
		profileGroup.GET("", r.profile.GetProfile)
		profileGroup.PUT("", r.profile.UpdateProfile)
		profileGroup.POST("/picture", r.profile.UploadPicture)
		profileGroup.GET("/orders/:orderId/qr", r.profile.OrderStatusQR)
		profileGroup.POST("/orders/scan", r.profile.ScanOrderStatusQR)
	}

	adminGroup := e.Group("/admin", r.guard.Admin())
	{
		adminGroup.GET("/items", r.catalog.List)
		adminGroup.POST("/items", r.catalog.Create)
		adminGroup.POST("/items/validate", r.catalog.ValidateForm)
		adminGroup.PUT("/items/:id", r.catalog.Update)
		adminGroup.DELETE("/items/:id", r.catalog.Delete)
		adminGroup.PATCH("/items/:id/deactivate", r.catalog.Deactivate)
		adminGroup.PATCH("/items/:id/reactivate", r.catalog.Reactivate)
	}
}
