package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/amirulhakim/spicebite-backend/api/controllers"
	"github.com/amirulhakim/spicebite-backend/api/middleware"
	"github.com/amirulhakim/spicebite-backend/internal/cart"
	"github.com/amirulhakim/spicebite-backend/internal/catalog"
	"github.com/amirulhakim/spicebite-backend/internal/chatbot"
	checkoutsvc "github.com/amirulhakim/spicebite-backend/internal/checkout"
	"github.com/amirulhakim/spicebite-backend/internal/orders"
	"github.com/amirulhakim/spicebite-backend/internal/profiles"
	subscriptionsvc "github.com/amirulhakim/spicebite-backend/internal/subscriptions"
	"github.com/amirulhakim/spicebite-backend/pkg/config"
	"github.com/amirulhakim/spicebite-backend/pkg/db"
	"github.com/amirulhakim/spicebite-backend/pkg/logger"
	pkgredis "github.com/amirulhakim/spicebite-backend/pkg/redis"
)

// Deps bundles everything the HTTP surface needs.
type Deps struct {
	Config        *config.Config
	Logger        *logger.Logger
	DB            db.Pinger
	Redis         *pkgredis.Client
	Registry      *prometheus.Registry
	CartStore     *cart.Store
	Catalog       catalog.Service
	Checkout      checkoutsvc.Service
	Orders        orders.Service
	Chatbot       chatbot.Service
	Profiles      profiles.Service
	Subscriptions subscriptionsvc.Service
}

func NewRouter(d Deps) http.Handler {
	cfg := d.Config
	logg := d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	var (
		idemStore   pkgredis.IdempotencyStore
		redisPinger pkgredis.Pinger
	)
	if d.Redis != nil {
		idemStore = d.Redis
		redisPinger = d.Redis
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, d.DB, redisPinger, logg))
	})

	if d.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.Session(logg))
		r.Use(middleware.Idempotency(idemStore, logg))

		r.Get("/menu", controllers.ListMenu(d.Catalog, logg))
		r.Get("/menu/{id}", controllers.GetMenuItem(d.Catalog, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(d.CartStore, cfg.Delivery, logg))
			r.Post("/items", controllers.AddCartItem(d.CartStore, d.Catalog, cfg.Delivery, logg))
			r.Put("/items/{id}", controllers.SetCartItemQuantity(d.CartStore, cfg.Delivery, logg))
		})

		r.Get("/checkout/form", controllers.GetCheckoutForm(d.CartStore, logg))
		r.Put("/checkout/form", controllers.SaveCheckoutForm(d.CartStore, logg))
		r.Post("/checkout", controllers.SubmitCheckout(d.CartStore, d.Checkout, logg))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.ListOrders(d.Orders, logg))
			r.Get("/{id}", controllers.GetOrder(d.Orders, logg))
		})

		r.Route("/chatbot", func(r chi.Router) {
			r.Get("/", controllers.ChatbotIntro())
			r.Post("/message", controllers.ChatbotMessage(d.Chatbot, logg))
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", controllers.GetProfile(d.Profiles, logg))
			r.Put("/", controllers.UpdateProfile(d.Profiles, logg))
		})

		r.Get("/subscription/plan", controllers.GetSubscriptionPlan(d.Subscriptions, logg))
		r.Get("/subscription", controllers.GetSubscription(d.Subscriptions, logg))
		r.Post("/subscription", controllers.Subscribe(d.Subscriptions, logg))
	})

	return r
}
