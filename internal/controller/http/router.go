package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func InitRoutes(r *chi.Mux, c *Controller) *chi.Mux {

	r.Get("/ping", c.Ping)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/login", c.Login)

	r.Group(func(r chi.Router) {
		r.Use(c.RequireSession)

		r.Post("/logout", c.Logout)
		r.Get("/users/me", c.Me)
		r.Get("/notifications", c.Notifications)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", c.Orders)
			r.Post("/", c.CreateOrder)
			r.Get("/{orderID}", c.OrderDetails)
			r.Patch("/{orderID}/status/pick-up", c.PickUpOrder)
		})

		r.Route("/recipients", func(r chi.Router) {
			r.Post("/", c.CreateRecipient)
			r.Get("/lite", c.RecipientsLite)
		})
	})

	return r
}
