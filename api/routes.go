package api

import (
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/demosite/blogshop-backend/config"
)

// setupRoutes mounts each installed component's routes
func setupRoutes(r chi.Router, handlers *routeHandlers, settings config.Settings) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", handlers.healthHandler.health())

		if slices.Contains(settings.InstalledApps, "blog") {
			// Post endpoints
			r.Get("/posts", handlers.postHandler.getAllPosts())
			r.Get("/post/{postID}", handlers.postHandler.getPost())
			r.Post("/post", handlers.postHandler.createPost())
			r.Put("/post/{postID}", handlers.postHandler.updatePost())
			r.Delete("/post/{postID}", handlers.postHandler.deletePost())

			// Comment endpoints
			r.Get("/post/{postID}/comments", handlers.commentHandler.getComments())
			r.Post("/post/{postID}/comment", handlers.commentHandler.createComment())
			r.Delete("/comment/{commentID}", handlers.commentHandler.deleteComment())

			// Tag endpoints
			r.Get("/tags", handlers.tagHandler.getAllTags())
			r.Post("/tag", handlers.tagHandler.createTag())
			r.Delete("/tag/{tagID}", handlers.tagHandler.deleteTag())
			r.Put("/post/{postID}/tag/{tagID}", handlers.tagHandler.tagPost())
			r.Delete("/post/{postID}/tag/{tagID}", handlers.tagHandler.untagPost())
		}

		if slices.Contains(settings.InstalledApps, "shop") {
			// Product endpoints
			r.Get("/products", handlers.productHandler.getAllProducts())
			r.Get("/product/{productID}", handlers.productHandler.getProduct())
			r.Post("/product", handlers.productHandler.createProduct())
			r.Put("/product/{productID}", handlers.productHandler.updateProduct())
			r.Delete("/product/{productID}", handlers.productHandler.deleteProduct())

			// Order endpoints
			r.Get("/orders", handlers.orderHandler.getAllOrders())
			r.Get("/product/{productID}/orders", handlers.orderHandler.getOrdersForProduct())
			r.Post("/order", handlers.orderHandler.createOrder())
			r.Delete("/order/{orderID}", handlers.orderHandler.deleteOrder())
		}
	})
}
