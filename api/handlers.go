package api

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/demosite/blogshop-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, cacheClient *redis.Client, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		postHandler:    newPostHandler(db.PostRepo()),
		commentHandler: newCommentHandler(db.CommentRepo(), db.PostRepo()),
		tagHandler:     newTagHandler(db.TagRepo(), db.PostRepo()),
		productHandler: newProductHandler(db.ProductRepo()),
		orderHandler:   newOrderHandler(db.OrderRepo(), db.ProductRepo()),
		healthHandler:  newHealthHandler(db, cacheClient, startupTime),
	}
}
