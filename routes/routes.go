package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	controllers "github.com/devevent/devevent-api/controllers"
	store "github.com/devevent/devevent-api/store"
	utils "github.com/devevent/devevent-api/utils"
)

func SetupRoutes(r *gin.Engine, log *slog.Logger, db *store.Mongo, uploader utils.ImageUploader) {
	r.GET("/healthz", controllers.Healthz(log, db))

	events := r.Group("/events")
	{
		events.POST("", controllers.CreateEvent(log, db, uploader))
		events.GET("", controllers.ListEvents(log, db))
		events.GET("/:slug", controllers.GetEventBySlug(log, db))
	}

	bookings := r.Group("/bookings")
	{
		bookings.POST("", controllers.CreateBooking(log, db, db))
		bookings.GET("", controllers.ListBookings(log, db))
	}
}
