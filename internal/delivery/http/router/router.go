// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gearpool/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AvailabilityHandler *handler.AvailabilityHandler
	ReservationHandler  *handler.ReservationHandler
	AssignmentHandler   *handler.AssignmentHandler
	DeviceHandler       *handler.DeviceHandler
	LocationHandler     *handler.LocationHandler
	IncidentHandler     *handler.IncidentHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	availabilityHandler *handler.AvailabilityHandler
	reservationHandler  *handler.ReservationHandler
	assignmentHandler   *handler.AssignmentHandler
	deviceHandler       *handler.DeviceHandler
	locationHandler     *handler.LocationHandler
	incidentHandler     *handler.IncidentHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		availabilityHandler: params.AvailabilityHandler,
		reservationHandler:  params.ReservationHandler,
		assignmentHandler:   params.AssignmentHandler,
		deviceHandler:       params.DeviceHandler,
		locationHandler:     params.LocationHandler,
		incidentHandler:     params.IncidentHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Availability queries
	e.GET("/availability", r.availabilityHandler.CheckAvailability)

	// Reservation lifecycle
	reservationGroup := e.Group("/reservations")
	{
		reservationGroup.GET("", r.reservationHandler.ListReservations)
		reservationGroup.POST("", r.reservationHandler.CreateReservation)
		reservationGroup.PATCH("/:id/terminate", r.reservationHandler.TerminateEarly)
		reservationGroup.GET("/:id/candidates", r.reservationHandler.ListCandidates)
	}

	// Assignment / check-in state machine
	e.POST("/assignments", r.assignmentHandler.Assign)
	e.POST("/assignments/batch", r.assignmentHandler.AssignBatch)
	e.POST("/check-ins", r.assignmentHandler.CheckIn)
	e.POST("/check-ins/batch", r.assignmentHandler.CheckInBatch)

	// Device inventory views
	deviceGroup := e.Group("/devices")
	{
		deviceGroup.GET("/census", r.deviceHandler.Census)
		deviceGroup.GET("/pool", r.deviceHandler.ListPool)
		deviceGroup.GET("/:id/incidents", r.incidentHandler.ListForDevice)
		deviceGroup.GET("/:id/incidents/summary", r.incidentHandler.Summary)
	}

	// Location registry
	locationGroup := e.Group("/locations")
	{
		locationGroup.POST("/person", r.locationHandler.CreatePerson)
		locationGroup.GET("/:id/devices", r.locationHandler.ListDevices)
	}

	// Incident overlay
	incidentGroup := e.Group("/incidents")
	{
		incidentGroup.POST("", r.incidentHandler.Create)
		incidentGroup.POST("/:id/resolve", r.incidentHandler.Resolve)
	}
}
