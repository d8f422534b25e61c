// Package navigation switches the top-level flow between sign-in and the storefront.
package navigation

import (
	"context"
	"log/slog"
	"sync"

	"go.uber.org/fx"

	"textura/internal/delivery"
	"textura/internal/usecase"
)

// Route is the top-level destination.
type Route string

const (
	RouteNone Route = ""
	RouteAuth Route = "auth"
	RouteMain Route = "main"
)

// Flow is a screen flow the controller starts and finishes.
type Flow interface {
	Start()
	Finish()
}

// Controller follows the engine's authenticated boolean and shows the matching flow.
type Controller struct {
	engine   usecase.AuthUsecase
	authFlow Flow
	mainFlow Flow
	logger   *slog.Logger

	mu    sync.Mutex
	route Route
}

// NewController creates a controller. Nothing is shown until Start or Run.
func NewController(engine usecase.AuthUsecase, authFlow, mainFlow Flow, logger *slog.Logger) *Controller {
	return &Controller{
		engine:   engine,
		authFlow: authFlow,
		mainFlow: mainFlow,
		logger:   logger.With(slog.String("component", "navigation")),
	}
}

// Start shows the auth flow unless a route is already shown.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.route != RouteNone {
		return
	}
	c.show(RouteAuth)
}

// Route returns the route currently shown.
func (c *Controller) Route() Route {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.route
}

// Apply routes to main when authenticated and to auth otherwise.
func (c *Controller) Apply(authenticated bool) {
	target := RouteAuth
	if authenticated {
		target = RouteMain
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.route == target {
		return
	}
	c.show(target)
}

// show finishes the current flow and starts the one for target. Callers must hold c.mu.
func (c *Controller) show(target Route) {
	switch c.route {
	case RouteAuth:
		c.authFlow.Finish()
	case RouteMain:
		c.mainFlow.Finish()
	}

	c.logger.Info("Switching route", slog.String("from", string(c.route)), slog.String("to", string(target)))
	c.route = target

	if target == RouteMain {
		c.mainFlow.Start()
	} else {
		c.authFlow.Start()
	}
}

// Run shows the flow for the engine's current state and then follows the engine until
// ctx is done or the engine closes. The auth flow is shown only when the engine
// closes before reporting any state.
func (c *Controller) Run(ctx context.Context) error {
	changes := c.engine.AuthenticatedChanges(ctx)

	if first, ok := <-changes; ok {
		c.Apply(first)
	} else {
		c.Start()
	}

	for authenticated := range changes {
		c.Apply(authenticated)
	}

	c.logger.Debug("Navigation stopped", slog.String("route", string(c.Route())))

	return nil
}

// Serve implements delivery.Delivery so the binary runs the controller next to the
// ops server. Run is the entry point for callers holding the controller directly.
func (c *Controller) Serve(ctx context.Context) error {
	return c.Run(ctx)
}

var _ delivery.Delivery = (*Controller)(nil)

// loggingFlow stands in for the screen flows in the headless binary.
type loggingFlow struct {
	name   string
	logger *slog.Logger
}

// NewLoggingFlow returns a Flow that only logs its transitions.
func NewLoggingFlow(name string, logger *slog.Logger) Flow {
	return &loggingFlow{name: name, logger: logger}
}

func (f *loggingFlow) Start() {
	f.logger.Info("Flow started", slog.String("flow", f.name))
}

func (f *loggingFlow) Finish() {
	f.logger.Info("Flow finished", slog.String("flow", f.name))
}

// Params holds dependencies for the navigation delivery, injected by Fx
type Params struct {
	fx.In

	Engine usecase.AuthUsecase
	Logger *slog.Logger
}

// NewDelivery creates the controller with logging flows for the binary.
func NewDelivery(params Params) delivery.Delivery {
	return NewController(
		params.Engine,
		NewLoggingFlow(string(RouteAuth), params.Logger),
		NewLoggingFlow(string(RouteMain), params.Logger),
		params.Logger,
	)
}
