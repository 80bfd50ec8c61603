package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/study-tracker/internal/api/route"
)

type registerFunc func(path string, handlers ...fiber.Handler) fiber.Router

// Router attaches route descriptors onto a fiber app.
type Router struct {
	app        *fiber.App
	logger     *zap.Logger
	registrars map[route.Method]registerFunc
	registered map[string]string
	matching   fiber.Config
}

// NewRouter wraps app. Global middlewares should already be attached.
func NewRouter(app *fiber.App, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		app:    app,
		logger: logger,
		registrars: map[route.Method]registerFunc{
			route.MethodGet:    app.Get,
			route.MethodPost:   app.Post,
			route.MethodPut:    app.Put,
			route.MethodPatch:  app.Patch,
			route.MethodDelete: app.Delete,
		},
		registered: make(map[string]string),
		matching:   app.Config(),
	}
}

// Register validates every route and then attaches them in order. Nothing is
// attached when any route is invalid or when two routes share method and path.
func (r *Router) Register(routes ...route.Route) error {
	pending := make(map[string]string, len(routes))
	for _, rt := range routes {
		if rt == nil {
			return fmt.Errorf("register routes: nil route")
		}
		if _, ok := r.registrars[rt.Method()]; !ok {
			return fmt.Errorf("register %s: unsupported method %s", rt.Path(), rt.Method())
		}
		if !strings.HasPrefix(rt.Path(), "/") {
			return fmt.Errorf("register %s %q: path must start with /", rt.Method(), rt.Path())
		}
		if rt.Handler() == nil {
			return fmt.Errorf("register %s %s: nil handler", rt.Method(), rt.Path())
		}

		key := r.routeKey(rt.Method(), rt.Path())
		if prev, ok := r.registered[key]; ok {
			return fmt.Errorf("register %s %s: duplicates %s", rt.Method(), rt.Path(), prev)
		}
		if prev, ok := pending[key]; ok {
			return fmt.Errorf("register %s %s: duplicates %s", rt.Method(), rt.Path(), prev)
		}
		pending[key] = rt.Method().String() + " " + rt.Path()
	}

	for _, rt := range routes {
		chain := append(rt.Middlewares(), rt.Handler())
		r.registrars[rt.Method()](rt.Path(), chain...)
		r.registered[r.routeKey(rt.Method(), rt.Path())] = rt.Method().String() + " " + rt.Path()
		r.logger.Debug("route registered",
			zap.String("method", rt.Method().String()),
			zap.String("path", rt.Path()),
			zap.Int("middlewares", len(chain)-1),
		)
	}
	return nil
}

// Start listens on addr and blocks until the server stops.
func (r *Router) Start(addr string) error {
	r.logger.Info("http server listening", zap.String("addr", addr), zap.Int("routes", len(r.registered)))
	return r.app.Listen(addr)
}

// routeKey reduces path to the form fiber matches on: parameter names are
// dropped, and case and trailing slashes are folded unless the app is
// configured as case sensitive or strict.
func (r *Router) routeKey(method route.Method, path string) string {
	if !r.matching.StrictRouting && len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") {
			if strings.HasSuffix(seg, "?") {
				segments[i] = ":?"
			} else {
				segments[i] = ":"
			}
			continue
		}
		if !r.matching.CaseSensitive {
			segments[i] = strings.ToLower(seg)
		}
	}
	return method.String() + " " + strings.Join(segments, "/")
}
