// Package route describes HTTP endpoints independently of the server that
// serves them. Controllers build Descriptors; the router attaches them.
package route

import "github.com/gofiber/fiber/v2"

// Method is the closed set of HTTP verbs a route may bind to.
type Method int

const (
	MethodGet Method = iota + 1
	MethodPost
	MethodPut
	MethodPatch
	MethodDelete
)

func (m Method) String() string {
	switch m {
	case MethodGet:
		return fiber.MethodGet
	case MethodPost:
		return fiber.MethodPost
	case MethodPut:
		return fiber.MethodPut
	case MethodPatch:
		return fiber.MethodPatch
	case MethodDelete:
		return fiber.MethodDelete
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether m is one of the declared verbs.
func (m Method) Valid() bool {
	return m >= MethodGet && m <= MethodDelete
}

// Route binds a path and method to a handler and its middleware chain.
type Route interface {
	Path() string
	Method() Method
	Handler() fiber.Handler
	Middlewares() []fiber.Handler
}

// Descriptor is an immutable Route.
type Descriptor struct {
	path        string
	method      Method
	handler     fiber.Handler
	middlewares []fiber.Handler
}

// New builds a Descriptor. Middlewares run in the order given, before handler.
func New(method Method, path string, handler fiber.Handler, middlewares ...fiber.Handler) Descriptor {
	return Descriptor{
		path:        path,
		method:      method,
		handler:     handler,
		middlewares: append([]fiber.Handler(nil), middlewares...),
	}
}

func (d Descriptor) Path() string { return d.path }

func (d Descriptor) Method() Method { return d.method }

func (d Descriptor) Handler() fiber.Handler { return d.handler }

// Middlewares returns a copy of the chain; nil when the route is unprotected.
func (d Descriptor) Middlewares() []fiber.Handler {
	if len(d.middlewares) == 0 {
		return nil
	}
	return append([]fiber.Handler(nil), d.middlewares...)
}
