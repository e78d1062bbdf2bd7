package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/business-growth-api/pkg/apiErrors"
)

// WithRoutes registra um grupo de rotas (auth, business, ai, cron...) no router
var WithRoutes = func(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // Aplicados só nesta rota, na ordem da lista
}

type Router struct {
	mux *httprouter.Router
}

type ConfigRouter func(router *Router)

// New cria o router da API. Rotas e métodos desconhecidos respondem no envelope de erro padrão.
func New(configs ...ConfigRouter) Router {
	mux := httprouter.New()
	mux.NotFound = http.HandlerFunc(routeNotFound)
	mux.MethodNotAllowed = http.HandlerFunc(methodNotAllowed)

	router := &Router{mux: mux}
	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// AddRoutes envolve cada handler com os middlewares da rota; o primeiro da lista é o mais externo
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.mux.Handler(route.Method, route.Path, handler)
	}
}

func routeNotFound(w http.ResponseWriter, req *http.Request) {
	apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Route not found", req.URL.Path)
}

// methodNotAllowed recebe do httprouter o cabeçalho Allow já preenchido
func methodNotAllowed(w http.ResponseWriter, req *http.Request) {
	apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Method not allowed", req.Method)
}
