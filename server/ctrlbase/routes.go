package ctrlbase

import (
	"fmt"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/tunaapi/tuna/handlerutil"
)

func AddRoutes(c *Controller, r *mux.Router, logHTTP bool) {
	r.Use(mux.MiddlewareFunc(Middleware(logHTTP)))

	r.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "OK")
	})
}

// Middleware is the stack every route is served through, outermost first.
func Middleware(logHTTP bool) handlerutil.Middleware {
	stack := []handlerutil.Middleware{handlerutil.WithRequestID}
	if logHTTP {
		stack = append(stack, handlerutil.Log)
	}
	stack = append(stack,
		handlerutil.BasicCORS,
		handlers.RecoveryHandler(
			handlers.RecoveryLogger(logrus.WithField("component", "recovery")),
			handlers.PrintRecoveryStack(true),
		),
		handlers.CompressHandler,
	)
	return handlerutil.Chain(stack...)
}
