package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"items-api/internal/services"
	"items-api/pkg/lambda"
)

// Router dispatches request descriptors to the item and health
// handlers. It is transport-independent: the Lambda entrypoint and any
// other hosting adapter hand it a *lambda.Request and forward the
// *lambda.Response as-is.
type Router struct {
	itemHandler   *ItemHandler
	healthHandler *HealthHandler
}

// NewRouter creates a router wired to the given item service
func NewRouter(itemService services.ItemService) *Router {
	return &Router{
		itemHandler:   NewItemHandler(itemService),
		healthHandler: NewHealthHandler(),
	}
}

// Route matches a request to a handler and returns its response.
// Ordered rules:
//
//  1. OPTIONS on any path answers the CORS preflight.
//  2. /health delegates to the health handler, ignoring the method.
//  3. /items delegates to the collection handler.
//  4. /items/{id} delegates to the single-item handler; the ID is the
//     segment after the last slash.
//  5. Anything else is a 404.
//
// A handler error or panic becomes a structured 500 response; nothing
// is fatal to the process.
func (r *Router) Route(ctx context.Context, req *lambda.Request) (resp *lambda.Response) {
	defer func() {
		if rec := recover(); rec != nil {
			logrus.WithFields(logrus.Fields{
				"method": req.Method,
				"path":   req.Path,
				"panic":  rec,
			}).Error("Recovered from panic while routing")
			resp = respond(http.StatusInternalServerError, ErrorResponse{
				Error: fmt.Sprintf("%v", rec),
			})
		}
	}()

	logrus.WithFields(logrus.Fields{
		"method": req.Method,
		"path":   req.Path,
	}).Info("Processing request")

	// Preflight wins over path routing, including unknown paths.
	if req.Method == http.MethodOptions {
		return respond(http.StatusOK, MessageResponse{Message: "CORS preflight successful"})
	}

	var err error
	switch {
	case req.Path == "/health":
		resp, err = r.healthHandler.Handle(ctx, req)

	case req.Path == "/items":
		resp, err = r.itemHandler.HandleCollection(ctx, req)

	case strings.HasPrefix(req.Path, "/items/"):
		itemID := req.Path[strings.LastIndex(req.Path, "/")+1:]
		resp, err = r.itemHandler.HandleSingle(ctx, req, itemID)

	default:
		return respond(http.StatusNotFound, ErrorResponse{Error: "Path not found"})
	}

	if err != nil {
		logrus.WithFields(logrus.Fields{
			"method": req.Method,
			"path":   req.Path,
			"error":  err.Error(),
		}).Error("Request failed")
		return translateError(err)
	}

	return resp
}
