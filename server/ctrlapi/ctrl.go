package ctrlapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tunaapi/tuna/db"
	"github.com/tunaapi/tuna/handlerutil"
	"github.com/tunaapi/tuna/server/ctrlapi/params"
	"github.com/tunaapi/tuna/server/ctrlapi/spec"
	"github.com/tunaapi/tuna/server/ctrlbase"
)

type CtxKey int

const (
	CtxParams CtxKey = iota
)

type Controller struct {
	*ctrlbase.Controller
}

func New(base *ctrlbase.Controller) *Controller {
	return &Controller{Controller: base}
}

func writeResp(w http.ResponseWriter, resp *spec.Response) error {
	if resp.Location != "" {
		w.Header().Set("Location", resp.Location)
	}
	if resp.Status == http.StatusNoContent {
		w.WriteHeader(resp.Status)
		return nil
	}
	data, err := json.Marshal(resp.Body)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	_, err = w.Write(data)
	return err
}

type handlerAPI func(r *http.Request) *spec.Response

func (c *Controller) H(h handlerAPI) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		withParams := context.WithValue(r.Context(), CtxParams, params.New(r))
		r = r.WithContext(withParams)
		response := h(r)
		if response == nil {
			handlerutil.Logger(r).Error("api handler returned a nil response")
			return
		}
		if err := writeResp(w, response); err != nil {
			handlerutil.Logger(r).WithError(err).Error("writing api response")
		}
	})
}

// errResponse maps store errors to a status. Anything unexpected is logged
// and reported without detail.
func errResponse(r *http.Request, err error) *spec.Response {
	var refErr *db.ReferenceError
	switch {
	case errors.Is(err, db.ErrNotFound):
		return spec.NewError(http.StatusNotFound, "%v", err)
	case errors.As(err, &refErr):
		return spec.NewError(http.StatusBadRequest, "%v", refErr)
	case errors.Is(err, errPayload):
		return spec.NewError(http.StatusBadRequest, "%v", err)
	default:
		handlerutil.Logger(r).WithError(err).WithField("path", r.URL.Path).Error("api error")
		return spec.NewError(http.StatusInternalServerError, "internal error")
	}
}

// idParam is the {id} of the route.
func idParam(r *http.Request) (int, *spec.Response) {
	params := r.Context().Value(CtxParams).(params.Params)
	id, err := params.GetInt("id")
	if err != nil {
		return 0, spec.NewError(http.StatusBadRequest, "please provide a valid id")
	}
	return id, nil
}
