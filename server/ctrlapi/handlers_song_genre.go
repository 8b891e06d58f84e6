package ctrlapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tunaapi/tuna/db"
	"github.com/tunaapi/tuna/server/ctrlapi/params"
	"github.com/tunaapi/tuna/server/ctrlapi/spec"
)

func (c *Controller) ServeGetSongGenres(r *http.Request) *spec.Response {
	query := r.Context().Value(CtxParams).(params.Params)
	var filter db.SongGenreFilter
	for key, dst := range map[string]*[]int{"song": &filter.SongIDs, "genre": &filter.GenreIDs} {
		ids, err := query.GetIntList(key)
		if err != nil && !errors.Is(err, params.ErrNoValues) {
			return spec.NewError(http.StatusBadRequest, "%v", err)
		}
		*dst = ids
	}
	songGenres, err := c.DB.ListSongGenres(filter)
	if err != nil {
		return errResponse(r, err)
	}
	return spec.NewResponse(spec.NewSongGenres(songGenres))
}

func (c *Controller) ServeCreateSongGenre(r *http.Request) *spec.Response {
	var payload songGenrePayload
	if err := decodePayload(r, &payload); err != nil {
		return errResponse(r, err)
	}
	songGenre := payload.songGenre()
	if err := c.DB.CreateSongGenre(songGenre); err != nil {
		return errResponse(r, err)
	}
	location := c.Path(fmt.Sprintf("/songgenres/%d", songGenre.ID))
	return spec.NewCreated(location, spec.NewSongGenre(songGenre))
}

func (c *Controller) ServeGetSongGenre(r *http.Request) *spec.Response {
	id, resp := idParam(r)
	if resp != nil {
		return resp
	}
	songGenre, err := c.DB.GetSongGenre(id)
	if err != nil {
		return errResponse(r, err)
	}
	return spec.NewResponse(spec.NewSongGenre(songGenre))
}

func (c *Controller) ServeDeleteSongGenre(r *http.Request) *spec.Response {
	id, resp := idParam(r)
	if resp != nil {
		return resp
	}
	if err := c.DB.DeleteSongGenre(id); err != nil {
		return errResponse(r, err)
	}
	return spec.NewEmpty()
}
