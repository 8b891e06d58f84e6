package ctrlapi

import (
	"fmt"
	"net/http"

	"github.com/tunaapi/tuna/db"
	"github.com/tunaapi/tuna/server/ctrlapi/params"
	"github.com/tunaapi/tuna/server/ctrlapi/spec"
)

func (c *Controller) ServeGetSongs(r *http.Request) *spec.Response {
	params := r.Context().Value(CtxParams).(params.Params)
	filter := db.SongFilter{
		Title: params.GetOr("title", ""),
		Album: params.GetOr("album", ""),
	}
	var err error
	if filter.MinLength, err = params.GetOptFloat("min_length"); err != nil {
		return spec.NewError(http.StatusBadRequest, "%v", err)
	}
	if filter.MaxLength, err = params.GetOptFloat("max_length"); err != nil {
		return spec.NewError(http.StatusBadRequest, "%v", err)
	}
	songs, err := c.DB.ListSongs(filter)
	if err != nil {
		return errResponse(r, err)
	}
	return spec.NewResponse(spec.NewSongs(songs))
}

func (c *Controller) ServeCreateSong(r *http.Request) *spec.Response {
	var payload songPayload
	if err := decodePayload(r, &payload); err != nil {
		return errResponse(r, err)
	}
	song := payload.song(0)
	if err := c.DB.CreateSong(song); err != nil {
		return errResponse(r, err)
	}
	location := c.Path(fmt.Sprintf("/songs/%d", song.ID))
	return spec.NewCreated(location, spec.NewSong(song))
}

func (c *Controller) ServeGetSong(r *http.Request) *spec.Response {
	id, resp := idParam(r)
	if resp != nil {
		return resp
	}
	view, err := c.Catalog.SongWithGenres(id)
	if err != nil {
		return errResponse(r, err)
	}
	return spec.NewResponse(spec.NewSongWithGenres(view))
}

func (c *Controller) ServeUpdateSong(r *http.Request) *spec.Response {
	id, resp := idParam(r)
	if resp != nil {
		return resp
	}
	var payload songPayload
	if err := decodePayload(r, &payload); err != nil {
		return errResponse(r, err)
	}
	song := payload.song(id)
	if err := c.DB.UpdateSong(song); err != nil {
		return errResponse(r, err)
	}
	return spec.NewResponse(spec.NewSong(song))
}

func (c *Controller) ServeDeleteSong(r *http.Request) *spec.Response {
	id, resp := idParam(r)
	if resp != nil {
		return resp
	}
	if err := c.DB.DeleteSong(id); err != nil {
		return errResponse(r, err)
	}
	return spec.NewEmpty()
}
