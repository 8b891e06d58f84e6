package ctrlapi

import (
	"fmt"
	"net/http"

	"github.com/tunaapi/tuna/server/ctrlapi/spec"
)

func (c *Controller) ServeGetGenres(r *http.Request) *spec.Response {
	genres, err := c.DB.ListGenres()
	if err != nil {
		return errResponse(r, err)
	}
	return spec.NewResponse(spec.NewGenres(genres))
}

func (c *Controller) ServeGetPopularGenres(r *http.Request) *spec.Response {
	ranks, err := c.Catalog.PopularGenres()
	if err != nil {
		return errResponse(r, err)
	}
	return spec.NewResponse(spec.NewPopularGenres(ranks))
}

func (c *Controller) ServeCreateGenre(r *http.Request) *spec.Response {
	var payload genrePayload
	if err := decodePayload(r, &payload); err != nil {
		return errResponse(r, err)
	}
	genre := payload.genre(0)
	if err := c.DB.CreateGenre(genre); err != nil {
		return errResponse(r, err)
	}
	location := c.Path(fmt.Sprintf("/genres/%d", genre.ID))
	return spec.NewCreated(location, spec.NewGenre(genre))
}

func (c *Controller) ServeGetGenre(r *http.Request) *spec.Response {
	id, resp := idParam(r)
	if resp != nil {
		return resp
	}
	view, err := c.Catalog.GenreWithSongs(id)
	if err != nil {
		return errResponse(r, err)
	}
	return spec.NewResponse(spec.NewGenreWithSongs(view))
}

func (c *Controller) ServeUpdateGenre(r *http.Request) *spec.Response {
	id, resp := idParam(r)
	if resp != nil {
		return resp
	}
	var payload genrePayload
	if err := decodePayload(r, &payload); err != nil {
		return errResponse(r, err)
	}
	genre := payload.genre(id)
	if err := c.DB.UpdateGenre(genre); err != nil {
		return errResponse(r, err)
	}
	return spec.NewResponse(spec.NewGenre(genre))
}

func (c *Controller) ServeDeleteGenre(r *http.Request) *spec.Response {
	id, resp := idParam(r)
	if resp != nil {
		return resp
	}
	if err := c.DB.DeleteGenre(id); err != nil {
		return errResponse(r, err)
	}
	return spec.NewEmpty()
}
