package ctrlapi

import (
	"fmt"
	"net/http"

	"github.com/tunaapi/tuna/server/ctrlapi/spec"
)

func (c *Controller) ServeGetArtists(r *http.Request) *spec.Response {
	artists, err := c.DB.ListArtists()
	if err != nil {
		return errResponse(r, err)
	}
	return spec.NewResponse(spec.NewArtists(artists))
}

func (c *Controller) ServeCreateArtist(r *http.Request) *spec.Response {
	var payload artistPayload
	if err := decodePayload(r, &payload); err != nil {
		return errResponse(r, err)
	}
	artist := payload.artist(0)
	if err := c.DB.CreateArtist(artist); err != nil {
		return errResponse(r, err)
	}
	location := c.Path(fmt.Sprintf("/artists/%d", artist.ID))
	return spec.NewCreated(location, spec.NewArtist(artist))
}

func (c *Controller) ServeGetArtist(r *http.Request) *spec.Response {
	id, resp := idParam(r)
	if resp != nil {
		return resp
	}
	view, err := c.Catalog.ArtistWithSongs(id)
	if err != nil {
		return errResponse(r, err)
	}
	return spec.NewResponse(spec.NewArtistWithSongs(view))
}

func (c *Controller) ServeUpdateArtist(r *http.Request) *spec.Response {
	id, resp := idParam(r)
	if resp != nil {
		return resp
	}
	var payload artistPayload
	if err := decodePayload(r, &payload); err != nil {
		return errResponse(r, err)
	}
	artist := payload.artist(id)
	if err := c.DB.UpdateArtist(artist); err != nil {
		return errResponse(r, err)
	}
	return spec.NewResponse(spec.NewArtist(artist))
}

func (c *Controller) ServeDeleteArtist(r *http.Request) *spec.Response {
	id, resp := idParam(r)
	if resp != nil {
		return resp
	}
	if err := c.DB.DeleteArtist(id); err != nil {
		return errResponse(r, err)
	}
	return spec.NewEmpty()
}

func (c *Controller) ServeGetRelatedArtists(r *http.Request) *spec.Response {
	id, resp := idParam(r)
	if resp != nil {
		return resp
	}
	related, err := c.Catalog.RelatedArtists(id)
	if err != nil {
		return errResponse(r, err)
	}
	return spec.NewResponse(spec.NewRelatedArtists(related))
}

// ServeGetArtistGenre responds with the artist's most common genre, or null
// if none of their songs are tagged.
func (c *Controller) ServeGetArtistGenre(r *http.Request) *spec.Response {
	id, resp := idParam(r)
	if resp != nil {
		return resp
	}
	genre, err := c.Catalog.MostCommonGenre(id)
	if err != nil {
		return errResponse(r, err)
	}
	if genre == nil {
		return spec.NewResponse(nil)
	}
	return spec.NewResponse(spec.NewGenre(genre))
}
