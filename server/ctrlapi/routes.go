package ctrlapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tunaapi/tuna/server/ctrlapi/spec"
)

func AddRoutes(c *Controller, r *mux.Router) {
	get := func(path string, h handlerAPI) { r.Handle(path, c.H(h)).Methods(http.MethodGet) }
	post := func(path string, h handlerAPI) { r.Handle(path, c.H(h)).Methods(http.MethodPost) }
	put := func(path string, h handlerAPI) { r.Handle(path, c.H(h)).Methods(http.MethodPut) }
	del := func(path string, h handlerAPI) { r.Handle(path, c.H(h)).Methods(http.MethodDelete) }

	// artists
	get("/artists", c.ServeGetArtists)
	post("/artists", c.ServeCreateArtist)
	get("/artists/{id:[0-9]+}", c.ServeGetArtist)
	put("/artists/{id:[0-9]+}", c.ServeUpdateArtist)
	del("/artists/{id:[0-9]+}", c.ServeDeleteArtist)
	get("/artists/{id:[0-9]+}/related", c.ServeGetRelatedArtists)
	get("/artists/{id:[0-9]+}/genre", c.ServeGetArtistGenre)

	// songs
	get("/songs", c.ServeGetSongs)
	post("/songs", c.ServeCreateSong)
	get("/songs/{id:[0-9]+}", c.ServeGetSong)
	put("/songs/{id:[0-9]+}", c.ServeUpdateSong)
	del("/songs/{id:[0-9]+}", c.ServeDeleteSong)

	// genres
	get("/genres", c.ServeGetGenres)
	get("/genres/popular", c.ServeGetPopularGenres)
	post("/genres", c.ServeCreateGenre)
	get("/genres/{id:[0-9]+}", c.ServeGetGenre)
	put("/genres/{id:[0-9]+}", c.ServeUpdateGenre)
	del("/genres/{id:[0-9]+}", c.ServeDeleteGenre)

	// song genre tags
	get("/songgenres", c.ServeGetSongGenres)
	post("/songgenres", c.ServeCreateSongGenre)
	get("/songgenres/{id:[0-9]+}", c.ServeGetSongGenre)
	del("/songgenres/{id:[0-9]+}", c.ServeDeleteSongGenre)

	r.NotFoundHandler = c.H(func(r *http.Request) *spec.Response {
		return spec.NewError(http.StatusNotFound, "no route for %s %s", r.Method, r.URL.Path)
	})
	r.MethodNotAllowedHandler = c.H(func(r *http.Request) *spec.Response {
		return spec.NewError(http.StatusMethodNotAllowed, "method %s not allowed on %s", r.Method, r.URL.Path)
	})
}
