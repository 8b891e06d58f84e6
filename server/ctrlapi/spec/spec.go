package spec

import (
	"fmt"
	"net/http"
)

// Response is what an api handler returns. Body is written as JSON with
// Status, except for 204 responses which have no body.
type Response struct {
	Status   int
	Location string
	Body     interface{}
}

func NewResponse(body interface{}) *Response {
	return &Response{Status: http.StatusOK, Body: body}
}

// NewCreated is the response to a create, pointing to the new resource.
func NewCreated(location string, body interface{}) *Response {
	return &Response{Status: http.StatusCreated, Location: location, Body: body}
}

func NewEmpty() *Response {
	return &Response{Status: http.StatusNoContent}
}

func NewError(status int, message string, a ...interface{}) *Response {
	return &Response{
		Status: status,
		Body:   &Error{Error: fmt.Sprintf(message, a...)},
	}
}

type Error struct {
	Error string `json:"error"`
}

type Artist struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
	Bio  string `json:"bio"`
}

type ArtistWithSongs struct {
	Artist
	SongCount int               `json:"song_count"`
	Songs     []*SongWithGenres `json:"songs"`
}

type RelatedArtist struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Song struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	ArtistID int    `json:"artist_id"`
	Album    string `json:"album"`
	Length   int    `json:"length"`
}

type SongWithGenres struct {
	Song
	Genres []*Genre `json:"genres"`
}

type Genre struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

type GenreWithSongs struct {
	Genre
	Songs []*Song `json:"songs"`
}

type PopularGenre struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	SongCount   int    `json:"song_count"`
}

type SongGenre struct {
	ID    int `json:"id"`
	Song  int `json:"song"`
	Genre int `json:"genre"`
}
