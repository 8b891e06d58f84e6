package ctrlapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"

	"github.com/tunaapi/tuna/db"
	"github.com/tunaapi/tuna/multierr"
)

var errPayload = errors.New("bad payload")

const maxPayloadBytes = 1 << 20

type artistPayload struct {
	Name string `json:"name"`
	Age  uint   `json:"age"`
	Bio  string `json:"bio"`
}

func (p *artistPayload) required() []string { return []string{"name", "age", "bio"} }

func (p *artistPayload) artist(id int) *db.Artist {
	return &db.Artist{ID: id, Name: p.Name, Age: int(p.Age), Bio: p.Bio}
}

type songPayload struct {
	Title    string `json:"title"`
	ArtistID int    `json:"artist_id"`
	Album    string `json:"album"`
	Length   uint   `json:"length"`
}

func (p *songPayload) required() []string { return []string{"title", "artist_id", "album", "length"} }

func (p *songPayload) song(id int) *db.Song {
	return &db.Song{ID: id, Title: p.Title, ArtistID: p.ArtistID, Album: p.Album, Length: int(p.Length)}
}

type genrePayload struct {
	Description string `json:"description"`
}

func (p *genrePayload) required() []string { return []string{"description"} }

func (p *genrePayload) genre(id int) *db.Genre {
	return &db.Genre{ID: id, Description: p.Description}
}

type songGenrePayload struct {
	Song  int `json:"song"`
	Genre int `json:"genre"`
}

func (p *songGenrePayload) required() []string { return []string{"song", "genre"} }

func (p *songGenrePayload) songGenre() *db.SongGenre {
	return &db.SongGenre{SongID: p.Song, GenreID: p.Genre}
}

type payload interface {
	required() []string
}

// decodePayload reads a JSON object from the request body into out. Every
// required field must be present and not null. Numbers must be integers, and
// unsigned fields reject negative values and values that do not fit an int.
func decodePayload(r *http.Request, out payload) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxPayloadBytes))
	dec.UseNumber()
	var fields map[string]interface{}
	if err := dec.Decode(&fields); err != nil {
		return fmt.Errorf("%w: reading json object: %v", errPayload, err)
	}
	if fields == nil {
		return fmt.Errorf("%w: expected a json object", errPayload)
	}

	var missing multierr.Err
	for _, key := range out.required() {
		if v, ok := fields[key]; !ok || v == nil {
			missing.Add(fmt.Errorf("please provide a %q field", key))
		}
	}
	if err := missing.OrNil(); err != nil {
		return fmt.Errorf("%w: %v", errPayload, err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		Result:     out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(rejectNumberAsString, rejectUintOverflow),
	})
	if err != nil {
		return fmt.Errorf("create decoder: %w", err)
	}
	if err := decoder.Decode(fields); err != nil {
		return fmt.Errorf("%w: %v", errPayload, err)
	}
	return nil
}

var numberType = reflect.TypeOf(json.Number(""))

// rejectNumberAsString stops numbers decoding into string fields, json.Number
// being a string underneath.
func rejectNumberAsString(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from == numberType && to.Kind() == reflect.String {
		return nil, fmt.Errorf("expected a string, got number %v", data)
	}
	return data, nil
}

// rejectUintOverflow stops unsigned fields taking values that would wrap
// negative once stored as an int.
func rejectUintOverflow(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from != numberType || to.Kind() != reflect.Uint {
		return data, nil
	}
	n, err := strconv.ParseUint(string(data.(json.Number)), 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return data, nil
	}
	if err != nil || n > math.MaxInt {
		return nil, fmt.Errorf("%v is too large", data)
	}
	return data, nil
}
