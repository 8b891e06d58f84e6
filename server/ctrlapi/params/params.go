// package params provides methods on url.Values for parsing query and path
// params for the api
//
// the format of the functions are:
//
//	`Get[Or|Opt][Int|Float][List]`
//
// first component (key selection):
//
//	""    -> lookup the key as usual, err if not found
//	"Or"  -> lookup the key as usual, return `or` if not found or invalid
//	"Opt" -> lookup the key as usual, return nil if not found, err if invalid
//
// second component (type selection):
//
//	""      -> parse the value as a string
//	"Int"   -> parse the value as an integer
//	"Float" -> parse the value as a finite decimal number
//
// last component (list parsing with stacked keys, eg. `?a=1&a=2&a=3`):
//
//	""     -> return the first value, eg. `1`
//	"List" -> return all values, eg. `{1, 2, 3}`
package params

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
)

var (
	ErrNoValues  = errors.New("no values provided")
	ErrNotFinite = errors.New("not a finite number")
)

func parseStr(in string) (string, error) { return in, nil }
func parseInt(in string) (int, error)    { return strconv.Atoi(in) }

func parseFloat(in string) (float64, error) {
	f, err := strconv.ParseFloat(in, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("parsing %q: %w", in, ErrNotFinite)
	}
	return f, nil
}

func parse(values []string, i interface{}) error {
	if len(values) == 0 {
		return ErrNoValues
	}
	var err error
	switch v := i.(type) {
	case *string:
		*v, err = parseStr(values[0])
	case *int:
		*v, err = parseInt(values[0])
	case *float64:
		*v, err = parseFloat(values[0])
	case *[]int:
		for _, value := range values {
			parsed, err := parseInt(value)
			if err != nil {
				return err
			}
			*v = append(*v, parsed)
		}
	}
	return err
}

type Params url.Values

// New collects the query params and the route's path variables. Path
// variables win over query params of the same name.
func New(r *http.Request) Params {
	params := r.URL.Query()
	for k, v := range mux.Vars(r) {
		params[k] = []string{v}
	}
	return Params(params)
}

func (p Params) get(key string) []string {
	return p[key]
}

// ** begin str {get or}

func (p Params) GetOr(key string, or string) string {
	var ret string
	if err := parse(p.get(key), &ret); err == nil {
		return ret
	}
	return or
}

// ** begin int {get, get opt}

func (p Params) GetInt(key string) (int, error) {
	var ret int
	if err := parse(p.get(key), &ret); err != nil {
		return ret, fmt.Errorf("param %q: %w", key, err)
	}
	return ret, nil
}

func (p Params) GetOptInt(key string) (*int, error) {
	values := p.get(key)
	if len(values) == 0 {
		return nil, nil
	}
	var ret int
	if err := parse(values, &ret); err != nil {
		return nil, fmt.Errorf("param %q: %w", key, err)
	}
	return &ret, nil
}

// ** begin float {get opt}

func (p Params) GetOptFloat(key string) (*float64, error) {
	values := p.get(key)
	if len(values) == 0 {
		return nil, nil
	}
	var ret float64
	if err := parse(values, &ret); err != nil {
		return nil, fmt.Errorf("param %q: %w", key, err)
	}
	return &ret, nil
}

// ** begin []int {get}

func (p Params) GetIntList(key string) ([]int, error) {
	var ret []int
	if err := parse(p.get(key), &ret); err != nil {
		return nil, fmt.Errorf("param %q: %w", key, err)
	}
	return ret, nil
}
