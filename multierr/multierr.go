package multierr

import "strings"

type Err []error

func (me Err) Error() string {
	strs := make([]string, 0, len(me))
	for _, err := range me {
		strs = append(strs, err.Error())
	}
	return strings.Join(strs, "; ")
}

func (me *Err) Add(err error) {
	if err == nil {
		return
	}
	*me = append(*me, err)
}

func (me Err) Unwrap() []error {
	return me
}

// OrNil returns nil if nothing was added, so callers can return it directly.
func (me Err) OrNil() error {
	if len(me) == 0 {
		return nil
	}
	return me
}
