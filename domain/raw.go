package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// RawKind tells which side of the number | string union a Raw carries.
type RawKind int

const (
	RawEmpty RawKind = iota
	RawNumber
	RawString
	// RawInvalid marks a JSON value that is neither a number nor a string.
	RawInvalid
)

// Raw is an unvalidated caller input: either a number or its decimal text.
// The zero value is empty and fails every validation.
type Raw struct {
	kind RawKind
	num  float64
	text string
}

func Num(v float64) Raw { return Raw{kind: RawNumber, num: v} }

func Int(v int) Raw { return Raw{kind: RawNumber, num: float64(v)} }

func Str(s string) Raw { return Raw{kind: RawString, text: s} }

func (r Raw) Kind() RawKind { return r.kind }

func (r Raw) IsEmpty() bool { return r.kind == RawEmpty }

// Number returns the numeric side of the union.
func (r Raw) Number() (float64, bool) {
	return r.num, r.kind == RawNumber
}

// Text returns the string side of the union.
func (r Raw) Text() (string, bool) {
	return r.text, r.kind == RawString
}

func (r Raw) String() string {
	switch r.kind {
	case RawNumber:
		return strconv.FormatFloat(r.num, 'f', -1, 64)
	case RawString, RawInvalid:
		return r.text
	}
	return ""
}

// Key renders the value with its kind so that 5 and "5.0" never collide.
func (r Raw) Key() string {
	switch r.kind {
	case RawNumber:
		return "n:" + r.String()
	case RawString:
		return "s:" + r.text
	case RawInvalid:
		return "x:" + r.text
	}
	return "-"
}

// UnmarshalJSON accepts JSON numbers and strings. Any other JSON value is
// kept as RawInvalid so validation can report it like any unparseable input.
func (r *Raw) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*r = Raw{}
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = Str(s)
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		*r = Raw{kind: RawInvalid, text: string(b)}
		return nil
	}
	*r = Num(f)
	return nil
}

func (r Raw) MarshalJSON() ([]byte, error) {
	switch r.kind {
	case RawNumber:
		return json.Marshal(r.num)
	case RawString, RawInvalid:
		return json.Marshal(r.text)
	}
	return []byte("null"), nil
}
