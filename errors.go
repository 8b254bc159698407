package gpc

import "errors"

// Errors returned by Encode and Decode. Returned errors wrap one of these,
// use errors.Is or KindOf to classify them.
var (
	ErrInvalidLatitude      = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude     = errors.New("longitude must be between -180 and 180")
	ErrInvalidCodeLength    = errors.New("length of grid point code must be 11")
	ErrInvalidCodeCharacter = errors.New("invalid character in grid point code")
	ErrInvalidCodeValue     = errors.New("grid point code value out of range")
)

// ErrorKind classifies an error returned by this package.
type ErrorKind byte

// ErrorKind constants
const (
	KindNone ErrorKind = iota
	KindInvalidLatitude
	KindInvalidLongitude
	KindInvalidCodeLength
	KindInvalidCodeCharacter
	KindInvalidCodeValue
)

var errorKinds = [...]struct {
	kind ErrorKind
	err  error
}{
	{KindInvalidLatitude, ErrInvalidLatitude},
	{KindInvalidLongitude, ErrInvalidLongitude},
	{KindInvalidCodeLength, ErrInvalidCodeLength},
	{KindInvalidCodeCharacter, ErrInvalidCodeCharacter},
	{KindInvalidCodeValue, ErrInvalidCodeValue},
}

// KindOf returns the kind of err, or KindNone if err is nil or was not
// produced by this package.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindNone
}

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidLatitude:
		return "InvalidLatitude"
	case KindInvalidLongitude:
		return "InvalidLongitude"
	case KindInvalidCodeLength:
		return "InvalidCodeLength"
	case KindInvalidCodeCharacter:
		return "InvalidCodeCharacter"
	case KindInvalidCodeValue:
		return "InvalidCodeValue"
	}
	return "None"
}
