package models

import (
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"
)

// MPRIS metadata keys the decoder requires.
//
// Ref: https://specifications.freedesktop.org/mpris-spec/latest/Track_List_Interface.html
const (
	KeyTitle  = "xesam:title"
	KeyArtist = "xesam:artist"
	KeyLength = "mpris:length"
)

type DecodeErrorKind int

const (
	DecodeMissingKey DecodeErrorKind = iota
	DecodeWrongType
)

// DecodeError reports a required key that is absent from the metadata
// mapping, or present with an unexpected shape.
type DecodeError struct {
	Key  string
	Kind DecodeErrorKind
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case DecodeMissingKey:
		return fmt.Sprintf("metadata decode: missing key %q", e.Key)
	default:
		return fmt.Sprintf("metadata decode: wrong type at key %q", e.Key)
	}
}

// FromMPRIS narrows the player's raw metadata mapping, plus a separately
// fetched position, into a Metadata record stamped with now. All variant
// narrowing lives here; callers only ever see the typed record. No
// partial record is returned on failure.
func FromMPRIS(raw map[string]dbus.Variant, position int64, now time.Time) (*Metadata, error) {
	titleVariant, titleExists := raw[KeyTitle]
	if !titleExists {
		return nil, &DecodeError{Key: KeyTitle, Kind: DecodeMissingKey}
	}
	title, titleIsString := titleVariant.Value().(string)
	if !titleIsString {
		return nil, &DecodeError{Key: KeyTitle, Kind: DecodeWrongType}
	}

	artistVariant, artistExists := raw[KeyArtist]
	if !artistExists {
		return nil, &DecodeError{Key: KeyArtist, Kind: DecodeMissingKey}
	}
	artists, artistsIsList := artistVariant.Value().([]string)
	if !artistsIsList || len(artists) == 0 {
		return nil, &DecodeError{Key: KeyArtist, Kind: DecodeWrongType}
	}

	lengthVariant, lengthExists := raw[KeyLength]
	if !lengthExists {
		return nil, &DecodeError{Key: KeyLength, Kind: DecodeMissingKey}
	}
	length, lengthErr := narrowLength(lengthVariant.Value())
	if lengthErr != nil {
		return nil, lengthErr
	}

	return &Metadata{
		Title:     title,
		Artist:    artists[0],
		Length:    length,
		Position:  position,
		Timestamp: now,
	}, nil
}

// Players disagree on the integer width of mpris:length.
func narrowLength(value interface{}) (int64, error) {
	switch lengthVal := value.(type) {
	case int64:
		return lengthVal, nil
	case int32:
		return int64(lengthVal), nil
	case uint64:
		return int64(lengthVal), nil
	default:
		return 0, &DecodeError{Key: KeyLength, Kind: DecodeWrongType}
	}
}
