package codec

import "errors"

var (
	// ErrCodeOverflow signals a decoded code point that does not fit the
	// requested storage type.
	ErrCodeOverflow = errors.New("codec: code point overflows storage type")
	// ErrMalformed signals an encoded sequence rejected by Validate.
	ErrMalformed = errors.New("codec: malformed encoded sequence")
)
