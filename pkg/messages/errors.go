package messages

import "errors"

var (
	ErrParsingCancelled   = errors.New("message catalog parsing cancelled")
	ErrFailedToParseYAML  = errors.New("failed to parse YAML content")
	ErrFailedToParseJSON  = errors.New("failed to parse JSON content")
	ErrInvalidStructure   = errors.New("invalid message catalog structure")
	ErrUnsupportedFormat  = errors.New("unsupported message catalog format")
	ErrFailedToReadFile   = errors.New("failed to read message catalog file")
	ErrUnknownMessage     = errors.New("unknown message code or key")
	ErrEmptyTemplate      = errors.New("message template is empty")
	ErrFailedToLoadConfig = errors.New("failed to load message catalog config")
)
