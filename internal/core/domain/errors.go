package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidArgument is returned for blank paths, malformed URLs and unknown parser names.
	ErrInvalidArgument = zerr.New("invalid argument")

	// ErrNotFound is returned when a file, resource or URL does not exist.
	ErrNotFound = zerr.New("document source not found")

	// ErrIO is returned when a valid source cannot be read or fetched.
	ErrIO = zerr.New("failed to read document source")

	// ErrParseFailed is returned when source content is not a valid document.
	ErrParseFailed = zerr.New("failed to parse document")

	// ErrLoadFailure is returned when a source resolves to no document at all.
	ErrLoadFailure = zerr.New("failed to load")

	// ErrUnrepresentableDocument is returned when a decoded tree has no JSON form.
	ErrUnrepresentableDocument = zerr.New("document cannot be represented as JSON")

	// ErrMissingResolver is returned when a cache is built without a source resolver.
	ErrMissingResolver = zerr.New("document cache requires a source resolver")

	// ErrUnknownParser is returned when a parser name is not recognized.
	ErrUnknownParser = zerr.New("unknown parser, expected 'json' or 'yaml'")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigVersion is returned when the config file declares an unknown schema version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrNoPathsSpecified is returned when the load command receives no paths.
	ErrNoPathsSpecified = zerr.New("no paths specified")
)
