package kit

import "errors"

var (
	// ErrManifestNotFound indicates the kit has no manifest file.
	ErrManifestNotFound = errors.New("manifest not found")

	// ErrManifestInvalid indicates the manifest could not be parsed.
	ErrManifestInvalid = errors.New("invalid manifest")

	// ErrEntryNotFound indicates a referenced entry is absent from the kit.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrUnknownCharset indicates the manifest names a charset the IANA
	// registry does not know.
	ErrUnknownCharset = errors.New("unknown charset")

	// ErrEntryNotText indicates an entry did not decode to valid UTF-8.
	ErrEntryNotText = errors.New("entry is not valid text")
)
