package errs

import "errors"

var (
	ErrBadHTTPStatus     = errors.New("bad HTTP status")
	ErrDomainNotFound    = errors.New("domain not found")
	ErrNameColumnMissing = errors.New("name column is missing")
	ErrRequestEncode     = errors.New("cannot encode request")
	ErrUnmarshalResponse = errors.New("cannot unmarshal response")
	ErrZoneIDNotSet      = errors.New("hosted zone id is not set")
	ErrZoneNotCreated    = errors.New("hosted zone was not created")
)
