package fimapi

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorFamily is the top-level category of an API error. Each family
// corresponds to the HTTP status code FimFiction returns alongside it.
type ErrorFamily int

const (
	// FamilyMalformed covers 400 responses: the request itself could not be read.
	FamilyMalformed ErrorFamily = 400
	// FamilyForbidden covers 403 responses: the authenticated user or token may
	// not perform the requested action.
	FamilyForbidden ErrorFamily = 403
	// FamilyNotFound covers 404 responses.
	FamilyNotFound ErrorFamily = 404
	// FamilyUnprocessable covers 422 responses: the request was read but its
	// contents were rejected.
	FamilyUnprocessable ErrorFamily = 422
	// FamilyRateLimited covers 429 responses. It carries no subkind.
	FamilyRateLimited ErrorFamily = 429
)

// String implements fmt.Stringer.
func (f ErrorFamily) String() string {
	switch f {
	case FamilyMalformed:
		return "malformed request"
	case FamilyForbidden:
		return "forbidden"
	case FamilyNotFound:
		return "not found"
	case FamilyUnprocessable:
		return "unprocessable entity"
	case FamilyRateLimited:
		return "rate limited"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// ErrorSubkind identifies the specific cause of an API error within its
// family. SubkindNone is used for families that carry no subkind (429).
type ErrorSubkind int

const (
	SubkindNone ErrorSubkind = iota

	// 400 subkinds. Subindex 0 is unused by the API.
	MalformedBody    // the request body was not valid JSON
	MalformedInclude // the requested included resource was not valid

	// 403 subkinds.
	ForbiddenInvalidPermission // the authenticated user may not perform the action
	ForbiddenMissingScope      // the token lacks the scope required for the action
	ForbiddenInvalidToken      // the token used for the request was not valid

	// 404 subkinds.
	NotFoundResource           // the requested resource does not exist
	NotFoundInvalidApplication // no application exists for the submitted client_id
	NotFoundEndpointMissing    // the requested endpoint does not exist

	// 422 subkinds.
	UnprocessableMissingParameter
	UnprocessableInvalidArgument
	UnprocessableIncorrectSecret
	UnprocessableInvalidGrantType
	UnprocessableMissingAuthHeader
	UnprocessableInvalidAttributes
	UnprocessableUnsupportedAttribute
	UnprocessableInvalidFilter
	UnprocessableInvalidPagination
	UnprocessableMalformedAuthHeader
	UnprocessableInvalidAttribute
	UnprocessableInvalidSortField
	UnprocessableMalformedSortField
)

// subkindMessages holds the human-readable descriptions published in the
// FimFiction API documentation for each error code.
var subkindMessages = map[ErrorSubkind]string{
	MalformedBody:                     "the body of the request was not valid",
	MalformedInclude:                  "the requested included resource was not valid",
	ForbiddenInvalidPermission:        "the authenticated user is not allowed to perform that action",
	ForbiddenMissingScope:             "the client is missing the required scope to perform that action",
	ForbiddenInvalidToken:             "the token used for the request was not valid",
	NotFoundResource:                  "the requested resource was not found",
	NotFoundInvalidApplication:        "the requested application does not exist",
	NotFoundEndpointMissing:           "the requested endpoint does not exist",
	UnprocessableMissingParameter:     "a parameter required for the request was not present",
	UnprocessableInvalidArgument:      "an argument was invalid",
	UnprocessableIncorrectSecret:      "the secret submitted for a token exchange was incorrect",
	UnprocessableInvalidGrantType:     "the grant type provided as part of the token exchange was not permitted",
	UnprocessableMissingAuthHeader:    "the authorization header was missing",
	UnprocessableInvalidAttributes:    "some or all of the submitted attributes were not valid",
	UnprocessableUnsupportedAttribute: "one of the attributes submitted is not supported",
	UnprocessableInvalidFilter:        "the provided filter is not supported",
	UnprocessableInvalidPagination:    "one or more of the pagination properties provided was not valid",
	UnprocessableMalformedAuthHeader:  "the HTTP authorization header was malformed",
	UnprocessableInvalidAttribute:     "one or more of the provided attributes was not valid",
	UnprocessableInvalidSortField:     "the provided sort field is not valid",
	UnprocessableMalformedSortField:   "the provided sort field was malformed",
}

// String implements fmt.Stringer.
func (s ErrorSubkind) String() string {
	if msg, ok := subkindMessages[s]; ok {
		return msg
	}

	if s == SubkindNone {
		return "none"
	}

	return fmt.Sprintf("subkind(%d)", int(s))
}

// ErrorKind pairs an error family with the specific cause within it. For
// FamilyRateLimited the subkind is always SubkindNone.
type ErrorKind struct {
	Family  ErrorFamily
	Subkind ErrorSubkind
}

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	if k.Family == FamilyRateLimited {
		return "you are being rate limited"
	}

	if k.Subkind == SubkindNone {
		return k.Family.String()
	}

	return fmt.Sprintf("%s: %s", k.Family, k.Subkind)
}

// Threshold above which 422 codes switch from the tens encoding (422*10+idx)
// to the hundreds encoding (422*100+idx). The upstream API uses both; codes in
// either space must decode to the same subkinds.
const largeCodeThreshold = 10000

// Subindex tables, keyed by the low digit(s) of the wire code.
var (
	malformedSubkinds = map[uint64]ErrorSubkind{
		1: MalformedBody,
		2: MalformedInclude,
	}

	forbiddenSubkinds = map[uint64]ErrorSubkind{
		0: ForbiddenInvalidPermission,
		1: ForbiddenMissingScope,
		2: ForbiddenInvalidToken,
	}

	notFoundSubkinds = map[uint64]ErrorSubkind{
		0: NotFoundResource,
		1: NotFoundInvalidApplication,
		2: NotFoundEndpointMissing,
	}

	unprocessableSubkinds = map[uint64]ErrorSubkind{
		0:  UnprocessableMissingParameter,
		1:  UnprocessableInvalidArgument,
		2:  UnprocessableIncorrectSecret,
		3:  UnprocessableInvalidGrantType,
		4:  UnprocessableMissingAuthHeader,
		5:  UnprocessableInvalidAttributes,
		6:  UnprocessableUnsupportedAttribute,
		7:  UnprocessableInvalidFilter,
		8:  UnprocessableInvalidPagination,
		9:  UnprocessableMalformedAuthHeader,
		10: UnprocessableInvalidAttribute,
		11: UnprocessableInvalidSortField,
		12: UnprocessableMalformedSortField,
	}
)

// DecodeErrorCode maps a numeric wire code from the API error envelope to its
// typed (family, subkind) pair.
//
// For the 400, 403, and 404 families the code is family*10+subindex. The 422
// family uses two encodings: codes below 10000 are 422*10+subindex (subindex
// 0-9), codes at or above 10000 are 422*100+subindex (subindex 0-12). Any code
// whose leading digits are 429 decodes to FamilyRateLimited regardless of the
// remainder. Every other code fails with an *InvalidErrorCodeError carrying
// the original code.
func DecodeErrorCode(code uint64) (ErrorKind, error) {
	if code >= largeCodeThreshold {
		if code/100 == 422 {
			return decodeSubkind(FamilyUnprocessable, code, code%100, unprocessableSubkinds)
		}

		return ErrorKind{}, &InvalidErrorCodeError{Code: code}
	}

	switch code / 10 {
	case 400:
		return decodeSubkind(FamilyMalformed, code, code%10, malformedSubkinds)
	case 403:
		return decodeSubkind(FamilyForbidden, code, code%10, forbiddenSubkinds)
	case 404:
		return decodeSubkind(FamilyNotFound, code, code%10, notFoundSubkinds)
	case 422:
		return decodeSubkind(FamilyUnprocessable, code, code%10, unprocessableSubkinds)
	case 429:
		return ErrorKind{Family: FamilyRateLimited, Subkind: SubkindNone}, nil
	default:
		return ErrorKind{}, &InvalidErrorCodeError{Code: code}
	}
}

func decodeSubkind(family ErrorFamily, code, idx uint64, table map[uint64]ErrorSubkind) (ErrorKind, error) {
	subkind, ok := table[idx]
	if !ok {
		return ErrorKind{}, &InvalidErrorCodeError{Code: code}
	}

	return ErrorKind{Family: family, Subkind: subkind}, nil
}

// InvalidErrorCodeError reports a server error response that could not be
// mapped to the known taxonomy. Either the numeric code was unrecognized
// (Code is set and Raw is nil), or the error envelope's shape prevented
// extracting any code at all (Raw holds the offending JSON).
type InvalidErrorCodeError struct {
	Code uint64
	Raw  json.RawMessage
}

// Error implements the error interface.
func (e *InvalidErrorCodeError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("could not parse received error value: %s", string(e.Raw))
	}

	return fmt.Sprintf("invalid error code: %d", e.Code)
}

// APIError is a decoded error returned by the FimFiction API. Meta carries
// the envelope's optional meta value unmodified; it defaults to JSON null.
type APIError struct {
	Kind ErrorKind
	Meta json.RawMessage
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.Meta) > 0 && string(e.Meta) != "null" {
		return fmt.Sprintf("API error: %s: %s", e.Kind, string(e.Meta))
	}

	return fmt.Sprintf("API error: %s", e.Kind)
}

// ServerError reports a 5xx response. The API does not promise a structured
// body for server errors, so none is parsed.
type ServerError struct {
	StatusCode int
	Status     string
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("server error: %s", e.Status)
	}

	return fmt.Sprintf("server error: status %d", e.StatusCode)
}

// WireError is one element of the error envelope's errors array. Code is a
// pointer so that an envelope missing the field can be told apart from a
// literal zero.
type WireError struct {
	Code *uint64         `json:"code" yaml:"code"`
	Meta json.RawMessage `json:"meta,omitempty" yaml:"-"`
}

// ResponseError is the JSON error envelope the API returns on 4xx responses.
type ResponseError struct {
	Errors []WireError `json:"errors"`
}

// FirstError returns the first wire error or nil.
func (e *ResponseError) FirstError() *WireError {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// DecodeErrorResponse reconstructs a typed *APIError from a 4xx response
// body. A body that is not a valid envelope, has no errors array element, or
// lacks a numeric code yields an *InvalidErrorCodeError carrying the raw
// offending JSON; an unrecognized code yields one carrying the code. It never
// panics, whatever the body contains.
func DecodeErrorResponse(data []byte) (*APIError, error) {
	var envelope ResponseError

	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return nil, &InvalidErrorCodeError{Raw: rawCopy(data)}
	}

	first := envelope.FirstError()
	if first == nil || first.Code == nil {
		return nil, &InvalidErrorCodeError{Raw: rawCopy(data)}
	}

	kind, err := DecodeErrorCode(*first.Code)
	if err != nil {
		return nil, err
	}

	meta := first.Meta
	if meta == nil {
		meta = json.RawMessage("null")
	}

	return &APIError{Kind: kind, Meta: meta}, nil
}

// ErrorFromResponse classifies a response by status class: a typed *APIError
// (or *InvalidErrorCodeError) for 4xx, a *ServerError for 5xx, nil otherwise.
func ErrorFromResponse(statusCode int, status string, body []byte) error {
	switch {
	case statusCode >= 400 && statusCode < 500:
		apiErr, err := DecodeErrorResponse(body)
		if err != nil {
			return err
		}

		return apiErr
	case statusCode >= 500:
		return &ServerError{StatusCode: statusCode, Status: status}
	default:
		return nil
	}
}

func rawCopy(data []byte) json.RawMessage {
	raw := make(json.RawMessage, len(data))
	copy(raw, data)

	return raw
}

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired           = errors.New("config is required")
	ErrNoCredentials            = errors.New("no credentials provided")
	ErrMalformedTokenResponse   = errors.New("token response missing access_token")
	ErrStaticTokenCannotRefresh = errors.New("static token cannot be refreshed")
)

// IsMalformed checks if the error is a 400-family API error.
func IsMalformed(err error) bool {
	return hasFamily(err, FamilyMalformed)
}

// IsForbidden checks if the error is a 403-family API error.
func IsForbidden(err error) bool {
	return hasFamily(err, FamilyForbidden)
}

// IsNotFound checks if the error is a 404-family API error.
func IsNotFound(err error) bool {
	return hasFamily(err, FamilyNotFound)
}

// IsUnprocessable checks if the error is a 422-family API error.
func IsUnprocessable(err error) bool {
	return hasFamily(err, FamilyUnprocessable)
}

// IsRateLimited checks if the error is a 429 API error.
func IsRateLimited(err error) bool {
	return hasFamily(err, FamilyRateLimited)
}

// IsInvalidToken checks if the error reports an invalid bearer token. Callers
// typically re-authenticate when this returns true.
func IsInvalidToken(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind.Family == FamilyForbidden && apiErr.Kind.Subkind == ForbiddenInvalidToken
	}

	return false
}

func hasFamily(err error, family ErrorFamily) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind.Family == family
	}

	return false
}
