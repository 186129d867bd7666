package gw2

import (
	"encoding/json"

	"github.com/fivetwenty-io/gw2api/internal/constants"
)

// apiMessage is the error body the API sends with most error statuses.
type apiMessage struct {
	Text string `json:"text"`
}

// Classify maps a raw response onto the error taxonomy. 200 and 206 bodies
// are decoded into target; every other status yields an *Error. A 206 is a
// partial result set, which is a success.
func Classify(status int, body []byte, target any) error {
	switch status {
	case constants.HTTPStatusOK, constants.HTTPStatusPartialContent:
		err := json.Unmarshal(body, target)
		if err != nil {
			return &Error{Kind: ErrorKindDecode, Status: status, Err: err}
		}

		return nil
	case constants.HTTPStatusForbidden:
		return statusError(ErrorKindForbidden, status, body)
	case constants.HTTPStatusNotFound:
		return statusError(ErrorKindNotFound, status, body)
	case constants.HTTPStatusRequestTimeout:
		return statusError(ErrorKindTimeout, status, body)
	case constants.HTTPStatusServiceUnavailable:
		return statusError(ErrorKindEndpointDisabled, status, body)
	default:
		return statusError(ErrorKindUnexpectedStatus, status, body)
	}
}

func statusError(kind ErrorKind, status int, body []byte) *Error {
	var msg apiMessage

	// The body is informational only; an unparsable one leaves Detail empty.
	_ = json.Unmarshal(body, &msg)

	return &Error{Kind: kind, Status: status, Detail: msg.Text}
}
