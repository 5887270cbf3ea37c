// Package apperr defines the error taxonomy shared by the service layer and
// the HTTP surface. Failures from AWS are classified into a small set of
// kinds; anything unclassified is Internal and propagates with its original
// message intact.
package apperr

import (
	"errors"
	"fmt"

	actypes "github.com/aws/aws-sdk-go-v2/service/bedrockagentcorecontrol/types"
	"github.com/aws/smithy-go"
)

// Kind categorizes an error for HTTP status mapping.
type Kind int

const (
	// Internal is any uncategorized failure.
	Internal Kind = iota
	// NotFound means the referenced gateway or target does not exist.
	NotFound
	// BadRequest means the request shape or content is invalid.
	BadRequest
	// Conflict means the operation collides with existing state, such as a
	// duplicate name.
	Conflict
)

// Error carries a kind alongside the underlying cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of err, or Internal if err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// IsNotFound reports whether err is a NotFound error.
func IsNotFound(err error) bool {
	return KindOf(err) == NotFound
}

// Classify maps typed AgentCore control-plane exceptions onto the taxonomy.
// ResourceNotFoundException becomes NotFound, ConflictException becomes
// Conflict, ValidationException becomes BadRequest. Errors from other AWS
// services are classified by their API error code so IAM, S3, and Cognito
// failures land on the same taxonomy. Anything else is wrapped as Internal
// with the given message.
func Classify(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	var nfe *actypes.ResourceNotFoundException
	if errors.As(err, &nfe) {
		return Wrap(NotFound, err, format, args...)
	}

	var ce *actypes.ConflictException
	if errors.As(err, &ce) {
		return Wrap(Conflict, err, format, args...)
	}

	var ve *actypes.ValidationException
	if errors.As(err, &ve) {
		return Wrap(BadRequest, err, format, args...)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "ResourceNotFoundException", "NoSuchEntity", "NoSuchBucket", "NoSuchKey":
			return Wrap(NotFound, err, format, args...)
		case "ConflictException", "EntityAlreadyExists":
			return Wrap(Conflict, err, format, args...)
		case "ValidationException", "ValidationError", "InvalidParameterException":
			return Wrap(BadRequest, err, format, args...)
		}
	}

	return Wrap(Internal, err, format, args...)
}
