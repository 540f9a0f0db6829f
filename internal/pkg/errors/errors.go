package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrCredentialInvalid means the provider rejected the caller's API key.
	ErrCredentialInvalid = errors.New("invalid api key")
	// ErrProviderUnavailable covers every other provider-side failure.
	ErrProviderUnavailable = errors.New("llm provider error")
	// ErrTopicExists is returned when a topic id is registered twice.
	ErrTopicExists = errors.New("topic already exists")
)
