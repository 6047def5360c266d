package domain

import "fmt"

// ProtocolError is reported to the offending connection as an error frame.
// The text is shown to the player as-is.
type ProtocolError string

// Error implements the error interface
func (e ProtocolError) Error() string {
	return string(e)
}

const (
	ErrInvalidJSON     ProtocolError = "Invalid JSON payload."
	ErrSessionNotFound ProtocolError = "Session not found."
	ErrAlreadyAttached ProtocolError = "Already in a session."
	ErrCreateFailed    ProtocolError = "Could not create a session."
)

// UnknownEventError names an inbound message type the server does not handle
func UnknownEventError(msgType string) ProtocolError {
	return ProtocolError(fmt.Sprintf("Unknown event: %s", msgType))
}

// InvalidPayloadError reports a data object that does not fit the message schema
func InvalidPayloadError(msgType MessageType) ProtocolError {
	return ProtocolError(fmt.Sprintf("Invalid payload for %s.", msgType))
}

// RegistryError is returned by session registry operations
type RegistryError string

// Error implements the error interface
func (e RegistryError) Error() string {
	return string(e)
}

// ErrCodeSpaceExhausted means every generated code collided with a live session
const ErrCodeSpaceExhausted RegistryError = "session code attempts exhausted"
