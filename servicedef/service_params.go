// Package servicedef describes the HTTP API of the service under test.
package servicedef

// Paths relative to the API root (the backend URL plus "/api").
const (
	PathRoot        = "/"
	PathStatus      = "/status"
	PathNonexistent = "/nonexistent"
)

// Greeting is the message returned by the API root.
const Greeting = "Hello World"

// TimestampFormat is the layout of StatusCheck.Timestamp.
const TimestampFormat = "2006-01-02T15:04:05.999999"

// Field names of the status resource.
const (
	FieldID         = "id"
	FieldClientName = "client_name"
	FieldTimestamp  = "timestamp"
	FieldMessage    = "message"
)

type RootResponse struct {
	Message string `json:"message"`
}

type StatusCheckCreate struct {
	ClientName string `json:"client_name"`
}

type StatusCheck struct {
	ID         string `json:"id"`
	ClientName string `json:"client_name"`
	Timestamp  string `json:"timestamp"`
}

// ValidationError is the body returned when a request payload is rejected.
type ValidationError struct {
	Detail string `json:"detail"`
}
