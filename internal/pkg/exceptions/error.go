package exceptions

import (
	"fmt"
	"runtime"
)

type CustomError struct {
	StatusCode    int
	ClientError   string
	ClientMessage string
	Details       string
	Fields        map[string]interface{}
	DevMessage    string
	Err           error
	Location      Location
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%s:%d %s)", e.DevMessage, e.Err.Error(), e.Location.File, e.Location.Line, e.Location.FunctionName)
	}
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithMessage sets the optional human readable "message" of the envelope.
func (e *CustomError) WithMessage(message string) *CustomError {
	e.ClientMessage = message
	return e
}

func (e *CustomError) WithDetails(details string) *CustomError {
	e.Details = details
	return e
}

// WithFields merges extra top-level keys into the rendered error body.
func (e *CustomError) WithFields(fields map[string]interface{}) *CustomError {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{}, len(fields))
	}
	for key, value := range fields {
		e.Fields[key] = value
	}
	return e
}

func BuildNewCustomError(err error, statusCode int, clientError, devMessage string) *CustomError {
	return &CustomError{
		StatusCode:  statusCode,
		ClientError: clientError,
		DevMessage:  devMessage,
		Err:         err,
		Location:    getLocation(3),
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         "unknown",
			FunctionName: "unknown",
		}
	}
	return Location{
		File:         file,
		Line:         line,
		FunctionName: runtime.FuncForPC(pc).Name(),
	}
}
