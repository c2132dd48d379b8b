package internal

import "fmt"

type NetworkError struct {
	Op  string
	Err error
}

type AuthError struct {
	StatusCode int
	Reason     string
}

type ValidationError struct {
	StatusCode int
	Msg        string
	Fields     map[string]string
}

type ServerError struct {
	StatusCode int
	Msg        string
}

func (e NetworkError) Error() string {
	return fmt.Sprintf("%v failed - %v", e.Op, e.Err)
}

func (e NetworkError) Unwrap() error {
	return e.Err
}

func (e AuthError) Error() string {
	return fmt.Sprintf("auth rejected with status %v - %v", e.StatusCode, e.Reason)
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("payload rejected with status %v - %v", e.StatusCode, e.Msg)
}

func (e ServerError) Error() string {
	return fmt.Sprintf("upstream failed with status %v - %v", e.StatusCode, e.Msg)
}
