package dashboard

import "errors"

// Dashboard domain errors
var (
	ErrUnknownRoute = errors.New("route is not present in the date index")
	ErrUnknownArea  = errors.New("area is not present in the orders")
	ErrUnknownMonth = errors.New("month is not present in the date index")
)
