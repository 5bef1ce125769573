package employee_dashboard

import "errors"

var (
	ErrEmployeeNotFound = errors.New("no employee linked to user")
)
