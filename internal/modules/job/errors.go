package job

import "errors"

var (
	ErrNotFound    = errors.New("job not found")
	ErrNotOwner    = errors.New("job belongs to another company")
	ErrNotSaved    = errors.New("job is not in saved jobs")
	ErrSalaryRange = errors.New("salary minimum exceeds maximum")
)
