package jobdescriptions

import "errors"

const maxContentLength = 5000

var (
	ErrNotFound       = errors.New("not found")
	ErrMissingContent = errors.New("job description content is required")
	ErrTooLong        = errors.New("job description is too long")
)
