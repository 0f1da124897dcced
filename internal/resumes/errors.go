package resumes

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrEmptyContent = errors.New("unable to extract text from the uploaded file")
	ErrNoStoredFile = errors.New("no stored file")
)
