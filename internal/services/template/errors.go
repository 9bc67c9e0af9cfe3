package template

import "errors"

// Template-related errors
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrEmptyName        = errors.New("template name cannot be empty")
	ErrNoColumns        = errors.New("template must define at least one column")
)
