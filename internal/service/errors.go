package service

import (
	"errors"

	"scheme-navigator/internal/repository"
)

var (
	ErrStorageUnavailable           = repository.ErrStorageUnavailable
	ErrMalformedDocument            = errors.New("malformed domain document")
	ErrUnparsableCollaboratorOutput = errors.New("unparsable collaborator output")
	ErrUnknownSchemeReference       = errors.New("judgment names an unknown scheme")
	ErrUnknownCategory              = errors.New("unknown category")
	ErrCollaboratorUnavailable      = errors.New("reasoning collaborator unavailable")
)
