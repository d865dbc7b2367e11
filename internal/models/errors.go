package models

import "errors"

var (
	ErrUsage                = errors.New("usage: scan2manifest <npm | nuget | pypi | maven2 | go> <file path>")
	ErrUnsupportedEcosystem = errors.New("unsupported manifest type")
	ErrMissingProps         = errors.New("props or specific keys are missing")
	ErrNoMatch              = errors.New("no match")
	ErrNotArray             = errors.New("report is not a JSON array")
	ErrVerifyMismatch       = errors.New("manifest read-back mismatch")
)
