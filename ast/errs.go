package ast

import "errors"

var (
	ErrUnknownKind    = errors.New("unknown node kind")
	ErrVersion        = errors.New("unsupported pandoc api version")
	ErrUnexpectedType = errors.New("unexpected node type")
	ErrMalformed      = errors.New("malformed node")
)
