package repository

import "github.com/m-mizutani/goerr/v2"

var (
	ErrAlreadyExists  = goerr.New("already exists")
	ErrInvalidInput   = goerr.New("invalid input")
	ErrUnknownSortKey = goerr.New("unknown sort key")
)
