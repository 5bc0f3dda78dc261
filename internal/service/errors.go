package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrEmptyReferenceID = errors.New("no batch reference id provided")
	ErrEmptyPhotoBlob   = errors.New("no photo data provided")
)
