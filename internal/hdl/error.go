package hdl

import "errors"

var ErrInternal = errors.New("internal error")
var ErrDecodeRequest = errors.New("decode request")

var ErrToRetrievePathArg = errors.New("error to retrieve path argument")
var ErrFailedToParseUUID = errors.New("failed to parse uuid")
