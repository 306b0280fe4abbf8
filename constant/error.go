package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrLocationNotFound
	ErrBinNotFound
	ErrBinBlocked
	ErrInvalidQuantity
	ErrInsufficientStock
	ErrStructureExists
	ErrProductNotFound
	ErrDuplicateRequest
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:           "success",
	ErrInternal:          "error internal",
	ErrNotFound:          "data not found",
	ErrInvalidRequest:    "invalid request",
	ErrUnauthorize:       "unauthorize request",
	ErrLocationNotFound:  "location not found",
	ErrBinNotFound:       "bin not found",
	ErrBinBlocked:        "bin is blocked",
	ErrInvalidQuantity:   "invalid quantity",
	ErrInsufficientStock: "insufficient stock in source bin",
	ErrStructureExists:   "structure already generated for location",
	ErrProductNotFound:   "product not found",
	ErrDuplicateRequest:  "duplicate request id",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:           http.StatusOK,
	ErrInternal:          http.StatusInternalServerError,
	ErrNotFound:          http.StatusBadRequest,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrUnauthorize:       http.StatusUnauthorized,
	ErrLocationNotFound:  http.StatusBadRequest,
	ErrBinNotFound:       http.StatusBadRequest,
	ErrBinBlocked:        http.StatusConflict,
	ErrInvalidQuantity:   http.StatusBadRequest,
	ErrInsufficientStock: http.StatusConflict,
	ErrStructureExists:   http.StatusConflict,
	ErrProductNotFound:   http.StatusBadRequest,
	ErrDuplicateRequest:  http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:           "0000",
	ErrInternal:          "0001",
	ErrNotFound:          "0002",
	ErrInvalidRequest:    "0003",
	ErrUnauthorize:       "0004",
	ErrLocationNotFound:  "0005",
	ErrBinNotFound:       "0006",
	ErrBinBlocked:        "0007",
	ErrInvalidQuantity:   "0008",
	ErrInsufficientStock: "0009",
	ErrStructureExists:   "0010",
	ErrProductNotFound:   "0011",
	ErrDuplicateRequest:  "0012",
}
