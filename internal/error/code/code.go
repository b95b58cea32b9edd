package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: invalid request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: unauthorized.
	StatusUnauthorized = 401
	// StatusForbidden - 403: forbidden.
	StatusForbidden = 403
	// StatusNotFound - 404: resource not found.
	StatusNotFound = 404
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
)

// Generic error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body binding error.
	ErrBind
	// ErrValidation - 400: request validation error.
	ErrValidation
	// ErrTokenInvalid - 401: invalid token.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// User and auth error codes (101xxx).
const (
	// ErrUserNotFound - 404: user not found.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 400: user already exists.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: incorrect password.
	ErrUserPasswordIncorrect
)

// Device error codes (102xxx).
const (
	// ErrDeviceNotFound - 404: device not found.
	ErrDeviceNotFound int = iota + 102000
	// ErrDeviceAlreadyExist - 400: device already exists.
	ErrDeviceAlreadyExist
	// ErrDeviceOffline - 400: device offline.
	ErrDeviceOffline
)

// Shop error codes (103xxx).
const (
	// ErrShopNotFound - 404: shop not found.
	ErrShopNotFound int = iota + 103000
	// ErrShopAlreadyExist - 400: shop already exists.
	ErrShopAlreadyExist
)

// Binding error codes (104xxx).
const (
	// ErrBindingNotFound - 404: binding not found.
	ErrBindingNotFound int = iota + 104000
	// ErrDeviceAlreadyBound - 400: device already bound to a shop.
	ErrDeviceAlreadyBound
)

// Database error codes (105xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: record not found.
	ErrRecordNotFound
)

// Address reference data error codes (106xxx).
const (
	// ErrAddressDataUnavailable - 500: address reference data not loaded.
	ErrAddressDataUnavailable int = iota + 106000
	// ErrAddressNotFound - 404: no matching province/district/subdistrict.
	ErrAddressNotFound
)

// Taxonomy error codes (107xxx).
const (
	// ErrTypeNotFound - 404: store type not found.
	ErrTypeNotFound int = iota + 107000
	// ErrNoTypeSelected - 400: at least one store type must be selected.
	ErrNoTypeSelected
)

// Upload error codes (108xxx).
const (
	// ErrUploadFailed - 500: upload to object storage failed.
	ErrUploadFailed int = iota + 108000
	// ErrTooManyImages - 400: more than five images staged.
	ErrTooManyImages
	// ErrInvalidImageType - 400: file is not an image.
	ErrInvalidImageType
	// ErrImageTooLarge - 400: image exceeds the size limit.
	ErrImageTooLarge
)
