package code

// Error code to message mapping
var codeMessageMap = map[int]string{
	// Generic error codes
	ErrSuccess:         "success",
	ErrUnknown:         "unknown error",
	ErrBind:            "request body binding error",
	ErrValidation:      "request validation error",
	ErrTokenInvalid:    "invalid authentication token",
	ErrTooManyRequests: "request rate too high",

	// User and auth error codes
	ErrUserNotFound:          "user not found",
	ErrUserAlreadyExist:      "user already exists",
	ErrUserPasswordIncorrect: "incorrect password",

	// Device error codes
	ErrDeviceNotFound:     "device not found",
	ErrDeviceAlreadyExist: "device already exists",
	ErrDeviceOffline:      "device is offline",

	// Shop error codes
	ErrShopNotFound:     "shop not found",
	ErrShopAlreadyExist: "shop already exists",

	// Binding error codes
	ErrBindingNotFound:    "binding not found",
	ErrDeviceAlreadyBound: "device is already bound to a shop",

	// Database error codes
	ErrDatabase:       "database error",
	ErrRecordNotFound: "record not found",

	// Address reference data error codes
	ErrAddressDataUnavailable: "address reference data unavailable",
	ErrAddressNotFound:        "no matching address found",

	// Taxonomy error codes
	ErrTypeNotFound:   "store type not found",
	ErrNoTypeSelected: "select at least one type",

	// Upload error codes
	ErrUploadFailed:     "image upload failed",
	ErrTooManyImages:    "a shop can hold at most 5 images",
	ErrInvalidImageType: "file is not an image",
	ErrImageTooLarge:    "image exceeds 5 MiB",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	// Generic error codes
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// User and auth error codes
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusBadRequest,
	ErrUserPasswordIncorrect: StatusUnauthorized,

	// Device error codes
	ErrDeviceNotFound:     StatusNotFound,
	ErrDeviceAlreadyExist: StatusBadRequest,
	ErrDeviceOffline:      StatusBadRequest,

	// Shop error codes
	ErrShopNotFound:     StatusNotFound,
	ErrShopAlreadyExist: StatusBadRequest,

	// Binding error codes
	ErrBindingNotFound:    StatusNotFound,
	ErrDeviceAlreadyBound: StatusBadRequest,

	// Database error codes
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,

	// Address reference data error codes
	ErrAddressDataUnavailable: StatusInternalServerError,
	ErrAddressNotFound:        StatusNotFound,

	// Taxonomy error codes
	ErrTypeNotFound:   StatusNotFound,
	ErrNoTypeSelected: StatusBadRequest,

	// Upload error codes
	ErrUploadFailed:     StatusInternalServerError,
	ErrTooManyImages:    StatusBadRequest,
	ErrInvalidImageType: StatusBadRequest,
	ErrImageTooLarge:    StatusBadRequest,
}

// GetMessage returns the message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
