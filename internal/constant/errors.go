package constant

import (
	"net/http"

	"github.com/duccv/go-profile-guard/internal/model/response"
)

// StatusTokenExpired is the non-standard status returned for expired tokens.
const StatusTokenExpired = 419

var BAD_REQUEST = response.ResponseData{
	Ec:  http.StatusBadRequest,
	Msg: "Bad request",
}

var INVALID_REQUEST = response.ResponseData{
	Ec:  http.StatusBadRequest,
	Msg: "Invalid request payload",
}

var UNAUTHORIZED = response.ResponseData{
	Ec:  http.StatusUnauthorized,
	Msg: "Unauthorized",
}

var NOT_FOUND = response.ResponseData{
	Ec:  http.StatusNotFound,
	Msg: "Not found",
}

var TOKEN_EXPIRED = response.ResponseData{
	Ec:  StatusTokenExpired,
	Msg: "Token expired!",
}

var INTERNAL_SERVER_ERROR = response.ResponseData{
	Ec:  http.StatusInternalServerError,
	Msg: "Internal server error",
}

var REQUEST_TIMEOUT = response.ResponseData{
	Ec:  http.StatusRequestTimeout,
	Msg: "Request timeout",
}

var SUCCESS = response.ResponseData{
	Ec:  0,
	Msg: "Success",
}
