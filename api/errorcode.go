package api

import (
	"github.com/floodrelief/relief-api/external/llm"
	"github.com/floodrelief/relief-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1200: store.ErrRequestNotExist.Error(),
		1201: store.ErrEmptyUpdate.Error(),

		1300: "text is required",
		1301: llm.ErrMissingAPIKey.Error(),
		1302: "failed to parse AI response",
		1303: "AI extraction is unavailable",

		1400: "no evacuees to import",
	}

	// message ids of the i18n bundle
	errorMessageIDs = map[int64]string{
		999:  "error.internal_server",
		1010: "error.invalid_parameters",
		1011: "error.cannot_parse_request",
		1200: "error.request_not_found",
		1201: "error.empty_update",
		1300: "error.text_required",
		1301: "error.llm_not_configured",
		1302: "error.llm_reply_unreadable",
		1303: "error.llm_unavailable",
		1400: "error.no_evacuees",
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorRequestNotExist = errorJSON(1200)
	errorEmptyUpdate     = errorJSON(1201)

	errorTextRequired       = errorJSON(1300)
	errorLLMNotConfigured   = errorJSON(1301)
	errorLLMReplyUnreadable = errorJSON(1302)
	errorLLMUnavailable     = errorJSON(1303)

	errorNoEvacuees = errorJSON(1400)
)

// ErrorResponse is the body of every failed call. Error and Details are only
// set by the AI extraction endpoint.
type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// withDetails returns a copy of e carrying a short error title and details
func (e ErrorResponse) withDetails(title, details string) ErrorResponse {
	e.Error = title
	e.Details = details
	return e
}
