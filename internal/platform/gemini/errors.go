package gemini

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	pkgerrors "github.com/yungbote/edubot-backend/internal/pkg/errors"
)

// This file is the only place that knows how provider failures look on the wire.
// Status codes are preferred; message matching covers Gemini's habit of returning
// 400 INVALID_ARGUMENT for a bad key, and errors that carry no status at all.

var keyRejectedMarkers = []string{
	"api_key_invalid",
	"api key not valid",
	"invalid api key",
	"invalid_api_key",
	"unauthorized",
	"permission_denied",
}

func credentialError(err error) error {
	return fmt.Errorf("%w: %v", pkgerrors.ErrCredentialInvalid, err)
}

func providerError(err error) error {
	return fmt.Errorf("%w: %v", pkgerrors.ErrProviderUnavailable, err)
}

func classify(err error) error {
	if err == nil {
		return nil
	}

	status, body := statusAndBody(err)
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return credentialError(err)
	case status != 0:
		if containsAny(body, keyRejectedMarkers) {
			return credentialError(err)
		}
		return providerError(err)
	}

	// No status code (transport failure, decode failure): fall back to plain text.
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "invalid") || strings.Contains(msg, "unauthorized") {
		return credentialError(err)
	}
	return providerError(err)
}

func statusAndBody(err error) (int, string) {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode, strings.ToLower(apiErr.Message + " " + apiErr.Type + " " + fmt.Sprint(apiErr.Code))
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		body := string(reqErr.Body)
		if reqErr.Err != nil {
			body += " " + reqErr.Err.Error()
		}
		return reqErr.HTTPStatusCode, strings.ToLower(body)
	}
	return 0, ""
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
