package msal

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"

	"authbridge/pkg/autherrors"
)

// oauthCodes are the stable server/library codes worth recognizing in MSAL's
// error text. MSAL Go surfaces token endpoint failures as formatted strings
// carrying the OAuth error code, so detection is a substring match on the
// known keys; everything else stays unknown for the normalizer to handle.
var oauthCodes = []string{
	"interaction_required",
	"consent_required",
	"login_required",
	"invalid_grant",
	"authorization_declined",
	"access_denied",
	"invalid_client",
	"invalid_scope",
	"invalid_request",
}

// classify turns an MSAL failure into a NativeError with the stable code the
// normalizer's table is keyed on.
func classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return &autherrors.NativeError{Code: "user_cancelled", Message: err.Error()}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &autherrors.NativeError{Code: "network_error", Message: err.Error()}
	}
	var netErr net.Error
	var urlErr *url.Error
	if errors.As(err, &netErr) || errors.As(err, &urlErr) {
		return &autherrors.NativeError{Code: "network_error", Message: err.Error()}
	}

	msg := err.Error()
	for _, code := range oauthCodes {
		if strings.Contains(msg, code) {
			return &autherrors.NativeError{Code: code, Message: msg}
		}
	}
	if strings.Contains(msg, "no token found") || strings.Contains(msg, "refresh token") {
		return &autherrors.NativeError{Code: "no_tokens_found", Message: msg}
	}
	return &autherrors.NativeError{Code: "msal_unclassified", Message: msg}
}

// notCached stands in when a silent request names an account the MSAL cache
// no longer holds; the canonical interaction_required family covers it.
func notCached() error {
	return &autherrors.NativeError{
		Code:    "no_tokens_found",
		Message: "the requested account has no cached tokens",
	}
}
