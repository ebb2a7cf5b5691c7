package autherrors

import "errors"

// NativeError is how platform adapters hand a provider failure to the
// normalizer: the provider's stable error code plus its message. Adapters are
// responsible for extracting the code; the normalizer only does exact-match
// lookup.
type NativeError struct {
	Code    string
	Message string
}

func (e *NativeError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

type tableEntry struct {
	typ     string
	code    Code
	message string
}

// nativeTable maps every known native error identifier to its normalized
// entry. Codes from different provider subsystems that mean "user interaction
// is required" all collapse to the one canonical interaction_required entry,
// because the orchestrator's single retry branches on that code alone.
var nativeTable = map[string]tableEntry{
	// Interaction-required family (browser, iOS broker, token cache misses).
	"interaction_required":         {TypeInteractionRequired, CodeInteractionRequired, "User interaction is required to acquire a token"},
	"login_required":               {TypeInteractionRequired, CodeInteractionRequired, "User interaction is required to acquire a token"},
	"consent_required":             {TypeInteractionRequired, CodeInteractionRequired, "User interaction is required to acquire a token"},
	"invalid_grant":                {TypeInteractionRequired, CodeInteractionRequired, "User interaction is required to acquire a token"},
	"no_tokens_found":              {TypeInteractionRequired, CodeInteractionRequired, "No cached tokens were found for the account"},
	"no_account_in_silent_request": {TypeInteractionRequired, CodeInteractionRequired, "Silent requests require a cached account"},
	"monitor_window_timeout":       {TypeInteractionRequired, CodeInteractionRequired, "Silent token renewal timed out"},

	// Cancellation family.
	"user_cancelled":         {TypeClientAuth, CodeUserCancelled, "User cancelled the authentication flow"},
	"user_canceled":          {TypeClientAuth, CodeUserCancelled, "User cancelled the authentication flow"},
	"authorization_declined": {TypeClientAuth, CodeUserCancelled, "User declined the authorization request"},
	"access_denied":          {TypeClientAuth, CodeUserCancelled, "User declined the authorization request"},

	// Network family.
	"network_error":              {TypeServer, CodeNetworkError, "Network request failed"},
	"no_network_connectivity":    {TypeServer, CodeNetworkError, "No network connectivity"},
	"endpoints_resolution_error": {TypeServer, CodeNetworkError, "Could not resolve authority endpoints"},
	"openid_config_error":        {TypeServer, CodeNetworkError, "Could not retrieve the OpenID configuration"},
	"get_request_failed":         {TypeServer, CodeNetworkError, "Network request failed"},
	"post_request_failed":        {TypeServer, CodeNetworkError, "Network request failed"},

	// Configuration family.
	"invalid_options_set":        {TypeClientConfiguration, CodeInvalidOptions, "Invalid options were provided to initialize"},
	"authority_uri_insecure":     {TypeClientConfiguration, CodeInvalidOptions, "Authority URIs must use https"},
	"invalid_authority_metadata": {TypeClientConfiguration, CodeInvalidOptions, "Invalid authority metadata"},
	"untrusted_authority":        {TypeClientConfiguration, CodeInvalidOptions, "The authority is not on the trusted host list"},
	"redirect_uri_empty":         {TypeClientConfiguration, CodeInvalidOptions, "A redirect URI is required"},
	"empty_input_scopes_error":   {TypeClientConfiguration, CodeInvalidOptions, "Scopes cannot be empty"},

	// Account family.
	"no_account_error":           {TypeClientAuth, CodeNoAccount, "No account found, ensure the user is logged in first"},
	"no_account_found":           {TypeClientAuth, CodeNoAccount, "No account found, ensure the user is logged in first"},
	"account_required":           {TypeClientAuth, CodeNoAccount, "An account is required for this request"},
	"multiple_matching_accounts": {TypeClientAuth, CodeNoAccount, "Multiple accounts matched, an explicit account is required"},
}

// Normalize maps any failure to exactly one NormalizedError. Already
// normalized errors pass through unchanged; native errors are looked up by
// their stable code; anything else falls back to the unknown entry carrying
// the original message. Never returns nil for a non-nil err.
func Normalize(err error) *NormalizedError {
	if err == nil {
		return nil
	}

	var ne *NormalizedError
	if errors.As(err, &ne) {
		return ne
	}

	var native *NativeError
	if errors.As(err, &native) {
		if entry, ok := nativeTable[native.Code]; ok {
			return &NormalizedError{
				Type:    entry.typ,
				Code:    entry.code,
				Message: entry.message,
				Detail:  native.Message,
				cause:   err,
			}
		}
		return &NormalizedError{
			Type:    TypeUnknown,
			Code:    CodeUnknown,
			Message: firstNonEmpty(native.Message, "An unknown error occurred"),
			Detail:  native.Code,
			cause:   err,
		}
	}

	return &NormalizedError{
		Type:    TypeUnknown,
		Code:    CodeUnknown,
		Message: err.Error(),
		cause:   err,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
