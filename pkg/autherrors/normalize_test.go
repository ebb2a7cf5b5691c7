package autherrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_CollapsesInteractionRequiredFamily(t *testing.T) {
	family := []string{
		"interaction_required",
		"login_required",
		"consent_required",
		"invalid_grant",
		"no_tokens_found",
		"no_account_in_silent_request",
		"monitor_window_timeout",
	}
	for _, code := range family {
		t.Run(code, func(t *testing.T) {
			normalized := Normalize(&NativeError{Code: code, Message: "native detail"})
			require.NotNil(t, normalized)
			assert.Equal(t, CodeInteractionRequired, normalized.Code)
			assert.Equal(t, TypeInteractionRequired, normalized.Type)
			assert.Equal(t, "native detail", normalized.Detail)
		})
	}
}

func TestNormalize_UnknownCodeFallsBack(t *testing.T) {
	normalized := Normalize(&NativeError{Code: "some_new_provider_code", Message: "something broke"})
	require.NotNil(t, normalized)
	assert.Equal(t, CodeUnknown, normalized.Code)
	assert.Equal(t, TypeUnknown, normalized.Type)
	assert.Equal(t, "something broke", normalized.Message)
	assert.Equal(t, "some_new_provider_code", normalized.Detail)
}

func TestNormalize_UnknownCodeWithoutMessage(t *testing.T) {
	normalized := Normalize(&NativeError{Code: "mystery"})
	require.NotNil(t, normalized)
	assert.Equal(t, CodeUnknown, normalized.Code)
	assert.Equal(t, "An unknown error occurred", normalized.Message)
}

func TestNormalize_PassesThroughNormalizedErrors(t *testing.T) {
	original := New(CodeNoAccount, "no account")
	assert.Same(t, original, Normalize(original))

	wrapped := fmt.Errorf("context: %w", original)
	assert.Same(t, original, Normalize(wrapped))
}

func TestNormalize_PlainErrorBecomesUnknown(t *testing.T) {
	normalized := Normalize(errors.New("boom"))
	require.NotNil(t, normalized)
	assert.Equal(t, CodeUnknown, normalized.Code)
	assert.Equal(t, "boom", normalized.Message)
}

func TestNormalize_NilStaysNil(t *testing.T) {
	assert.Nil(t, Normalize(nil))
}

func TestNormalize_UserCancellation(t *testing.T) {
	for _, code := range []string{"user_cancelled", "user_canceled", "access_denied", "authorization_declined"} {
		normalized := Normalize(&NativeError{Code: code})
		assert.Equal(t, CodeUserCancelled, normalized.Code, code)
	}
}

func TestHasCode(t *testing.T) {
	err := Wrap(errors.New("tcp reset"), CodeNetworkError, "request failed")
	assert.True(t, HasCode(err, CodeNetworkError))
	assert.False(t, HasCode(err, CodeUnknown))
	assert.False(t, HasCode(errors.New("plain"), CodeNetworkError))

	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, HasCode(wrapped, CodeNetworkError))
}

func TestWrap_CarriesCauseAndDetail(t *testing.T) {
	cause := errors.New("underlying")
	err := Wrap(cause, CodeNetworkError, "network request failed")
	assert.Equal(t, "underlying", err.Detail)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, TypeServer, err.Type)
}
