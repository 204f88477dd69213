package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorsAsThroughWrapping(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := fmt.Errorf("forward failed: %w", Wrap(KindUnreachable, "retrieval service unreachable", cause))

	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, KindUnreachable, appErr.Kind)
	assert.ErrorIs(t, err, cause)
}

func TestDownstreamCarriesStatusAndBody(t *testing.T) {
	err := Downstream(503, []byte(`{"error":"not_ready"}`))

	assert.Equal(t, KindDownstream, err.Kind)
	assert.Equal(t, 503, err.StatusCode)
	assert.JSONEq(t, `{"error":"not_ready"}`, string(err.Body))
	assert.Contains(t, err.Error(), "503")
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "not_ready", KindNotReady.String())
	assert.Equal(t, "timeout", KindTimeout.String())
	assert.Equal(t, "unreachable", KindUnreachable.String())
	assert.Equal(t, "internal", KindInternal.String())
}
