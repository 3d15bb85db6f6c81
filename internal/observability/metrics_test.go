package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordFetch(t *testing.T) {
	before := testutil.ToFloat64(fetchTotal.WithLabelValues(FetchStale))
	RecordFetch(FetchStale)
	assert.Equal(t, before+1, testutil.ToFloat64(fetchTotal.WithLabelValues(FetchStale)))
}

func TestRecordUnregister(t *testing.T) {
	before := testutil.ToFloat64(unregisterTotal.WithLabelValues(UnregisterErr))
	RecordUnregister(UnregisterErr)
	RecordUnregister(UnregisterErr)
	assert.Equal(t, before+2, testutil.ToFloat64(unregisterTotal.WithLabelValues(UnregisterErr)))
}

func TestRecordSignupInvalid(t *testing.T) {
	before := testutil.ToFloat64(signupTotal.WithLabelValues(SignupInvalid))
	RecordSignup(SignupInvalid)
	assert.Equal(t, before+1, testutil.ToFloat64(signupTotal.WithLabelValues(SignupInvalid)))
}
