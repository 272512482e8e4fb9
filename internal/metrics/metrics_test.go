package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(Appointments.WithLabelValues(EventRejected, "CAPACITY_EXCEEDED"))
	Appointments.WithLabelValues(EventRejected, "CAPACITY_EXCEEDED").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(Appointments.WithLabelValues(EventRejected, "CAPACITY_EXCEEDED")))

	before = testutil.ToFloat64(QuizAnswers)
	QuizAnswers.Add(2)
	assert.Equal(t, before+2, testutil.ToFloat64(QuizAnswers))
}

func TestCollectorsLint(t *testing.T) {
	problems, err := testutil.CollectAndLint(LoginAttempts)
	assert.NoError(t, err)
	assert.Empty(t, problems)
}
