package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spa-admin/models"
	"spa-admin/services"
)

func TestReportOptionsQuery(t *testing.T) {
	opts := reportOptions{from: "2025-04-01", to: "2025-04-30", method: "Cash", status: "completed", query: "massage", top: 3}
	q, err := opts.toQuery(services.ReportEarnings)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), q.From)
	assert.Equal(t, time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC), q.To)
	assert.Equal(t, models.MethodCash, q.Method)
	assert.Equal(t, models.StatusCompleted, q.Status)
	assert.Equal(t, "massage", q.Query)
	assert.Equal(t, 3, q.TopN)
}

func TestReportOptionsQuery_Invalid(t *testing.T) {
	for _, opts := range []reportOptions{
		{from: "04/01/2025"},
		{to: "2025-02-30"},
		{status: "Lost"},
	} {
		_, err := opts.toQuery(services.ReportEarnings)
		assert.Error(t, err)
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["report"])
	assert.True(t, names["digest"])
}
