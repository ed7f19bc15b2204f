package external

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loveuadAdmin/internal/config"
)

func TestBillingTable(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.GCP
		expected  string
		expectErr bool
	}{
		{
			name:     "account dashes become underscores",
			cfg:      config.GCP{BillingDataset: "billing", BillingAccount: "01ABCD-23EF45-6789GH"},
			expected: "billing.gcp_billing_export_v1_01ABCD_23EF45_6789GH",
		},
		{
			name:     "project qualified dataset",
			cfg:      config.GCP{BillingDataset: "my-project.billing", BillingAccount: "AAA-BBB"},
			expected: "my-project.billing.gcp_billing_export_v1_AAA_BBB",
		},
		{
			name:      "missing account",
			cfg:       config.GCP{BillingDataset: "billing"},
			expectErr: true,
		},
		{
			name:      "backtick injection",
			cfg:       config.GCP{BillingDataset: "billing`; DROP", BillingAccount: "AAA"},
			expectErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			table, err := BillingTable(tc.cfg)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, table)
		})
	}
}

func TestErrorFilter(t *testing.T) {
	since := time.Date(2026, time.October, 9, 12, 0, 0, 0, time.UTC)

	filter := ErrorFilter("loveuad", since)

	assert.Contains(t, filter, `resource.type="cloud_run_revision"`)
	assert.Contains(t, filter, `resource.labels.service_name="loveuad"`)
	assert.Contains(t, filter, `severity>=ERROR`)
	assert.Contains(t, filter, `timestamp>="2026-10-09T12:00:00Z"`)
}
