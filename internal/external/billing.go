// Package external adapts the cloud SDKs to the collector source interfaces.
package external

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"loveuadAdmin/internal/config"
)

var tableNamePart = regexp.MustCompile(`^[A-Za-z0-9_\-]+(\.[A-Za-z0-9_\-]+)*$`)

const billingQuery = "SELECT service.description AS service_name, SUM(cost) AS total_cost " +
	"FROM `%s` " +
	"WHERE DATE(_PARTITIONTIME) >= DATE_SUB(CURRENT_DATE(), INTERVAL 30 DAY) " +
	"GROUP BY service.description ORDER BY total_cost DESC"

type billingRow struct {
	ServiceName string  `bigquery:"service_name"`
	TotalCost   float64 `bigquery:"total_cost"`
}

// BigQueryBilling reads the standard Cloud Billing export table.
type BigQueryBilling struct {
	client *bigquery.Client
	table  string
}

// BillingTable names the export table for a billing account:
// <dataset>.gcp_billing_export_v1_<account with underscores>.
func BillingTable(cfg config.GCP) (string, error) {
	if cfg.BillingDataset == "" || cfg.BillingAccount == "" {
		return "", errors.New("billing dataset and account are required")
	}

	table := fmt.Sprintf("%s.gcp_billing_export_v1_%s", cfg.BillingDataset, strings.ReplaceAll(cfg.BillingAccount, "-", "_"))
	if !tableNamePart.MatchString(table) {
		return "", fmt.Errorf("invalid billing table name %q", table)
	}

	return table, nil
}

func NewBigQueryBilling(ctx context.Context, cfg config.GCP) (*BigQueryBilling, error) {
	table, err := BillingTable(cfg)
	if err != nil {
		return nil, err
	}

	client, err := bigquery.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create BigQuery client: %w", err)
	}

	return &BigQueryBilling{client: client, table: table}, nil
}

func (b *BigQueryBilling) CostsByService(ctx context.Context) (map[string]float64, error) {
	it, err := b.client.Query(fmt.Sprintf(billingQuery, b.table)).Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("billing query failed: %w", err)
	}

	costs := map[string]float64{}
	for {
		var row billingRow
		err := it.Next(&row)
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read billing row: %w", err)
		}
		costs[row.ServiceName] += row.TotalCost
	}

	return costs, nil
}

func (b *BigQueryBilling) Close() error {
	return b.client.Close()
}
