package external

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"loveuadAdmin/internal/config"
)

const maxCalls = 1000

// TwilioCalls reads call records and the account balance. The SDK does not
// take a context; ctx is accepted for the collector interface.
type TwilioCalls struct {
	client     *twilio.RestClient
	accountSID string
}

func NewTwilioCalls(cfg config.Twilio) *TwilioCalls {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return &TwilioCalls{client: client, accountSID: cfg.AccountSID}
}

// CallDurations returns the duration in seconds of each call started after
// since, up to 1000 calls.
func (t *TwilioCalls) CallDurations(ctx context.Context, since time.Time) ([]int, error) {
	params := &twilioApi.ListCallParams{}
	params.SetStartTimeAfter(since)
	params.SetLimit(maxCalls)

	calls, err := t.client.Api.ListCall(params)
	if err != nil {
		return nil, fmt.Errorf("failed to list calls: %w", err)
	}

	durations := make([]int, 0, len(calls))
	for _, call := range calls {
		seconds := 0
		if call.Duration != nil {
			seconds, _ = strconv.Atoi(*call.Duration)
		}
		durations = append(durations, seconds)
	}

	return durations, nil
}

func (t *TwilioCalls) Balance(ctx context.Context) (float64, error) {
	params := &twilioApi.FetchBalanceParams{}
	params.SetPathAccountSid(t.accountSID)

	balance, err := t.client.Api.FetchBalance(params)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch balance: %w", err)
	}

	if balance.Balance == nil {
		return 0, nil
	}

	value, err := strconv.ParseFloat(*balance.Balance, 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected balance %q: %w", *balance.Balance, err)
	}

	return value, nil
}
