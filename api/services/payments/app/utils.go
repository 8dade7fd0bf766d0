package app

import (
	"time"

	"github.com/wavefinderapp/payments-api/api/config"
)

// trialEnd returns today at local midnight plus TrialPeriodDays, as a Unix
// timestamp. Calendar construction (not duration arithmetic) keeps the expiry
// on a day boundary across DST changes.
func trialEnd(now time.Time) int64 {
	year, month, day := now.Date()
	return time.Date(year, month, day+config.TrialPeriodDays, 0, 0, 0, 0, now.Location()).Unix()
}
