// Package timezone centralizes time handling in the configured application
// timezone. The zone comes from the APP_TIMEZONE environment variable and is
// loaded once at package init; use standard IANA names like "UTC" or
// "Asia/Jakarta". All booking timestamps are stored in this zone, while the
// demand forecaster buckets history by UTC calendar day on its own.
package timezone
