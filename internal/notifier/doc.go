// Package notifier provides notification interfaces and implementations for
// rain state transitions.
//
// The notifier package formats transition messages and delivers them over
// Telegram, with a dry-run implementation for local testing. The message
// send is decoupled from state persistence: a failed delivery must leave the
// persisted state untouched so the next scheduled run retries.
package notifier
