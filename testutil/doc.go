// Package testutil provides small helpers for tests: test-scoped contexts,
// condition polling, and a quiet logger. It deliberately avoids importing
// the stream package so stream's own tests can use it without a cycle.
package testutil
