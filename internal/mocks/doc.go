// Package mocks provides hand-written test doubles for the store and
// generation interfaces. Each mock exposes function fields for per-test
// behavior plus call tracking for verification.
package mocks
