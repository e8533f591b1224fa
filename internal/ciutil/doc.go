// Package ciutil detects CI environments and resolves the database URL used
// by integration tests, normalizing it to the credentials CI services expect.
package ciutil
