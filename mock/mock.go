// Package mock provides function-field mock implementations of the docdeck
// service interfaces for testing.
package mock
