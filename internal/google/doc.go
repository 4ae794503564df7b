// Package google handles OAuth2 authorization against Google APIs:
// loading and saving the persisted user credential and running the
// interactive browser consent flow when no credential exists yet.
package google
