// Package core defines the essential interfaces and data structures that form the
// backbone of the application. These components are designed to be abstract,
// allowing for flexible and decoupled implementations of the application's logic.
package core

import (
	"context"
)

// JobDispatcher defines the contract for a system that accepts pull request
// events and runs them off the request path. This interface decouples the
// event source (the webhook handler) from the job execution mechanism.
type JobDispatcher interface {
	// Dispatch accepts a PullRequestEvent and starts processing it.
	// It returns an error if the run cannot be started, for example when
	// the configured number of concurrent runs is reached.
	Dispatch(ctx context.Context, event *PullRequestEvent) error
}

// Job represents a single, executable unit of work triggered by a
// PullRequestEvent.
type Job interface {
	// Run executes the job's logic. It returns an error if the job fails to
	// complete; silent no-op outcomes are not errors.
	Run(ctx context.Context, event *PullRequestEvent) error
}
