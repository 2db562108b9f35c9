// Package core defines the essential interfaces and data structures that form the
// backbone of the application. These components are designed to be abstract,
// allowing for flexible and decoupled implementations of the application's logic.
package core

import (
	"errors"
	"fmt"

	"github.com/google/go-github/v73/github"
)

// Pull request actions that trigger a formatting run.
const (
	ActionOpened      = "opened"
	ActionSynchronize = "synchronize"
)

// ErrIgnoredAction is returned for pull request events whose action does not
// trigger the formatting pipeline.
var ErrIgnoredAction = errors.New("pull request action does not trigger formatting")

// PullRequestEvent represents a simplified, internal view of a pull_request
// webhook delivery. It is built once per delivery and never mutated.
type PullRequestEvent struct {
	DeliveryID   string
	Action       string
	Number       int
	Title        string
	RepoFullName string
}

// EventFromPullRequest transforms a raw GitHub PullRequestEvent into the
// application's internal PullRequestEvent. It rejects payloads that lack the
// fields the pipeline needs and returns ErrIgnoredAction for actions other
// than "opened" and "synchronize".
func EventFromPullRequest(event *github.PullRequestEvent, deliveryID string) (*PullRequestEvent, error) {
	if event == nil {
		return nil, errors.New("event cannot be nil")
	}

	action := event.GetAction()
	if action == "" {
		return nil, errors.New("action is missing from the event")
	}

	pr := event.GetPullRequest()
	if pr == nil {
		return nil, errors.New("pull request is missing from the event")
	}
	number := pr.GetNumber()
	if number <= 0 {
		number = event.GetNumber()
	}
	if number <= 0 {
		return nil, fmt.Errorf("invalid pull request number: %d", number)
	}

	fullName := event.GetRepo().GetFullName()
	if _, _, err := SplitFullName(fullName); err != nil {
		return nil, err
	}

	if action != ActionOpened && action != ActionSynchronize {
		return nil, fmt.Errorf("%w: %s", ErrIgnoredAction, action)
	}

	return &PullRequestEvent{
		DeliveryID:   deliveryID,
		Action:       action,
		Number:       number,
		Title:        pr.GetTitle(),
		RepoFullName: fullName,
	}, nil
}
