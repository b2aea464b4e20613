// Package digest implements the scheduled batch job that emails thread
// subscribers the text of posts created in the trailing window.
package digest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// digestWindow is the trailing window for "new" posts. Fixed business rule,
// not configuration.
const digestWindow = 7 * 24 * time.Hour

// threadBatchSize bounds how many threads are held in memory at once while
// scanning the full table.
const threadBatchSize = 100

// Report summarizes one notifier run.
type Report struct {
	RunID            string
	ThreadsScanned   int
	ThreadsWithPosts int
	DigestsSent      int
	Failures         []*DeliveryFailure
}

// Notifier scans all threads and sends one digest per (subscriber, thread
// with new posts) pair. It performs no writes against the store, so an
// interrupted run corrupts nothing. There is no de-duplication watermark:
// running twice inside the same window re-sends the same digests. That is
// the documented at-least-once semantic; overlap protection belongs to the
// caller's scheduling lock.
type Notifier struct {
	threads ThreadSource
	posts   PostSource
	sender  Sender
	logger  *slog.Logger
	now     func() time.Time
}

// NewNotifier creates a digest notifier.
func NewNotifier(threads ThreadSource, posts PostSource, sender Sender, logger *slog.Logger) *Notifier {
	return &Notifier{
		threads: threads,
		posts:   posts,
		sender:  sender,
		logger:  logger,
		now:     time.Now,
	}
}

// Run executes one digest batch. It returns a report alongside any fatal
// error; per-recipient delivery failures are recorded on the report and
// never abort the scan.
func (n *Notifier) Run(ctx context.Context) (*Report, error) {
	report := &Report{RunID: uuid.NewString()}
	cutoff := n.now().UTC().Add(-digestWindow)

	n.logger.Info("digest run starting", "run_id", report.RunID, "cutoff", cutoff)

	var afterID int64
	for {
		batch, err := n.threads.List(ctx, afterID, threadBatchSize)
		if err != nil {
			return report, fmt.Errorf("failed to list threads after id %d: %w", afterID, err)
		}
		if len(batch) == 0 {
			break
		}

		for _, thread := range batch {
			afterID = thread.ID
			report.ThreadsScanned++

			newPosts, err := n.posts.ListByThreadSince(ctx, thread.ID, cutoff)
			if err != nil {
				return report, fmt.Errorf("failed to list new posts for thread %d: %w", thread.ID, err)
			}
			if len(newPosts) == 0 {
				// Quiet thread: no notification, no side effect.
				continue
			}
			report.ThreadsWithPosts++

			// One body per thread, shared by every subscriber: the selected
			// posts' text concatenated in storage order, nothing more.
			var body strings.Builder
			for _, post := range newPosts {
				body.WriteString(post.Text)
			}

			subscribers, err := n.threads.ListSubscribers(ctx, thread.ID)
			if err != nil {
				return report, fmt.Errorf("failed to list subscribers for thread %d: %w", thread.ID, err)
			}

			for _, sub := range subscribers {
				if err := n.sender.Send(ctx, sub.Email, body.String()); err != nil {
					failure := &DeliveryFailure{
						Err:      err,
						Email:    sub.Email,
						ThreadID: thread.ID,
					}
					report.Failures = append(report.Failures, failure)
					n.logger.Warn("digest delivery failed",
						"run_id", report.RunID,
						"thread_id", thread.ID,
						"to", sub.Email,
						"error", err)
					continue
				}
				report.DigestsSent++
			}
		}

		if len(batch) < threadBatchSize {
			break
		}
	}

	n.logger.Info("digest run complete",
		"run_id", report.RunID,
		"threads_scanned", report.ThreadsScanned,
		"threads_with_posts", report.ThreadsWithPosts,
		"digests_sent", report.DigestsSent,
		"failures", len(report.Failures))

	return report, nil
}
