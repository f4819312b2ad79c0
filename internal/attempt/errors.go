package attempt

import "errors"

// Domain errors returned synchronously to the caller. None are
// transient; callers map them to 4xx-equivalent responses and must not
// retry. An idempotent replay with a matching key is NOT one of these —
// it is success with the previously computed result.
var (
	// ErrAttemptNotFound means no attempt exists with the given ID.
	ErrAttemptNotFound = errors.New("attempt not found")

	// ErrItemNotFound means the item does not exist or does not belong
	// to the given attempt.
	ErrItemNotFound = errors.New("attempt item not found")

	// ErrAttemptClosed means the attempt is in a terminal state and
	// cannot be mutated.
	ErrAttemptClosed = errors.New("attempt is closed")

	// ErrAlreadyAnswered means the item has an accepted answer and the
	// submission's idempotency key does not match the recorded one.
	ErrAlreadyAnswered = errors.New("item already answered")

	// ErrNotAuthorized means the caller is neither the attempt's owner
	// nor an admin.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrInsufficientQuestions means the question bank could not fill
	// the requested attempt size.
	ErrInsufficientQuestions = errors.New("not enough questions in the bank")

	// ErrQuestionNotFound means the item's question snapshot is
	// unusable for grading.
	ErrQuestionNotFound = errors.New("question snapshot not found")
)
