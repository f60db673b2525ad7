package mutation

import (
	"context"
	"sync"

	clienterrors "github.com/Mithun19978/AlpenLuce/internal/errors"
)

// Record is any collection entry the controller can manage.
type Record interface {
	RecordID() int64
}

// Controller keeps a locally-held list of records synchronized with
// single-record server mutations. A record's visible state is always
// either the last authoritative server value or a confirmed mutation
// result, never an intermediate. Mutations on different records are not
// serialized against each other; a second mutation on a record whose
// mutation is still in flight fails fast with ErrMutationPending.
type Controller[T Record] struct {
	mu      sync.Mutex
	records []T
	pending map[int64]struct{}
	lastErr error
	closed  bool
}

// NewController returns an empty controller.
func NewController[T Record]() *Controller[T] {
	return &Controller[T]{pending: make(map[int64]struct{})}
}

// Load replaces the collection wholesale with the fetched authoritative
// state.
func (c *Controller[T]) Load(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}

	records, err := fetch(ctx)
	if err != nil {
		c.fail(err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return clienterrors.ErrControllerClosed
	}
	c.records = records
	c.lastErr = nil
	return nil
}

// Records returns a snapshot of the collection in server order.
func (c *Controller[T]) Records() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.records))
	copy(out, c.records)
	return out
}

// Get returns the record with the given id.
func (c *Controller[T]) Get(id int64) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.records {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Pending reports whether a mutation is in flight for the given id. The
// screen disables the record's controls while this is true.
func (c *Controller[T]) Pending(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.pending[id]
	return ok
}

// Err returns the current screen-level error, or nil. It is cleared when
// the next mutation starts.
func (c *Controller[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Update issues a mutation whose endpoint returns the full updated record
// and replaces the local copy with it.
func (c *Controller[T]) Update(ctx context.Context, id int64, call func(context.Context) (*T, error)) error {
	if err := c.begin(id); err != nil {
		return err
	}
	defer c.end(id)

	updated, err := call(ctx)
	if err != nil {
		c.fail(err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		// Screen is gone; a late result must not be applied.
		return clienterrors.ErrControllerClosed
	}
	for i, r := range c.records {
		if r.RecordID() == id {
			c.records[i] = *updated
			return nil
		}
	}
	return clienterrors.ErrRecordNotFound
}

// Merge issues a mutation whose endpoint returns only the changed flags
// and reconciles by merging the known-changed fields into the prior
// record. The merge runs only after the server accepts the call, so a
// failure never commits a partial mutation.
func (c *Controller[T]) Merge(ctx context.Context, id int64, call func(context.Context) error, merge func(T) T) error {
	if err := c.begin(id); err != nil {
		return err
	}
	defer c.end(id)

	if err := call(ctx); err != nil {
		c.fail(err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return clienterrors.ErrControllerClosed
	}
	for i, r := range c.records {
		if r.RecordID() == id {
			c.records[i] = merge(r)
			return nil
		}
	}
	return clienterrors.ErrRecordNotFound
}

// Create issues a creation whose endpoint does not return the new record
// and reloads the collection to learn its identifier.
func (c *Controller[T]) Create(ctx context.Context, call func(context.Context) error, fetch func(context.Context) ([]T, error)) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}
	c.clearErr()

	if err := call(ctx); err != nil {
		c.fail(err)
		return err
	}
	return c.Load(ctx, fetch)
}

// Prepend issues a creation whose endpoint returns the full created record
// and puts it at the head of the collection.
func (c *Controller[T]) Prepend(ctx context.Context, call func(context.Context) (*T, error)) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}
	c.clearErr()

	created, err := call(ctx)
	if err != nil {
		c.fail(err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return clienterrors.ErrControllerClosed
	}
	c.records = append([]T{*created}, c.records...)
	return nil
}

// Delete removes a record, gated on an acknowledged confirmation. On
// success the record leaves the collection; on failure it stays untouched.
func (c *Controller[T]) Delete(ctx context.Context, id int64, confirmed bool, call func(context.Context) error) error {
	if !confirmed {
		return clienterrors.ErrConfirmationRequired
	}
	if err := c.begin(id); err != nil {
		return err
	}
	defer c.end(id)

	if err := call(ctx); err != nil {
		c.fail(err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return clienterrors.ErrControllerClosed
	}
	for i, r := range c.records {
		if r.RecordID() == id {
			c.records = append(c.records[:i], c.records[i+1:]...)
			return nil
		}
	}
	return clienterrors.ErrRecordNotFound
}

// Close marks the controller's screen as unmounted. In-flight mutations
// finish their network calls but their results are discarded, and no new
// mutation can start.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

func (c *Controller[T]) ensureOpen() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return clienterrors.ErrControllerClosed
	}
	return nil
}

// begin registers the mutation intent: the id becomes pending and any
// prior screen-level error is cleared.
func (c *Controller[T]) begin(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return clienterrors.ErrControllerClosed
	}
	if _, ok := c.pending[id]; ok {
		return clienterrors.ErrMutationPending
	}
	c.pending[id] = struct{}{}
	c.lastErr = nil
	return nil
}

// end clears the pending marker, on both success and failure paths.
func (c *Controller[T]) end(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, id)
}

func (c *Controller[T]) fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.lastErr = err
	}
}

func (c *Controller[T]) clearErr() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = nil
}
