// Package reclaim implements deferred destruction of retired buffers.
// A retired buffer stays physically live for a grace interval so that
// any reader that loaded the snapshot pointer before retirement has
// finished its dereference by the time the buffer is destroyed.
//
// The queue is FIFO: retirement order equals publication-displacement
// order, and a head record that is not yet due blocks everything
// behind it (newer records cannot be due earlier).
package reclaim
