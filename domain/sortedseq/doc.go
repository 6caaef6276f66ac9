// Package sortedseq implements a lock-free sorted sequence of int32
// values. Many writers insert concurrently while readers index into
// the currently published snapshot without taking any lock.
//
// Writers copy the current buffer, insert into the copy, and publish
// it with a single compare-and-swap. Displaced buffers go to a
// deferred reclaimer that destroys them only after a grace interval,
// so a reader that loaded the old snapshot can always finish its
// dereference. Scratch buffers are loaned from a lock-free bank to
// bound allocation churn.
package sortedseq
