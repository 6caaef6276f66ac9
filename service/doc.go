// Package service coordinates the sorted-sequence core with the
// outer surfaces: the gRPC API, the Kafka event broadcaster, and
// metrics. All writes enter through SeqService.
package service
