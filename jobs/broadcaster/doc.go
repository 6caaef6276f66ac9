// Package broadcaster implements a background job that periodically
// drains the service outbox and publishes insert events to Kafka.
package broadcaster
