// Package messaging provides a broker-agnostic API for publishing messages.
//
// The goal is to keep business code independent from the underlying messaging
// system. NATS backs the current implementation; the Messaging interface is
// the only surface use-case code should touch.
package messaging
