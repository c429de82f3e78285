package kafka

import (
	"errors"
	"fmt"

	"github.com/Aleph-Alpha/reqlog/v1/writer"
)

var (
	// ErrNoBrokers is returned by NewWriter when Config.Brokers is empty.
	ErrNoBrokers = fmt.Errorf("kafka: brokers: %w", writer.ErrNotConfigured)

	// ErrNoTopic is returned by NewWriter when Config.Topic is empty.
	ErrNoTopic = fmt.Errorf("kafka: topic: %w", writer.ErrNotConfigured)

	// ErrInvalidAcks is returned by NewWriter for an unknown RequiredAcks
	// mode.
	ErrInvalidAcks = errors.New("kafka: invalid required_acks")
)
