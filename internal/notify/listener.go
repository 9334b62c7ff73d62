// Package notify consumes realtime change notifications of the hosted backend
// and invalidates the dashboard views built from the changed tables.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/katiamach/alaska-weather-api/internal/dashboard"
	"github.com/katiamach/alaska-weather-api/internal/logger"
	"github.com/katiamach/alaska-weather-api/internal/metrics"
	"github.com/katiamach/alaska-weather-api/internal/model"
)

// tableViews maps watched tables to the views built from them. Tables without
// a view here (articles, categories, alerts, breaking_news) are ignored.
var tableViews = map[string][]string{
	"weather": {dashboard.ViewWeather},
}

// knownTables are the tables of the hosted backend counted under their own
// name. Any other table is counted as otherTable.
var knownTables = map[string]bool{
	"weather":       true,
	"articles":      true,
	"categories":    true,
	"alerts":        true,
	"breaking_news": true,
}

const otherTable = "other"

// MessageReader reads change notification messages.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafkago.Message, error)
	Close() error
}

// Invalidator drops cached views.
type Invalidator interface {
	Invalidate(view string)
}

// Listener invalidates views on change notifications.
type Listener struct {
	reader  MessageReader
	views   Invalidator
	metrics *metrics.Metrics
}

// NewKafkaReader creates a consumer group reader of the change notification topic.
func NewKafkaReader(brokers []string, topic, groupID string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 1 << 20,
	})
}

// NewListener creates new Listener.
func NewListener(reader MessageReader, views Invalidator, m *metrics.Metrics) *Listener {
	return &Listener{
		reader:  reader,
		views:   views,
		metrics: m,
	}
}

// Run consumes notifications until ctx is cancelled or the reader is closed.
func (l *Listener) Run(ctx context.Context) error {
	for {
		msg, err := l.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read change notification: %w", err)
		}

		event, err := decodeEvent(msg)
		if err != nil {
			logger.Error(err)
			continue
		}

		l.handle(event)
	}
}

// Close closes the underlying reader.
func (l *Listener) Close() error {
	return l.reader.Close()
}

func (l *Listener) handle(event *model.ChangeEvent) {
	l.metrics.ChangeEvents.WithLabelValues(tableLabel(event.Table)).Inc()

	views, ok := tableViews[event.Table]
	if !ok {
		logger.Debug(fmt.Sprintf("No views for table %s, ignoring %s", event.Table, event.Type))
		return
	}

	for _, view := range views {
		l.views.Invalidate(view)
	}
}

func tableLabel(table string) string {
	if knownTables[table] {
		return table
	}
	return otherTable
}

func decodeEvent(msg kafkago.Message) (*model.ChangeEvent, error) {
	event := new(model.ChangeEvent)
	if err := json.Unmarshal(msg.Value, event); err != nil {
		return nil, fmt.Errorf("failed to decode change notification at offset %d: %w", msg.Offset, err)
	}

	if event.Table == "" {
		return nil, fmt.Errorf("change notification at offset %d has no table", msg.Offset)
	}

	return event, nil
}
