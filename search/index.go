// Package search maintains a full-text index over live channel messages.
// The index is in-memory only: it lives and dies with the session, like the
// channels it serves.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/blugelabs/bluge"

	"github.com/joaogpereira/UniDrive/domain/chat"
)

type MessageIndex struct {
	mu     sync.Mutex
	writer *bluge.Writer
	log    *slog.Logger
}

func NewMessageIndex(log *slog.Logger) (*MessageIndex, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, fmt.Errorf("opening message index: %w", err)
	}
	return &MessageIndex{writer: writer, log: log}, nil
}

func (i *MessageIndex) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.writer.Close()
}

// Add indexes one message under its channel. The document id combines ride
// and message id, so re-indexing the same message is an idempotent update.
func (i *MessageIndex) Add(rideID string, m chat.Message) error {
	doc := bluge.NewDocument(fmt.Sprintf("%s:%d", rideID, m.ID)).
		AddField(bluge.NewKeywordField("ride", rideID)).
		AddField(bluge.NewTextField("body", m.Body)).
		AddField(bluge.NewStoredOnlyField("message_id", []byte(strconv.FormatInt(m.ID, 10))))

	i.mu.Lock()
	defer i.mu.Unlock()
	return i.writer.Update(doc.ID(), doc)
}

// Search returns the ids of messages in one channel matching the terms,
// best score first. Other channels never leak into the result.
func (i *MessageIndex) Search(ctx context.Context, rideID, terms string, limit int) ([]int64, error) {
	i.mu.Lock()
	reader, err := i.writer.Reader()
	i.mu.Unlock()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			i.log.Warn("Failed to close index reader", "err", err)
		}
	}()

	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(terms).SetField("body")).
		AddMust(bluge.NewTermQuery(rideID).SetField("ride"))

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, err
	}

	var ids []int64
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "message_id" {
				if id, err := strconv.ParseInt(string(value), 10, 64); err == nil {
					ids = append(ids, id)
				}
			}
			return true
		})
		if err != nil {
			return nil, err
		}
	}
	return ids, nil
}
