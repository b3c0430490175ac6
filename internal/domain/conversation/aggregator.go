package conversation

import (
	"sort"
	"strings"

	"propdesk/inbox-api/internal/domain/message"
)

// Aggregator groups flat message lists into conversation summaries. The zero
// value matches the inherited behavior: counterparty keys compared verbatim.
type Aggregator struct {
	// Normalize folds email case and strips whatsapp number formatting
	// before grouping. Off by default: the stored addresses are grouped by
	// exact string match.
	Normalize bool
}

// Aggregate collapses messages into one Conversation per distinct counterparty.
// It is a pure function of its input: no ordering precondition, no side
// effects, and an empty input yields an empty (non-nil) result.
//
// For each group the last message is the one with the maximum created_at;
// on equal timestamps the earlier input position wins, which keeps repeated
// calls over the same snapshot deterministic. The result is sorted descending
// by last-message time with a stable tie order (first appearance in input).
func (a Aggregator) Aggregate(msgs []message.Message) []Conversation {
	grouped := make(map[string]int, len(msgs))
	out := make([]Conversation, 0, len(msgs))

	for _, m := range msgs {
		key := a.key(m.Counterparty())

		idx, ok := grouped[key]
		if !ok {
			grouped[key] = len(out)
			out = append(out, Conversation{
				Counterparty: key,
				DisplayName:  key,
				LastMessage:  m,
			})
			idx = len(out) - 1
		}

		conv := &out[idx]
		conv.MessageCount++
		if !m.Seen {
			conv.UnreadCount++
		}
		if m.HasMedia() {
			conv.HasMedia = true
		}
		if m.CreatedAt.After(conv.LastMessage.CreatedAt) {
			conv.LastMessage = m
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastMessage.CreatedAt.After(out[j].LastMessage.CreatedAt)
	})

	return out
}

// MessagesFor filters the message set to one counterparty and returns it
// ascending by created_at for chronological thread display. The sort is
// stable: messages with equal timestamps keep their input order.
func (a Aggregator) MessagesFor(counterparty string, msgs []message.Message) []message.Message {
	key := a.key(counterparty)

	thread := make([]message.Message, 0)
	for _, m := range msgs {
		if a.key(m.Counterparty()) == key {
			thread = append(thread, m)
		}
	}

	sort.SliceStable(thread, func(i, j int) bool {
		return thread[i].CreatedAt.Before(thread[j].CreatedAt)
	})

	return thread
}

func (a Aggregator) key(counterparty string) string {
	if !a.Normalize {
		return counterparty
	}
	if strings.Contains(counterparty, "@") {
		return strings.ToLower(strings.TrimSpace(counterparty))
	}
	return normalizePhone(counterparty)
}

// normalizePhone strips spacing, dashes and parentheses from a phone number,
// keeping a leading plus sign.
func normalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
