package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"ai-anywhere/internal/domain"

	"github.com/sirupsen/logrus"
)

const (
	streamReadSize = 4096
	sseDataPrefix  = "data: "
	sseDoneMarker  = "[DONE]"
)

// streamState is the per-call state of a streaming completion. pending holds
// the bytes of at most one incomplete line; content only ever grows.
type streamState struct {
	pending  string
	content  strings.Builder
	doneSeen bool
	skipped  int
}

// feed appends a chunk to the carry-over buffer and parses every line that
// is now complete, returning the notifications in stream order.
func (s *streamState) feed(chunk []byte) []domain.StreamNotification {
	s.pending += string(chunk)

	var events []domain.StreamNotification
	for {
		i := strings.IndexByte(s.pending, '\n')
		if i < 0 {
			return events
		}
		line := strings.TrimSuffix(s.pending[:i], "\r")
		s.pending = s.pending[i+1:]
		if event, ok := s.parseLine(line); ok {
			events = append(events, event)
		}
	}
}

func (s *streamState) parseLine(line string) (domain.StreamNotification, bool) {
	payload, ok := strings.CutPrefix(line, sseDataPrefix)
	if !ok {
		return domain.StreamNotification{}, false
	}
	if payload == sseDoneMarker {
		if s.doneSeen {
			return domain.StreamNotification{}, false
		}
		s.doneSeen = true
		return domain.StreamNotification{Kind: domain.NotifyDone, IsFinal: true}, true
	}

	var event chatCompletionStreamResponse
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		s.skipped++
		logrus.Debugf("Skipping malformed stream payload: %v", err)
		return domain.StreamNotification{}, false
	}
	if len(event.Choices) == 0 || event.Choices[0].Delta.Content == nil {
		return domain.StreamNotification{}, false
	}
	delta := *event.Choices[0].Delta.Content
	if delta == "" {
		return domain.StreamNotification{}, false
	}
	s.content.WriteString(delta)
	return domain.StreamNotification{Kind: domain.NotifyChunk, Delta: delta}, true
}

func (s *streamState) outcome() domain.StreamOutcome {
	return domain.StreamOutcome{Content: s.content.String(), SkippedPayloads: s.skipped}
}

// ChatCompletionStream sends a streaming chat completion and relays deltas to notify
func (a *ClientAdapter) ChatCompletionStream(ctx context.Context, call domain.ChatCall, cancel *domain.CancelSignal, notify domain.StreamNotifier) (domain.StreamOutcome, error) {
	spec, err := BuildChatSpec(call, true)
	if err != nil {
		return domain.StreamOutcome{}, err
	}

	streamCtx, abort := context.WithCancel(ctx)
	defer abort()

	resp, err := a.do(streamCtx, spec)
	if err != nil {
		return domain.StreamOutcome{}, err
	}
	defer resp.Body.Close()

	logrus.Infof("Started streaming chat completion with model: %s", call.Model)

	return a.consumeStream(resp.Body, abort, cancel, notify)
}

// consumeStream reads body chunk by chunk until the transport ends it. The
// cancel signal is checked before each chunk is processed. After [DONE] the
// peer gets doneGrace to close the connection before abort is called.
func (a *ClientAdapter) consumeStream(body io.Reader, abort func(), cancel *domain.CancelSignal, notify domain.StreamNotifier) (domain.StreamOutcome, error) {
	if notify == nil {
		notify = func(domain.StreamNotification) {}
	}
	state := &streamState{}
	buf := make([]byte, streamReadSize)

	var grace *time.Timer
	defer func() {
		if grace != nil {
			grace.Stop()
		}
	}()

	for {
		n, readErr := body.Read(buf)
		if n > 0 {
			if cancel.Cancelled() {
				logrus.Info("Streaming cancelled by user")
				notify(domain.StreamNotification{Kind: domain.NotifyCancelled, IsFinal: true})
				return state.outcome(), domain.ErrCancelled
			}
			for _, event := range state.feed(buf[:n]) {
				notify(event)
			}
			if state.doneSeen && grace == nil && a.doneGrace > 0 && abort != nil {
				grace = time.AfterFunc(a.doneGrace, abort)
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) || state.doneSeen {
				break
			}
			return state.outcome(), fmt.Errorf("%w: %v", domain.ErrTransport, readErr)
		}
	}

	if state.pending != "" {
		logrus.Debugf("Discarding %d bytes of unterminated stream line", len(state.pending))
	}
	if state.skipped > 0 {
		logrus.Warnf("Skipped %d malformed stream payloads", state.skipped)
	}
	return state.outcome(), nil
}
