package notification

import (
	"context"
	"fmt"
	"sync"
)

type FakeGateway struct {
	Sent        []Message
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{}
}

func (g *FakeGateway) Send(ctx context.Context, message Message) error {
	if g.ReturnError {
		return fmt.Errorf("could not send message to %v", message.To)
	}
	g.lock.Lock()
	defer g.lock.Unlock()
	g.Sent = append(g.Sent, message)
	return nil
}

func (g *FakeGateway) SentCount() int {
	g.lock.Lock()
	defer g.lock.Unlock()
	return len(g.Sent)
}

func (g *FakeGateway) LastSent() Message {
	g.lock.Lock()
	defer g.lock.Unlock()
	l := len(g.Sent)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return g.Sent[l-1]
}
