package notify

import "log"

// Fanout publishes to several channels; a failing one never blocks the
// others.
type Fanout []Publisher

// Publisher is any best-effort event sink.
type Publisher interface {
	Publish(channel, event string, payload interface{}) error
}

func (f Fanout) Publish(channel, event string, payload interface{}) error {
	for _, p := range f {
		if err := p.Publish(channel, event, payload); err != nil {
			log.Printf("publish %s to %T failed: %v", event, p, err)
		}
	}
	return nil
}
