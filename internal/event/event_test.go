package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	name string
	log  *[]string
}

func (r *recorder) OnEvent(e Event) {
	*r.log = append(*r.log, r.name+":"+string(e.Type))
}

func TestDispatchInSubscriptionOrder(t *testing.T) {
	var log []string
	a := &recorder{"a", &log}
	b := &recorder{"b", &log}

	d := NewDispatcher()
	d.Subscribe(FrameRendered, a)
	d.Subscribe(FrameRendered, b)
	d.Subscribe(CanvasReset, b)

	d.Dispatch(Event{Type: FrameRendered, Data: FrameData{Index: 0}})
	d.Dispatch(Event{Type: CanvasReset})
	d.Dispatch(Event{Type: FeedClosed})

	assert.Equal(t, []string{"a:FrameRendered", "b:FrameRendered", "b:CanvasReset"}, log)
}

func TestUnsubscribe(t *testing.T) {
	var log []string
	a := &recorder{"a", &log}
	b := &recorder{"b", &log}

	d := NewDispatcher()
	d.Subscribe(FrameRendered, a)
	d.Subscribe(FrameRendered, b)
	d.Unsubscribe(FrameRendered, a)
	d.Unsubscribe(CanvasReset, a)

	d.Dispatch(Event{Type: FrameRendered})
	assert.Equal(t, []string{"b:FrameRendered"}, log)
}

type unsubscriber struct {
	d    *Dispatcher
	self Listener
	log  *[]string
}

func (u *unsubscriber) OnEvent(e Event) {
	*u.log = append(*u.log, "u:"+string(e.Type))
	u.d.Unsubscribe(e.Type, u.self)
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	var log []string
	d := NewDispatcher()
	u := &unsubscriber{d: d, log: &log}
	u.self = u
	b := &recorder{"b", &log}
	d.Subscribe(FrameRendered, u)
	d.Subscribe(FrameRendered, b)

	d.Dispatch(Event{Type: FrameRendered})
	d.Dispatch(Event{Type: FrameRendered})
	assert.Equal(t, []string{"u:FrameRendered", "b:FrameRendered", "b:FrameRendered"}, log)
}
