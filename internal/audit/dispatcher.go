package audit

import "log"

type Event struct {
	BarberID *string
	Action   string
	Entity   string
	EntityID *string
	Metadata any
}

// Dispatcher writes audit events off the request path through a buffered
// channel and a single worker goroutine.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.BarberID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

// Dispatch never blocks a request: when the queue is full the event is
// dropped instead. A nil dispatcher discards everything, which lets the
// use cases run without an audit sink.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}
