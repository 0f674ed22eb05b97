package pipeline

// progressQueue is an ordered, unbounded bridge between the worker and the
// consumer. The worker never blocks on a slow consumer; values are held in an
// in-memory backlog until the consumer drains them.
type progressQueue struct {
	in  chan float64
	out chan float64
}

func newProgressQueue() *progressQueue {
	q := &progressQueue{
		in:  make(chan float64),
		out: make(chan float64),
	}
	go q.pump()
	return q
}

func (q *progressQueue) pump() {
	defer close(q.out)

	in := q.in
	var backlog []float64
	for in != nil || len(backlog) > 0 {
		var send chan float64
		var next float64
		if len(backlog) > 0 {
			send = q.out
			next = backlog[0]
		}
		select {
		case value, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			backlog = append(backlog, value)
		case send <- next:
			backlog = backlog[1:]
		}
	}
}

func (q *progressQueue) push(value float64) {
	q.in <- value
}

func (q *progressQueue) close() {
	close(q.in)
}
