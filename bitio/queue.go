package bitio

import "io"

// Queue is a double-ended sequence of bits backed by a growable ring buffer.
// As a sink it appends at the back; as a source it consumes from the front.
// The zero value is an empty queue ready to use.
type Queue struct {
	buf  []bool
	head int
	n    int
}

// NewQueue returns an empty Queue with room for capacity bits.
func NewQueue(capacity int) *Queue {
	return &Queue{buf: make([]bool, max(capacity, 0))}
}

// Len returns the number of bits in the queue.
func (q *Queue) Len() int {
	return q.n
}

func (q *Queue) grow() {
	if q.n < len(q.buf) {
		return
	}
	buf := make([]bool, max(2*len(q.buf), 64))
	for i := range q.n {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}

// PushBack appends a bit at the back.
func (q *Queue) PushBack(bit bool) {
	q.grow()
	q.buf[(q.head+q.n)%len(q.buf)] = bit
	q.n++
}

// PushFront prepends a bit at the front.
func (q *Queue) PushFront(bit bool) {
	q.grow()
	q.head = (q.head - 1 + len(q.buf)) % len(q.buf)
	q.buf[q.head] = bit
	q.n++
}

// PopFront removes and returns the front bit. ok is false if the queue is empty.
func (q *Queue) PopFront() (bit, ok bool) {
	if q.n == 0 {
		return false, false
	}
	bit = q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return bit, true
}

// PopBack removes and returns the back bit. ok is false if the queue is empty.
func (q *Queue) PopBack() (bit, ok bool) {
	if q.n == 0 {
		return false, false
	}
	q.n--
	return q.buf[(q.head+q.n)%len(q.buf)], true
}

// WriteBit appends a bit at the back.
func (q *Queue) WriteBit(bit bool) {
	q.PushBack(bit)
}

// ReadBit consumes the front bit, or returns io.EOF if the queue is empty.
func (q *Queue) ReadBit() (bool, error) {
	bit, ok := q.PopFront()
	if !ok {
		return false, io.EOF
	}
	return bit, nil
}
