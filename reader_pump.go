package ryu

import (
	"context"
	"io"

	"github.com/aminmarashi/ryu/pool"
)

// readerPump reads chunks from an io.Reader and Emits each one as []byte on
// root, recycling the read buffer through buffers between calls. It stops
// when the reader returns io.EOF (root.Finish()), any other error
// (root.Fail(err)), or ctx is cancelled (root.Cancel()).
//
// This is the one place in the package where a background goroutine drives
// Emit: a blocking io.Reader can't be polled from the single-threaded
// dispatch path a pull triggers, so the read loop runs detached and pushes
// into the chain as chunks become available.
type readerPump struct {
	root    *Source[[]byte]
	reader  io.Reader
	buffers pool.Pool
}

func newReaderPump(root *Source[[]byte], r io.Reader, buffers pool.Pool) *readerPump {
	return &readerPump{root: root, reader: r, buffers: buffers}
}

func (p *readerPump) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			p.root.Cancel()
			return
		default:
		}

		buf := p.buffers.Get().([]byte)
		n, err := p.reader.Read(buf)

		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			p.buffers.Put(buf)

			if emitErr := p.root.Emit(chunk); emitErr != nil {
				return
			}
		} else {
			p.buffers.Put(buf)
		}

		if err != nil {
			if err == io.EOF {
				p.root.Finish()
			} else {
				p.root.Fail(err)
			}
			return
		}
	}
}
