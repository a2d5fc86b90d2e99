// Package printing is the boundary to the physical printing collaborator.
// The pipeline hands it a formatted document and an address and gets back a
// success/failure; rendering printer control codes is not this package's job.
package printing

import (
	"context"
	"net"
	"time"
)

type Job struct {
	Address  string // host:port of the destination printer
	Document []byte
}

type Client interface {
	Print(ctx context.Context, job Job) error
}

// NetworkClient dials the printer fresh for every job. Connections are
// request-scoped on purpose: a shared live connection per printer id caused
// cross-request interference in an earlier design.
type NetworkClient struct {
	Timeout time.Duration
}

func NewNetworkClient(timeout time.Duration) *NetworkClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &NetworkClient{Timeout: timeout}
}

func (c *NetworkClient) Print(ctx context.Context, job Job) error {
	d := net.Dialer{Timeout: c.Timeout}
	conn, err := d.DialContext(ctx, "tcp", job.Address)
	if err != nil {
		return err
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetWriteDeadline(deadline)
	} else {
		_ = conn.SetWriteDeadline(time.Now().Add(c.Timeout))
	}
	_, err = conn.Write(job.Document)
	return err
}
