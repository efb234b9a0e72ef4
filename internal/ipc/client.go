package ipc

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"resty.dev/v3"
)

// Client talks to a running daemon over its unix socket.
type Client struct {
	client *resty.Client
}

func NewClient(sockPath string) *Client {
	client := resty.NewWithClient(&http.Client{
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, "unix", sockPath)
			},
		},
	})

	client.SetBaseURL("http://slidepager")
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")
	client.SetHeader("User-Agent", "slidepager")
	client.SetTimeout(30 * time.Second)

	return &Client{client: client}
}

func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) post(path string, body any, query ...string) (*Response, error) {
	result := Response{}
	req := c.client.R().SetResult(&result).SetError(&result)
	if body != nil {
		req.SetBody(body)
	}
	for i := 0; i+1 < len(query); i += 2 {
		req.SetQueryParam(query[i], query[i+1])
	}

	response, err := req.Post(path)
	if err != nil {
		return nil, err
	}

	if response.StatusCode() != http.StatusOK {
		if result.Message != "" {
			return nil, fmt.Errorf("error sending %s: %s: %s", path, response.Status(), result.Message)
		}
		return nil, fmt.Errorf("error sending %s: %s", path, response.Status())
	}

	return &result, nil
}

func (c *Client) Transition(req TransitionRequest) (*Response, error) {
	return c.post("/transition", req)
}

func (c *Client) Cancel() error {
	_, err := c.post("/cancel", nil)
	return err
}

func (c *Client) Stop() error {
	_, err := c.post("/stop", nil)
	return err
}

// Next turns to the following page. Zero steps uses the daemon's default.
func (c *Client) Next(steps int) (*Response, error) {
	return c.post("/next", nil, stepsQuery(steps)...)
}

func (c *Client) Prev(steps int) (*Response, error) {
	return c.post("/prev", nil, stepsQuery(steps)...)
}

// Load replaces the daemon's pages. Directories are expanded by the daemon.
func (c *Client) Load(paths []string) (*Response, error) {
	return c.post("/load", paths)
}

func stepsQuery(steps int) []string {
	if steps <= 0 {
		return nil
	}
	return []string{"steps", strconv.Itoa(steps)}
}

func (c *Client) Status() (*StatusResponse, error) {
	result := StatusResponse{}
	response, err := c.client.R().SetResult(&result).Get("/status")
	if err != nil {
		return nil, err
	}
	if response.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("error getting status: %s", response.Status())
	}
	return &result, nil
}

func SendTransition(req TransitionRequest) (*Response, error) {
	c := NewClient(SocketPath())
	defer c.Close()
	return c.Transition(req)
}

func SendCancel() error {
	c := NewClient(SocketPath())
	defer c.Close()
	return c.Cancel()
}

func SendStop() error {
	c := NewClient(SocketPath())
	defer c.Close()
	return c.Stop()
}

func SendNext(steps int) (*Response, error) {
	c := NewClient(SocketPath())
	defer c.Close()
	return c.Next(steps)
}

func SendPrev(steps int) (*Response, error) {
	c := NewClient(SocketPath())
	defer c.Close()
	return c.Prev(steps)
}

func SendLoad(paths []string) (*Response, error) {
	c := NewClient(SocketPath())
	defer c.Close()
	return c.Load(paths)
}

func SendStatus() (*StatusResponse, error) {
	c := NewClient(SocketPath())
	defer c.Close()
	return c.Status()
}
