// Package stream publishes body positions to redis so other processes can
// follow a running simulation.
package stream

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hashicorp/go-hclog"
	"github.com/redis/go-redis/v9"

	"github.com/san-kum/gravsim/internal/dynamo"
)

const DefaultChannel = "gravsim.tick"

// Client is the part of *redis.Client the publisher needs.
type Client interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

type BodyFrame struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type Frame struct {
	Tick   int         `json:"tick"`
	Bodies []BodyFrame `json:"bodies"`
}

// Publisher collects positions through MoveTo and sends one Frame per tick
// from OnTick. Failures are logged and do not stop the simulation.
type Publisher struct {
	client  Client
	channel string
	logger  hclog.Logger
	timeout time.Duration

	mu      sync.Mutex
	pending map[int]mgl64.Vec2
	sent    int
	failed  int
}

func NewPublisher(client Client, channel string, logger hclog.Logger) *Publisher {
	if channel == "" {
		channel = DefaultChannel
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Publisher{
		client:  client,
		channel: channel,
		logger:  logger.Named("stream"),
		timeout: time.Second,
		pending: make(map[int]mgl64.Vec2),
	}
}

// Dial connects to redis at addr and checks the connection.
func Dial(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

func (p *Publisher) MoveTo(index int, pos mgl64.Vec2) {
	p.mu.Lock()
	p.pending[index] = pos
	p.mu.Unlock()
}

func (p *Publisher) OnTick(bodies []dynamo.Body, tick int) {
	frame := Frame{Tick: tick, Bodies: make([]BodyFrame, len(bodies))}

	p.mu.Lock()
	for i, b := range bodies {
		pos := b.Position
		if moved, ok := p.pending[i]; ok {
			pos = moved
		}
		frame.Bodies[i] = BodyFrame{ID: i, X: pos[0], Y: pos[1]}
	}
	clear(p.pending)
	p.mu.Unlock()

	data, err := json.Marshal(frame)
	if err != nil {
		p.logger.Error("encode frame", "tick", tick, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()
	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		p.failed++
		if p.failed == 1 {
			p.logger.Warn("publish failed", "channel", p.channel, "tick", tick, "error", err)
		}
		return
	}
	p.sent++
}

// Stats reports how many frames were sent and how many failed.
func (p *Publisher) Stats() (sent, failed int) {
	return p.sent, p.failed
}
