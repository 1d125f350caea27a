package messaging

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/stan.go"
)

// Config holds the NATS Streaming connection settings. An empty URL
// disables messaging: the rest of the application treats a nil client
// as "publish nowhere".
type Config struct {
	URL       string
	ClusterID string
	ClientID  string
}

type NATSClient struct {
	conn stan.Conn
}

// Connect establishes the NATS Streaming connection. Returns (nil, nil)
// when messaging is disabled by configuration.
func Connect(cfg Config) (*NATSClient, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	conn, err := stan.Connect(cfg.ClusterID, cfg.ClientID, stan.NatsURL(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS Streaming: %w", err)
	}

	return &NATSClient{conn: conn}, nil
}

// Publish marshals data as JSON and publishes it on the subject.
// Safe to call on a nil client.
func (nc *NATSClient) Publish(subject string, data interface{}) error {
	if nc == nil || nc.conn == nil {
		return nil
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	if err := nc.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("failed to publish to subject %s: %w", subject, err)
	}
	return nil
}

// Subscribe registers a durable subscription on the subject
func (nc *NATSClient) Subscribe(subject string, handler stan.MsgHandler) (stan.Subscription, error) {
	if nc == nil || nc.conn == nil {
		return nil, fmt.Errorf("messaging is disabled")
	}

	sub, err := nc.conn.Subscribe(subject, handler, stan.DurableName(subject+"-durable"))
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject %s: %w", subject, err)
	}
	return sub, nil
}

// Close shuts down the connection
func (nc *NATSClient) Close() error {
	if nc == nil || nc.conn == nil {
		return nil
	}
	return nc.conn.Close()
}
