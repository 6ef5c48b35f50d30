// Package rewards is a gRPC client for the rewards service.
package rewards

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	rewardsv1 "github.com/dtroode/rewards-server/api/rewards/v1"
	"github.com/dtroode/rewards-server/internal/client/controller"
)

var _ controller.API = (*Client)(nil)

var errRejected = errors.New("server rejected consent update")

// Client talks to the rewards service on behalf of one signed-in user.
type Client struct {
	conn  *grpc.ClientConn
	api   rewardsv1.RewardsClient
	token string
}

// Dial connects to addr. The token is sent as a bearer credential on every call.
func Dial(addr, token string, useTLS bool) (*Client, error) {
	creds := insecure.NewCredentials()
	if useTLS {
		creds = credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	}

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create grpc client: %w", err)
	}

	c := NewClient(conn, token)
	c.conn = conn
	return c, nil
}

// NewClient wraps an existing connection. Close is a no-op for clients built this way.
func NewClient(cc grpc.ClientConnInterface, token string) *Client {
	return &Client{api: rewardsv1.NewRewardsClient(cc), token: token}
}

// Authenticated implements controller.Session.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

func (c *Client) outgoing(ctx context.Context) context.Context {
	if c.token == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+c.token)
}

// GetConsent implements controller.API.
func (c *Client) GetConsent(ctx context.Context) (controller.Snapshot, error) {
	resp, err := c.api.GetConsent(c.outgoing(ctx), &rewardsv1.GetConsentRequest{})
	if err != nil {
		return controller.Snapshot{}, err
	}
	snap := controller.Snapshot{
		ConsentGiven: resp.GetConsentGiven(),
		RewardPoints: resp.GetRewardPoints(),
	}
	if resp.GetConsentDate() != nil {
		since := resp.GetConsentDate().AsTime()
		snap.ConsentDate = &since
	}
	return snap, nil
}

// UpdateConsent implements controller.API. A response without success is reported as an error.
func (c *Client) UpdateConsent(ctx context.Context, given bool) error {
	resp, err := c.api.UpdateConsent(c.outgoing(ctx), &rewardsv1.UpdateConsentRequest{ConsentGiven: given})
	if err != nil {
		return err
	}
	if !resp.GetSuccess() {
		return errRejected
	}
	return nil
}

// Submit sends one transaction as is. Validation happens server side.
func (c *Client) Submit(ctx context.Context, req *rewardsv1.SubmitDataRequest) (*rewardsv1.SubmitDataResponse, error) {
	return c.api.SubmitData(c.outgoing(ctx), req)
}

// Points returns the caller's reward balance.
func (c *Client) Points(ctx context.Context) (int64, error) {
	resp, err := c.api.GetPoints(c.outgoing(ctx), &rewardsv1.GetPointsRequest{})
	if err != nil {
		return 0, err
	}
	return resp.GetPoints(), nil
}

func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
