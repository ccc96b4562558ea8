package store

import (
	"context"
	"errors"

	"firebase.google.com/go/v4/db"
)

// ErrUnavailable is returned by every remote operation when the service was
// started without Firebase credentials. Callers fall back to the local mirror.
var ErrUnavailable = errors.New("remote store is not configured")

// Remote persists whole collections at fixed paths in the realtime database.
// There is no merge and no partial update: Set rewrites everything at path.
type Remote interface {
	Set(ctx context.Context, path string, value interface{}) error
	Get(ctx context.Context, path string, dest interface{}) error
	Available() bool
}

// Client is the tagged handle to the realtime database: either configured
// around a live *db.Client or unconfigured, decided once at startup.
type Client struct {
	rtdb *db.Client
}

func Configured(rtdb *db.Client) *Client {
	return &Client{rtdb: rtdb}
}

func Unconfigured() *Client {
	return &Client{}
}

func (c *Client) Available() bool {
	return c != nil && c.rtdb != nil
}

func (c *Client) Set(ctx context.Context, path string, value interface{}) error {
	if !c.Available() {
		return ErrUnavailable
	}
	return c.rtdb.NewRef(path).Set(ctx, value)
}

func (c *Client) Get(ctx context.Context, path string, dest interface{}) error {
	if !c.Available() {
		return ErrUnavailable
	}
	return c.rtdb.NewRef(path).Get(ctx, dest)
}
