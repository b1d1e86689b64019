package whatsapp

import (
	"context"
	"errors"
	"fmt"

	"go.mau.fi/whatsmeow"
	waProto "go.mau.fi/whatsmeow/binary/proto"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	waLog "go.mau.fi/whatsmeow/util/log"
	"google.golang.org/protobuf/proto"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNotLoggedIn is returned when the session store has no paired device.
// Pairing is done once with the standalone pairing tool; the server only
// reuses the stored session.
var ErrNotLoggedIn = errors.New("whatsapp device is not paired")

// Client wraps a whatsmeow client bound to the sqlite session store.
type Client struct {
	wac *whatsmeow.Client
}

// Connect opens the sqlite session store at dbPath and connects the
// stored device to WhatsApp.
func Connect(dbPath string) (*Client, error) {
	container, err := sqlstore.New("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=on", dbPath), waLog.Noop)
	if err != nil {
		return nil, fmt.Errorf("failed to open whatsapp session store: %w", err)
	}

	device, err := container.GetFirstDevice()
	if err != nil {
		return nil, fmt.Errorf("failed to load whatsapp device: %w", err)
	}

	wac := whatsmeow.NewClient(device, waLog.Noop)
	if wac.Store.ID == nil {
		return nil, ErrNotLoggedIn
	}

	if err := wac.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to whatsapp: %w", err)
	}

	return &Client{wac: wac}, nil
}

// SendText sends a plain text message to a phone number in international
// format without the leading "+" (e.g. "919842012345").
func (c *Client) SendText(ctx context.Context, phone string, msg string) error {
	_, err := c.wac.SendMessage(ctx, types.JID{
		User:   phone,
		Server: types.DefaultUserServer,
	}, &waProto.Message{
		Conversation: proto.String(msg),
	})
	return err
}

func (c *Client) Disconnect() {
	c.wac.Disconnect()
}
