package tableview

import (
	"context"
	"customer-dashboard/internal/domain/customer"
	"log/slog"
	"os"
)

// Fetcher supplies the full record set. Both the HTTP client and the
// customer service satisfy it.
type Fetcher interface {
	ListCustomers(ctx context.Context) ([]*customer.Customer, error)
}

// Controller holds the current State and replaces it on every user action.
// It is not safe for concurrent use.
type Controller struct {
	fetcher Fetcher
	state   State
	loaded  bool
	logger  *slog.Logger
}

func NewController(fetcher Fetcher, pageSize int, logger *slog.Logger) *Controller {
	if fetcher == nil {
		panic("fetcher cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	return &Controller{
		fetcher: fetcher,
		state:   NewState(nil, pageSize),
		logger:  logger.With("component", "TableViewController"),
	}
}

// Load fetches the records once. A failed fetch is logged and leaves the
// table empty; later calls do nothing.
func (c *Controller) Load(ctx context.Context) {
	if c.loaded {
		return
	}
	c.loaded = true

	records, err := c.fetcher.ListCustomers(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, "Error fetching data", slog.Any("error", err))
		return
	}
	c.state = c.state.WithRecords(records)
	c.logger.DebugContext(ctx, "Records loaded", slog.Int("count", len(records)))
}

func (c *Controller) State() State { return c.state }

func (c *Controller) Search(text string) {
	c.state = c.state.Search(text)
}

func (c *Controller) Sort(col Column) error {
	return c.apply(c.state.Sort(col))
}

func (c *Controller) GoToPage(n int) error {
	return c.apply(c.state.GoToPage(n))
}

func (c *Controller) NextPage() error { return c.apply(c.state.NextPage()) }
func (c *Controller) PrevPage() error { return c.apply(c.state.PrevPage()) }

func (c *Controller) apply(next State, err error) error {
	if err != nil {
		return err
	}
	c.state = next
	return nil
}
