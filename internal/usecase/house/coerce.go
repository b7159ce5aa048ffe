package house

import (
	"time"

	domain "github.com/BruksfildServices01/house-hunting/internal/domain/house"
	"github.com/BruksfildServices01/house-hunting/internal/httperr"
)

// coercer converts textual payload values and remembers the first field
// that failed.
type coercer struct {
	bad string
}

func (c *coercer) fail(field string) {
	if c.bad == "" {
		c.bad = field
	}
}

func (c *coercer) err() error {
	if c.bad == "" {
		return nil
	}
	return httperr.Validation("Invalid value for " + c.bad)
}

func (c *coercer) int(field string, t domain.Text) int {
	n, err := t.Int()
	if err != nil {
		c.fail(field)
	}
	return n
}

func (c *coercer) float(field string, t domain.Text) float64 {
	f, err := t.Float()
	if err != nil {
		c.fail(field)
	}
	return f
}

func (c *coercer) date(field string, t domain.Text) time.Time {
	d, err := t.Time()
	if err != nil {
		c.fail(field)
	}
	return d
}

func (c *coercer) optInt(field string, t domain.Text) *int {
	if t.Empty() {
		return nil
	}
	n := c.int(field, t)
	return &n
}

func (c *coercer) optFloat(field string, t domain.Text) *float64 {
	if t.Empty() {
		return nil
	}
	f := c.float(field, t)
	return &f
}
