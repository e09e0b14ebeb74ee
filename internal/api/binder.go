package api

import "github.com/labstack/echo/v4"

type normalizer interface {
	Normalize()
}

// Binder is echo's default binder followed by input trimming.
type Binder struct {
	echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	if err := b.DefaultBinder.Bind(i, c); err != nil {
		return err
	}
	if n, ok := i.(normalizer); ok {
		n.Normalize()
	}
	return nil
}
