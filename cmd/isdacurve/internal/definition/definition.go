// Package definition decodes the YAML curve definition documents read by
// the isdacurve command.
package definition

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/meenmo/isdacurve/calendar"
)

// ErrInvalidDefinition is returned for documents that decode but cannot
// describe a curve.
var ErrInvalidDefinition = errors.New("invalid curve definition")

// Kind tags a definition document.
type Kind string

const (
	KindDiscount Kind = "discount"
	KindCredit   Kind = "credit"
)

// Document is one decoded definition file. Exactly one of Discount and
// Credit is set, according to Kind.
type Document struct {
	Path     string
	Kind     Kind
	Discount *DiscountCurve
	Credit   *CreditCurve
}

// Name returns the curve name of the document.
func (d Document) Name() string {
	if d.Credit != nil {
		return d.Credit.Name
	}
	if d.Discount != nil {
		return d.Discount.Name
	}
	return ""
}

// RegisterCalendars installs the calendars of every document in order.
// Calendars are process-wide, so a name that two documents define with
// different holidays fails here, before any curve is calibrated.
func RegisterCalendars(docs []Document) error {
	for _, doc := range docs {
		d := doc.Discount
		if doc.Credit != nil {
			d = doc.Credit.Discount
		}
		if d == nil {
			continue
		}
		if err := d.RegisterCalendars(); err != nil {
			name := doc.Path
			if name == "" {
				name = doc.Name()
			}
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// Calendar is a holiday list registered under Name before any node is
// resolved. Weekends are always holidays.
type Calendar struct {
	Name     string       `yaml:"name" validate:"required"`
	Holidays []civil.Date `yaml:"holidays"`
}

// Register installs the calendar.
func (c Calendar) Register() error {
	days := make([]time.Time, len(c.Holidays))
	for i, h := range c.Holidays {
		days[i] = toTime(h)
	}
	return calendar.Register(calendar.CalendarID(c.Name), days)
}

var validate = validator.New()

type header struct {
	Kind Kind `yaml:"kind"`
}

// Load reads and validates the document at path. A credit document that
// names a discount_file has it loaded relative to its own directory.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read definition: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path
	if doc.Credit != nil && doc.Credit.Discount == nil {
		ref := doc.Credit.DiscountFile
		if !filepath.IsAbs(ref) {
			ref = filepath.Join(filepath.Dir(path), ref)
		}
		dd, err := Load(ref)
		if err != nil {
			return Document{}, fmt.Errorf("%s: discount_file: %w", path, err)
		}
		if dd.Discount == nil {
			return Document{}, fmt.Errorf("%s: %w: discount_file %s is a %s document", path, ErrInvalidDefinition, ref, dd.Kind)
		}
		doc.Credit.Discount = dd.Discount
		if err := doc.Credit.check(); err != nil {
			return Document{}, fmt.Errorf("%s: %w", path, err)
		}
	}
	return doc, nil
}

// Parse decodes and validates one document. Unknown keys are rejected.
// A credit document referring to a discount_file is returned with its
// Discount field unset.
func Parse(data []byte) (Document, error) {
	var h header
	if err := yaml.Unmarshal(data, &h); err != nil {
		return Document{}, fmt.Errorf("decode definition: %w", err)
	}
	switch Kind(strings.ToLower(string(h.Kind))) {
	case KindDiscount:
		var d DiscountCurve
		if err := decodeStrict(data, &d); err != nil {
			return Document{}, err
		}
		if err := d.Validate(); err != nil {
			return Document{}, err
		}
		return Document{Kind: KindDiscount, Discount: &d}, nil
	case KindCredit:
		var c CreditCurve
		if err := decodeStrict(data, &c); err != nil {
			return Document{}, err
		}
		if err := c.Validate(); err != nil {
			return Document{}, err
		}
		return Document{Kind: KindCredit, Credit: &c}, nil
	}
	return Document{}, fmt.Errorf("%w: kind %q, want discount or credit", ErrInvalidDefinition, h.Kind)
}

func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode definition: %w", err)
	}
	return nil
}

func validateStruct(s any) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return nil
}

func checkDate(field string, d civil.Date) error {
	if !d.IsValid() {
		return fmt.Errorf("%w: %s is missing or not a date", ErrInvalidDefinition, field)
	}
	return nil
}

func toTime(d civil.Date) time.Time {
	return d.In(time.UTC)
}
