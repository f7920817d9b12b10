package messages

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"sync"

	"github.com/dmitrymomot/rulekit/pkg/constraint"
	"github.com/dmitrymomot/rulekit/pkg/logger"
)

// Catalog maps violation messages to templates. Templates loaded into the
// catalog override the defaults carried by each ViolationMessage; anything
// not overridden falls back to the message's own template.
//
// A Catalog is safe for concurrent use.
type Catalog struct {
	mu        sync.RWMutex
	known     map[string]constraint.ViolationMessage // by code and by key
	overrides map[string]string                      // identifier -> template
	strict    bool
	log       *slog.Logger
}

type Option func(*Catalog)

// WithStrict rejects overrides for codes and keys that are not registered.
func WithStrict(strict bool) Option {
	return func(c *Catalog) { c.strict = strict }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMessages registers application messages next to the built-in ones.
func WithMessages(msgs ...constraint.ViolationMessage) Option {
	return func(c *Catalog) {
		for _, m := range msgs {
			c.register(m)
		}
	}
}

// New creates a catalog with every built-in message registered.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		known:     make(map[string]constraint.ViolationMessage),
		overrides: make(map[string]string),
	}
	for _, m := range constraint.DefaultMessages() {
		c.register(m)
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = logger.OrDefault(c.log).With(logger.Component("messages"))
	return c
}

func (c *Catalog) register(m constraint.ViolationMessage) {
	c.known[m.Code()] = m
	c.known[m.Key()] = m
}

// Register adds application messages after construction.
func (c *Catalog) Register(msgs ...constraint.ViolationMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range msgs {
		c.register(m)
	}
}

// Template returns the template for msg: an override registered for its
// code, then one registered for its key, then the message default.
func (c *Catalog) Template(msg constraint.ViolationMessage) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if t, ok := c.overrides[msg.Code()]; ok {
		return t
	}
	if t, ok := c.overrides[msg.Key()]; ok {
		return t
	}
	return msg.DefaultTemplate()
}

// Lookup finds a registered message by code or key, with any override
// applied to its template.
func (c *Catalog) Lookup(codeOrKey string) (constraint.ViolationMessage, bool) {
	c.mu.RLock()
	m, ok := c.known[codeOrKey]
	c.mu.RUnlock()
	if !ok {
		return constraint.ViolationMessage{}, false
	}
	return m.WithTemplate(c.Template(m)), true
}

// Resolve returns the template and arguments for a violation. Rendering
// them, and prepending the field name for {0}, is up to the caller.
func (c *Catalog) Resolve(v constraint.Violation) (string, []any) {
	return c.Template(v.Message), v.Args
}

// Set overrides the template for a code or key.
func (c *Catalog) Set(codeOrKey, template string) error {
	if template == "" {
		return fmt.Errorf("%w: %q", ErrEmptyTemplate, codeOrKey)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.known[codeOrKey]; !ok && c.strict {
		return fmt.Errorf("%w: %q", ErrUnknownMessage, codeOrKey)
	}
	c.overrides[codeOrKey] = template
	return nil
}

// Codes returns the registered message codes, sorted.
func (c *Catalog) Codes() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	codes := make([]string, 0, len(c.known)/2)
	for id, m := range c.known {
		if id == m.Code() {
			codes = append(codes, id)
		}
	}
	slices.Sort(codes)
	return codes
}

// Load parses content and applies every entry. All invalid entries are
// reported together; valid ones are applied regardless.
func (c *Catalog) Load(ctx context.Context, p Parser, content []byte) error {
	entries, err := p.Parse(ctx, content)
	if err != nil {
		return err
	}

	var errs []error
	for id, tmpl := range entries {
		if err := c.Set(id, tmpl); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		c.log.WarnContext(ctx, "message catalog has invalid entries",
			logger.Count(len(errs)),
			logger.Error(err),
		)
		return err
	}

	c.log.DebugContext(ctx, "message catalog loaded", logger.Count(len(entries)))
	return nil
}

// LoadFile reads a YAML or JSON catalog from disk.
func (c *Catalog) LoadFile(ctx context.Context, path string) error {
	p := NewParserForFile(path)
	if p == nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrFailedToReadFile, err)
	}

	if err := c.Load(ctx, p, content); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	c.log.InfoContext(ctx, "message catalog file applied", logger.Path(path))
	return nil
}

// LoadFS reads a YAML or JSON catalog from fsys, such as an embed.FS.
func (c *Catalog) LoadFS(ctx context.Context, fsys fs.FS, name string) error {
	p := NewParserForFile(name)
	if p == nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}

	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return errors.Join(ErrFailedToReadFile, err)
	}

	if err := c.Load(ctx, p, content); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	c.log.InfoContext(ctx, "message catalog file applied", logger.Path(name))
	return nil
}
