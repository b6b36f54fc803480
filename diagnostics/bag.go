package diagnostics

import "sync"

// Bag collects diagnostics for a scan.
type Bag struct {
	mu          sync.Mutex
	diagnostics []*Diagnostic
}

// NewBag creates an empty Bag.
func NewBag() *Bag {
	return &Bag{diagnostics: make([]*Diagnostic, 0)}
}

// Add adds a diagnostic to the bag
func (b *Bag) Add(diag *Diagnostic) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.diagnostics = append(b.diagnostics, diag)
}

// HasErrors returns true if there are any errors
func (b *Bag) HasErrors() bool {
	return b.ErrorCount() > 0
}

// ErrorCount returns the number of errors
func (b *Bag) ErrorCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.diagnostics)
}

// Diagnostics returns a copy of the collected diagnostics in insertion order.
func (b *Bag) Diagnostics() []*Diagnostic {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*Diagnostic, len(b.diagnostics))
	copy(out, b.diagnostics)
	return out
}
