package card

import (
	"sync"

	"github.com/cardgen-ai/cardgen/model"
)

// Form holds the generator inputs and the last successful result
type Form struct {
	mu     sync.RWMutex
	input  model.ProductInput
	result model.GenerationResult
}

// NewForm returns an empty form
func NewForm() *Form {
	return &Form{}
}

func (f *Form) SetName(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.input.Name = name
}

func (f *Form) SetCategory(category string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.input.Category = category
}

func (f *Form) SetFeatures(features string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.input.Features = features
}

// Input returns a copy of the current field values
func (f *Form) Input() model.ProductInput {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.input
}

// Result returns the last successful generation, or the zero value
func (f *Form) Result() model.GenerationResult {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.result
}

func (f *Form) setResult(result model.GenerationResult) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.result = result
}
