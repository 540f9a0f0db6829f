package prompts

import (
	"fmt"
	"strings"
	"sync"
)

type Template struct {
	Name     PromptName
	Version  int
	JSON     bool
	System   func(Input) string
	User     func(Input) string
	Validate Validator
}

var (
	mu       sync.RWMutex
	registry = map[PromptName]Template{}
	loadOnce sync.Once
)

// Register registers a compiled Template, replacing any previous version.
func Register(t Template) {
	mu.Lock()
	defer mu.Unlock()
	registry[t.Name] = t
}

// Build renders the named prompt for in. The built-in prompts are registered on first use.
func Build(name PromptName, in Input) (Prompt, error) {
	loadOnce.Do(RegisterAll)

	mu.RLock()
	t, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return Prompt{}, fmt.Errorf("unknown prompt: %s", string(name))
	}
	if t.System == nil || t.User == nil {
		return Prompt{}, fmt.Errorf("prompt %s missing system/user renderers", string(name))
	}
	if t.Validate != nil {
		if err := t.Validate(in); err != nil {
			return Prompt{}, fmt.Errorf("%s: %w", string(name), err)
		}
	}

	return Prompt{
		Name:    string(t.Name),
		Version: t.Version,
		JSON:    t.JSON,
		System:  strings.TrimSpace(t.System(in)),
		User:    strings.TrimSpace(t.User(in)),
	}, nil
}
