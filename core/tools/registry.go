package tools

import (
	"fmt"
	"sort"
	"sync"
)

type ToolFunc func(args map[string]interface{}) (string, error)

var (
	mu       sync.RWMutex
	registry = make(map[string]ToolFunc)
)

func Register(name string, fn ToolFunc) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = fn
}

func Execute(name string, args map[string]interface{}) (string, error) {
	mu.RLock()
	fn, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("tool %s not found", name)
	}

	return fn(args)
}

// List returns registered tool names in lexical order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ClearRegistry removes every registered tool.
func ClearRegistry() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]ToolFunc)
}
