package generator

import "fmt"

// Registry maps executor names to factories for generators producing that
// executor's input format. Factories allow parameterization (user count,
// key count) without shared state between instances.
var Registry = map[string]func() Generator{
	"wordcount":   func() Generator { return &SentenceGenerator{} },
	"actioncount": func() Generator { return &ActionCountGenerator{UserCount: 100} },
	"maxvalue":    func() Generator { return &MaxValueGenerator{KeyCount: 10} },
	"average":     func() Generator { return &MaxValueGenerator{KeyCount: 10} }, // Same format as maxvalue
	"urldedup":    func() Generator { return &URLDedupGenerator{} },
}

// Get returns a generator by name
func Get(name string) (Generator, error) {
	factory, exists := Registry[name]
	if !exists {
		return nil, fmt.Errorf("unknown generator: %s", name)
	}
	return factory(), nil
}

// List returns all available generator names
func List() []string {
	var names []string
	for name := range Registry {
		names = append(names, name)
	}
	return names
}

// SetUserCount updates the UserCount for ActionCountGenerator
func SetUserCount(name string, count int) {
	if name == "actioncount" {
		Registry[name] = func() Generator { return &ActionCountGenerator{UserCount: count} }
	}
}

// SetKeyCount updates the KeyCount for MaxValueGenerator
func SetKeyCount(name string, count int) {
	if name == "maxvalue" || name == "average" {
		Registry[name] = func() Generator { return &MaxValueGenerator{KeyCount: count} }
	}
}
