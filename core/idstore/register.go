package idstore

import (
	"errors"
)

// Factory creates a new Store
type Factory func(args map[string][]string) (Store, error)

var registeredFactorys = map[string]Factory{}

// Register registeres a new store factory
func Register(name string, factory Factory) error {
	if _, ok := registeredFactorys[name]; ok {
		return errors.New("store driver already registered")
	}

	registeredFactorys[name] = factory
	return nil
}

// MustRegister registeres a new store factory and panics on error
func MustRegister(name string, factory Factory) {
	if err := Register(name, factory); err != nil {
		panic(err)
	}
}

// Open opens an id store using driver name
func Open(name string, args map[string][]string) (Store, error) {
	factory, ok := registeredFactorys[name]
	if !ok {
		return nil, errors.New("unknown driver")
	}

	return factory(args)
}
