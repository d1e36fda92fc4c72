// Package registry provides a generic thread-safe registry for values indexed by key.
//
// Registry is designed for read-heavy workloads using sync.RWMutex. It supports
// any comparable key type and any value type through Go generics. The journal
// package registers store drivers here and the checklist package resolves
// comparator aliases through it.
//
// # Basic Usage
//
// Create a registry and register values:
//
//	r := registry.New[string, int]()
//	r.Register("one", 1)
//
//	value, ok := r.Get("one")
//	if ok {
//	    fmt.Println(value) // Output: 1
//	}
//
// # Factory Pattern
//
// Registries work well as driver tables where you register constructors:
//
//	type Opener func(dsn string) (Store, error)
//
//	drivers := registry.New[string, Opener]()
//	drivers.Register("memory", openMemory)
//	drivers.Register("sqlite", openSQLite)
//
//	open, ok := drivers.Get("sqlite")
//	if ok {
//	    store, err := open("verify.db")
//	    // use store...
//	}
//
// # Thread Safety
//
// All Registry methods are safe for concurrent use.
package registry
