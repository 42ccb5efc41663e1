// Package cqrs implements the Command Query Responsibility Segregation
// pattern: state-changing commands and read-only queries are dispatched to
// their handlers through separate buses.
package cqrs

import (
	"fmt"
	"reflect"
	"sync"
)

// NameProvider gives commands and queries a stable dispatch name.
type NameProvider interface {
	// Name returns the name of the message (command or query).
	Name() string
}

// Bus is the shared registry both the command and the query bus build upon.
type Bus struct {
	handlers       map[string]interface{}
	mutex          sync.RWMutex
	isShuttingDown bool
	activeMessages sync.WaitGroup
	busType        string // "command" or "query"
}

// NewBus creates a new Bus of the given type.
func NewBus(busType string) *Bus {
	return &Bus{
		handlers: make(map[string]interface{}),
		busType:  busType,
	}
}

// Register stores a handler under the name of the message type its Handle
// method accepts. validateFunc inspects the message type and returns that
// name, or an error when the handler does not fit the bus.
func (b *Bus) Register(handler interface{}, messageType reflect.Type, validateFunc func(interface{}, reflect.Type) (string, error)) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	handlerType := reflect.TypeOf(handler)
	if handlerType == nil || handlerType.Kind() != reflect.Ptr {
		return fmt.Errorf("handler must be a pointer to a struct, got %T", handler)
	}

	handleMethod, exists := handlerType.MethodByName("Handle")
	if !exists {
		return fmt.Errorf("handler %T does not implement Handle method", handler)
	}
	if handleMethod.Type.NumIn() != 2 { // receiver + message
		return fmt.Errorf("Handle method must have exactly one parameter (the %s)", b.busType)
	}

	messageName, err := validateFunc(handler, messageType)
	if err != nil {
		return err
	}

	if _, exists := b.handlers[messageName]; exists {
		return fmt.Errorf("handler for %s %s already registered", b.busType, messageName)
	}
	b.handlers[messageName] = handler
	return nil
}

// Shutdown stops the bus accepting new messages. In-flight messages are
// allowed to complete; see WaitForCompletion.
func (b *Bus) Shutdown() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.isShuttingDown = true
}

// WaitForCompletion blocks until all active messages have finished. Call it
// after Shutdown to drain the bus.
func (b *Bus) WaitForCompletion() {
	b.activeMessages.Wait()
}

// IsShuttingDown reports whether Shutdown has been called.
func (b *Bus) IsShuttingDown() bool {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return b.isShuttingDown
}

// GetHandler returns the handler registered for the given message name.
func (b *Bus) GetHandler(messageName string) (interface{}, bool) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	handler, exists := b.handlers[messageName]
	return handler, exists
}

// IncrementActiveCount marks a message as in flight.
func (b *Bus) IncrementActiveCount() {
	b.activeMessages.Add(1)
}

// DecrementActiveCount marks an in-flight message as finished.
func (b *Bus) DecrementActiveCount() {
	b.activeMessages.Done()
}
