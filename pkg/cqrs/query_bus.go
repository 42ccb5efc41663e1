package cqrs

import (
	"fmt"
	"reflect"
	"sync"
)

// DefaultQueryBus is a simple implementation of the QueryBus interface.
type DefaultQueryBus struct {
	handlers map[string]interface{}
	mutex    sync.RWMutex
}

// NewQueryBus creates a new DefaultQueryBus.
func NewQueryBus() *DefaultQueryBus {
	return &DefaultQueryBus{
		handlers: make(map[string]interface{}),
	}
}

// Register registers a query handler for a specific query type.
// The handler must implement QueryHandler[Q, R] where Q is a Query type and
// R is the result type.
func (b *DefaultQueryBus) Register(handler interface{}) error {
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

	methodType := handleMethod.Type
	if methodType.NumIn() != 2 { // receiver + query
		return fmt.Errorf("Handle method must have exactly one parameter (the query)")
	}
	if methodType.NumOut() != 2 { // result + error
		return fmt.Errorf("Handle method must return exactly two values (result and error)")
	}

	queryType := methodType.In(1)
	queryInstance := reflect.New(queryType).Elem().Interface()
	query, ok := queryInstance.(Query)
	if !ok {
		return fmt.Errorf("parameter type %s does not implement Query interface", queryType)
	}

	queryName := query.Name()
	if _, exists := b.handlers[queryName]; exists {
		return fmt.Errorf("handler for query %s already registered", queryName)
	}
	b.handlers[queryName] = handler
	return nil
}

// Dispatch sends a query to its registered handler and returns the result.
func (b *DefaultQueryBus) Dispatch(query Query) (interface{}, error) {
	b.mutex.RLock()
	handler, exists := b.handlers[query.Name()]
	b.mutex.RUnlock()

	if !exists {
		return nil, fmt.Errorf("no handler registered for query %s", query.Name())
	}

	handleMethod := reflect.ValueOf(handler).MethodByName("Handle")
	results := handleMethod.Call([]reflect.Value{reflect.ValueOf(query)})

	if !results[1].IsNil() {
		return nil, results[1].Interface().(error)
	}
	return results[0].Interface(), nil
}
