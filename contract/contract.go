//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker is one background loop of the portal.
// Returning nil means the work is over and the worker is not restarted,
// an error or a panic gets it restarted.
type Worker interface {
	Run(ctx context.Context) error
}

// Named lets a worker pick the name it is logged under.
type Named interface {
	Name() string
}

// GetWorkerName returns the worker's own name, or its type name.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	if named, ok := w.(Named); ok {
		return named.Name()
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
