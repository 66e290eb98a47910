package contract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type plainWorker struct{}

func (plainWorker) Run(context.Context) error { return nil }

type namedWorker struct{ plainWorker }

func (namedWorker) Name() string { return "gc:portal" }

func TestGetWorkerName(t *testing.T) {
	req := require.New(t)
	req.Equal("plainWorker", GetWorkerName(plainWorker{}))
	req.Equal("plainWorker", GetWorkerName(&plainWorker{}))
	req.Equal("gc:portal", GetWorkerName(namedWorker{}))
	req.Equal("NilWorker", GetWorkerName(nil))
}
