package worker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/workflow"

	ordersmemory "github.com/Apurer/go-persistence-examples/internal/domains/orders/adapters/memory"
	ordersapp "github.com/Apurer/go-persistence-examples/internal/domains/orders/application"
	orderactivities "github.com/Apurer/go-persistence-examples/internal/platform/temporal/activities/orders"
	orderworkflows "github.com/Apurer/go-persistence-examples/internal/platform/temporal/workflows/orders"
)

type recordingRegistrar struct {
	workflows  []string
	activities []string
}

func (r *recordingRegistrar) RegisterWorkflowWithOptions(_ interface{}, options workflow.RegisterOptions) {
	r.workflows = append(r.workflows, options.Name)
}

func (r *recordingRegistrar) RegisterActivityWithOptions(_ interface{}, options activity.RegisterOptions) {
	r.activities = append(r.activities, options.Name)
}

func TestRegister_UsesStableNames(t *testing.T) {
	registrar := &recordingRegistrar{}
	Register(registrar, ordersapp.NewOrderHeaderDAO(ordersmemory.NewStore().OrderHeaders()))

	assert.Equal(t, []string{orderworkflows.ApprovalWorkflowName}, registrar.workflows)
	assert.Equal(t, []string{orderactivities.ApproveOrderActivityName}, registrar.activities)
}
