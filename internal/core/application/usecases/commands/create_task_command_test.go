package commands_test

import (
	"testing"

	"letterpost/internal/core/application/usecases/commands"
	"letterpost/internal/core/domain/model/courier"
	"letterpost/internal/core/domain/model/kernel"
	"letterpost/internal/core/domain/model/task"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateTaskCommand_ValidInput(t *testing.T) {
	taskID := kernel.NewUUID()
	letterID := kernel.NewUUID()
	pickup := mustOPCode(t, "BJDX5F01")
	delivery := mustOPCode(t, "BJDX2A07")

	cmd, err := commands.NewCreateTaskCommand(taskID, letterID, pickup, delivery,
		task.PriorityUrgent, courier.LevelZone, true)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, taskID, cmd.TaskID())
	assert.Equal(t, letterID, cmd.LetterID())
	assert.Equal(t, pickup, cmd.PickupOPCode())
	assert.Equal(t, delivery, cmd.DeliveryOPCode())
	assert.Equal(t, task.PriorityUrgent, cmd.Priority())
	assert.Equal(t, courier.LevelZone, cmd.RequiredLevel())
	assert.True(t, cmd.Public())
}

func TestNewCreateTaskCommand_InvalidTaskID(t *testing.T) {
	invalidID := kernel.UUID{}

	_, err := commands.NewCreateTaskCommand(invalidID, kernel.NewUUID(),
		mustOPCode(t, "BJDX5F01"), mustOPCode(t, "BJDX2A07"),
		task.PriorityNormal, courier.LevelBuilding, false)

	require.Error(t, err)
}

func TestNewCreateTaskCommand_InvalidRoute(t *testing.T) {
	var invalidCode kernel.OPCode

	_, err := commands.NewCreateTaskCommand(kernel.NewUUID(), kernel.NewUUID(),
		invalidCode, mustOPCode(t, "BJDX2A07"),
		task.PriorityNormal, courier.LevelBuilding, false)

	require.Error(t, err)
}

func TestNewCreateTaskCommand_InvalidPriority(t *testing.T) {
	_, err := commands.NewCreateTaskCommand(kernel.NewUUID(), kernel.NewUUID(),
		mustOPCode(t, "BJDX5F01"), mustOPCode(t, "BJDX2A07"),
		task.PriorityUnknown, courier.LevelBuilding, false)

	require.Error(t, err)
}

func TestNewCreateTaskCommand_InvalidRequiredLevel(t *testing.T) {
	_, err := commands.NewCreateTaskCommand(kernel.NewUUID(), kernel.NewUUID(),
		mustOPCode(t, "BJDX5F01"), mustOPCode(t, "BJDX2A07"),
		task.PriorityNormal, courier.LevelUnknown, false)

	require.Error(t, err)
}

func TestCreateTaskCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateTaskCommand{}

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateTaskCommandIsNotConstructed)
}
