package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymtrack/internal/models/db_models"
	"gymtrack/internal/models/request_models"
	"gymtrack/pkg/utils"
)

func TestExerciseWritesAreAdminOnly(t *testing.T) {
	memberRepo := newFakeMemberRepo()
	member := seedMember(t, memberRepo, "jane", "secret123", db_models.RoleMember)
	admin := seedMember(t, memberRepo, "boss", "secret123", db_models.RoleAdmin)

	exerciseRepo := newFakeExerciseRepo()
	service := NewExerciseService(exerciseRepo)
	ctx := context.Background()

	req := request_models.CreateExerciseRequest{Name: "Deadlift", MuscleGroup: "back", Equipment: "barbell"}

	_, err := service.CreateExercise(ctx, identityOf(member), req)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	created, err := service.CreateExercise(ctx, identityOf(admin), req)
	require.NoError(t, err)
	assert.Equal(t, "Deadlift", created.Name)

	_, err = service.CreateExercise(ctx, identityOf(admin), req)
	assert.ErrorIs(t, err, utils.ErrExerciseNameTaken)

	// the catalog itself is readable by anyone authenticated
	listed, err := service.ListExercises(ctx, identityOf(member))
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestDeleteExerciseStillReferenced(t *testing.T) {
	memberRepo := newFakeMemberRepo()
	admin := seedMember(t, memberRepo, "boss", "secret123", db_models.RoleAdmin)

	exerciseRepo := newFakeExerciseRepo()
	service := NewExerciseService(exerciseRepo)
	ctx := context.Background()

	created, err := service.CreateExercise(ctx, identityOf(admin), request_models.CreateExerciseRequest{Name: "Squat"})
	require.NoError(t, err)
	exerciseID := mustParse(t, created.ID)

	exerciseRepo.refCounts[exerciseID] = 3
	err = service.DeleteExercise(ctx, identityOf(admin), exerciseID)
	assert.ErrorIs(t, err, utils.ErrExerciseInUse)

	exerciseRepo.refCounts[exerciseID] = 0
	require.NoError(t, service.DeleteExercise(ctx, identityOf(admin), exerciseID))

	err = service.DeleteExercise(ctx, identityOf(admin), exerciseID)
	assert.ErrorIs(t, err, utils.ErrExerciseNotFound)
}
