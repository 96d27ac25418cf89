package memory

import (
	"context"
	"testing"
	"time"

	"med-schedule/internal/domain/doselog"
	"med-schedule/internal/domain/medicines"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedicineRepo_InsertionOrderAndUpdate(t *testing.T) {
	repo := NewMedicineRepo()
	ctx := context.Background()

	for _, id := range []string{"3", "1", "2"} {
		require.NoError(t, repo.Create(ctx, medicines.Medicine{ID: id, Name: "m" + id, Time: "9:00 AM"}))
	}

	err := repo.Create(ctx, medicines.Medicine{ID: "1"})
	assert.ErrorIs(t, err, medicines.ErrInvalidInput)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "3", items[0].ID)
	assert.Equal(t, "1", items[1].ID)
	assert.Equal(t, "2", items[2].ID)

	m := items[1]
	m.Status = medicines.StatusTaken
	require.NoError(t, repo.Update(ctx, m))

	got, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, medicines.StatusTaken, got.Status)

	_, err = repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, medicines.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, medicines.Medicine{ID: "nope"}), medicines.ErrNotFound)
}

func TestDoseLogRepo_FiltersAndOrder(t *testing.T) {
	repo := NewDoseLogRepo()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	entries := []doselog.Entry{
		{ID: "e1", MedicineID: "1", MedicineName: "Metformin", To: medicines.StatusTaken, OccurredAt: base},
		{ID: "e2", MedicineID: "2", MedicineName: "Aspirin", To: medicines.StatusMissed, OccurredAt: base.Add(time.Hour)},
		{ID: "e3", MedicineID: "1", MedicineName: "Metformin", To: medicines.StatusPending, OccurredAt: base.Add(2 * time.Hour)},
		{ID: "e4", MedicineID: "3", MedicineName: "Vitamin C", To: medicines.StatusTaken, OccurredAt: base.Add(2 * time.Hour)},
	}
	for _, e := range entries {
		require.NoError(t, repo.Append(ctx, e))
	}

	all, err := repo.List(ctx, doselog.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	// más reciente primero; empate => último agregado primero
	assert.Equal(t, "e4", all[0].ID)
	assert.Equal(t, "e3", all[1].ID)
	assert.Equal(t, "e1", all[3].ID)

	byMed, err := repo.List(ctx, doselog.ListFilter{MedicineID: "1"})
	require.NoError(t, err)
	assert.Len(t, byMed, 2)

	taken, err := repo.List(ctx, doselog.ListFilter{Statuses: []medicines.Status{medicines.StatusTaken}})
	require.NoError(t, err)
	assert.Len(t, taken, 2)

	from := base.Add(30 * time.Minute)
	to := base.Add(90 * time.Minute)
	ranged, err := repo.List(ctx, doselog.ListFilter{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, "e2", ranged[0].ID)

	q, err := repo.List(ctx, doselog.ListFilter{Query: "vitamin"})
	require.NoError(t, err)
	require.Len(t, q, 1)
	assert.Equal(t, "e4", q[0].ID)

	limited, err := repo.List(ctx, doselog.ListFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
