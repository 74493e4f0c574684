package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdelacruz-io/campus-records/constants"
	"github.com/jdelacruz-io/campus-records/internal/entity"
)

func newRecord(kind constants.DocKind, hash string) *entity.Record {
	rec := entity.NewRecord(kind, "/data/"+hash+".xlsx", map[string]string{"n": hash})
	rec.ContentHash = hash
	return rec
}

func TestMemoryStoreAppends(t *testing.T) {
	repo := NewMemoryRecordRepository()
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, newRecord(constants.KindStudent, "aaa")))
	require.NoError(t, repo.Store(ctx, newRecord(constants.KindStudent, "bbb")))
	require.NoError(t, repo.Store(ctx, newRecord(constants.KindFaculty, "ccc")))

	assert.Len(t, repo.All("students"), 2)
	assert.Len(t, repo.All("teaching_staff"), 1)
	assert.Empty(t, repo.All("admins"))
}

func TestMemoryStoreReplacesOnHash(t *testing.T) {
	repo := NewMemoryRecordRepository()
	ctx := context.Background()

	first := newRecord(constants.KindStudent, "same")
	second := newRecord(constants.KindStudent, "same")
	second.Metadata["version"] = "2"

	require.NoError(t, repo.Store(ctx, first))
	require.NoError(t, repo.Store(ctx, second))

	stored := repo.All("students")
	require.Len(t, stored, 1)
	assert.Equal(t, "2", stored[0].Metadata["version"])
	assert.Equal(t, second.ID, stored[0].ID)
}

func TestMemoryStoreHashScopedPerCollection(t *testing.T) {
	repo := NewMemoryRecordRepository()
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, newRecord(constants.KindStudent, "same")))
	require.NoError(t, repo.Store(ctx, newRecord(constants.KindFaculty, "same")))

	assert.Len(t, repo.All("students"), 1)
	assert.Len(t, repo.All("teaching_staff"), 1)
}

func TestMemoryStoreWithoutHashNeverDedupes(t *testing.T) {
	repo := NewMemoryRecordRepository()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		rec := entity.NewRecord(constants.KindGeneralInfo, "/data/info.txt", nil)
		require.NoError(t, repo.Store(ctx, rec))
	}
	assert.Len(t, repo.All("general_info"), 3)
}

func TestMemoryCountByCollection(t *testing.T) {
	repo := NewMemoryRecordRepository()
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, newRecord(constants.KindStudent, "a")))
	require.NoError(t, repo.Store(ctx, newRecord(constants.KindStudent, "b")))
	require.NoError(t, repo.Store(ctx, newRecord(constants.KindCurriculum, "c")))

	counts, err := repo.CountByCollection(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"students": 2, "curricula": 1}, counts)
}

func TestMemoryAllReturnsCopy(t *testing.T) {
	repo := NewMemoryRecordRepository()
	ctx := context.Background()
	require.NoError(t, repo.Store(ctx, newRecord(constants.KindStudent, "a")))

	got := repo.All("students")
	got[0] = nil
	require.NotNil(t, repo.All("students")[0])
}
