// Package storagetest is a behavior suite every storage backend must pass.
package storagetest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/topiclog/internal/adapter/storage"
	"github.com/heartmarshall/topiclog/internal/domain"
)

// Factory returns an empty backend whose record timestamps come from clock.
type Factory func(t *testing.T, clock *Clock) storage.Backend

// Start is the initial fake time used by the suite.
var Start = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

// Run executes the suite. Subtests run sequentially because some factories
// share one database.
func Run(t *testing.T, newBackend Factory) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(t *testing.T, b storage.Backend, clock *Clock)
	}{
		{"CreateAndFindUser", testCreateAndFindUser},
		{"DisplayNameDefaultsToUsername", testDisplayNameDefault},
		{"DuplicateUsername", testDuplicateUsername},
		{"UnknownUser", testUnknownUser},
		{"AppendAndListNewestFirst", testAppendAndList},
		{"AppendReturnsStoredRow", testAppendReturnsStoredRow},
		{"EqualTimestampsOrderByID", testEqualTimestamps},
		{"NullableFields", testNullableFields},
		{"AppendForUnknownUser", testAppendUnknownUser},
		{"EmptyListIsNotNil", testEmptyList},
		{"RenameRecord", testRename},
		{"DeleteRecord", testDelete},
		{"ClearRecordsScopedAndIdempotent", testClear},
		{"ConcurrentAppends", testConcurrentAppends},
		{"Ping", testPing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := NewClock(Start)
			b := newBackend(t, clock)
			tt.fn(t, b, clock)
		})
	}
}

func strPtr(s string) *string { return &s }

func mustUser(t *testing.T, b storage.Backend, username string) int64 {
	t.Helper()
	id, err := b.CreateUser(context.Background(), username, "hash:"+username, nil)
	require.NoError(t, err)
	return id
}

func mustAppend(t *testing.T, b storage.Backend, rec domain.NewRecord) int64 {
	t.Helper()
	stored, err := b.AppendRecord(context.Background(), rec)
	require.NoError(t, err)
	return stored.ID
}

func testCreateAndFindUser(t *testing.T, b storage.Backend, _ *Clock) {
	ctx := context.Background()

	id, err := b.CreateUser(ctx, "alice", "secret-hash", strPtr("Alice A."))
	require.NoError(t, err)

	byName, err := b.FindUserByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, id, byName.ID)
	assert.Equal(t, "alice", byName.Username)
	assert.Equal(t, "secret-hash", byName.Credential)
	assert.Equal(t, "Alice A.", byName.DisplayName)

	byID, err := b.FindUserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, byName, byID)
}

func testDisplayNameDefault(t *testing.T, b storage.Backend, _ *Clock) {
	ctx := context.Background()

	_, err := b.CreateUser(ctx, "nodisplay", "h", nil)
	require.NoError(t, err)
	_, err = b.CreateUser(ctx, "blankdisplay", "h", strPtr("   "))
	require.NoError(t, err)

	u, err := b.FindUserByName(ctx, "nodisplay")
	require.NoError(t, err)
	assert.Equal(t, "nodisplay", u.DisplayName)

	u, err = b.FindUserByName(ctx, "blankdisplay")
	require.NoError(t, err)
	assert.Equal(t, "blankdisplay", u.DisplayName)
}

func testDuplicateUsername(t *testing.T, b storage.Backend, _ *Clock) {
	ctx := context.Background()

	_, err := b.CreateUser(ctx, "dup", "h1", nil)
	require.NoError(t, err)

	_, err = b.CreateUser(ctx, "dup", "h2", nil)
	require.ErrorIs(t, err, domain.ErrDuplicateUser)
	require.ErrorIs(t, err, domain.ErrAlreadyExists)

	u, err := b.FindUserByName(ctx, "dup")
	require.NoError(t, err)
	assert.Equal(t, "h1", u.Credential, "first registration must be kept")
}

func testUnknownUser(t *testing.T, b storage.Backend, _ *Clock) {
	ctx := context.Background()

	_, err := b.FindUserByName(ctx, "nobody")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = b.FindUserByID(ctx, 987654)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func testAppendAndList(t *testing.T, b storage.Backend, clock *Clock) {
	ctx := context.Background()
	uid := mustUser(t, b, "lister")

	first := mustAppend(t, b, domain.NewRecord{UserID: uid, Query: "eiffel tower", Title: "Eiffel", Definition: "A tower."})
	clock.Advance(time.Second)
	second := mustAppend(t, b, domain.NewRecord{UserID: uid, Query: "go", Title: "Go", Definition: "A language."})
	require.NotEqual(t, first, second)

	got, err := b.ListRecords(ctx, uid)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, second, got[0].ID)
	assert.Equal(t, first, got[1].ID)
	assert.Equal(t, Start.Add(time.Second).UnixMilli(), got[0].Timestamp)
	assert.Equal(t, Start.UnixMilli(), got[1].Timestamp)
	assert.Equal(t, uid, got[0].UserID)
	assert.Equal(t, "go", got[0].Query)
	assert.Equal(t, "Go", got[0].Title)
	assert.Equal(t, "A language.", got[0].DefinitionText())
}

func testEqualTimestamps(t *testing.T, b storage.Backend, _ *Clock) {
	ctx := context.Background()
	uid := mustUser(t, b, "sametime")

	var ids []int64
	for i := range 3 {
		ids = append(ids, mustAppend(t, b, domain.NewRecord{
			UserID: uid, Query: fmt.Sprintf("q%d", i), Title: fmt.Sprintf("t%d", i), Definition: "d",
		}))
	}

	got, err := b.ListRecords(ctx, uid)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := range got {
		assert.Equal(t, ids[len(ids)-1-i], got[i].ID, "position %d", i)
	}
}

func testNullableFields(t *testing.T, b storage.Backend, _ *Clock) {
	ctx := context.Background()
	uid := mustUser(t, b, "nulls")

	mustAppend(t, b, domain.NewRecord{UserID: uid, Query: "with", Title: "With", Definition: "D",
		Thumbnail: strPtr("https://img/t.png"), ImageURL: strPtr("https://img/full.png")})
	mustAppend(t, b, domain.NewRecord{UserID: uid, Query: "empty", Title: "Empty", Definition: "",
		Thumbnail: strPtr(""), ImageURL: nil})

	got, err := b.ListRecords(ctx, uid)
	require.NoError(t, err)
	require.Len(t, got, 2)

	empty, with := got[0], got[1]

	require.NotNil(t, empty.Definition)
	assert.Equal(t, "", *empty.Definition)
	require.NotNil(t, empty.Thumbnail, "empty string must not become NULL")
	assert.Equal(t, "", *empty.Thumbnail)
	assert.Nil(t, empty.ImageURL)

	require.NotNil(t, with.Thumbnail)
	assert.Equal(t, "https://img/t.png", *with.Thumbnail)
	require.NotNil(t, with.ImageURL)
	assert.Equal(t, "https://img/full.png", *with.ImageURL)
}

func testAppendReturnsStoredRow(t *testing.T, b storage.Backend, clock *Clock) {
	uid := mustUser(t, b, "roundtrip")
	clock.Advance(1500 * time.Microsecond)

	thumb := "https://img/t.png"
	stored, err := b.AppendRecord(context.Background(), domain.NewRecord{
		UserID: uid, Query: "eiffel tower", Title: "Eiffel Tower", Definition: "A tower.", Thumbnail: &thumb,
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, clock.Now().UnixMilli(), stored.Timestamp)

	got, err := b.ListRecords(context.Background(), uid)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, got[0], *stored)
}

func testAppendUnknownUser(t *testing.T, b storage.Backend, _ *Clock) {
	_, err := b.AppendRecord(context.Background(), domain.NewRecord{UserID: 424242, Query: "q", Title: "t", Definition: "d"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func testEmptyList(t *testing.T, b storage.Backend, _ *Clock) {
	uid := mustUser(t, b, "empty")

	got, err := b.ListRecords(context.Background(), uid)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func testRename(t *testing.T, b storage.Backend, _ *Clock) {
	ctx := context.Background()
	uid := mustUser(t, b, "renamer")
	id := mustAppend(t, b, domain.NewRecord{UserID: uid, Query: "q", Title: "Old", Definition: "d"})

	require.NoError(t, b.RenameRecord(ctx, id, "New"))

	got, err := b.ListRecords(ctx, uid)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "New", got[0].Title)
	assert.Equal(t, "q", got[0].Query)

	require.ErrorIs(t, b.RenameRecord(ctx, id+1000, "x"), domain.ErrNotFound)
}

func testDelete(t *testing.T, b storage.Backend, _ *Clock) {
	ctx := context.Background()
	uid := mustUser(t, b, "deleter")
	keep := mustAppend(t, b, domain.NewRecord{UserID: uid, Query: "keep", Title: "Keep", Definition: "d"})
	drop := mustAppend(t, b, domain.NewRecord{UserID: uid, Query: "drop", Title: "Drop", Definition: "d"})

	require.NoError(t, b.DeleteRecord(ctx, drop))
	require.ErrorIs(t, b.DeleteRecord(ctx, drop), domain.ErrNotFound)

	got, err := b.ListRecords(ctx, uid)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, keep, got[0].ID)
}

func testClear(t *testing.T, b storage.Backend, _ *Clock) {
	ctx := context.Background()
	mine := mustUser(t, b, "clearer")
	theirs := mustUser(t, b, "bystander")

	mustAppend(t, b, domain.NewRecord{UserID: mine, Query: "a", Title: "A", Definition: "d"})
	mustAppend(t, b, domain.NewRecord{UserID: mine, Query: "b", Title: "B", Definition: "d"})
	mustAppend(t, b, domain.NewRecord{UserID: theirs, Query: "c", Title: "C", Definition: "d"})

	require.NoError(t, b.ClearRecords(ctx, mine))
	require.NoError(t, b.ClearRecords(ctx, mine))

	got, err := b.ListRecords(ctx, mine)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = b.ListRecords(ctx, theirs)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func testConcurrentAppends(t *testing.T, b storage.Backend, _ *Clock) {
	const n = 16
	uid := mustUser(t, b, "concurrent")

	ids := make([]int64, n)
	g, ctx := errgroup.WithContext(context.Background())
	for i := range n {
		g.Go(func() error {
			stored, err := b.AppendRecord(ctx, domain.NewRecord{
				UserID: uid, Query: fmt.Sprintf("q%d", i), Title: fmt.Sprintf("t%d", i), Definition: "d",
			})
			if err != nil {
				return err
			}
			ids[i] = stored.ID
			return nil
		})
	}
	require.NoError(t, g.Wait())

	seen := make(map[int64]bool, n)
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}

	got, err := b.ListRecords(context.Background(), uid)
	require.NoError(t, err)
	assert.Len(t, got, n)
}

func testPing(t *testing.T, b storage.Backend, _ *Clock) {
	require.NoError(t, b.Ping(context.Background()))
}
