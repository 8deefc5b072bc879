package readingarchive

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/cosmic-blueprint/internal/domain/reading"
)

const readingID = "7b0b5a8e-3f7d-4e59-8d0c-9d1f3c0b2a11"

func sampleReading() reading.Response {
	season := "A year to plant."
	return reading.Response{
		ID:        readingID,
		Profile:   reading.Profile{Age: 41},
		Narrative: reading.Narrative{CurrentSeason: &season},
		CreatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestMemoryArchive(t *testing.T) {
	ctx := context.Background()
	archive := NewMemoryArchive()

	_, ok, err := archive.Get(ctx, readingID)
	require.NoError(t, err)
	require.False(t, ok)

	require.ErrorIs(t, archive.Save(ctx, reading.Response{}), errMissingID)

	want := sampleReading()
	require.NoError(t, archive.Save(ctx, want))
	got, ok, err := archive.Get(ctx, readingID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestPostgresArchiveSave(t *testing.T) {
	db := &stubQuerier{}
	archive := NewPostgresArchive(db)

	require.NoError(t, archive.Save(context.Background(), sampleReading()))
	require.Contains(t, db.lastSQL, "INSERT INTO readings")
	require.Len(t, db.lastArgs, 3)
	require.Equal(t, readingID, db.lastArgs[0])

	var stored reading.Response
	require.NoError(t, json.Unmarshal(db.lastArgs[1].([]byte), &stored))
	require.Equal(t, sampleReading(), stored)
}

func TestPostgresArchiveGet(t *testing.T) {
	payload, err := json.Marshal(sampleReading())
	require.NoError(t, err)

	archive := NewPostgresArchive(&stubQuerier{row: stubRow{payload: payload}})
	got, ok, err := archive.Get(context.Background(), readingID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, sampleReading(), got)

	archive = NewPostgresArchive(&stubQuerier{row: stubRow{err: pgx.ErrNoRows}})
	_, ok, err = archive.Get(context.Background(), readingID)
	require.NoError(t, err)
	require.False(t, ok)

	archive = NewPostgresArchive(&stubQuerier{row: stubRow{err: errors.New("conn reset")}})
	_, _, err = archive.Get(context.Background(), readingID)
	require.Error(t, err)
}

func TestPostgresArchiveEnsureSchema(t *testing.T) {
	db := &stubQuerier{}
	require.NoError(t, NewPostgresArchive(db).EnsureSchema(context.Background()))
	require.Contains(t, db.lastSQL, "CREATE TABLE IF NOT EXISTS readings")

	db.execErr = errors.New("permission denied")
	require.ErrorContains(t, NewPostgresArchive(db).EnsureSchema(context.Background()), "permission denied")
}

func TestSanitizeEndpoint(t *testing.T) {
	cases := map[string]string{
		"https://acct.r2.cloudflarestorage.com":    "acct.r2.cloudflarestorage.com",
		"http://localhost:9000/":                   "localhost:9000",
		" s3.eu-west-1.amazonaws.com/bucket/path ": "s3.eu-west-1.amazonaws.com",
		"":                                         "",
	}
	for in, want := range cases {
		require.Equal(t, want, sanitizeEndpoint(in), in)
	}
	require.False(t, useSSL("http://localhost:9000"))
	require.True(t, useSSL("https://acct.r2.cloudflarestorage.com"))
	require.True(t, useSSL("s3.amazonaws.com"))
}

func TestObjectKeyAndNotFound(t *testing.T) {
	require.Equal(t, "readings/"+readingID+".json", objectKey(readingID))
	require.True(t, isNotFound(minio.ErrorResponse{Code: "NoSuchKey"}))
	require.False(t, isNotFound(minio.ErrorResponse{Code: "AccessDenied"}))
	require.False(t, isNotFound(errors.New("dial tcp: refused")))
}

type stubQuerier struct {
	row      stubRow
	execErr  error
	lastSQL  string
	lastArgs []any
}

func (s *stubQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	s.lastSQL = sql
	s.lastArgs = args
	return pgconn.CommandTag{}, s.execErr
}

func (s *stubQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	s.lastSQL = sql
	s.lastArgs = args
	return s.row
}

type stubRow struct {
	payload []byte
	err     error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.payload
	return nil
}
