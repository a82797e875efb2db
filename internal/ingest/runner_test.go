package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festa-kr/festa-api/internal/domain"
)

type fakeUpserter struct {
	seen       map[string]bool
	failTitles map[string]bool
}

func newFakeUpserter(failTitles ...string) *fakeUpserter {
	fail := make(map[string]bool, len(failTitles))
	for _, title := range failTitles {
		fail[title] = true
	}

	return &fakeUpserter{
		seen:       make(map[string]bool),
		failTitles: fail,
	}
}

func (f *fakeUpserter) Upsert(_ context.Context, rec domain.ImportRecord) (domain.Festival, bool, error) {
	if f.failTitles[rec.Title] {
		return domain.Festival{}, false, errors.New("boom")
	}

	key := rec.IdentityKey()
	created := !f.seen[key]
	f.seen[key] = true

	return domain.Festival{Title: rec.Title}, created, nil
}

type fakeFetcher struct {
	pages   []APIPage
	fetched int
}

func (f *fakeFetcher) FetchPage(_ context.Context, page, _ int) (APIPage, error) {
	f.fetched++
	if page > len(f.pages) {
		return APIPage{ResultCode: ResultCodeSuccess}, nil
	}

	return f.pages[page-1], nil
}

func apiPage(total int, records ...domain.ImportRecord) APIPage {
	return APIPage{
		ResultCode: ResultCodeSuccess,
		TotalCount: total,
		Records:    records,
	}
}

func rec(title string) domain.ImportRecord {
	return domain.ImportRecord{Title: title}
}

func TestRunnerRunAPI(t *testing.T) {
	t.Run("a total that fits one page fetches exactly one page", func(t *testing.T) {
		fetcher := &fakeFetcher{pages: []APIPage{
			apiPage(1, rec("봄꽃축제")),
		}}
		runner := NewRunner(newFakeUpserter())

		res, err := runner.RunAPI(context.Background(), fetcher, 50, 0)

		require.NoError(t, err)
		assert.Equal(t, 1, fetcher.fetched)
		assert.Equal(t, 1, res.Created)
		assert.Equal(t, 1, res.Processed())
	})

	t.Run("pages through the computed page count", func(t *testing.T) {
		fetcher := &fakeFetcher{pages: []APIPage{
			apiPage(5, rec("하나"), rec("둘")),
			apiPage(5, rec("셋"), rec("넷")),
			apiPage(5, rec("다섯")),
		}}
		runner := NewRunner(newFakeUpserter())

		res, err := runner.RunAPI(context.Background(), fetcher, 2, 0)

		require.NoError(t, err)
		assert.Equal(t, 3, fetcher.fetched)
		assert.Equal(t, 5, res.Created)
	})

	t.Run("requested page cap wins when smaller", func(t *testing.T) {
		fetcher := &fakeFetcher{pages: []APIPage{
			apiPage(5, rec("하나"), rec("둘")),
			apiPage(5, rec("셋"), rec("넷")),
			apiPage(5, rec("다섯")),
		}}
		runner := NewRunner(newFakeUpserter())

		res, err := runner.RunAPI(context.Background(), fetcher, 2, 1)

		require.NoError(t, err)
		assert.Equal(t, 1, fetcher.fetched)
		assert.Equal(t, 2, res.Created)
	})

	t.Run("a record seen twice counts one create and one update", func(t *testing.T) {
		fetcher := &fakeFetcher{pages: []APIPage{
			apiPage(2, rec("봄꽃축제"), rec("봄꽃축제")),
		}}
		runner := NewRunner(newFakeUpserter())

		res, err := runner.RunAPI(context.Background(), fetcher, 50, 0)

		require.NoError(t, err)
		assert.Equal(t, 1, res.Created)
		assert.Equal(t, 1, res.Updated)
	})

	t.Run("non-success result code aborts the run", func(t *testing.T) {
		fetcher := &fakeFetcher{pages: []APIPage{
			{ResultCode: "9999", ResultMsg: "INVALID KEY"},
		}}
		runner := NewRunner(newFakeUpserter())

		_, err := runner.RunAPI(context.Background(), fetcher, 50, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSourceRejected)
		assert.Contains(t, err.Error(), "9999")
		assert.Contains(t, err.Error(), "INVALID KEY")
	})

	t.Run("records without identity are skipped, not counted", func(t *testing.T) {
		fetcher := &fakeFetcher{pages: []APIPage{
			apiPage(2, domain.ImportRecord{Description: "이름 없는 행사"}, rec("봄꽃축제")),
		}}
		runner := NewRunner(newFakeUpserter())

		res, err := runner.RunAPI(context.Background(), fetcher, 50, 0)

		require.NoError(t, err)
		assert.Equal(t, 1, res.Skipped)
		assert.Equal(t, 1, res.Created)
		assert.Equal(t, 1, res.Processed())
	})

	t.Run("a failing record does not stop the run", func(t *testing.T) {
		fetcher := &fakeFetcher{pages: []APIPage{
			apiPage(3, rec("하나"), rec("불량"), rec("셋")),
		}}
		runner := NewRunner(newFakeUpserter("불량"))

		res, err := runner.RunAPI(context.Background(), fetcher, 50, 0)

		require.NoError(t, err)
		assert.Equal(t, 2, res.Created)
		assert.Equal(t, 1, res.Failed)
	})
}

func TestRunnerRunCSV(t *testing.T) {
	t.Run("imports every row", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.csv")
		data := "축제명,축제시작일자\n봄꽃축제,2024-04-01\n가을축제,2024-10-01\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		runner := NewRunner(newFakeUpserter())

		res, err := runner.RunCSV(context.Background(), path, 0)

		require.NoError(t, err)
		assert.Equal(t, 2, res.Created)
		assert.Equal(t, 0, res.Skipped)
	})

	t.Run("missing file", func(t *testing.T) {
		runner := NewRunner(newFakeUpserter())

		_, err := runner.RunCSV(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSourceUnavailable)
	})
}
