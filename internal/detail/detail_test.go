package detail_test

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/libredomains/checker/internal/api"
	"github.com/libredomains/checker/internal/detail"
	"github.com/libredomains/checker/internal/mocks"
	"github.com/libredomains/checker/internal/pp"
	"github.com/libredomains/checker/internal/record"
	"github.com/libredomains/checker/internal/zone"
)

const path = "domains/ciao.su/cc.json"

//nolint:gochecknoglobals
var su = zone.Zone{Name: "ciao.su", Enabled: true, Path: "ciao.su"}

func encoded(encoding, content string) api.File {
	return api.File{
		Name: "cc.json", Path: path, SHA: "", Size: int64(len(content)), Type: api.EntryFile,
		Encoding: encoding, Content: content, HTMLURL: "",
	}
}

func base64File(text string) api.File {
	return encoded("base64", base64.StdEncoding.EncodeToString([]byte(text)))
}

func commit(name, login string, date time.Time) api.Commit {
	c := api.Commit{
		SHA: "",
		Commit: api.CommitDetail{
			Author:  api.Signature{Name: name, Email: "", Date: date},
			Message: "",
		},
		Author: nil,
	}
	if login != "" {
		c.Author = &api.Account{Login: login}
	}
	return c
}

//nolint:funlen
func TestFetchRecord(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		file          api.File
		ok            bool
		expected      *record.Record
		prepareMockPP func(*mocks.MockPP)
	}{
		"full": {
			base64File(`{"owner":"Alice","records":[{"type":"a","content":"192.0.2.1"}]}`),
			true,
			&record.Record{ //nolint:exhaustruct
				Owner:       &record.Owner{Name: "Alice", Email: "", GitHub: ""},
				Entries:     []record.Entry{{Type: record.TypeA, Name: "@", Content: "192.0.2.1", TTL: 3600, Proxied: false}},
				RecordCount: 1,
				RecordTypes: []record.Type{record.TypeA},
			},
			func(m *mocks.MockPP) {
				m.EXPECT().Infof(pp.EmojiRecord, "Fetched %s with %d DNS records", path, 1)
			},
		},
		"latin-1": {
			encoded("base64", base64.StdEncoding.EncodeToString([]byte("{\"description\":\"caf\xe9\"}"))),
			true,
			&record.Record{Description: "café"}, //nolint:exhaustruct
			func(m *mocks.MockPP) {
				gomock.InOrder(
					m.EXPECT().Infof(pp.EmojiRecord, "Decoded %s using the %s strategy", path, "raw"),
					m.EXPECT().Hintf(pp.HintDecodeFallback, gomock.Any()),
					m.EXPECT().Infof(pp.EmojiRecord, "Fetched %s with %d DNS records", path, 0),
				)
			},
		},
		"not-found": {
			api.File{}, //nolint:exhaustruct
			false,
			nil,
			nil,
		},
		"bad-base64": {
			encoded("base64", "%%%"),
			true,
			nil,
			func(m *mocks.MockPP) {
				m.EXPECT().Noticef(pp.EmojiError, "Failed to decode %s: %v", path, gomock.Any())
			},
		},
		"array": {
			base64File(`[1, 2]`),
			true,
			nil,
			func(m *mocks.MockPP) {
				m.EXPECT().Noticef(pp.EmojiError, "The content of %s is not a JSON object", path)
			},
		},
		"truncated": {
			base64File(`{"owner": {"name": `),
			true,
			nil,
			func(m *mocks.MockPP) {
				m.EXPECT().Noticef(pp.EmojiError, "Failed to parse %s: %v", path, gomock.Any())
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			mockHandle := mocks.NewMockHandle(mockCtrl)
			ctx := context.Background()

			mockHandle.EXPECT().GetFile(ctx, mockPP, path).Return(tc.file, tc.ok)
			if tc.prepareMockPP != nil {
				tc.prepareMockPP(mockPP)
			}

			f := detail.New(mockHandle, 0)
			require.Equal(t, tc.expected, f.FetchRecord(ctx, mockPP, su, "cc"))
		})
	}
}

func TestFetchHistory(t *testing.T) {
	t.Parallel()

	created := time.Date(2023, 5, 1, 8, 0, 0, 0, time.UTC)
	middle := time.Date(2023, 9, 1, 8, 0, 0, 0, time.UTC)
	modified := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockHandle := mocks.NewMockHandle(mockCtrl)
	ctx := context.Background()

	mockHandle.EXPECT().ListCommits(ctx, mockPP, path, 30).Return([]api.Commit{
		commit("Bot", "", modified),
		commit("Bob", "bob", middle),
		commit("Alice Liddell", "alice", created),
	}, true)

	h, ok := detail.New(mockHandle, 30).FetchHistory(ctx, mockPP, su, "cc")
	require.True(t, ok)
	require.Equal(t, record.History{
		LastModified:     modified,
		RegistrationDate: created,
		Creator:          record.Creator{Name: "Alice Liddell", Date: created, GitHub: "alice"},
	}, h)
}

func TestFetchHistoryNoAccount(t *testing.T) {
	t.Parallel()

	created := time.Date(2023, 5, 1, 8, 0, 0, 0, time.UTC)

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockHandle := mocks.NewMockHandle(mockCtrl)
	ctx := context.Background()

	mockHandle.EXPECT().ListCommits(ctx, mockPP, path, detail.DefaultHistorySize).
		Return([]api.Commit{commit("Someone", "", created)}, true)

	h, ok := detail.New(mockHandle, -1).FetchHistory(ctx, mockPP, su, "cc")
	require.True(t, ok)
	require.Equal(t, created, h.LastModified)
	require.Equal(t, created, h.RegistrationDate)
	require.Equal(t, record.Creator{Name: "Someone", Date: created, GitHub: ""}, h.Creator)
}

func TestFetchHistoryFailures(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockHandle := mocks.NewMockHandle(mockCtrl)
	ctx := context.Background()

	f := detail.New(mockHandle, 0)

	gomock.InOrder(
		mockHandle.EXPECT().ListCommits(ctx, mockPP, path, 100).Return(nil, false),
		mockHandle.EXPECT().ListCommits(ctx, mockPP, path, 100).Return([]api.Commit{}, true),
		mockPP.EXPECT().Infof(pp.EmojiHistory, "No history was found for %s", path),
	)

	_, ok := f.FetchHistory(ctx, mockPP, su, "cc")
	require.False(t, ok)
	_, ok = f.FetchHistory(ctx, mockPP, su, "cc")
	require.False(t, ok)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	created := time.Date(2023, 5, 1, 8, 0, 0, 0, time.UTC)

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockHandle := mocks.NewMockHandle(mockCtrl)
	ctx := context.Background()

	gomock.InOrder(
		mockHandle.EXPECT().GetFile(ctx, mockPP, path).Return(base64File(`{"owner":{"github":"@cc"}}`), true),
		mockPP.EXPECT().Infof(pp.EmojiRecord, "Fetched %s with %d DNS records", path, 0),
		mockHandle.EXPECT().ListCommits(ctx, mockPP, path, 100).
			Return([]api.Commit{commit("CC", "cc", created)}, true),
	)

	r := detail.New(mockHandle, 0).Lookup(ctx, mockPP, su, "cc")
	require.NotNil(t, r)
	require.Equal(t, "cc", r.Owner.GitHub)
	require.Equal(t, created, r.RegistrationDate)
	require.Equal(t, &record.Creator{Name: "CC", Date: created, GitHub: "cc"}, r.Creator)
}

func TestLookupSkipsHistory(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockHandle := mocks.NewMockHandle(mockCtrl)
	ctx := context.Background()

	mockHandle.EXPECT().GetFile(ctx, mockPP, path).Return(api.File{}, false) //nolint:exhaustruct

	require.Nil(t, detail.New(mockHandle, 0).Lookup(ctx, mockPP, su, "cc"))
}

func TestLookupWithoutHistory(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockHandle := mocks.NewMockHandle(mockCtrl)
	ctx := context.Background()

	gomock.InOrder(
		mockHandle.EXPECT().GetFile(ctx, mockPP, path).Return(base64File(`{}`), true),
		mockPP.EXPECT().Infof(pp.EmojiRecord, "Fetched %s with %d DNS records", path, 0),
		mockHandle.EXPECT().ListCommits(ctx, mockPP, path, 100).Return(nil, false),
	)

	r := detail.New(mockHandle, 0).Lookup(ctx, mockPP, su, "cc")
	require.NotNil(t, r)
	require.True(t, r.LastModified.IsZero())
	require.Nil(t, r.Creator)
}
