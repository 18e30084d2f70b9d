package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/leolimasa/leolang/internal/config"
	"github.com/leolimasa/leolang/internal/domain"
	"github.com/leolimasa/leolang/internal/mocks"
	"github.com/leolimasa/leolang/internal/model"
	"github.com/leolimasa/leolang/internal/service"
	"github.com/leolimasa/leolang/lang/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T, repo *mocks.MockSnapshotRepositoryIface, configure ...func(*config.Config)) *service.LexService {
	t.Helper()

	cfg := config.Load()
	for _, fn := range configure {
		fn(cfg)
	}

	cache := service.NewCacheService(service.CacheConfig{TTL: time.Minute, CleanupFreq: time.Minute})
	t.Cleanup(cache.Close)

	return service.NewLexService(repo, cache, cfg, nil)
}

func TestTokenize(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newService(t, mocks.NewMockSnapshotRepositoryIface(ctrl))
	ctx := context.Background()

	result, err := svc.Tokenize(ctx, service.SourceInput{Source: "map\n  a 1"})
	require.NoError(t, err)
	assert.Equal(t, service.ModeRaw, result.Mode)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "map <indent> a 1 <dedent 1>", lexer.Render(result.Tokens))
	assert.NotEmpty(t, result.Digest)

	again, err := svc.Tokenize(ctx, service.SourceInput{Source: "map\n  a 1"})
	require.NoError(t, err)
	assert.Same(t, result, again, "second call is served from the cache")

	layout, err := svc.Layout(ctx, service.SourceInput{Source: "map\n  a 1"})
	require.NoError(t, err)
	assert.NotEqual(t, result.Digest, layout.Digest, "modes are cached separately")
}

func TestTokenizeReportsLexErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newService(t, mocks.NewMockSnapshotRepositoryIface(ctrl))

	result, err := svc.Tokenize(context.Background(), service.SourceInput{Source: `x "open`})
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.ErrorIs(t, result.Errors[0], lexer.ErrUnterminatedString)
}

func TestLayout(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	t.Run("plain", func(t *testing.T) {
		svc := newService(t, mocks.NewMockSnapshotRepositoryIface(ctrl))
		result, err := svc.Layout(ctx, service.SourceInput{Source: "foo bar"})
		require.NoError(t, err)
		assert.Equal(t, service.ModeLayout, result.Mode)
		assert.Equal(t, "( foo bar )", lexer.Render(result.Tokens))
	})

	t.Run("wrap requested", func(t *testing.T) {
		svc := newService(t, mocks.NewMockSnapshotRepositoryIface(ctrl))
		result, err := svc.Layout(ctx, service.SourceInput{Source: "foo bar", Wrap: true})
		require.NoError(t, err)
		assert.Equal(t, "( ( foo bar ) )", lexer.Render(result.Tokens))
	})

	t.Run("wrap configured", func(t *testing.T) {
		svc := newService(t, mocks.NewMockSnapshotRepositoryIface(ctrl), func(cfg *config.Config) {
			cfg.Lexer.WrapProgram = true
		})
		result, err := svc.Layout(ctx, service.SourceInput{Source: "foo"})
		require.NoError(t, err)
		assert.Equal(t, service.ModeLayoutWrap, result.Mode)
		assert.Equal(t, "( foo )", lexer.Render(result.Tokens))
	})
}

func TestInputChecks(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newService(t, mocks.NewMockSnapshotRepositoryIface(ctrl), func(cfg *config.Config) {
		cfg.Lexer.MaxSourceBytes = 4
	})
	ctx := context.Background()

	_, err := svc.Tokenize(ctx, service.SourceInput{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Layout(ctx, service.SourceInput{Source: "hello world"})
	assert.ErrorIs(t, err, domain.ErrSourceTooLarge)

	_, err = svc.Parse(ctx, service.SourceInput{Source: "hello world"})
	assert.ErrorIs(t, err, domain.ErrSourceTooLarge)

	_, err = svc.DiffSnapshot(ctx, uuid.New(), "hello world")
	assert.ErrorIs(t, err, domain.ErrSourceTooLarge)
}

func TestParse(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newService(t, mocks.NewMockSnapshotRepositoryIface(ctrl))
	ctx := context.Background()

	out, err := svc.Parse(ctx, service.SourceInput{Source: "f x\n  g y\nh"})
	require.NoError(t, err)
	assert.Equal(t, []string{"(f x (g y))", "h"}, out.Forms)
	require.Len(t, out.Tree, 2)

	_, err = svc.Parse(ctx, service.SourceInput{Source: "(a"})
	assert.ErrorIs(t, err, domain.ErrParseFailed)

	_, err = svc.Parse(ctx, service.SourceInput{Source: `say "unterminated`})
	assert.ErrorIs(t, err, domain.ErrParseFailed)
}

func TestSaveSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("new snapshot is created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockSnapshotRepositoryIface(ctrl)
		svc := newService(t, repo)

		gomock.InOrder(
			repo.EXPECT().
				FindByNameAndDigest(gomock.Any(), "main", gomock.Any()).
				Return(nil, domain.ErrSnapshotNotFound),
			repo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, snap *model.Snapshot) error {
					assert.NotEqual(t, uuid.Nil, snap.ID)
					assert.Equal(t, "main", snap.Name)
					assert.True(t, snap.Layout)
					assert.Equal(t, "( a b )", lexer.Render(snap.Tokens))
					assert.Equal(t, 4, snap.TokenCount)
					assert.Equal(t, 0, snap.ErrorCount)
					return nil
				}),
		)

		snap, err := svc.SaveSnapshot(ctx, service.SnapshotInput{Name: "main", Source: "a b", Layout: true})
		require.NoError(t, err)
		assert.NotEmpty(t, snap.Digest)
	})

	t.Run("existing snapshot is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockSnapshotRepositoryIface(ctrl)
		svc := newService(t, repo)

		stored := &model.Snapshot{ID: uuid.New(), Name: "main"}
		repo.EXPECT().
			FindByNameAndDigest(gomock.Any(), "main", gomock.Any()).
			Return(stored, nil)

		snap, err := svc.SaveSnapshot(ctx, service.SnapshotInput{Name: "main", Source: "a b"})
		require.NoError(t, err)
		assert.Same(t, stored, snap)
	})

	t.Run("concurrent insert falls back to the stored snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockSnapshotRepositoryIface(ctrl)
		svc := newService(t, repo)

		stored := &model.Snapshot{ID: uuid.New(), Name: "main"}
		gomock.InOrder(
			repo.EXPECT().
				FindByNameAndDigest(gomock.Any(), "main", gomock.Any()).
				Return(nil, domain.ErrSnapshotNotFound),
			repo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				Return(domain.ErrSnapshotExists),
			repo.EXPECT().
				FindByNameAndDigest(gomock.Any(), "main", gomock.Any()).
				Return(stored, nil),
		)

		snap, err := svc.SaveSnapshot(ctx, service.SnapshotInput{Name: "main", Source: "a b"})
		require.NoError(t, err)
		assert.Same(t, stored, snap)
	})

	t.Run("name is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := newService(t, mocks.NewMockSnapshotRepositoryIface(ctrl))

		_, err := svc.SaveSnapshot(ctx, service.SnapshotInput{Source: "a b"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestListSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSnapshotRepositoryIface(ctrl)
	svc := newService(t, repo)
	ctx := context.Background()

	snapshots := []*model.Snapshot{{ID: uuid.New()}, {ID: uuid.New()}}
	repo.EXPECT().
		FindAllPaginated(gomock.Any(), 10, 10).
		Return(snapshots, int64(12), nil)

	page, err := svc.ListSnapshots(ctx, service.ListSnapshotsInput{Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(12), page.Total)
	assert.Len(t, page.Snapshots, 2)

	_, err = svc.ListSnapshots(ctx, service.ListSnapshotsInput{Page: 0, PageSize: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.ListSnapshots(ctx, service.ListSnapshotsInput{Page: 1, PageSize: 500})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetAndDeleteSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSnapshotRepositoryIface(ctrl)
	svc := newService(t, repo)
	ctx := context.Background()

	id := uuid.New()
	repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, domain.ErrSnapshotNotFound)
	repo.EXPECT().Delete(gomock.Any(), id).Return(nil)

	_, err := svc.GetSnapshot(ctx, id)
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
	assert.NoError(t, svc.DeleteSnapshot(ctx, id))
}

func TestDiffSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSnapshotRepositoryIface(ctrl)
	svc := newService(t, repo)
	ctx := context.Background()

	old, errs := lexer.Tokenize(strings.NewReader("a b\nc"))
	require.Empty(t, errs)

	id := uuid.New()
	repo.EXPECT().
		FindByID(gomock.Any(), id).
		Return(&model.Snapshot{ID: id, Tokens: old}, nil).
		Times(2)

	diff, err := svc.DiffSnapshot(ctx, id, "a b\nc")
	require.NoError(t, err)
	assert.True(t, diff.IsEmpty())

	diff, err = svc.DiffSnapshot(ctx, id, "a x\nc")
	require.NoError(t, err)
	require.Len(t, diff.Added, 1)
	require.Len(t, diff.Removed, 1)
	assert.Equal(t, "x", diff.Added[0].Literal)
	assert.Equal(t, "b", diff.Removed[0].Literal)
}

func TestDiffSnapshotTokenLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSnapshotRepositoryIface(ctrl)
	svc := newService(t, repo, func(cfg *config.Config) {
		cfg.Lexer.MaxDiffTokens = 3
	})
	ctx := context.Background()

	old, errs := lexer.Tokenize(strings.NewReader("a b"))
	require.Empty(t, errs)

	id := uuid.New()
	repo.EXPECT().
		FindByID(gomock.Any(), id).
		Return(&model.Snapshot{ID: id, Tokens: old}, nil).
		Times(2)

	_, err := svc.DiffSnapshot(ctx, id, "a b c d")
	assert.ErrorIs(t, err, domain.ErrSourceTooLarge)

	diff, err := svc.DiffSnapshot(ctx, id, "a c")
	require.NoError(t, err)
	assert.Len(t, diff.Added, 1)
}
