// internal/service/lex.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/leolimasa/leolang/internal/config"
	"github.com/leolimasa/leolang/internal/domain"
	"github.com/leolimasa/leolang/internal/model"
	"github.com/leolimasa/leolang/internal/repository"
	"github.com/leolimasa/leolang/lang/lexer"
	"github.com/leolimasa/leolang/lang/sexpr"
	"github.com/leolimasa/leolang/lang/snapshot"
)

// Mode selects which stage of the front end produces a token stream.
type Mode string

const (
	ModeRaw        Mode = "raw"
	ModeLayout     Mode = "layout"
	ModeLayoutWrap Mode = "layout+wrap"
)

type LexService struct {
	repo     repository.SnapshotRepositoryIface
	cache    *CacheService
	config   *config.Config
	validate *validator.Validate
	logger   *slog.Logger
}

func NewLexService(
	repo repository.SnapshotRepositoryIface,
	cache *CacheService,
	config *config.Config,
	logger *slog.Logger,
) *LexService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LexService{
		repo:     repo,
		cache:    cache,
		config:   config,
		validate: validator.New(),
		logger:   logger,
	}
}

type SourceInput struct {
	Source string `json:"source" validate:"required"`
	Wrap   bool   `json:"wrap"`
}

// Result is a lexed source: its token stream and the errors met on the way.
type Result struct {
	Mode   Mode              `json:"mode"`
	Digest string            `json:"digest"`
	Tokens []lexer.Token     `json:"-"`
	Errors []*lexer.LexError `json:"-"`
}

type ParseOutput struct {
	Digest string        `json:"digest"`
	Forms  []string      `json:"forms"`
	Tree   sexpr.Program `json:"-"`
}

type SnapshotInput struct {
	Name   string `json:"name" validate:"required,max=255"`
	Source string `json:"source" validate:"required"`
	Layout bool   `json:"layout"`
}

type ListSnapshotsInput struct {
	Page     int `json:"page" validate:"min=1"`
	PageSize int `json:"page_size" validate:"min=1,max=100"`
}

type SnapshotPage struct {
	Snapshots []*model.Snapshot `json:"snapshots"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}

// Tokenize runs the lexer alone; indentation markers are kept.
func (s *LexService) Tokenize(ctx context.Context, input SourceInput) (*Result, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}
	return s.run(ctx, ModeRaw, input.Source)
}

// Layout runs the lexer and the layout transformer.
func (s *LexService) Layout(ctx context.Context, input SourceInput) (*Result, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}
	return s.run(ctx, s.layoutMode(input.Wrap), input.Source)
}

// Parse reads the laid out source into s-expressions. Lexer errors fail the
// parse as well.
func (s *LexService) Parse(ctx context.Context, input SourceInput) (*ParseOutput, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	ly := lexer.NewLayout(lexer.NewLexer(strings.NewReader(input.Source)))
	ly.SetWrapProgram(s.layoutMode(input.Wrap) == ModeLayoutWrap)
	ly.SetLogger(s.logger)

	program, err := sexpr.Parse(ly)
	if err != nil {
		s.logger.DebugContext(ctx, "parse failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrParseFailed, err)
	}

	forms := make([]string, len(program))
	for i, node := range program {
		forms[i] = node.String()
	}
	return &ParseOutput{
		Digest: streamDigest(s.layoutMode(input.Wrap), input.Source),
		Forms:  forms,
		Tree:   program,
	}, nil
}

// SaveSnapshot stores the token stream of a named source. Saving the same
// source under the same name again returns the stored snapshot.
func (s *LexService) SaveSnapshot(ctx context.Context, input SnapshotInput) (*model.Snapshot, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := s.checkSize(input.Source); err != nil {
		return nil, err
	}

	mode := ModeRaw
	if input.Layout {
		mode = ModeLayout
	}
	result, err := s.run(ctx, mode, input.Source)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByNameAndDigest(ctx, input.Name, result.Digest)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrSnapshotNotFound) {
		return nil, fmt.Errorf("looking up snapshot: %w", err)
	}

	snap := &model.Snapshot{
		ID:         uuid.New(),
		Name:       input.Name,
		Digest:     result.Digest,
		Source:     input.Source,
		Layout:     input.Layout,
		Tokens:     result.Tokens,
		TokenCount: len(result.Tokens),
		ErrorCount: len(result.Errors),
	}
	if err := s.repo.Create(ctx, snap); err != nil {
		if errors.Is(err, domain.ErrSnapshotExists) {
			// Stored concurrently by another request.
			return s.repo.FindByNameAndDigest(ctx, input.Name, result.Digest)
		}
		return nil, fmt.Errorf("creating snapshot: %w", err)
	}

	s.logger.InfoContext(ctx, "snapshot saved",
		"id", snap.ID, "name", snap.Name, "tokens", snap.TokenCount, "errors", snap.ErrorCount)
	return snap, nil
}

func (s *LexService) GetSnapshot(ctx context.Context, id uuid.UUID) (*model.Snapshot, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *LexService) ListSnapshots(ctx context.Context, input ListSnapshotsInput) (*SnapshotPage, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	offset := (input.Page - 1) * input.PageSize
	snapshots, total, err := s.repo.FindAllPaginated(ctx, offset, input.PageSize)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}

	return &SnapshotPage{
		Snapshots: snapshots,
		Total:     total,
		Page:      input.Page,
		PageSize:  input.PageSize,
	}, nil
}

func (s *LexService) DeleteSnapshot(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// DiffSnapshot lexes source the way the snapshot was lexed and compares the
// two token streams.
func (s *LexService) DiffSnapshot(ctx context.Context, id uuid.UUID, source string) (*snapshot.StreamDiff, error) {
	if err := s.checkSize(source); err != nil {
		return nil, err
	}

	snap, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mode := ModeRaw
	if snap.Layout {
		mode = ModeLayout
	}
	result, err := s.run(ctx, mode, source)
	if err != nil {
		return nil, err
	}

	if limit := s.config.Lexer.MaxDiffTokens; limit > 0 && max(len(snap.Tokens), len(result.Tokens)) > limit {
		return nil, fmt.Errorf("%w: diff of %d and %d tokens, limit %d",
			domain.ErrSourceTooLarge, len(snap.Tokens), len(result.Tokens), limit)
	}

	return snapshot.Diff(snap.Tokens, result.Tokens), nil
}

// MaxSourceBytes is the largest source the service accepts.
func (s *LexService) MaxSourceBytes() int64 {
	return s.config.Lexer.MaxSourceBytes
}

func (s *LexService) check(input SourceInput) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return s.checkSize(input.Source)
}

func (s *LexService) checkSize(source string) error {
	if limit := s.config.Lexer.MaxSourceBytes; limit > 0 && int64(len(source)) > limit {
		return fmt.Errorf("%w: %d bytes, limit %d", domain.ErrSourceTooLarge, len(source), limit)
	}
	return nil
}

func (s *LexService) layoutMode(wrap bool) Mode {
	if wrap || s.config.Lexer.WrapProgram {
		return ModeLayoutWrap
	}
	return ModeLayout
}

// run lexes source in the given mode. Results are cached by mode and
// source digest.
func (s *LexService) run(ctx context.Context, mode Mode, source string) (*Result, error) {
	digest := streamDigest(mode, source)

	var result *Result
	err := s.cache.GetOrSet(ctx, "lex:"+digest, &result, func() (interface{}, error) {
		var tokens []lexer.Token
		var errs []*lexer.LexError
		switch mode {
		case ModeRaw:
			tokens, errs = lexer.Tokenize(strings.NewReader(source))
		default:
			tokens, errs = lexer.TokenizeLayout(strings.NewReader(source), mode == ModeLayoutWrap)
		}
		s.logger.DebugContext(ctx, "source lexed",
			"mode", mode, "digest", digest, "tokens", len(tokens), "errors", len(errs))
		return &Result{Mode: mode, Digest: digest, Tokens: tokens, Errors: errs}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("lexing source: %w", err)
	}
	return result, nil
}

// streamDigest identifies the token stream a source yields in a mode.
func streamDigest(mode Mode, source string) string {
	return snapshot.Digest([]byte(string(mode) + "\x00" + source))
}
