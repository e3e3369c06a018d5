// Package profile manages the authenticated photographer's own profile:
// the editable draft, the create-vs-update save path, and staged portfolio
// uploads.
package profile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Adi-cmrec/lenslink/internal/api"
)

// Sentinel errors
var (
	// ErrCapacityExceeded is the client-side photo-count rule: existing
	// photos plus the new selection may never exceed api.MaxWorkPhotos.
	ErrCapacityExceeded = errors.New("profile: maximum 5 photos allowed")
	// ErrNothingStaged is returned when an upload is requested with an
	// empty pending set.
	ErrNothingStaged = errors.New("profile: no files staged for upload")
	// ErrNotEditing is returned when Save is called outside Editing mode.
	ErrNotEditing = errors.New("profile: not in editing mode")
)

// Mode is the editor state: rendering the last-saved profile read-only, or
// binding a mutable draft.
type Mode int

const (
	Viewing Mode = iota
	Editing
)

func (m Mode) String() string {
	if m == Editing {
		return "editing"
	}
	return "viewing"
}

// Gateway is the slice of the remote API the editor needs.
// *api.ProfileService satisfies it.
type Gateway interface {
	Me(ctx context.Context, token string) (*api.Photographer, error)
	Create(ctx context.Context, token string, params api.ProfileParams) error
	Update(ctx context.Context, token string, params api.ProfileParams) error
	Upload(ctx context.Context, token string, files []api.Upload) ([]string, error)
}

// TokenSource exposes the session credential read-only. The editor never
// inspects or refreshes it.
type TokenSource interface {
	Token() string
}

// Draft holds the form-bound editable fields. Experience and skills are kept
// as free text exactly as entered and coerced on save.
type Draft struct {
	PhotographyType string
	City            string
	ExperienceYears string
	Skills          string
	ContactNumber   string
	Available       bool
}

// submission is the validated, coerced shape sent to the service.
type submission struct {
	PhotographyType string `validate:"required"`
	City            string `validate:"required"`
	ExperienceYears int    `validate:"gte=0"`
	Skills          []string
	ContactNumber   string `validate:"required"`
	Available       bool
}

// Editor is the Viewing/Editing state machine over the own-profile draft and
// the pending upload set.
type Editor struct {
	gw       Gateway
	tokens   TokenSource
	validate *validator.Validate

	mode    Mode
	profile *api.Photographer // last-saved server state; nil until created
	draft   Draft
	staged  []string // pending upload set: selected file paths
	loading bool
}

// NewEditor creates an editor bound to the session's credential.
func NewEditor(gw Gateway, tokens TokenSource) *Editor {
	return &Editor{
		gw:       gw,
		tokens:   tokens,
		validate: validator.New(),
	}
}

// Activate fetches the own profile and enters the matching mode: Viewing
// with the draft seeded when a profile exists, or Editing with empty
// defaults when the service reports none yet (the create path).
func (e *Editor) Activate(ctx context.Context) error {
	e.loading = true
	defer func() { e.loading = false }()

	p, err := e.gw.Me(ctx, e.tokens.Token())
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			e.profile = nil
			e.draft = Draft{Available: true}
			e.mode = Editing
			e.staged = nil
			return nil
		}
		return err
	}

	e.profile = p
	e.draft = draftFrom(p)
	e.mode = Viewing
	e.staged = nil
	return nil
}

// Mode returns the current editor mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// Loading reports whether a network call is in flight.
func (e *Editor) Loading() bool {
	return e.loading
}

// Profile returns the last-saved server state, or nil before creation.
func (e *Editor) Profile() *api.Photographer {
	return e.profile
}

// Draft returns the mutable working draft for form binding.
func (e *Editor) Draft() *Draft {
	return &e.draft
}

// BeginEdit switches to Editing. The draft was seeded on activation so
// editing never starts blank.
func (e *Editor) BeginEdit() {
	e.mode = Editing
}

// CancelEdit returns to Viewing without saving. It is a no-op on the create
// path: with no saved profile there is nothing to view.
func (e *Editor) CancelEdit() {
	if e.profile == nil {
		return
	}
	e.draft = draftFrom(e.profile)
	e.mode = Viewing
}

// Save validates and submits the draft: create when no profile exists yet,
// update otherwise. On success the profile is re-fetched so the displayed
// state comes from the server, never a local echo, and the editor returns to
// Viewing. On failure it stays in Editing and the reason is returned.
func (e *Editor) Save(ctx context.Context) error {
	if e.mode != Editing {
		return ErrNotEditing
	}

	sub, err := e.coerce()
	if err != nil {
		return err
	}

	params := api.ProfileParams{
		PhotographyType: sub.PhotographyType,
		City:            sub.City,
		ExperienceYears: sub.ExperienceYears,
		Skills:          sub.Skills,
		ContactNumber:   sub.ContactNumber,
		Available:       sub.Available,
	}

	e.loading = true
	defer func() { e.loading = false }()

	token := e.tokens.Token()
	if e.profile == nil {
		err = e.gw.Create(ctx, token, params)
	} else {
		err = e.gw.Update(ctx, token, params)
	}
	if err != nil {
		return err
	}

	return e.refresh(ctx)
}

// SelectFiles stages files as the pending upload set, replacing any prior
// selection. The whole selection is rejected when it would push the
// portfolio past the cap; nothing is partially accepted.
func (e *Editor) SelectFiles(paths []string) error {
	existing := 0
	if e.profile != nil {
		existing = len(e.profile.WorkPhotos)
	}
	if existing+len(paths) > api.MaxWorkPhotos {
		return fmt.Errorf("%w: you have %d already", ErrCapacityExceeded, existing)
	}
	e.staged = append([]string(nil), paths...)
	return nil
}

// Staged returns the pending upload set.
func (e *Editor) Staged() []string {
	return e.staged
}

// UploadStaged submits all staged files as one multipart request. Success
// clears the staging and re-fetches the profile so the photo list, including
// server-assigned paths, comes from the source of truth. On failure the
// staged files remain selected so the user can retry without reselecting.
func (e *Editor) UploadStaged(ctx context.Context) error {
	if len(e.staged) == 0 {
		return ErrNothingStaged
	}

	uploads := make([]api.Upload, 0, len(e.staged))
	closers := make([]*os.File, 0, len(e.staged))
	defer func() {
		for _, f := range closers {
			_ = f.Close()
		}
	}()
	for _, p := range e.staged {
		f, err := os.Open(p)
		if err != nil {
			return fmt.Errorf("open %s: %w", p, err)
		}
		closers = append(closers, f)
		uploads = append(uploads, api.Upload{Name: filepath.Base(p), Reader: f})
	}

	e.loading = true
	defer func() { e.loading = false }()

	if _, err := e.gw.Upload(ctx, e.tokens.Token(), uploads); err != nil {
		return err
	}

	e.staged = nil
	return e.refresh(ctx)
}

// refresh re-fetches the profile after a successful mutation and enters
// Viewing with the draft reseeded.
func (e *Editor) refresh(ctx context.Context) error {
	p, err := e.gw.Me(ctx, e.tokens.Token())
	if err != nil {
		return err
	}
	e.profile = p
	e.draft = draftFrom(p)
	e.mode = Viewing
	return nil
}

// coerce type-checks the draft into a submission.
func (e *Editor) coerce() (*submission, error) {
	years, err := strconv.Atoi(strings.TrimSpace(e.draft.ExperienceYears))
	if err != nil {
		return nil, fmt.Errorf("profile: experience years must be a number: %q", e.draft.ExperienceYears)
	}

	sub := &submission{
		PhotographyType: strings.TrimSpace(e.draft.PhotographyType),
		City:            strings.TrimSpace(e.draft.City),
		ExperienceYears: years,
		Skills:          ParseSkills(e.draft.Skills),
		ContactNumber:   strings.TrimSpace(e.draft.ContactNumber),
		Available:       e.draft.Available,
	}
	if err := e.validate.Struct(sub); err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	return sub, nil
}

// ParseSkills splits free-text comma-separated input into the skills list:
// entries trimmed, empties dropped, order preserved, duplicates allowed.
func ParseSkills(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// draftFrom seeds form fields from a saved profile.
func draftFrom(p *api.Photographer) Draft {
	return Draft{
		PhotographyType: p.PhotographyType,
		City:            p.City,
		ExperienceYears: strconv.Itoa(p.ExperienceYears),
		Skills:          strings.Join(p.Skills, ", "),
		ContactNumber:   p.ContactNumber,
		Available:       p.Available,
	}
}
