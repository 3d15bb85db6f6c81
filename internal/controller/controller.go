// Package controller sequences the board: it seeds the page from the local
// store, reconciles it with the remote activity list and applies user
// actions (signup, new activity, participant removal).
//
// All page and store mutations happen under one lock. Network calls are made
// outside it and their results applied once they return.
package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"activityBoard/internal/backend"
	"activityBoard/internal/board"
	"activityBoard/internal/lib/logger/sl"
	"activityBoard/internal/models"
	"activityBoard/internal/observability"
	"activityBoard/internal/storage/memory"
)

const (
	NoticeEmpty  = "No activities available from server. Showing sample activities."
	NoticeFailed = "Failed to load activities. Showing sample activities."

	MsgSignedUp     = "Signed up successfully"
	MsgSignupError  = "An error occurred"
	MsgSignupFailed = "Failed to sign up. Please try again."

	DefaultMessageTTL = 5 * time.Second
)

var (
	ErrCardNotFound        = errors.New("card not found")
	ErrParticipantNotFound = errors.New("participant not on card")
	// ErrNotMounted is returned for actions whose page element is absent.
	ErrNotMounted = errors.New("page element not mounted")
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Remote
type Remote interface {
	Activities(ctx context.Context) ([]models.RemoteActivity, error)
	Signup(ctx context.Context, title, email, name string) (backend.SignupResult, error)
	Unregister(ctx context.Context, title, email string) backend.BestEffort
}

type Config struct {
	MessageTTL time.Duration
}

type SignupForm struct {
	Name     string
	Email    string
	Activity string
}

type SignupOutcome struct {
	OK      bool
	Kind    board.MessageKind
	Message string
}

type NewActivityForm struct {
	Title        string
	Description  string
	Participants string
}

// tombstone remembers a removal so that a fetch issued before the removal
// settled cannot bring the participant back.
type tombstone struct {
	title     string
	name      string
	settled   bool
	settledAt uint64
}

func (t *tombstone) settle(fetchSeq uint64) {
	t.settled = true
	t.settledAt = fetchSeq
}

// covers reports whether a fetch with sequence seq may predate the removal.
func (t *tombstone) covers(seq uint64) bool {
	return !t.settled || seq <= t.settledAt
}

type Controller struct {
	log    *slog.Logger
	store  *memory.Storage
	page   *board.Page
	remote Remote
	cfg    Config

	mu         sync.Mutex
	fetchSeq   uint64
	tombstones []*tombstone

	bg sync.WaitGroup
}

func New(log *slog.Logger, store *memory.Storage, page *board.Page, remote Remote, cfg Config) *Controller {
	if cfg.MessageTTL <= 0 {
		cfg.MessageTTL = DefaultMessageTTL
	}

	return &Controller{
		log:    log.With(slog.String("component", "controller")),
		store:  store,
		page:   page,
		remote: remote,
		cfg:    cfg,
	}
}

// Start renders the page from local data and then fetches the remote list
// in the background.
func (c *Controller) Start(ctx context.Context) {
	for _, anchor := range c.page.Missing() {
		c.log.Error("page element not found", slog.String("anchor", anchor))
	}

	c.mu.Lock()
	c.populateFromLocal()
	c.renderActivities()
	c.page.Hydrate()
	c.mu.Unlock()

	c.bg.Add(1)
	go func() {
		defer c.bg.Done()
		c.FetchActivities(ctx)
	}()
}

// Drain waits for background work: the startup fetch and best-effort calls.
func (c *Controller) Drain() {
	c.bg.Wait()
}

// RenderBoard writes the current page, or only its <main> element.
func (c *Controller) RenderBoard(ctx context.Context, w io.Writer, fragment bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if fragment {
		return board.MainView(c.page).Render(ctx, w)
	}
	return board.PageView(c.page).Render(ctx, w)
}

// FetchActivities replaces the short list with the remote activities. When
// the remote list is empty or unavailable the local samples are shown with
// a notice. A completion is dropped if a newer fetch was issued meanwhile.
func (c *Controller) FetchActivities(ctx context.Context) {
	const op = "controller.FetchActivities"

	c.mu.Lock()
	c.fetchSeq++
	seq := c.fetchSeq
	c.mu.Unlock()

	log := c.log.With(slog.String("op", op), slog.Uint64("seq", seq))
	log.Info("fetching activities")

	remote, err := c.remote.Activities(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.fetchSeq {
		log.Info("discarding stale activities", slog.Uint64("latest", c.fetchSeq))
		observability.RecordFetch(observability.FetchStale)
		return
	}

	switch {
	case err != nil:
		log.Error("failed to fetch activities, showing sample activities", sl.Err(err))
		observability.RecordFetch(observability.FetchFailed)
		c.fallback(NoticeFailed)
	case len(remote) == 0:
		log.Warn("no activities from server, showing sample activities")
		observability.RecordFetch(observability.FetchEmpty)
		c.fallback(NoticeEmpty)
	default:
		log.Info("activities fetched", slog.Int("count", len(remote)))
		observability.RecordFetch(observability.FetchRemote)
		c.reconcile(seq, remote)
	}

	c.pruneTombstones(seq)
}

func (c *Controller) fallback(notice string) {
	c.populateFromLocal()
	if c.page.List != nil {
		c.page.List.Notice = notice
	}
}

func (c *Controller) reconcile(seq uint64, remote []models.RemoteActivity) {
	remote = c.applyTombstones(seq, remote)

	list := c.page.List
	c.page.Clear(list)
	c.page.Select.Reset()

	for _, ra := range remote {
		card := board.NewCard(ra.Name, ra.Description, ra.Participants)
		schedule := ra.Schedule
		if schedule == "" {
			schedule = board.DefaultSchedule
		}
		card.Details = &board.Details{Schedule: schedule, SpotsLeft: ra.SpotsLeft()}

		c.page.Insert(list, card)
		if len(ra.Participants) > 0 {
			board.RenderParticipantsBlock(card, ra.Participants)
		}
		c.page.Select.Ensure(ra.Name)
	}

	// Local samples stay selectable when the server does not know them.
	for _, title := range c.store.Titles() {
		c.page.Select.Ensure(title)
	}
}

func (c *Controller) applyTombstones(seq uint64, remote []models.RemoteActivity) []models.RemoteActivity {
	if len(c.tombstones) == 0 {
		return remote
	}

	remote = slices.Clone(remote)
	for _, ts := range c.tombstones {
		if !ts.covers(seq) {
			continue
		}
		for i := range remote {
			if strings.TrimSpace(remote[i].Name) != ts.title {
				continue
			}
			if ix := slices.Index(remote[i].Participants, ts.name); ix != -1 {
				remote[i].Participants = slices.Delete(slices.Clone(remote[i].Participants), ix, ix+1)
			}
			break
		}
	}
	return remote
}

func (c *Controller) pruneTombstones(seq uint64) {
	c.tombstones = slices.DeleteFunc(c.tombstones, func(ts *tombstone) bool {
		return !ts.covers(seq)
	})
}

func (c *Controller) populateFromLocal() {
	log := c.log.With(slog.String("op", "controller.populateFromLocal"))

	list := c.page.List
	if list == nil {
		log.Error("activities list not found, aborting population")
		return
	}

	c.page.Clear(list)
	if c.page.Select == nil {
		log.Error("activity select not found, cannot populate dropdown")
	}
	c.page.Select.Reset()

	activities := c.store.Activities()
	for _, act := range activities {
		if list.Has(act.Title) {
			log.Debug("skipping duplicate activity", slog.String("title", act.Title))
		} else {
			card := localCard(act)
			c.page.Insert(list, card)
			board.RenderParticipantsBlock(card, act.Participants)
		}
		c.page.Select.Ensure(act.Title)
	}

	log.Debug("populated from local",
		slog.Int("activities", len(activities)),
		slog.Int("options", len(c.page.Select.Options())),
	)
}

// renderActivities rebuilds the activities section from the store.
func (c *Controller) renderActivities() {
	section := c.page.Section
	if section == nil {
		return
	}

	c.page.Clear(section)
	for _, act := range c.store.Activities() {
		card := localCard(act)
		board.RenderParticipantsBlock(card, act.Participants)
		c.page.Insert(section, card)
	}
}

func localCard(act models.Activity) *board.Card {
	card := board.NewCard(act.Title, act.Description, act.Participants)
	card.ActivityID = act.ID
	return card
}

// Signup submits the signup form. Only a missing form yields an error; every
// other outcome is reported through the message area and the returned
// outcome.
func (c *Controller) Signup(ctx context.Context, form SignupForm) (SignupOutcome, error) {
	const op = "controller.Signup"

	name := strings.TrimSpace(form.Name)
	email := strings.TrimSpace(form.Email)
	activity := form.Activity

	log := c.log.With(slog.String("op", op), slog.String("activity", activity))

	c.mu.Lock()
	if c.page.SignupForm == nil {
		c.mu.Unlock()
		log.Error("signup form not found")
		return SignupOutcome{}, fmt.Errorf("%s: %w", op, ErrNotMounted)
	}
	*c.page.SignupForm = board.SignupValues{Name: name, Email: email, Activity: activity}
	c.mu.Unlock()

	res, err := c.remote.Signup(ctx, activity, email, name)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		log.Error("failed to sign up", sl.Err(err))
		observability.RecordSignup(observability.SignupFailed)
		return c.notify(board.MessageError, MsgSignupFailed), nil
	}

	if !res.OK {
		log.Info("signup rejected", slog.Int("status", res.Status), slog.String("message", res.Message))
		observability.RecordSignup(observability.SignupDenied)
		return c.notify(board.MessageError, orDefault(res.Message, MsgSignupError)), nil
	}

	observability.RecordSignup(observability.SignupOK)
	outcome := c.notify(board.MessageSuccess, orDefault(res.Message, MsgSignedUp))

	label := name
	if label == "" {
		label = email
	}
	c.forget(activity, label)

	err = c.store.AddParticipant(activity, label)
	switch {
	case err == nil:
		c.renderActivities()
	case errors.Is(err, memory.ErrActivityNotFound):
		if !c.page.AddParticipantToCard(activity, label) {
			log.Warn("no card to show participant on")
		}
	default:
		log.Error("failed to add participant", sl.Err(err))
	}

	c.page.SignupForm.Reset()
	log.Info("signed up", slog.String("participant", label))

	return outcome, nil
}

// Reject keeps the submitted values in the signup form and shows reason
// without contacting the backend.
func (c *Controller) Reject(form SignupForm, reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.page.SignupForm != nil {
		*c.page.SignupForm = board.SignupValues{
			Name:     strings.TrimSpace(form.Name),
			Email:    strings.TrimSpace(form.Email),
			Activity: form.Activity,
		}
	}

	observability.RecordSignup(observability.SignupInvalid)
	c.notify(board.MessageError, reason)
}

// notify shows text in the message area and schedules it to be hidden.
func (c *Controller) notify(kind board.MessageKind, text string) SignupOutcome {
	outcome := SignupOutcome{OK: kind == board.MessageSuccess, Kind: kind, Message: text}

	m := c.page.Message
	if m == nil {
		return outcome
	}

	gen := m.Show(kind, text)
	time.AfterFunc(c.cfg.MessageTTL, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		m.Hide(gen)
	})

	return outcome
}

// AddActivity appends a local-only activity and re-renders the section.
func (c *Controller) AddActivity(_ context.Context, form NewActivityForm) (models.Activity, error) {
	const op = "controller.AddActivity"

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.page.NewActivityForm {
		c.log.Error("new activity form not found", slog.String("op", op))
		return models.Activity{}, fmt.Errorf("%s: %w", op, ErrNotMounted)
	}

	act := c.store.AddActivity(
		strings.TrimSpace(form.Title),
		strings.TrimSpace(form.Description),
		splitParticipants(form.Participants),
	)
	c.renderActivities()

	c.log.Info("activity added", slog.String("op", op), slog.String("id", act.ID), slog.String("title", act.Title))

	return act, nil
}

func splitParticipants(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// RemoveParticipant is the remove control of a participant row. The row goes
// away immediately; names that look like an email are also unregistered on
// the server in the background. A failed unregister is logged and counted,
// never rolled back.
func (c *Controller) RemoveParticipant(ctx context.Context, title, name string) error {
	const op = "controller.RemoveParticipant"

	log := c.log.With(slog.String("op", op), slog.String("title", title))

	c.mu.Lock()

	card, ok := c.page.FindCard(title)
	if !ok {
		c.mu.Unlock()
		return fmt.Errorf("%s: %w", op, ErrCardNotFound)
	}

	if !card.HasParticipant(name) {
		c.mu.Unlock()
		return fmt.Errorf("%s: %w", op, ErrParticipantNotFound)
	}

	fromRecord := false
	if card.ActivityID != "" {
		if _, err := c.store.RemoveParticipant(card.ActivityID, name); err == nil {
			fromRecord = true
		}
	}
	card.RemoveFromAttr(name)
	board.RemoveParticipantRow(card, name)

	key := card.Key()
	ts := &tombstone{title: key, name: name}
	c.tombstones = append(c.tombstones, ts)

	unregister := strings.Contains(name, "@") && key != ""
	if !unregister {
		ts.settle(c.fetchSeq)
	}

	c.mu.Unlock()

	log.Info("participant removed", slog.Bool("from_record", fromRecord), slog.Bool("unregister", unregister))

	if unregister {
		c.bg.Add(1)
		go c.unregister(context.WithoutCancel(ctx), key, name, ts)
	}

	return nil
}

func (c *Controller) unregister(ctx context.Context, title, email string, ts *tombstone) {
	defer c.bg.Done()

	res := c.remote.Unregister(ctx, title, email)
	if res.Failed() {
		c.log.Debug("best-effort unregister failed", slog.String("title", title), sl.Err(res.Err))
		observability.RecordUnregister(observability.UnregisterErr)
	} else {
		observability.RecordUnregister(observability.UnregisterOK)
	}

	c.mu.Lock()
	ts.settle(c.fetchSeq)
	c.mu.Unlock()
}

// forget drops removals of label from title; the participant signed up again.
func (c *Controller) forget(title, label string) {
	title = strings.TrimSpace(title)
	c.tombstones = slices.DeleteFunc(c.tombstones, func(ts *tombstone) bool {
		return ts.title == title && ts.name == label
	})
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
