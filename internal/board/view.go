package board

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Form actions served by the HTTP layer.
const (
	SignupPath            = "/signup"
	NewActivityPath       = "/activities"
	RemoveParticipantPath = "/participants/remove"
)

// BoardID is the id of the <main> element HTMX swaps.
const BoardID = "board"

type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) rawf(format string, args ...any) {
	h.raw(fmt.Sprintf(format, args...))
}

// attr writes ` name="value"` with value escaped.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// form opens a form posting to action natively and through HTMX. The
// answer replaces the whole board.
func (h *htmlWriter) form(attrs, action string) {
	h.raw(`<form ` + attrs + ` method="post"`)
	h.attr("action", action)
	h.attr("hx-post", action)
	h.raw(` hx-target="#` + BoardID + `" hx-swap="outerHTML">`)
}

// PageView renders the whole document.
func PageView(p *Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>Activities</title><link rel="stylesheet" href="/static/styles.css">`)
		h.raw(`<script src="https://unpkg.com/htmx.org@1.9.12"></script></head><body>`)
		if h.err != nil {
			return h.err
		}
		if err := MainView(p).Render(ctx, w); err != nil {
			return err
		}
		h.raw(`</body></html>`)
		return h.err
	})
}

// MainView renders the <main> element, the unit swapped by HTMX requests.
func MainView(p *Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<main id="` + BoardID + `">`)

		if m := p.Message; m != nil {
			h.rawf(`<div id="%s"`, AnchorMessage)
			h.attr("class", m.Class())
			h.raw(">")
			h.text(m.Text)
			h.raw(`</div>`)
		}

		for _, c := range []*Container{p.List, p.Section} {
			if c == nil {
				continue
			}
			h.rawf(`<section id="%s">`, c.ID)
			if c.Notice != "" {
				h.raw(`<p class="info">`)
				h.text(c.Notice)
				h.raw(`</p>`)
			}
			if h.err != nil {
				return h.err
			}
			for _, card := range c.cards {
				if err := CardView(card).Render(ctx, w); err != nil {
					return err
				}
			}
			h.raw(`</section>`)
		}

		if p.SignupForm != nil {
			signupForm(h, p)
		}
		if p.NewActivityForm {
			newActivityForm(h)
		}

		h.raw(`</main>`)
		return h.err
	})
}

func signupForm(h *htmlWriter, p *Page) {
	v := p.SignupForm
	h.form(`id="`+AnchorSignupForm+`"`, SignupPath)
	h.raw(`<label for="name">Name</label><input id="name" name="name" type="text"`)
	h.attr("value", v.Name)
	h.raw(`><label for="email">Email</label><input id="email" name="email" type="email" required`)
	h.attr("value", v.Email)
	h.raw(`>`)
	if s := p.Select; s != nil {
		h.rawf(`<label for="%s">Activity</label><select id="%s" name="activity" required>`, AnchorSelect, AnchorSelect)
		h.raw(`<option value="">`)
		h.text(s.Placeholder)
		h.raw(`</option>`)
		for _, opt := range s.options {
			h.raw(`<option`)
			h.attr("value", opt)
			if opt == v.Activity {
				h.raw(` selected`)
			}
			h.raw(`>`)
			h.text(opt)
			h.raw(`</option>`)
		}
		h.raw(`</select>`)
	}
	h.raw(`<button type="submit">Sign Up</button></form>`)
}

func newActivityForm(h *htmlWriter) {
	h.form(`id="`+AnchorNewActivityForm+`"`, NewActivityPath)
	h.raw(`<label for="title">Title</label><input id="title" name="title" type="text">`)
	h.raw(`<label for="description">Description</label><input id="description" name="description" type="text">`)
	h.raw(`<label for="participants">Participants</label><input id="participants" name="participants" type="text" placeholder="Comma separated">`)
	h.raw(`<button type="submit">Add Activity</button></form>`)
}

// CardView renders one activity card.
func CardView(card *Card) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div class="activity-card"`)
		if card.ActivityID != "" {
			h.attr("data-activity-id", card.ActivityID)
		}
		h.attr("data-participants", card.participants)
		h.raw(`><h4>`)
		h.text(card.Title)
		h.raw(`</h4><p>`)
		h.text(card.Description)
		h.raw(`</p>`)

		if d := card.Details; d != nil {
			h.raw(`<p><strong>Schedule:</strong> `)
			h.text(d.Schedule)
			h.raw(`</p><p><strong>Availability:</strong> `)
			h.text(strconv.Itoa(d.SpotsLeft))
			h.raw(` spots left</p>`)
		}

		if b := card.block; b != nil {
			participantsBlock(h, card, b)
		}

		h.raw(`</div>`)
		return h.err
	})
}

func participantsBlock(h *htmlWriter, card *Card, b *ParticipantsBlock) {
	h.raw(`<div class="participants"><h5>`)
	h.text(ParticipantsHeading)
	h.raw(`</h5>`)

	if !b.listed {
		h.raw(`<p class="participants-empty">`)
		h.text(NoParticipants)
		h.raw(`</p></div>`)
		return
	}

	h.raw(`<ul class="participants-list">`)
	for _, row := range b.Rows {
		participantRow(h, card.Key(), row)
	}
	h.raw(`</ul></div>`)
}

func participantRow(h *htmlWriter, title string, row ParticipantRow) {
	h.raw(`<li class="participant"><span class="participant-avatar">`)
	h.text(row.Initials)
	h.raw(`</span><span class="participant-name">`)
	h.text(row.Name)
	h.raw(`</span>`)
	h.form(`class="participant-remove-form"`, RemoveParticipantPath)
	h.raw(`<input type="hidden" name="title"`)
	h.attr("value", title)
	h.raw(`><input type="hidden" name="name"`)
	h.attr("value", row.Name)
	h.raw(`><button class="participant-remove" type="submit"`)
	h.attr("aria-label", "Remove "+row.Name)
	h.raw(`>✕</button></form></li>`)
}
