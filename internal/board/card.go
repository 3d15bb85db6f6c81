package board

import (
	"encoding/json"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	ParticipantsHeading = "Participants"
	NoParticipants      = "No participants yet."
	DefaultSchedule     = "TBD"
)

// Details are the server-supplied lines shown under the description.
type Details struct {
	Schedule  string
	SpotsLeft int
}

// Card is the rendered unit for one activity.
type Card struct {
	Title       string
	Description string
	// ActivityID links the card to a locally held record.
	ActivityID string
	Details    *Details

	participants string
	block        *ParticipantsBlock
	container    *Container
}

func NewCard(title, description string, participants []string) *Card {
	c := &Card{
		Title:       title,
		Description: description,
	}
	c.SetParticipants(participants)

	return c
}

// Key is the identity used by the page index.
func (c *Card) Key() string {
	return strings.TrimSpace(c.Title)
}

// ParticipantsAttr is the serialized roster exposed as data-participants.
func (c *Card) ParticipantsAttr() string {
	return c.participants
}

func (c *Card) SetParticipants(participants []string) {
	if participants == nil {
		participants = []string{}
	}
	raw, err := json.Marshal(participants)
	if err != nil {
		// []string always marshals.
		panic(err)
	}
	c.participants = string(raw)
}

// Participants decodes the serialized roster.
func (c *Card) Participants() []string {
	return ParseParticipants(c.participants)
}

// RemoveFromAttr drops the first occurrence of name from the serialized roster.
func (c *Card) RemoveFromAttr(name string) bool {
	current := c.Participants()
	ix := slices.Index(current, name)
	if ix == -1 {
		return false
	}
	c.SetParticipants(slices.Delete(current, ix, ix+1))
	return true
}

// HasParticipant reports whether name is shown in a row or listed in the
// serialized roster.
func (c *Card) HasParticipant(name string) bool {
	if c.block != nil && c.block.has(name) {
		return true
	}
	return slices.Contains(c.Participants(), name)
}

func (c *Card) Block() *ParticipantsBlock {
	return c.block
}

func (c *Card) HasParticipantsBlock() bool {
	return c.block != nil
}

// Container is nil once the card has been removed from the page.
func (c *Card) Container() *Container {
	return c.container
}

// ParticipantRow is one entry of a participants list.
type ParticipantRow struct {
	Name     string
	Initials string
}

// ParticipantsBlock renders either the empty placeholder or a list. Once a
// list exists it stays a list, even after its last row is removed.
type ParticipantsBlock struct {
	Rows   []ParticipantRow
	listed bool
}

func (b *ParticipantsBlock) Listed() bool {
	return b.listed
}

func (b *ParticipantsBlock) append(name string) {
	b.Rows = append(b.Rows, ParticipantRow{Name: name, Initials: Initials(name)})
	b.listed = true
}

func (b *ParticipantsBlock) has(name string) bool {
	return slices.ContainsFunc(b.Rows, func(r ParticipantRow) bool { return r.Name == name })
}

func (b *ParticipantsBlock) remove(name string) bool {
	ix := slices.IndexFunc(b.Rows, func(r ParticipantRow) bool { return r.Name == name })
	if ix == -1 {
		return false
	}
	b.Rows = slices.Delete(b.Rows, ix, ix+1)
	return true
}

// RenderParticipantsBlock attaches the participants block to card. It does
// nothing when the card already has one.
func RenderParticipantsBlock(card *Card, participants []string) {
	if card.block != nil {
		return
	}

	block := &ParticipantsBlock{}
	for _, name := range participants {
		block.append(name)
	}
	card.block = block
}

// RemoveParticipantRow drops the first row showing name.
func RemoveParticipantRow(card *Card, name string) bool {
	if card.block == nil {
		return false
	}
	return card.block.remove(name)
}

// Initials takes the first letter of up to two whitespace-separated words.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range firstN(strings.Fields(name), 2) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

func firstN(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// ParseParticipants reads a serialized roster: a JSON array of strings, or a
// comma-separated list.
func ParseParticipants(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	var parsed []string
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
		if parsed == nil {
			return []string{}
		}
		return parsed
	}

	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
