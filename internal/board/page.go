package board

import (
	"slices"
	"strings"
)

// Anchor ids of the page elements.
const (
	AnchorList            = "activities-list"
	AnchorSection         = "activities"
	AnchorSelect          = "activity"
	AnchorSignupForm      = "signup-form"
	AnchorMessage         = "message"
	AnchorNewActivityForm = "new-activity-form"
)

var Anchors = []string{
	AnchorList,
	AnchorSection,
	AnchorSelect,
	AnchorSignupForm,
	AnchorMessage,
	AnchorNewActivityForm,
}

// Page is the in-process model of the board. Cards from every container
// share one title index, so a title is shown by at most one card.
//
// Page is not safe for concurrent use.
type Page struct {
	List            *Container
	Section         *Container
	Select          *Selector
	Message         *MessageArea
	SignupForm      *SignupValues
	NewActivityForm bool

	index   map[string]*Card
	missing []string
}

// NewPage mounts the given anchors. No anchors mounts all of them.
func NewPage(anchors ...string) *Page {
	if len(anchors) == 0 {
		anchors = Anchors
	}

	p := &Page{index: make(map[string]*Card)}
	for _, a := range Anchors {
		if !slices.Contains(anchors, a) {
			p.missing = append(p.missing, a)
			continue
		}
		switch a {
		case AnchorList:
			p.List = &Container{ID: a, page: p}
		case AnchorSection:
			p.Section = &Container{ID: a, page: p}
		case AnchorSelect:
			p.Select = NewSelector()
		case AnchorSignupForm:
			p.SignupForm = &SignupValues{}
		case AnchorMessage:
			p.Message = NewMessageArea()
		case AnchorNewActivityForm:
			p.NewActivityForm = true
		}
	}

	return p
}

// Missing lists anchors that were not mounted.
func (p *Page) Missing() []string {
	return slices.Clone(p.missing)
}

// Insert places card into c. A card already holding the title is replaced
// in place when it lives in c, and removed from its container otherwise.
func (p *Page) Insert(c *Container, card *Card) {
	if c == nil {
		return
	}

	key := card.Key()
	if old, ok := p.index[key]; ok {
		if old.container == c {
			ix := slices.Index(c.cards, old)
			c.cards[ix] = card
			old.container = nil
			card.container = c
			p.index[key] = card
			return
		}
		old.container.detach(old)
	}

	card.container = c
	c.cards = append(c.cards, card)
	p.index[key] = card
}

// RemoveCardsWithTitle drops the card showing title, wherever it lives.
func (p *Page) RemoveCardsWithTitle(title string) bool {
	key := strings.TrimSpace(title)
	if key == "" {
		return false
	}

	card, ok := p.index[key]
	if !ok {
		return false
	}
	card.container.detach(card)

	return true
}

// FindCard looks a card up by its trimmed title.
func (p *Page) FindCard(title string) (*Card, bool) {
	card, ok := p.index[strings.TrimSpace(title)]
	return card, ok
}

// Clear empties c and its notice.
func (p *Page) Clear(c *Container) {
	if c == nil {
		return
	}
	for _, card := range slices.Clone(c.cards) {
		c.detach(card)
	}
	c.Notice = ""
}

// Cards returns every card on the page, list first.
func (p *Page) Cards() []*Card {
	var out []*Card
	for _, c := range []*Container{p.List, p.Section} {
		if c != nil {
			out = append(out, c.cards...)
		}
	}
	return out
}

// Hydrate renders the participants block of every card lacking one from the
// card's serialized roster.
func (p *Page) Hydrate() {
	for _, card := range p.Cards() {
		RenderParticipantsBlock(card, card.Participants())
	}
}

// AddParticipantToCard shows label on the card for title, creating the
// participants list when needed. It reports whether a card was found.
func (p *Page) AddParticipantToCard(title, label string) bool {
	card, ok := p.FindCard(title)
	if !ok {
		return false
	}

	if card.block == nil {
		card.SetParticipants([]string{label})
		RenderParticipantsBlock(card, []string{label})
		return true
	}

	card.block.append(label)
	card.SetParticipants(append(card.Participants(), label))

	return true
}

// Container is one of the page's card lists.
type Container struct {
	ID string
	// Notice is an informational paragraph shown above the cards.
	Notice string

	page  *Page
	cards []*Card
}

func (c *Container) Cards() []*Card {
	if c == nil {
		return nil
	}
	return slices.Clone(c.cards)
}

func (c *Container) Len() int {
	if c == nil {
		return 0
	}
	return len(c.cards)
}

// Titles lists card titles in display order.
func (c *Container) Titles() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.cards))
	for _, card := range c.cards {
		out = append(out, card.Title)
	}
	return out
}

// Has reports whether a card for title lives in c.
func (c *Container) Has(title string) bool {
	if c == nil {
		return false
	}
	card, ok := c.page.FindCard(title)
	return ok && card.container == c
}

func (c *Container) detach(card *Card) {
	ix := slices.Index(c.cards, card)
	if ix == -1 {
		return
	}
	c.cards = slices.Delete(c.cards, ix, ix+1)
	card.container = nil
	if cur, ok := c.page.index[card.Key()]; ok && cur == card {
		delete(c.page.index, card.Key())
	}
}
