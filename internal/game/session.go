// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package game

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-gambit/models"
)

// MinPlayers is the number of players required to start a game.
const MinPlayers = 2

// State is the phase of a session.
type State int

const (
	StateSetup State = iota
	StatePlaying
)

func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StatePlaying:
		return "playing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Library provides the free prompts of each theme.
type Library interface {
	Theme(theme models.ThemePack) []models.Prompt
}

// PremiumSource returns the premium prompts currently unlocked.
type PremiumSource interface {
	UnlockedPrompts() []models.Prompt
}

// IDGenerator creates player identifiers.
type IDGenerator interface {
	Generate() string
}

// Option configures a [Session].
type Option func(*Session)

// WithSource sets the randomness used for shuffling and player picks.
func WithSource(rnd Source) Option {
	return func(s *Session) { s.rnd = rnd }
}

// WithIDGenerator sets the generator used for player IDs.
func WithIDGenerator(ids IDGenerator) Option {
	return func(s *Session) { s.ids = ids }
}

// Session is a single local game: the roster, the selected theme, the
// custom prompts typed in so far and the current deck.
//
// Players and theme may only change in [StateSetup]. Custom prompts live
// for the session and are shuffled back in whenever the deck is rebuilt.
// A Session is not safe for concurrent use.
type Session struct {
	library Library
	premium PremiumSource
	rnd     Source
	ids     IDGenerator

	state   State
	theme   models.ThemePack
	players []models.Player
	custom  []string
	deck    *Deck
}

// NewSession creates a session in [StateSetup] with a freshly built deck.
// A nil premium source means no premium content.
func NewSession(library Library, premium PremiumSource, theme models.ThemePack, opts ...Option) *Session {
	if !theme.Valid() {
		theme = models.DefaultTheme
	}
	s := &Session{
		library: library,
		premium: premium,
		rnd:     globalSource{},
		ids:     &sequentialIDs{},
		state:   StateSetup,
		theme:   theme,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.rebuild()
	return s
}

func (s *Session) State() State             { return s.state }
func (s *Session) Theme() models.ThemePack  { return s.theme }
func (s *Session) Players() []models.Player { return slices.Clone(s.players) }
func (s *Session) CustomPrompts() []string  { return slices.Clone(s.custom) }

// DeckSize returns the number of cards left in the current deck.
func (s *Session) DeckSize() int {
	return s.deck.Len()
}

// AddPlayer adds a player with a trimmed, case-insensitively unique name.
func (s *Session) AddPlayer(name string) (models.Player, error) {
	if s.state != StateSetup {
		return models.Player{}, ErrNotInSetup
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Player{}, ErrEmptyPlayerName
	}
	for _, p := range s.players {
		if strings.EqualFold(p.Name, name) {
			return models.Player{}, fmt.Errorf("%w: %s", ErrDuplicatePlayer, name)
		}
	}

	p := models.Player{
		ID:     s.ids.Generate(),
		Name:   name,
		Avatar: AvatarFor(name),
	}
	s.players = append(s.players, p)
	return p, nil
}

// RemovePlayer removes the player with the given ID.
func (s *Session) RemovePlayer(id string) error {
	if s.state != StateSetup {
		return ErrNotInSetup
	}
	i := slices.IndexFunc(s.players, func(p models.Player) bool { return p.ID == id })
	if i < 0 {
		return ErrPlayerNotFound
	}
	s.players = slices.Delete(s.players, i, i+1)
	return nil
}

// SelectTheme switches the theme and rebuilds the deck.
func (s *Session) SelectTheme(theme models.ThemePack) error {
	if s.state != StateSetup {
		return ErrNotInSetup
	}
	if !theme.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, theme)
	}
	s.theme = theme
	s.rebuild()
	return nil
}

// Start moves the session to [StatePlaying] with a fresh deck.
func (s *Session) Start() error {
	if s.state != StateSetup {
		return ErrNotInSetup
	}
	if len(s.players) < MinPlayers {
		return fmt.Errorf("%w: need at least %d, have %d", ErrNotEnoughPlayers, MinPlayers, len(s.players))
	}
	s.rebuild()
	s.state = StatePlaying
	return nil
}

// Next draws the next card. ok is false once the deck is exhausted.
func (s *Session) Next() (card models.Card, ok bool, err error) {
	if s.state != StatePlaying {
		return models.Card{}, false, ErrNotPlaying
	}
	card, ok = s.deck.Next(s.players)
	return card, ok, nil
}

// AddCustomPrompt adds free text to the current deck and keeps it for
// later rebuilds. It is allowed in both states.
func (s *Session) AddCustomPrompt(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyPrompt
	}
	s.custom = append(s.custom, text)
	s.deck.AddCustom(text)
	return nil
}

// Exit returns to [StateSetup] and reshuffles a full deck.
func (s *Session) Exit() error {
	if s.state != StatePlaying {
		return ErrNotPlaying
	}
	s.state = StateSetup
	s.rebuild()
	return nil
}

// Refresh rebuilds the deck while in setup, picking up newly unlocked
// premium content. It is a no-op during play.
func (s *Session) Refresh() {
	if s.state == StateSetup {
		s.rebuild()
	}
}

func (s *Session) rebuild() {
	var prompts []models.Prompt
	if s.library != nil {
		prompts = append(prompts, s.library.Theme(s.theme)...)
	}
	if s.premium != nil {
		prompts = append(prompts, s.premium.UnlockedPrompts()...)
	}
	for _, text := range s.custom {
		prompts = append(prompts, NewCustomPrompt(text))
	}
	s.deck = BuildDeck(prompts, s.rnd)
}

type sequentialIDs struct{ n int }

func (g *sequentialIDs) Generate() string {
	g.n++
	return fmt.Sprintf("player-%d", g.n)
}
