// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-gambit/internal/audio"
	"github.com/MKhiriev/go-gambit/internal/entitlement"
	"github.com/MKhiriev/go-gambit/internal/game"
	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/internal/service"
	"github.com/MKhiriev/go-gambit/models"
)

type screen int

const (
	screenSetup screen = iota
	screenPlaying
	screenStore
)

type setupFocus int

const (
	focusName setupFocus = iota
	focusRoster
	focusCustom
	focusCount
)

type appModel struct {
	ctx       context.Context
	session   *game.Session
	purchases service.ClientPurchaseService
	state     *entitlement.State
	audio     audio.Player
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	now       func() time.Time

	updates <-chan models.EntitlementSnapshot
	pro     bool

	screen screen

	nameInput    textinput.Model
	customInput  textinput.Model
	focus        setupFocus
	rosterCursor int

	card         models.Card
	hasCard      bool
	deckEmpty    bool
	addingCustom bool

	packages    []models.Package
	offered     bool
	storeCursor int
	loading     bool
	spinner     spinner.Model
	pending     models.Package

	alert    *alertModel
	banner   bannerModel
	confirm  confirmModel
	showInfo bool

	status    string
	statusSeq int
}

func newAppModel(ctx context.Context, deps Deps, updates <-chan models.EntitlementSnapshot) appModel {
	name := textinput.New()
	name.Placeholder = "Player name"
	name.CharLimit = 24
	name.Prompt = "name > "
	name.Focus()

	custom := textinput.New()
	custom.Placeholder = "Write your own prompt"
	custom.CharLimit = 200
	custom.Prompt = "prompt > "

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	m := appModel{
		ctx:         ctx,
		session:     deps.Session,
		purchases:   deps.Purchases,
		state:       deps.State,
		audio:       deps.Audio,
		buildInfo:   deps.BuildInfo,
		logger:      deps.Logger,
		now:         time.Now,
		updates:     updates,
		nameInput:   name,
		customInput: custom,
		spinner:     sp,
	}
	if m.audio == nil {
		m.audio = audio.Nop()
	}
	if m.logger == nil {
		m.logger = logger.Nop()
	}
	if m.state != nil {
		m.pro = m.state.Current().HasPro(m.now())
	}
	// entitlements applied before the program started are not replayed to
	// updates, so the first deck is rebuilt against them here
	if m.session != nil {
		m.session.Refresh()
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForEntitlements(m.updates))
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case entitlementsChangedMsg:
		return m.onEntitlements(msg)

	case offeringsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("loading offerings failed")
			m.banner = bannerModel{message: storeMessage(msg.err), op: retryOfferings}
			return m, nil
		}
		m.banner = bannerModel{}
		m.packages = msg.packages
		m.offered = true
		m.storeCursor = 0
		return m, nil

	case purchaseDoneMsg:
		return m.onPurchase(msg)

	case restoreDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("restore failed")
			m.banner = bannerModel{message: storeMessage(msg.err), op: retryRestore}
			return m, nil
		}
		m.banner = bannerModel{}
		m.state.Apply(msg.snap)
		if msg.snap.HasPro(m.now()) {
			return m.setStatus("Purchases restored")
		}
		return m.setStatus("Nothing to restore")

	case accountDeletedMsg:
		m.loading = false
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("account deletion failed")
			m.banner = bannerModel{message: storeMessage(msg.err), op: retryDeleteAccount}
			return m, nil
		}
		m.banner = bannerModel{}
		m.state.Apply(models.EntitlementSnapshot{})
		m.packages, m.offered = nil, false
		m.screen = screenSetup
		return m.setStatus("Store account deleted")

	case copiedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("clipboard write failed")
			return m.setStatus("Copy failed")
		}
		return m.setStatus("Copied")

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateInputs(msg)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.alert != nil:
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.alert = nil
		}
		return m, nil

	case m.confirm.active():
		return m.handleConfirmKey(msg)

	case m.showInfo:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
			m.showInfo = false
		}
		return m, nil
	}

	if m.banner.active() && !m.loading && !m.typing() {
		switch {
		case key.Matches(msg, keys.retry):
			return m.retry()
		case key.Matches(msg, keys.esc):
			m.banner = bannerModel{}
			return m, nil
		}
	}

	if key.Matches(msg, keys.info) && !m.typing() {
		m.showInfo = true
		return m, nil
	}

	switch m.screen {
	case screenPlaying:
		return m.updatePlaying(msg)
	case screenStore:
		return m.updateStore(msg)
	default:
		return m.updateSetup(msg)
	}
}

func (m appModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var confirmed bool
	switch {
	case key.Matches(msg, keys.yes):
		confirmed = true
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
	default:
		return m, nil
	}

	action := m.confirm.action
	m.confirm = confirmModel{}

	switch action {
	case confirmPurchase:
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, purchaseCmd(m.ctx, m.purchases, m.pending, confirmed))
	case confirmDeleteAccount:
		if !confirmed {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, deleteAccountCmd(m.ctx, m.purchases))
	}
	return m, nil
}

func (m appModel) retry() (tea.Model, tea.Cmd) {
	op := m.banner.op
	m.banner = bannerModel{}
	m.loading = true

	switch op {
	case retryOfferings:
		return m, tea.Batch(m.spinner.Tick, loadOfferingsCmd(m.ctx, m.purchases))
	case retryPurchase:
		return m, tea.Batch(m.spinner.Tick, purchaseCmd(m.ctx, m.purchases, m.pending, true))
	case retryRestore:
		return m, tea.Batch(m.spinner.Tick, restoreCmd(m.ctx, m.purchases))
	case retryDeleteAccount:
		return m, tea.Batch(m.spinner.Tick, deleteAccountCmd(m.ctx, m.purchases))
	}
	m.loading = false
	return m, nil
}

func (m appModel) onPurchase(msg purchaseDoneMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	switch {
	case errors.Is(msg.err, service.ErrPurchaseCancelled):
		return m.setStatus("Purchase cancelled")
	case msg.err != nil:
		m.logger.Err(msg.err).Str("package", msg.pkg.Identifier).Msg("purchase failed")
		m.pending = msg.pkg
		m.banner = bannerModel{message: storeMessage(msg.err), op: retryPurchase}
		return m, nil
	}

	m.banner = bannerModel{}
	m.state.Apply(msg.snap)
	return m.setStatus("Purchased " + msg.pkg.Title)
}

func (m appModel) onEntitlements(msg entitlementsChangedMsg) (tea.Model, tea.Cmd) {
	wasPro := m.pro
	m.pro = msg.snap.HasPro(m.now())
	m.session.Refresh()

	next := waitForEntitlements(m.updates)
	if m.pro && !wasPro {
		m.audio.PlayEffect(audio.EffectPurchase)
		model, cmd := m.setStatus("Pro unlocked")
		return model, tea.Batch(cmd, next)
	}
	return m, next
}

func (m appModel) openStore() (tea.Model, tea.Cmd) {
	m.screen = screenStore
	m.nameInput.Blur()
	m.customInput.Blur()
	if m.offered || m.loading {
		return m, nil
	}
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, loadOfferingsCmd(m.ctx, m.purchases))
}

func (m appModel) setStatus(text string) (appModel, tea.Cmd) {
	m.statusSeq++
	m.status = text
	return m, clearStatusAfter(m.statusSeq)
}

func (m appModel) showAlert(err error) (tea.Model, tea.Cmd) {
	text := validationMessage(err)
	if text == "" {
		text = err.Error()
	}
	m.audio.PlayEffect(audio.EffectError)
	m.alert = &alertModel{message: text}
	return m, nil
}

// typing reports whether a text input owns the keyboard.
func (m appModel) typing() bool {
	switch m.screen {
	case screenSetup:
		return m.focus == focusName || m.focus == focusCustom
	case screenPlaying:
		return m.addingCustom
	}
	return false
}

func (m appModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.screen == screenSetup && m.focus == focusName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case m.screen == screenSetup && m.focus == focusCustom,
		m.screen == screenPlaying && m.addingCustom:
		m.customInput, cmd = m.customInput.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	var body string
	switch {
	case m.showInfo:
		return renderBuildInfoWindow(m.buildInfo)
	case m.screen == screenPlaying:
		body = m.viewPlaying()
	case m.screen == screenStore:
		body = m.viewStore()
	default:
		body = m.viewSetup()
	}

	var overlays []string
	if m.banner.active() {
		overlays = append(overlays, m.banner.View())
	}
	if m.confirm.active() {
		overlays = append(overlays, m.confirm.View())
	}
	if m.alert != nil {
		overlays = append(overlays, m.alert.View())
	}
	if m.status != "" {
		overlays = append(overlays, statusStyle.Render(m.status))
	}
	if len(overlays) == 0 {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{body}, overlays...)...)
}
