// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// confirmAction is what happens when the player answers yes.
type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmPurchase
	confirmDeleteAccount
)

type confirmModel struct {
	message string
	action  confirmAction
}

func (m confirmModel) active() bool { return m.action != confirmNone }

func (m confirmModel) View() string {
	return overlayBoxStyle.Render(m.message + "\n\ny: yes    n: no")
}

// alertModel is a dismissible inline validation message.
type alertModel struct {
	message string
}

func (m alertModel) View() string {
	return overlayBoxStyle.Render(errorStyle.Render(m.message) + "\n\nenter / esc: dismiss")
}

// retryOp names the store call a retry banner repeats.
type retryOp int

const (
	retryNone retryOp = iota
	retryOfferings
	retryPurchase
	retryRestore
	retryDeleteAccount
)

// bannerModel reports a failed store call. Nothing retries on its own.
type bannerModel struct {
	message string
	op      retryOp
}

func (m bannerModel) active() bool { return m.op != retryNone }

func (m bannerModel) View() string {
	return bannerStyle.Render(errorStyle.Render(m.message) + "\n" + helpStyle.Render("r: try again   esc: dismiss"))
}
