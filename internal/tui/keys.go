// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	forceQuit key.Binding
	theme     key.Binding
	start     key.Binding
	store     key.Binding
	remove    key.Binding
	next      key.Binding
	custom    key.Binding
	copy      key.Binding
	restore   key.Binding
	retry     key.Binding
	deleteAcc key.Binding
	info      key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	theme:     key.NewBinding(key.WithKeys("t")),
	start:     key.NewBinding(key.WithKeys("s")),
	store:     key.NewBinding(key.WithKeys("p")),
	remove:    key.NewBinding(key.WithKeys("d", "delete")),
	next:      key.NewBinding(key.WithKeys(" ", "space", "n", "enter")),
	custom:    key.NewBinding(key.WithKeys("a")),
	copy:      key.NewBinding(key.WithKeys("c")),
	restore:   key.NewBinding(key.WithKeys("r")),
	retry:     key.NewBinding(key.WithKeys("r")),
	deleteAcc: key.NewBinding(key.WithKeys("x")),
	info:      key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
