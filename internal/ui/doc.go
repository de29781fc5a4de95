// Package ui draws the statistics panel and the board overlay for the gui
// driver. Everything except this file needs the ebiten build tag.
package ui
