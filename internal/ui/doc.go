package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the combine service and renders
// the input list, progress, and settings. All UI strings are localized via
// Localization.
