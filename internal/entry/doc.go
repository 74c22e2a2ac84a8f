// Package entry models a single Day One journal entry and writes it as a
// .doentry file.
//
// An Entry is created with New, mutated through SetText, SetTime and
// SetLocation, and written with Save. Rendering is driven by the "body" and
// "location" templates from internal/template.
//
// Timestamps use the layout 2006-01-02T15:04:05Z with the wall clock of the
// entry's time zone. The trailing Z is literal and does not mean the value
// was converted to UTC; Day One files written by earlier tools look the same.
package entry
