// Package render turns crossing solutions into what people look at: the
// plain step list, a styled terminal view, and the playback timeline an
// animator replays frame by frame.
package render
