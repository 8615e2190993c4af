package main

import (
	"io"

	"gioui.org/x/explorer"
)

// LoadResult holds the result of a tape load dialog.
type LoadResult struct {
	Data []byte
	Err  error
}

// SaveResult holds the result of a tape save dialog.
type SaveResult struct {
	Err error
}

// LoadTapeAsync opens a file-choose dialog in a goroutine and sends the
// file's contents on the returned channel.
func LoadTapeAsync(expl *explorer.Explorer) <-chan LoadResult {
	ch := make(chan LoadResult, 1)
	go func() {
		file, err := expl.ChooseFile("txt")
		if err != nil {
			ch <- LoadResult{Err: err}
			return
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		ch <- LoadResult{Data: data, Err: err}
	}()
	return ch
}

// SaveTapeAsync opens a file-create dialog in a goroutine, writes the
// tape text, and sends the outcome on the returned channel.
func SaveTapeAsync(expl *explorer.Explorer, content []byte, defaultName string) <-chan SaveResult {
	ch := make(chan SaveResult, 1)
	go func() {
		w, err := expl.CreateFile(defaultName)
		if err != nil {
			ch <- SaveResult{Err: err}
			return
		}
		_, err = w.Write(content)
		if closeErr := w.Close(); err == nil {
			err = closeErr
		}
		ch <- SaveResult{Err: err}
	}()
	return ch
}
