package input

import (
	"fmt"
	"log"
	"unicode"

	"github.com/eiannone/keyboard"
)

type Kind int

const (
	Tap Kind = iota
	Start
	Reset
	Help
	Quit
)

type Action struct {
	Kind Kind
	Lane int // Only meaningful for Tap
}

// Translate maps a key event to an action, lanes holds one key per lane
func Translate(ev keyboard.KeyEvent, lanes []rune) (Action, bool) {
	switch ev.Key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Action{Kind: Quit}, true
	case keyboard.KeySpace, keyboard.KeyEnter:
		return Action{Kind: Start}, true
	}

	r := unicode.ToLower(ev.Rune)
	for i, c := range lanes {
		if r == unicode.ToLower(c) {
			return Action{Kind: Tap, Lane: i}, true
		}
	}

	switch r {
	case 'r':
		return Action{Kind: Reset}, true
	case 'h', '?':
		return Action{Kind: Help}, true
	case 'q':
		return Action{Kind: Quit}, true
	}
	return Action{}, false
}

// ReadInput opens the keyboard and forwards translated actions until the returned
// close function is called
func ReadInput(lanes []rune, actions chan<- Action) (func() error, error) {
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}
	go func() {
		for ev := range keys {
			if nil != ev.Err {
				log.Println(ev.Err, "unable to read keyboard input")
				return
			}
			if action, ok := Translate(ev, lanes); ok {
				actions <- action
			}
		}
	}()
	return keyboard.Close, nil
}
