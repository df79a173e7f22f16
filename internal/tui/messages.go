package tui

type copiedMsg struct {
	key string
}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
