package keymap

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Global bindings
		{Key: "q", Command: "quit", Context: "global"},
		{Key: "ctrl+c", Command: "quit", Context: "global"},
		{Key: "tab", Command: "next-view", Context: "global"},
		{Key: "shift+tab", Command: "prev-view", Context: "global"},
		{Key: "1", Command: "focus-view-1", Context: "global"},
		{Key: "2", Command: "focus-view-2", Context: "global"},
		{Key: "3", Command: "focus-view-3", Context: "global"},
		{Key: "4", Command: "focus-view-4", Context: "global"},
		{Key: "5", Command: "focus-view-5", Context: "global"},
		{Key: "?", Command: "toggle-help", Context: "global"},
		{Key: "@", Command: "switch-notebook", Context: "global"},
		{Key: "ctrl+h", Command: "toggle-footer", Context: "global"},
		{Key: "r", Command: "reload", Context: "global"},
		{Key: "j", Command: "cursor-down", Context: "global"},
		{Key: "down", Command: "cursor-down", Context: "global"},
		{Key: "k", Command: "cursor-up", Context: "global"},
		{Key: "up", Command: "cursor-up", Context: "global"},

		// Flashcards context. Digits jump to a card here, so they
		// shadow the global view-switching digits.
		{Key: "l", Command: "next-card", Context: "flashcards"},
		{Key: "right", Command: "next-card", Context: "flashcards"},
		{Key: "n", Command: "next-card", Context: "flashcards"},
		{Key: "h", Command: "prev-card", Context: "flashcards"},
		{Key: "left", Command: "prev-card", Context: "flashcards"},
		{Key: "p", Command: "prev-card", Context: "flashcards"},
		{Key: " ", Command: "flip-card", Context: "flashcards"},
		{Key: "enter", Command: "flip-card", Context: "flashcards"},
		{Key: "f", Command: "flip-card", Context: "flashcards"},
		{Key: "1", Command: "jump-card-1", Context: "flashcards"},
		{Key: "2", Command: "jump-card-2", Context: "flashcards"},
		{Key: "3", Command: "jump-card-3", Context: "flashcards"},
		{Key: "4", Command: "jump-card-4", Context: "flashcards"},
		{Key: "5", Command: "jump-card-5", Context: "flashcards"},
		{Key: "6", Command: "jump-card-6", Context: "flashcards"},
		{Key: "7", Command: "jump-card-7", Context: "flashcards"},
		{Key: "8", Command: "jump-card-8", Context: "flashcards"},
		{Key: "9", Command: "jump-card-9", Context: "flashcards"},

		// Audio overview context
		{Key: "p", Command: "toggle-play", Context: "audio"},
		{Key: "c", Command: "copy-script", Context: "audio"},
		{Key: "d", Command: "download-script", Context: "audio"},
		{Key: "v", Command: "toggle-briefing", Context: "audio"},
	}
}
