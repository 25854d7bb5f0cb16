package update

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/rs/zerolog"

	"github.com/sandeepkv93/daygrid/internal/config"
	"github.com/sandeepkv93/daygrid/internal/session"
	"github.com/sandeepkv93/daygrid/internal/store"
	"github.com/sandeepkv93/daygrid/internal/storage"
)

type View string

const (
	ViewDay      View = "Day"
	ViewCalendar View = "Calendar"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Day        string
	Calendar   string
	Editor     string
	Help       string
	Quit       string
	PrevMonth  string
	NextMonth  string
	Toggle     string
	Delete     string
	Clear      string
	SelectCell string
}

// CalendarViewState tracks the cursor inside the 42-cell grid.
type CalendarViewState struct {
	Cursor int
}

// DayViewState tracks the cursor inside the visible task list and whether
// the quick-add input is capturing keys.
type DayViewState struct {
	Cursor      int
	CaptureMode bool
}

// EditorState is the draft detail editor overlay. It works on a copy of the
// session draft; cancelling discards the copy.
type EditorState struct {
	Active      bool
	TitleActive bool
	Subtasks    []string
	Err         string
}

type PaletteState struct {
	Active bool
}

type Model struct {
	CurrentView View
	Session     session.State
	Store       *store.Store
	Calendar    CalendarViewState
	Day         DayViewState
	Editor      EditorState
	Palette     PaletteState
	Status      StatusBar
	Keys        GlobalKeyMap
	HelpVisible bool
	Quitting    bool
	LastError   error

	quickAddInput    textinput.Model
	commandInput     textinput.Model
	editorTitleInput textinput.Model
	editorEntryInput textinput.Model
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// NewModel builds a model backed by an in-memory slot, used by tests and by
// runs that opt out of persistence.
func NewModel() Model {
	st := store.New(storage.NewMemorySlot())
	return NewModelWithStore(st, session.NewState(time.Now()), config.Keymap{})
}

func NewModelWithStore(st *store.Store, sess session.State, keys config.Keymap) Model {
	m := Model{
		CurrentView: ViewDay,
		Session:     sess,
		Store:       st,
		Keys:        keymapOrDefaults(keys),
	}
	m.Calendar.Cursor = cursorForDate(m.Session, m.Session.SelectedDate)

	m.quickAddInput = textinput.New()
	m.quickAddInput.Placeholder = "task title [@YYYY-MM-DD] [HH:MM-HH:MM]"
	m.quickAddInput.CharLimit = 200

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"

	m.editorTitleInput = textinput.New()
	m.editorTitleInput.Placeholder = "task title"
	m.editorTitleInput.CharLimit = 200

	m.editorEntryInput = textinput.New()
	m.editorEntryInput.Placeholder = "e.g. collect sources / write outline / review"
	m.editorEntryInput.CharLimit = 120

	return m
}

// OpenStore loads the persisted snapshot and returns a ready model.
func OpenStore(slot storage.Slot, slotKey string, keys config.Keymap, log zerolog.Logger, now time.Time) Model {
	st := store.New(slot, store.WithSlotKey(slotKey), store.WithLogger(log))
	sess := session.NewState(now)
	st.Load(sess.SelectedDate)
	return NewModelWithStore(st, sess, keys)
}

func keymapOrDefaults(keys config.Keymap) GlobalKeyMap {
	return GlobalKeyMap{
		Day:        orKey(keys.Day, "1"),
		Calendar:   orKey(keys.Calendar, "2"),
		Editor:     orKey(keys.Editor, "e"),
		Help:       orKey(keys.Help, "?"),
		Quit:       orKey(keys.Quit, "q"),
		PrevMonth:  orKey(keys.PrevMonth, "h"),
		NextMonth:  orKey(keys.NextMonth, "l"),
		Toggle:     orKey(keys.Toggle, " "),
		Delete:     orKey(keys.Delete, "x"),
		Clear:      orKey(keys.Clear, "C"),
		SelectCell: orKey(keys.SelectCell, "enter"),
	}
}

func orKey(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
