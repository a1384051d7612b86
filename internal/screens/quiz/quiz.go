package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/notequiz/internal/config"
	"github.com/abhisek/notequiz/internal/question"
	"github.com/abhisek/notequiz/internal/quiz"
	"github.com/abhisek/notequiz/internal/router"
	"github.com/abhisek/notequiz/internal/screen"
	"github.com/abhisek/notequiz/internal/screens/summary"
	"github.com/abhisek/notequiz/internal/store"
	"github.com/abhisek/notequiz/internal/streak"
	"github.com/abhisek/notequiz/internal/ui/components"
	"github.com/abhisek/notequiz/internal/ui/layout"
)

// QuizScreen runs one quiz session from first question to summary.
type QuizScreen struct {
	st  *store.Store
	cfg *config.Config

	session *quiz.Session

	// Per-question input state. mc serves multiple_choice and
	// true_false; blanks serves fill_blank with one input per marker.
	mc         components.MultiChoice
	mcActive   bool
	blanks     []components.TextInput
	blankIndex int

	questionStart   time.Time
	showingFeedback bool
	lastCorrect     bool
	saveErr         string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen over a fresh shuffled session.
func New(st *store.Store, cfg *config.Config, questions []question.Question, count int) *QuizScreen {
	s := &QuizScreen{
		st:      st,
		cfg:     cfg,
		session: quiz.Start(questions, count, nil),
	}
	s.setupCurrentQuestion()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	if s.mcActive {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Select"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Abandon"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Next blank / submit"},
		{Key: "Esc", Description: "Abandon"},
	}
}

// setupCurrentQuestion prepares the input component for the question at
// the cursor.
func (s *QuizScreen) setupCurrentQuestion() {
	q := s.session.CurrentQuestion()
	if q == nil {
		return
	}
	s.questionStart = time.Now()

	switch q.Type {
	case question.TypeMultipleChoice:
		opts := quiz.ShuffledOptions(q, nil)
		correct := 0
		for i, opt := range opts {
			if opt == q.CorrectAnswer {
				correct = i
				break
			}
		}
		s.mc = components.NewMultiChoice(q.Question, opts, correct)
		s.mcActive = true

	case question.TypeTrueFalse:
		correct := 1
		if q.CorrectBool {
			correct = 0
		}
		s.mc = components.NewMultiChoice(q.Question, []string{"True", "False"}, correct)
		s.mcActive = true

	case question.TypeFillBlank:
		s.mcActive = false
		s.blanks = make([]components.TextInput, len(q.Blanks))
		for i := range s.blanks {
			s.blanks[i] = components.NewTextInput("Your answer...", 80)
			if i > 0 {
				s.blanks[i].Blur()
			}
		}
		s.blankIndex = 0
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	if s.showingFeedback {
		if !isKey {
			return s, nil
		}
		s.showingFeedback = false
		if s.session.IsComplete() {
			return s.finish()
		}
		s.setupCurrentQuestion()
		return s, nil
	}

	// Completed session under the summary screen; any key returns home.
	if s.session.CurrentQuestion() == nil {
		if isKey {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if s.mcActive {
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if s.mc.Submitted {
			return s.submit(quiz.Answer{
				Selected: s.mc.Chosen(),
				Truth:    s.mc.ChosenIndex == 0,
			})
		}
		return s, cmd
	}

	// Fill in the blank: enter moves to the next input, the last enter
	// submits all values positionally.
	if isKey && kmsg.String() == "enter" {
		if s.blankIndex < len(s.blanks)-1 {
			s.blanks[s.blankIndex].Blur()
			s.blankIndex++
			return s, s.blanks[s.blankIndex].Focus()
		}
		values := make([]string, len(s.blanks))
		for i, in := range s.blanks {
			values[i] = in.Value()
		}
		return s.submit(quiz.Answer{Blanks: values})
	}

	if len(s.blanks) > 0 {
		var cmd tea.Cmd
		s.blanks[s.blankIndex], cmd = s.blanks[s.blankIndex].Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *QuizScreen) submit(ans quiz.Answer) (screen.Screen, tea.Cmd) {
	s.lastCorrect = s.session.SubmitAnswer(ans, time.Since(s.questionStart))
	for i := range s.blanks {
		s.blanks[i].Submit(s.lastCorrect)
	}
	s.showingFeedback = true
	return s, nil
}

// finish closes out the session: streak update, config save, history
// append, then the summary screen.
func (s *QuizScreen) finish() (screen.Screen, tea.Cmd) {
	attempt := s.session.Finish()

	today := streak.Today(time.Now())
	s.cfg.Streak = streak.CheckAndUpdate(s.cfg.Streak, today)
	s.cfg.Streak = streak.Increment(s.cfg.Streak, today)

	if err := s.st.SaveConfig(*s.cfg); err != nil {
		s.saveErr = err.Error()
	}
	if err := s.st.AppendAttempt(attempt); err != nil {
		s.saveErr = err.Error()
	}

	sum := summary.New(attempt, s.cfg.Streak, s.saveErr)
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: sum}
	}
}
