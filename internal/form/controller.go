package form

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Placeholders shown in the result display instead of a CGPA.
const (
	PlaceholderEmpty   = "--"
	PlaceholderInvalid = "?"
	PlaceholderError   = "Err"
)

// Status texts and colours written to the status region.
const (
	StatusNotSaved = "Calculated (Not Saved)"
	StatusFailed   = "Error saving data"

	colorInfo  = "#2563eb"
	colorError = "red"

	buttonPressed = "#1e40af"
	buttonIdle    = "#2563eb"
)

const (
	// DefaultMessageTTL is how long a server message stays visible.
	DefaultMessageTTL = 5 * time.Second
	flashDuration     = 120 * time.Millisecond
)

// Phase is a step of the submission flow.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseBlocked
	PhaseSubmitting
	PhaseConflictPending
	PhaseResubmitting
	PhaseDisplayed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	case PhaseBlocked:
		return "blocked"
	case PhaseSubmitting:
		return "submitting"
	case PhaseConflictPending:
		return "conflict_pending"
	case PhaseResubmitting:
		return "resubmitting"
	case PhaseDisplayed:
		return "displayed"
	default:
		return "unknown"
	}
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, message string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, message string) (bool, error) {
	return f(ctx, message)
}

// declineAll is used when no Confirmer is configured: existing records are
// never overwritten.
var declineAll = ConfirmFunc(func(context.Context, string) (bool, error) { return false, nil })

// OverwritePrompt is the question asked when the endpoint reports an
// existing record for the student.
func OverwritePrompt(storedName string) string {
	return fmt.Sprintf("You Already Submit Data As Name : %s\nDo you want to edit?", storedName)
}

// Option configures a Controller.
type Option func(*Controller)

func WithConfirmer(cf Confirmer) Option {
	return func(c *Controller) {
		if cf != nil {
			c.confirmer = cf
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithAfterFunc replaces time.AfterFunc for delayed surface updates.
func WithAfterFunc(fn func(time.Duration, func())) Option {
	return func(c *Controller) {
		if fn != nil {
			c.afterFunc = fn
		}
	}
}

func WithMessageTTL(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.messageTTL = d
		}
	}
}

// Controller binds the CGPA form on a Surface to a Calculator. Build one per
// surface and call Init once.
type Controller struct {
	surface    Surface
	calc       Calculator
	confirmer  Confirmer
	logger     *zap.Logger
	afterFunc  func(time.Duration, func())
	messageTTL time.Duration

	submitMu sync.Mutex
	phase    atomic.Int32
	// statusGen identifies the latest status text so an older timer does
	// not clear a newer message.
	statusGen atomic.Uint64
}

func NewController(surface Surface, calc Calculator, opts ...Option) *Controller {
	c := &Controller{
		surface:    surface,
		calc:       calc,
		confirmer:  declineAll,
		logger:     zap.NewNop(),
		afterFunc:  func(d time.Duration, f func()) { time.AfterFunc(d, f) },
		messageTTL: DefaultMessageTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Phase returns the current step of the submission flow.
func (c *Controller) Phase() Phase {
	return Phase(c.phase.Load())
}

func (c *Controller) setPhase(p Phase) {
	c.phase.Store(int32(p))
	c.logger.Debug("submission phase", zap.Stringer("phase", p))
}

// Init runs the initial validation pass, evaluates the submit gate and
// applies the semester labels.
func (c *Controller) Init() {
	c.ValidateField(SGPA1)
	c.ValidateField(SGPA2)
	c.UpdateButtonState()
	c.SyncLabels()
}

// HandleInput reacts to a keystroke in one of the form's fields.
func (c *Controller) HandleInput(id ElementID) {
	c.ValidateField(id)
	if isTracked(id) {
		c.UpdateButtonState()
	}
}

// HandleBlur reacts to a field losing focus.
func (c *Controller) HandleBlur(id ElementID) {
	c.ValidateField(id)
}

// HandleChange reacts to a committed change, such as a new semester
// selection.
func (c *Controller) HandleChange(id ElementID) {
	if id == SemesterSelect {
		c.SyncLabels()
		return
	}
	if isTracked(id) {
		c.UpdateButtonState()
	}
}

// ValidateField validates a score field and writes its error region. Other
// fields are ignored and reported as empty.
func (c *Controller) ValidateField(id ElementID) Result {
	var errID ElementID
	switch id {
	case SGPA1:
		errID = SGPA1Error
	case SGPA2:
		errID = SGPA2Error
	default:
		return Result{Outcome: OutcomeEmpty}
	}

	res := ValidateSGPA(c.surface.Value(id))
	c.surface.SetText(errID, res.Message)
	return res
}

// UpdateButtonState enables or disables the submit control.
func (c *Controller) UpdateButtonState() bool {
	ok := CanSubmit(ReadState(c.surface))
	if ok {
		c.surface.RemoveAttr(SubmitButton, "disabled")
		c.surface.SetStyle(SubmitButton, "opacity", "1")
		c.surface.SetStyle(SubmitButton, "cursor", "pointer")
		c.surface.SetAttr(SubmitButton, "title", TitleReady)
	} else {
		c.surface.SetAttr(SubmitButton, "disabled", "true")
		c.surface.SetStyle(SubmitButton, "opacity", "0.5")
		c.surface.SetStyle(SubmitButton, "cursor", "not-allowed")
		c.surface.SetAttr(SubmitButton, "title", TitleBlocked)
	}
	return ok
}

// Click handles the submit control: a disabled control does nothing,
// otherwise the control flashes and the form is submitted.
func (c *Controller) Click(ctx context.Context) Phase {
	if !c.UpdateButtonState() {
		return PhaseBlocked
	}

	c.surface.SetStyle(SubmitButton, "background", buttonPressed)
	c.afterFunc(flashDuration, func() {
		c.surface.SetStyle(SubmitButton, "background", buttonIdle)
	})

	return c.Submit(ctx)
}

// Submit validates the scores, calls the calculator and renders the
// outcome. It returns the terminal phase reached: PhaseBlocked when the
// inputs were not submittable, PhaseDisplayed otherwise. Failures are
// rendered on the surface and logged; none is returned.
func (c *Controller) Submit(ctx context.Context) Phase {
	c.submitMu.Lock()
	defer c.submitMu.Unlock()
	defer c.setPhase(PhaseIdle)

	c.setPhase(PhaseValidating)
	payload, ok := c.buildPayload()
	if !ok {
		c.setPhase(PhaseBlocked)
		return PhaseBlocked
	}

	c.setStatus("", "")
	c.setPhase(PhaseSubmitting)

	resp, err := c.calc.Calculate(ctx, payload)
	if err != nil {
		return c.fail(err)
	}

	if resp.Exists {
		c.setPhase(PhaseConflictPending)
		overwrite, err := c.confirmer.Confirm(ctx, OverwritePrompt(resp.Name))
		if err != nil {
			return c.fail(fmt.Errorf("confirming overwrite: %w", err))
		}
		if !overwrite {
			c.surface.SetText(CGPADisplay, string(resp.CGPA))
			c.setStatus(StatusNotSaved, colorInfo)
			c.setPhase(PhaseDisplayed)
			return PhaseDisplayed
		}

		// One confirmed retry; a second conflict is displayed as is.
		c.setPhase(PhaseResubmitting)
		payload.Confirmation = ConfirmYes
		resp, err = c.calc.Calculate(ctx, payload)
		if err != nil {
			return c.fail(err)
		}
		if resp.Exists {
			c.logger.Warn("record still reported as existing after confirmation",
				zap.String("roll", payload.Roll),
				zap.String("number", payload.Number),
			)
		}
	}

	c.surface.SetText(CGPADisplay, string(resp.CGPA))
	if resp.Message != "" {
		gen := c.setStatus(resp.Message, "")
		c.afterFunc(c.messageTTL, func() { c.clearStatus(gen) })
	}

	c.setPhase(PhaseDisplayed)
	return PhaseDisplayed
}

// buildPayload re-validates the scores and assembles the request. It writes
// the display placeholder and reports false when the form is not
// submittable.
func (c *Controller) buildPayload() (Payload, bool) {
	r1 := c.ValidateField(SGPA1)
	r2 := c.ValidateField(SGPA2)

	if r1.Outcome == OutcomeEmpty || r2.Outcome == OutcomeEmpty {
		c.surface.SetText(CGPADisplay, PlaceholderEmpty)
		return Payload{}, false
	}
	if !r1.Usable() || !r2.Usable() {
		c.surface.SetText(CGPADisplay, PlaceholderInvalid)
		return Payload{}, false
	}

	st := ReadState(c.surface)
	return Payload{
		SGPA1:    r1.Value,
		SGPA2:    r2.Value,
		Credit1:  creditOrDefault(st.Credit1),
		Credit2:  creditOrDefault(st.Credit2),
		Name:     st.Name,
		Roll:     st.Roll,
		Number:   st.Number,
		Semester: st.Semester,
	}, true
}

func (c *Controller) fail(err error) Phase {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.logger.Error("calculation endpoint rejected request",
			zap.Int("status", apiErr.StatusCode),
			zap.String("server_error", apiErr.Message),
		)
	} else {
		c.logger.Error("calculation request failed", zap.Error(err))
	}

	c.surface.SetText(CGPADisplay, PlaceholderError)
	c.setStatus(StatusFailed, colorError)
	c.setPhase(PhaseDisplayed)
	return PhaseDisplayed
}

// setStatus writes the status region and returns its generation. An empty
// colour resets the inline colour to the stylesheet default.
func (c *Controller) setStatus(text, color string) uint64 {
	gen := c.statusGen.Add(1)
	c.surface.SetStyle(SuccessMessage, "color", color)
	c.surface.SetText(SuccessMessage, text)
	return gen
}

func (c *Controller) clearStatus(gen uint64) {
	if c.statusGen.CompareAndSwap(gen, gen+1) {
		c.surface.SetText(SuccessMessage, "")
	}
}

func isTracked(id ElementID) bool {
	for _, t := range TrackedFields {
		if t == id {
			return true
		}
	}
	return false
}
